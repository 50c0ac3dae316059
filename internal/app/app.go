package app

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/locate"
	"github.com/katalvlaran/critpath/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer // report
	logW   io.Writer // logs and metrics dump
	config *Config
	logger *zap.Logger

	registry *prometheus.Registry
	recorder *metrics.Recorder
}

// NewApp builds an App with its own isolated logger and, when enabled, its
// own metrics registry.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if err != nil {
		return nil, err
	}
	a := &App{outW: outW, logW: logW, config: cfg, logger: logger}

	if cfg.Metrics {
		a.registry = prometheus.NewRegistry()
		if a.recorder, err = metrics.NewRecorder(a.registry); err != nil {
			return nil, errors.Wrap(err, "metrics")
		}
	}
	logger.Debug("app configured", zap.String("mode", cfg.Mode), zap.String("output", cfg.Output))

	return a, nil
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// resolveVertex maps a label, or failing that a numeric ID, to a vertex.
func resolveVertex(g *core.Graph, ref string) (int, error) {
	if id, ok := g.VertexByLabel(ref); ok {
		return id, nil
	}
	id, err := strconv.Atoi(ref)
	if err != nil || !g.HasVertex(id) {
		return core.None, errors.Wrapf(core.ErrVertexNotFound, "%q", ref)
	}

	return id, nil
}

// resolveRoot picks the root vertex: nearest to RootNear, else Root, else 0.
func (a *App) resolveRoot(g *core.Graph) (int, error) {
	switch {
	case a.config.RootNear != "":
		p, err := ParsePoint(a.config.RootNear)
		if err != nil {
			return core.None, err
		}
		ix, err := locate.New(g)
		if err != nil {
			return core.None, errors.WithStack(err)
		}
		id, d, err := ix.Nearest(p)
		if err != nil {
			return core.None, errors.Wrap(err, "root-near")
		}
		a.logger.Debug("root resolved by position",
			zap.Float64s("point", []float64{p[0], p[1]}),
			zap.String("vertex", g.Label(id)),
			zap.Float64("distance", d))
		return id, nil
	case a.config.Root != "":
		return resolveVertex(g, a.config.Root)
	default:
		if g.Order() == 0 {
			return core.None, errors.WithStack(core.ErrEmptyGraph)
		}
		return 0, nil
	}
}
