package app

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/katalvlaran/critpath/loader"
	"github.com/katalvlaran/critpath/prim_kruskal"
)

// Run modes.
const (
	ModeSchedule = "schedule"
	ModeMST      = "mst"
	ModePath     = "path"
	ModeReach    = "reach"
	ModeAll      = "all"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Log encodings.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath   string // graph document
	InputFormat string // loader format; empty means by extension

	Mode       string
	Root       string // label or numeric ID; empty means vertex 0
	RootNear   string // "x,y"; overrides Root with the nearest vertex
	Target     string // label or numeric ID, required by ModePath
	MSTMethod  string
	Symmetrize bool // run MST and reach over the undirected view

	Output    string
	LogLevel  string
	LogFormat string
	Metrics   bool
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if _, err := loader.ParseFormat(cfg.InputFormat); err != nil {
		return nil, errors.Wrap(err, "input format")
	}

	if cfg.Mode == "" {
		cfg.Mode = ModeAll
	}
	switch cfg.Mode {
	case ModeSchedule, ModeMST, ModeReach, ModeAll:
	case ModePath:
		if cfg.Target == "" {
			return nil, errors.New("mode path needs a target vertex")
		}
	default:
		return nil, errors.Errorf("invalid mode %q: must be one of schedule, mst, path, reach, all", cfg.Mode)
	}

	if cfg.MSTMethod == "" {
		cfg.MSTMethod = prim_kruskal.MethodPrim
	}
	if cfg.MSTMethod != prim_kruskal.MethodPrim && cfg.MSTMethod != prim_kruskal.MethodKruskal {
		return nil, errors.Errorf("invalid mst method %q: must be %q or %q",
			cfg.MSTMethod, prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal)
	}

	if cfg.RootNear != "" {
		if _, err := ParsePoint(cfg.RootNear); err != nil {
			return nil, err
		}
	}

	if cfg.Output == "" {
		cfg.Output = OutputText
	}
	switch cfg.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return nil, errors.Errorf("invalid output format %q: must be text, json or yaml", cfg.Output)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = LogConsole
	}
	if cfg.LogFormat != LogConsole && cfg.LogFormat != LogJSON {
		return nil, errors.Errorf("invalid log format %q: must be console or json", cfg.LogFormat)
	}

	return &cfg, nil
}

// ParsePoint parses "x,y" into a point.
func ParsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, errors.Errorf("invalid point %q: want x,y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return orb.Point{}, errors.Errorf("invalid point %q: coordinates must be numbers", s)
	}

	return orb.Point{x, y}, nil
}
