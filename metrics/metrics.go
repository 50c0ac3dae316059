// Package metrics records what the critpath pipeline computed as Prometheus
// collectors and renders them in the text exposition format.
//
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/critpath/core"
)

// Namespace prefixes every metric name.
const Namespace = "critpath"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder owns the collectors of one pipeline run.
type Recorder struct {
	runs       *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	vertices   prometheus.Gauge
	arcs       prometheus.Gauge
	horizon    prometheus.Gauge
	critical   prometheus.Gauge
	treeWeight prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operations_total",
				Help:      "Records the number of graph operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "operation_duration_seconds",
				Help:      "Wall time of graph operations",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
			},
			[]string{"operation"},
		),
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_vertices",
			Help:      "Vertices of the loaded graph",
		}),
		arcs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "graph_arcs",
			Help:      "Stored arcs of the loaded graph (mirrored arcs counted twice)",
		}),
		horizon: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "schedule_horizon",
			Help:      "Project horizon of the last schedule",
		}),
		critical: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "schedule_critical_vertices",
			Help:      "Vertices with zero slack in the last schedule",
		}),
		treeWeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "spanning_tree_weight",
			Help:      "Total weight of the last spanning tree",
		}),
	}

	allMetrics := []prometheus.Collector{r.runs, r.duration, r.vertices, r.arcs, r.horizon, r.critical, r.treeWeight}
	for _, metric := range allMetrics {
		if err := reg.Register(metric); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return r, nil
}

// ObserveGraph records the size of the loaded graph.
func (r *Recorder) ObserveGraph(st core.Stats) {
	if r == nil {
		return
	}
	r.vertices.Set(float64(st.Vertices))
	r.arcs.Set(float64(st.Arcs))
}

// Observe records one finished operation.
func (r *Recorder) Observe(op string, took time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.runs.WithLabelValues(op, outcome).Inc()
	r.duration.WithLabelValues(op).Observe(took.Seconds())
}

// Time starts a timer for op; call the returned func with the result.
func (r *Recorder) Time(op string) func(error) {
	start := time.Now()
	return func(err error) {
		r.Observe(op, time.Since(start), err)
	}
}

// SetSchedule records the horizon and critical vertex count of a schedule.
func (r *Recorder) SetSchedule(horizon float64, critical int) {
	if r == nil {
		return
	}
	r.horizon.Set(horizon)
	r.critical.Set(float64(critical))
}

// SetTreeWeight records the total weight of a spanning tree.
func (r *Recorder) SetTreeWeight(w float64) {
	if r == nil {
		return
	}
	r.treeWeight.Set(w)
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrapf(err, "write %s", mf.GetName())
		}
	}

	return nil
}
