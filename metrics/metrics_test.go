package metrics_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/core"
	"github.com/katalvlaran/critpath/metrics"
)

func TestRecorder_RecordsAndRenders(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveGraph(core.Stats{Vertices: 4, Arcs: 3})
	r.Observe("schedule", 2*time.Millisecond, nil)
	r.Observe("schedule", time.Millisecond, errors.New("cycle"))
	done := r.Time("mst")
	done(nil)
	r.SetSchedule(7, 3)
	r.SetTreeWeight(10.5)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()

	assert.Contains(t, out, `critpath_operations_total{operation="schedule",outcome="ok"} 1`)
	assert.Contains(t, out, `critpath_operations_total{operation="schedule",outcome="error"} 1`)
	assert.Contains(t, out, `critpath_operations_total{operation="mst",outcome="ok"} 1`)
	assert.Contains(t, out, `critpath_operation_duration_seconds_count{operation="schedule"} 2`)
	assert.Contains(t, out, "critpath_graph_vertices 4")
	assert.Contains(t, out, "critpath_graph_arcs 3")
	assert.Contains(t, out, "critpath_schedule_horizon 7")
	assert.Contains(t, out, "critpath_schedule_critical_vertices 3")
	assert.Contains(t, out, "critpath_spanning_tree_weight 10.5")
}

func TestRecorder_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.ObserveGraph(core.Stats{Vertices: 1})
		r.Observe("schedule", time.Second, nil)
		r.Time("mst")(nil)
		r.SetSchedule(1, 1)
		r.SetTreeWeight(1)
	})
}

func TestRecorder_GaugesOverwrite(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r.SetSchedule(7, 3)
	r.SetSchedule(2, 1)
	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "critpath_schedule_horizon 2")
	assert.NotContains(t, buf.String(), "critpath_schedule_horizon 7")
}
