package cpm

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("cpm: graph is nil")

	// ErrOrderLength indicates an ordering that is not a permutation of the vertex IDs.
	ErrOrderLength = errors.New("cpm: ordering is not a permutation of the vertices")

	// ErrPrecedenceViolation indicates an arc u→v with v before u in the ordering.
	ErrPrecedenceViolation = errors.New("cpm: arc goes backwards in topological order")
)

// DefaultTolerance is the slack below which a vertex counts as critical.
const DefaultTolerance = 1e-9

// Options configures Compute.
type Options struct {
	// Logger receives debug output for each pass. Defaults to a no-op logger.
	Logger *zap.Logger

	// Tolerance is the slack at or below which a vertex is critical.
	Tolerance float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a no-op logger and DefaultTolerance.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), Tolerance: DefaultTolerance}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTolerance sets the critical-slack tolerance. Negative values are ignored.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps >= 0 {
			o.Tolerance = eps
		}
	}
}

// Schedule is the owned result of Compute. Slices are indexed by vertex ID,
// except Order which lists IDs.
type Schedule struct {
	// Order is the topological ordering used by both passes.
	Order []int

	// Parent is the DFS-forest parent of each vertex (core.None for roots).
	Parent []int

	// Earliest is the earliest start of each vertex.
	Earliest []float64

	// Latest is the latest start that keeps the horizon.
	Latest []float64

	// Horizon is the largest earliest start over all sinks; 0 if there is none.
	Horizon float64

	// tolerance used by IsCritical.
	tolerance float64

	// succ caches weighted adjacency for CriticalPath.
	succ [][]arc
	// sources flags vertices with no incoming arc.
	sources []bool
}

// arc is a cached successor with its duration.
type arc struct {
	to int
	w  float64
}
