package prim_kruskal

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/critpath/core"
)

// ErrInvalidGraph indicates that the graph pointer is nil.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// MethodPrim selects Prim's algorithm (grow from a root using the indexed heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures Prim.
type Options struct {
	// Logger receives one debug entry per attached vertex and a summary.
	Logger *zap.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Tree is the spanning tree grown by Prim. Slices are indexed by vertex ID.
type Tree struct {
	// Root is the start vertex.
	Root int

	// Parents holds the tree parent of each reached vertex; core.None for the
	// root and for every vertex outside the root's component.
	Parents []int

	// Weights holds the weight of the edge to the parent (0 for root and unreached).
	Weights []float64

	// Reached flags vertices attached to the tree.
	Reached []bool

	// Order lists vertices in the order they were attached, root first.
	Order []int
}

// Forest is the minimum spanning forest built by Kruskal.
type Forest struct {
	// Edges holds the chosen edges in ascending weight order.
	Edges []core.Edge

	// Components is the number of trees, isolated vertices included.
	Components int
}
