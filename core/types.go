// File: types.go
// Role: Graph, Edge, Stats and Outputs declarations, sentinel errors, options
// and the NewGraph constructor.

package core

import (
	"errors"
	"sync"

	"github.com/paulmach/orb"
)

// None marks the absence of a vertex in parent-style arrays.
const None = -1

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex ID outside [0, Order()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateLabel indicates AddVertex was given a label already in use.
	ErrDuplicateLabel = errors.New("core: duplicate vertex label")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEmptyGraph indicates the operation needs at least one vertex.
	ErrEmptyGraph = errors.New("core: graph has no vertices")
)

// Edge is a weighted arc From→To. Weight is derived from the endpoint
// coordinates at the time the Edge value was produced.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Vertices   int  // number of vertices
	Arcs       int  // number of stored arcs (mirrored arcs counted twice)
	Sources    int  // vertices with no incoming arc
	Sinks      int  // vertices with no outgoing arc
	Undirected bool // whether AddEdge mirrors arcs
}

// Outputs holds the per-vertex result slots of a Graph. Slices are sized to
// Order() and index by vertex ID.
type Outputs struct {
	// Parents encodes a spanning structure; None marks a root or an untouched vertex.
	Parents []int

	// TopologicalOrdering lists vertex IDs so that every arc goes forward.
	TopologicalOrdering []int

	// EarliestStart is the longest-path distance from any source.
	EarliestStart []float64

	// LatestStart is the latest start that does not delay the horizon.
	LatestStart []float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes every AddEdge(u,v) also store v→u.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// WithoutMultiEdges rejects a second arc between the same ordered pair.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// WithoutLoops rejects self-loops.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithCapacity preallocates storage for n vertices. Negative n is ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is a coordinate-weighted adjacency-list graph over dense vertex IDs.
//
// mu protects every field; adjacency[u] keeps successors of u in insertion order.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	undirected bool
	allowMulti bool
	allowLoops bool
	capHint    int

	// Storage
	coords    []orb.Point
	labels    []string
	byLabel   map[string]int
	adjacency [][]int
	arcs      int

	// Result slots, lazily sized to len(coords).
	out Outputs
}

// NewGraph creates an empty Graph. By default the graph is directed and
// accepts both parallel edges and self-loops.
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowMulti: true,
		allowLoops: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.coords = make([]orb.Point, 0, g.capHint)
	g.labels = make([]string, 0, g.capHint)
	g.adjacency = make([][]int, 0, g.capHint)
	g.byLabel = make(map[string]int, g.capHint)

	return g
}
