// Package dfs defines types and options for depth-first traversal,
// including pre-/post-order hooks, depth limiting, neighbor filtering and
// full-graph (forest) traversal.
package dfs

import (
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrUndirectedGraph indicates TopologicalSort was given a graph that mirrors every arc.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires a directed graph")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before it is appended to PostOrder.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each arc from→to before descending.
	// Return false to skip the arc.
	FilterNeighbor func(from, to int) bool

	// FullTraversal restarts the walk from every unvisited vertex in ID order.
	FullTraversal bool
}

// DefaultOptions returns Options with no hooks, no depth limit, no filter
// and single-source traversal.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal covers every vertex, restarting from each unvisited one in ID order.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal. Slices are indexed
// by vertex ID and sized to the graph order.
type Result struct {
	// PreOrder records vertices in discovery order.
	PreOrder []int

	// PostOrder records vertices in the order they finished.
	PostOrder []int

	// Depth is the number of tree arcs from the tree root; -1 when unvisited.
	Depth []int

	// Parent is the vertex from which each vertex was first discovered;
	// core.None for tree roots and unvisited vertices.
	Parent []int

	// Visited flags which vertices were reached.
	Visited []bool

	// SkippedNeighbors counts arcs rejected by FilterNeighbor.
	SkippedNeighbors int
}

// TopoResult is the output of TopologicalSort.
type TopoResult struct {
	// Order lists every vertex so that each arc u→v has u before v.
	Order []int

	// Parent is the DFS-forest parent of each vertex (core.None for roots).
	Parent []int

	// PostOrder is the finish order of the walk; Order is its reverse.
	PostOrder []int
}
