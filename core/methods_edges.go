// File: methods_edges.go
// Role: arc lifecycle and adjacency queries, coordinate-derived weights.
// Determinism:
//   - Neighbors(v) preserves insertion order.
//   - Edges() is ordered by From asc, then adjacency order.

package core

import (
	"fmt"

	"github.com/paulmach/orb/planar"
)

// AddEdge appends to to the ordered successor list of from. On an undirected
// graph the mirror arc to→from is appended as well (once for a self-loop).
//
// Steps:
//  1. Validate both endpoints.
//  2. Enforce loop and multi-edge constraints.
//  3. Append the arc (and its mirror).
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Endpoint validation
	if !g.valid(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.valid(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}

	// 2) Constraints
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if !g.allowMulti && g.hasArc(from, to) {
		return fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
	}

	// 3) Store
	g.adjacency[from] = append(g.adjacency[from], to)
	g.arcs++
	if g.undirected && from != to {
		g.adjacency[to] = append(g.adjacency[to], from)
		g.arcs++
	}

	return nil
}

// HasEdge reports whether at least one arc from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(from) || !g.valid(to) {
		return false
	}

	return g.hasArc(from, to)
}

// Neighbors returns a copy of the successors of id in insertion order.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]int, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// OutDegree returns the number of arcs leaving id (0 for an unknown ID).
func (g *Graph) OutDegree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return 0
	}

	return len(g.adjacency[id])
}

// Weight returns the Euclidean distance between the coordinates of u and v.
// Both IDs must be valid; callers obtain them from Neighbors or Order.
func (g *Graph) Weight(u, v int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return planar.Distance(g.coords[u], g.coords[v])
}

// Edges returns every stored arc, ordered by From then adjacency order.
// Mirrored arcs of an undirected graph appear in both directions.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.arcs)
	for u, succ := range g.adjacency {
		for _, v := range succ {
			out = append(out, Edge{From: u, To: v, Weight: planar.Distance(g.coords[u], g.coords[v])})
		}
	}

	return out
}

// EdgeCount returns the number of stored arcs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcs
}

// Undirected reports whether AddEdge mirrors arcs.
func (g *Graph) Undirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.undirected
}

// hasArc must be called with g.mu held.
func (g *Graph) hasArc(from, to int) bool {
	for _, v := range g.adjacency[from] {
		if v == to {
			return true
		}
	}

	return false
}
