// File: methods_vertices.go
// Role: vertex lifecycle and queries.
// Determinism:
//   - IDs are assigned densely in AddVertex call order and never reused.

package core

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
)

// AddVertex appends a vertex at coordinate at and returns its ID.
// A non-empty label must be unique; an empty label is allowed any number of times.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(label string, at orb.Point) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if label != "" {
		if _, taken := g.byLabel[label]; taken {
			return None, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
		}
	}

	id := len(g.coords)
	g.coords = append(g.coords, at)
	g.labels = append(g.labels, label)
	g.adjacency = append(g.adjacency, nil)
	if label != "" {
		g.byLabel[label] = id
	}
	g.growOutputs()

	return id, nil
}

// Order returns the number of vertices N; valid IDs are [0, N).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.coords)
}

// HasVertex reports whether id is a valid vertex ID.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// Coord returns the coordinate of vertex id.
func (g *Graph) Coord(id int) (orb.Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return orb.Point{}, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return g.coords[id], nil
}

// Coords returns a copy of all coordinates indexed by vertex ID.
func (g *Graph) Coords() []orb.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]orb.Point, len(g.coords))
	copy(out, g.coords)

	return out
}

// Label returns the label of vertex id, or its decimal ID when it has none.
func (g *Graph) Label(id int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return ""
	}
	if l := g.labels[id]; l != "" {
		return l
	}

	return strconv.Itoa(id)
}

// VertexByLabel resolves a label to its vertex ID.
func (g *Graph) VertexByLabel(label string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.byLabel[label]
	if !ok {
		return None, false
	}

	return id, true
}

// valid must be called with g.mu held.
func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.coords)
}
