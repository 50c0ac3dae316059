// File: methods_clone.go
// Role: deep copies, the symmetrized view and Stats.
// Concurrency:
//   - Read lock on the source graph only; the copy is private until returned.

package core

import "github.com/paulmach/orb"

// Clone returns a deep copy of the Graph: flags, vertices, labels, arcs and outputs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.emptyCopy(g.undirected)
	for u, succ := range g.adjacency {
		c.adjacency[u] = append([]int(nil), succ...)
	}
	c.arcs = g.arcs
	c.out = Outputs{
		Parents:             append([]int(nil), g.out.Parents...),
		TopologicalOrdering: append([]int(nil), g.out.TopologicalOrdering...),
		EarliestStart:       append([]float64(nil), g.out.EarliestStart...),
		LatestStart:         append([]float64(nil), g.out.LatestStart...),
	}

	return c
}

// Symmetrized returns an undirected copy in which every arc u→v of g is
// present in both directions exactly once. Successor order follows the
// first time each arc is met while scanning g by From asc, adjacency order.
// Outputs are not copied.
//
// Complexity: O(V + E) time, O(E) extra space for the seen-set.
func (g *Graph) Symmetrized() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := g.emptyCopy(true)
	seen := make(map[[2]int]struct{}, 2*g.arcs)
	link := func(u, v int) {
		key := [2]int{u, v}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		c.adjacency[u] = append(c.adjacency[u], v)
		c.arcs++
	}
	for u, succ := range g.adjacency {
		for _, v := range succ {
			link(u, v)
			if u != v {
				link(v, u)
			}
		}
	}

	return c
}

// Stats returns counts of vertices, arcs, sources and sinks.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	indeg := make([]int, len(g.coords))
	sinks := 0
	for _, succ := range g.adjacency {
		if len(succ) == 0 {
			sinks++
		}
		for _, v := range succ {
			indeg[v]++
		}
	}
	sources := 0
	for _, d := range indeg {
		if d == 0 {
			sources++
		}
	}

	return Stats{
		Vertices:   len(g.coords),
		Arcs:       g.arcs,
		Sources:    sources,
		Sinks:      sinks,
		Undirected: g.undirected,
	}
}

// emptyCopy must be called with g.mu held. It copies flags, coordinates and
// labels and allocates empty adjacency and sized outputs.
func (g *Graph) emptyCopy(undirected bool) *Graph {
	c := &Graph{
		undirected: undirected,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		capHint:    len(g.coords),
		coords:     append(make([]orb.Point, 0, len(g.coords)), g.coords...),
		labels:     append(make([]string, 0, len(g.labels)), g.labels...),
		adjacency:  make([][]int, len(g.coords)),
		byLabel:    make(map[string]int, len(g.byLabel)),
	}
	for l, id := range g.byLabel {
		c.byLabel[l] = id
	}
	c.growOutputs()

	return c
}
