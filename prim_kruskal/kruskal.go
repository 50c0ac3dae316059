// File: kruskal.go
// Role: Kruskal's minimum spanning forest over the undirected view of a graph.

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/critpath/core"
)

// Kruskal computes a minimum spanning forest, treating every arc as an
// undirected edge. Self-loops are skipped; equal weights keep g.Edges order.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *core.Graph) (*Forest, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.Order()

	// 2. Collect non-loop edges and sort them stably by weight
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint-set forest
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// 4. Join components with the lightest edges
	f := &Forest{Components: n}
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		f.Edges = append(f.Edges, e)
		f.Components--
		if f.Components == 1 {
			break
		}
	}

	return f, nil
}

// TotalWeight sums the weights of the forest edges.
func (f *Forest) TotalWeight() float64 {
	var sum float64
	for _, e := range f.Edges {
		sum += e.Weight
	}

	return sum
}
