// File: topological.go
// Role: reverse post-order over the DFS forest.

package dfs

import (
	"github.com/katalvlaran/critpath/core"
)

// TopologicalSort walks every vertex in ID order (forest DFS), records the
// DFS-forest parent of each vertex and returns the reverse post-order.
//
// The graph must be a DAG; see the package documentation.
// If g is nil, returns ErrGraphNil. If g mirrors arcs, returns ErrUndirectedGraph.
func TopologicalSort(g *core.Graph) (*TopoResult, error) {
	// 1. Validate graph pointer and orientation
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Undirected() {
		return nil, ErrUndirectedGraph
	}

	// 2. Forest walk in ID order
	res, err := DFS(g, core.None, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// 3. Reverse post-order is the topological order
	order := make([]int, len(res.PostOrder))
	for i, v := range res.PostOrder {
		order[len(order)-1-i] = v
	}

	return &TopoResult{
		Order:     order,
		Parent:    res.Parent,
		PostOrder: res.PostOrder,
	}, nil
}

// Rank returns the inverse permutation of order: rank[v] is the index of v
// in order. Vertices missing from order get -1.
func Rank(order []int, n int) []int {
	rank := make([]int, n)
	for i := range rank {
		rank[i] = -1
	}
	for i, v := range order {
		if v >= 0 && v < n {
			rank[v] = i
		}
	}

	return rank
}

// ApplyTo writes the ordering and the DFS-forest parents into g's output
// slots. Vertices beyond the result's size are left untouched.
func (r *TopoResult) ApplyTo(g *core.Graph) {
	g.UpdateOutputs(func(out *core.Outputs) {
		copy(out.TopologicalOrdering, r.Order)
		copy(out.Parents, r.Parent)
	})
}
