// Package prim_kruskal computes minimum spanning trees over a core.Graph
// whose edge weights are the Euclidean distances between vertex coordinates.
//
// What & Why
//
//   - Prim grows one tree from a root vertex. Every vertex sits in an
//     indexheap.Heap keyed by the lightest known edge into the tree, so a
//     cheaper edge lowers the key in place (decrease-key) instead of pushing a
//     duplicate candidate. The result is a parent array: the shape the rest of
//     the module stores in core.Outputs.
//
//   - Kruskal sorts every edge and joins components with a disjoint-set
//     forest. It covers all components at once and serves as an independent
//     check of Prim on connected inputs.
//
// Algorithms Provided
//
//   - Prim(g, root, opts...) (*Tree, error)
//
//   - Heap of capacity |V|; root at priority 0, everything else at +Inf.
//
//   - Extract the minimum u. A +Inf minimum means the rest of the graph is
//     not reachable from root, and the walk stops there.
//
//   - For each successor v of u in adjacency order, still in the heap: when
//     w(u,v) < key(v) and v's current parent is not u, lower key(v) to
//     w(u,v) and record u as v's parent.
//
//   - Complexity: Time O(E log V), Space O(V).
//
//   - Kruskal(g) (*Forest, error)
//
//   - Self-loops skipped, edges stably sorted by weight (ties keep
//     graph.Edges order), union by rank with path halving.
//
//   - Complexity: Time O(E log E), Space O(V + E).
//
// Directed input
//
//	Prim follows stored arcs only. Build the graph with core.WithUndirected or
//	call g.Symmetrized() first when every arc should be usable both ways.
//	Kruskal always treats arcs as undirected.
//
// Error Conditions
//
//   - ErrInvalidGraph        graph is nil
//   - core.ErrVertexNotFound Prim root outside [0, Order())
package prim_kruskal
