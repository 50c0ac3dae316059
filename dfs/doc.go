// Package dfs implements depth-first traversal and topological sort on a
// core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, from one start vertex or over the whole vertex range
//     (forest mode). Supports pre- and post-order hooks, depth limiting and
//     neighbor filtering.
//   - TopologicalSort: walks every vertex in ID order, records the DFS-forest
//     parent of each vertex and returns the reverse post-order, in which every
//     arc u→v has u before v.
//   - FindCycle: three-color walk that returns the first directed cycle met,
//     or nil on a DAG.
//
// The walk keeps an explicit frame stack instead of recursing, so long chains
// do not grow the goroutine stack. Discovery order and finish order are
// exactly those of the textbook recursive formulation: neighbors are tried in
// adjacency order, a vertex is marked on entry and finished after its last
// neighbor.
//
// Preconditions:
//
//	TopologicalSort requires a directed acyclic graph. Cycles are not
//	detected here; on cyclic input the returned order is unspecified. Callers
//	that need a guarantee check the order afterwards and use FindCycle to
//	report the offending cycle (cpm does).
//
// Complexity:
//
//   - DFS:             Time O(V + E), Memory O(V)
//   - TopologicalSort: Time O(V + E), Memory O(V)
//   - FindCycle:       Time O(V + E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrUndirectedGraph      TopologicalSort or FindCycle on a graph that mirrors arcs
//   - hook errors             propagated from OnVisit or OnExit
package dfs
