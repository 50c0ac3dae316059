// Package dijkstra implements single-source shortest paths over a core.Graph
// whose arc lengths are the Euclidean distances between vertex coordinates.
//
// Lengths are never negative, so Dijkstra's greedy order is exact. Frontier
// vertices live in an indexheap.Heap; a shorter tentative distance lowers the
// key in place instead of pushing a stale duplicate.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Options:
//
//   - WithMaxDistance(d):      vertices farther than d are left unreached.
//   - WithInfEdgeThreshold(t): arcs of length ≥ t are impassable.
//
// Errors:
//
//   - ErrNilGraph        graph pointer is nil
//   - ErrVertexNotFound  source outside [0, Order())
//   - ErrNoPath          PathTo on an unreached vertex
package dijkstra
