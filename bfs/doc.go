// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following stored arcs in adjacency order.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  hop count from start, -1 when unreached
//   - Parent: predecessor in the BFS tree, core.None for start and unreached
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual arcs, WithMaxDepth bounds the hop count.
//   - Component lists everything reachable from a vertex, sorted by ID.
//
// Why
//
//   - Prim only spans the component of its root. Component tells the caller
//     which vertices that is before or after the tree is grown.
//   - Hop layering of a DAG is a quick sanity view of a schedule's width.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - Wrapped hook errors from OnVisit.
package bfs
