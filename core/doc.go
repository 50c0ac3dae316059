// Package core provides the in-memory Graph used by every algorithm in this
// module: a directed (or mirrored-undirected) adjacency-list graph over the
// dense vertex range [0, Order()), where each vertex carries a planar
// coordinate and every edge weight is the Euclidean distance between its
// endpoints' coordinates.
//
// What:
//
//   - Dense integer vertex IDs assigned by AddVertex in call order.
//   - Optional unique labels for human-readable documents (VertexByLabel).
//   - Ordered adjacency: Neighbors(v) returns successors in insertion order,
//     which is the iteration order used by DFS, topological sort and Prim.
//   - Weight(u, v) is always planar.Distance(Coord(u), Coord(v)); edges never
//     store an independent weight.
//   - Output slots (Outputs) for the results of scheduling and spanning-tree
//     computations: Parents, TopologicalOrdering, EarliestStart, LatestStart.
//
// Configuration Options (GraphOption):
//
//	– WithUndirected()      every AddEdge(u,v) also records v→u.
//	– WithoutMultiEdges()   a second AddEdge(u,v) returns ErrMultiEdgeNotAllowed.
//	– WithoutLoops()        AddEdge(v,v) returns ErrLoopNotAllowed.
//	– WithCapacity(n)       preallocates storage for n vertices.
//
// Self-loops are accepted by default: algorithms assume they are absent but do
// not reject them.
//
// Concurrency:
//
//	All methods are guarded by a single sync.RWMutex. The algorithms built on
//	top of Graph are single-threaded; two computations must not merge their
//	results into the same Graph concurrently (see Outputs).
//
// Errors:
//
//	ErrVertexNotFound      - a vertex ID outside [0, Order()).
//	ErrDuplicateLabel      - AddVertex with a label already in use.
//	ErrMultiEdgeNotAllowed - parallel edge on a WithoutMultiEdges graph.
//	ErrLoopNotAllowed      - self-loop on a WithoutLoops graph.
//	ErrEmptyGraph          - an operation that needs at least one vertex.
package core
