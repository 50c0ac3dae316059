// Package cpm computes critical-path schedules (PERT/CPM) on a directed
// acyclic core.Graph whose arc durations are the Euclidean distances between
// vertex coordinates.
//
// What:
//
//   - EarliestStart: forward longest-path pass in topological order.
//   - LatestStart:   backward pass from the project horizon (the largest
//     earliest start over all sinks).
//   - Compute:       topological sort, both passes and an ordering check,
//     returned as an owned Schedule.
//
// A Schedule exposes slack (latest − earliest) per vertex, the set of
// critical vertices (zero slack within a tolerance) and one critical path
// from a source to a sink. ApplyTo merges a Schedule into the graph's output
// slots; nothing in this package writes to the graph otherwise.
//
// Preconditions:
//
//	The graph must be acyclic. Compute verifies that every arc goes forward
//	in the computed ordering and returns ErrPrecedenceViolation otherwise.
//	EarliestStart and LatestStart trust the order they are given.
//
// Complexity:
//
//   - Every pass: Time O(V + E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrOrderLength          order does not list every vertex exactly once
//   - ErrPrecedenceViolation  an arc goes backwards in the ordering (cycle)
package cpm
