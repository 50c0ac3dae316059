// Package indexheap implements an indexed binary min-heap over the dense
// element range [0, capacity), the priority queue behind Prim's spanning tree
// and Dijkstra's shortest paths in this module.
//
// What:
//
//   - Elements are integer IDs (typically vertex IDs), each inserted at most once.
//   - priority[e] and position[e] are indexed by element, not by heap slot,
//     so an element's priority can be changed in O(log N) without removing it.
//   - position[e] is the element's slot in the heap array, or Absent.
//
// Invariants (hold after every exported call):
//
//   - Heap order: priority[heap[i]] ≤ priority[heap[c]] for every child c of i.
//   - Index consistency: position[heap[i]] == i for i in [0, Len()),
//     and position[e] == Absent for every element not present.
//
// Tie-breaking:
//
//	Sifting up stops at the first parent that is not strictly larger.
//	Sifting down moves to the right child only when it is strictly smaller
//	than the left one. Traces are therefore reproducible for equal priorities.
//
// Complexity:
//
//   - New:            O(capacity)
//   - Insert:         O(log N)
//   - ModifyPriority: O(log N)
//   - ExtractMin:     O(log N)
//   - PeekMin, Len, IsEmpty, Contains, Priority: O(1)
//
// Errors:
//
//   - ErrInvalidCapacity    capacity ≤ 0 at construction
//   - ErrElementOutOfRange  element outside [0, capacity)
//   - ErrHeapFull           Insert with Len() == Cap()
//   - ErrDuplicateElement   Insert of an element already present
//   - ErrUnknownElement     ModifyPriority of an absent element
//   - ErrEmptyHeap          ExtractMin / PeekMin on an empty heap
//
// A Heap is not safe for concurrent use.
package indexheap
