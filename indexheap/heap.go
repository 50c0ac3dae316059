package indexheap

import (
	"errors"
	"fmt"
	"strings"
)

// Absent is the position of an element that is not in the heap.
const Absent = -1

// Sentinel errors returned by Heap operations.
var (
	// ErrInvalidCapacity indicates New was called with a capacity ≤ 0.
	ErrInvalidCapacity = errors.New("indexheap: capacity must be positive")

	// ErrElementOutOfRange indicates an element ID outside [0, capacity).
	ErrElementOutOfRange = errors.New("indexheap: element out of range")

	// ErrHeapFull indicates Insert on a heap that already holds capacity elements.
	ErrHeapFull = errors.New("indexheap: heap is full")

	// ErrDuplicateElement indicates Insert of an element that is already present.
	ErrDuplicateElement = errors.New("indexheap: element already present")

	// ErrUnknownElement indicates ModifyPriority of an element that is not present.
	ErrUnknownElement = errors.New("indexheap: element not present")

	// ErrEmptyHeap indicates ExtractMin or PeekMin on an empty heap.
	ErrEmptyHeap = errors.New("indexheap: heap is empty")
)

// Heap is an array-backed indexed min-heap with a fixed capacity.
type Heap struct {
	heap     []int     // heap[0:size] are the present elements in heap order
	priority []float64 // priority[e] is the last priority assigned to e
	position []int     // position[e] is e's slot in heap, or Absent
	size     int
}

// New returns an empty heap able to hold the elements [0, capacity).
func New(capacity int) (*Heap, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	h := &Heap{
		heap:     make([]int, capacity),
		priority: make([]float64, capacity),
		position: make([]int, capacity),
	}
	for i := range h.position {
		h.position[i] = Absent
		h.heap[i] = Absent
	}

	return h, nil
}

// Insert adds element e with priority p and restores heap order by sifting up.
func (h *Heap) Insert(e int, p float64) error {
	if e < 0 || e >= len(h.position) {
		return fmt.Errorf("%w: %d", ErrElementOutOfRange, e)
	}
	if h.size == len(h.heap) {
		return ErrHeapFull
	}
	if h.position[e] != Absent {
		return fmt.Errorf("%w: %d", ErrDuplicateElement, e)
	}

	slot := h.size
	h.heap[slot] = e
	h.priority[e] = p
	h.position[e] = slot
	h.size++
	h.up(slot)

	return nil
}

// ModifyPriority sets the priority of a present element e to p. A smaller
// priority sifts e up, a larger one sifts it down, an equal one leaves it.
func (h *Heap) ModifyPriority(e int, p float64) error {
	if e < 0 || e >= len(h.position) {
		return fmt.Errorf("%w: %d", ErrElementOutOfRange, e)
	}
	slot := h.position[e]
	if slot == Absent {
		return fmt.Errorf("%w: %d", ErrUnknownElement, e)
	}

	old := h.priority[e]
	h.priority[e] = p
	switch {
	case p < old:
		h.up(slot)
	case p > old:
		h.down(slot)
	}

	return nil
}

// ExtractMin removes and returns the element with the smallest priority.
func (h *Heap) ExtractMin() (int, error) {
	if h.size == 0 {
		return Absent, ErrEmptyHeap
	}

	last := h.size - 1
	top := h.heap[0]
	h.swap(0, last)
	h.size--
	h.heap[last] = Absent
	h.position[top] = Absent
	if h.size > 0 {
		h.down(0)
	}

	return top, nil
}

// PeekMin returns the minimum element and its priority without removing it.
func (h *Heap) PeekMin() (int, float64, error) {
	if h.size == 0 {
		return Absent, 0, ErrEmptyHeap
	}
	e := h.heap[0]

	return e, h.priority[e], nil
}

// MinPriority returns the smallest priority currently in the heap.
func (h *Heap) MinPriority() (float64, error) {
	_, p, err := h.PeekMin()

	return p, err
}

// Len returns the number of present elements.
func (h *Heap) Len() int { return h.size }

// Cap returns the fixed capacity.
func (h *Heap) Cap() int { return len(h.heap) }

// IsEmpty reports whether no element is present.
func (h *Heap) IsEmpty() bool { return h.size == 0 }

// Contains reports whether e is currently present.
func (h *Heap) Contains(e int) bool {
	return e >= 0 && e < len(h.position) && h.position[e] != Absent
}

// Priority returns the priority of a present element.
func (h *Heap) Priority(e int) (float64, bool) {
	if !h.Contains(e) {
		return 0, false
	}

	return h.priority[e], true
}

// Position returns the heap slot of e, or Absent.
func (h *Heap) Position(e int) int {
	if e < 0 || e >= len(h.position) {
		return Absent
	}

	return h.position[e]
}

// String dumps the internal arrays for debugging. The format is not stable.
func (h *Heap) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "cap: %d size: %d\n", len(h.heap), h.size)
	fmt.Fprintf(&sb, "position: %v\n", h.position)
	sb.WriteString("priority: [")
	for e, p := range h.priority {
		if e > 0 {
			sb.WriteByte(' ')
		}
		if h.position[e] == Absent {
			sb.WriteByte('-')
			continue
		}
		fmt.Fprintf(&sb, "%.2f", p)
	}
	sb.WriteString("]\n")
	fmt.Fprintf(&sb, "heap: %v\n", h.heap[:h.size])

	return sb.String()
}

// less compares the priorities of the elements in slots i and j.
func (h *Heap) less(i, j int) bool {
	return h.priority[h.heap[i]] < h.priority[h.heap[j]]
}

// swap exchanges two slots and their position back-links. Priorities stay put.
func (h *Heap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.position[h.heap[i]] = i
	h.position[h.heap[j]] = j
}

func (h *Heap) up(j int) {
	for j > 0 {
		parent := (j - 1) / 2
		if !h.less(j, parent) {
			break
		}
		h.swap(j, parent)
		j = parent
	}
}

func (h *Heap) down(i int) {
	for {
		left := 2*i + 1
		if left >= h.size {
			return
		}
		child := left
		if right := left + 1; right < h.size && h.less(right, left) {
			child = right
		}
		if !h.less(child, i) {
			return
		}
		h.swap(i, child)
		i = child
	}
}
