package indexheap

import "fmt"

// CheckInvariants verifies heap order and index consistency. Test-only helper.
func (h *Heap) CheckInvariants() error {
	for i := 0; i < h.size; i++ {
		e := h.heap[i]
		if h.position[e] != i {
			return fmt.Errorf("position[%d]=%d, want %d", e, h.position[e], i)
		}
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < h.size && h.priority[h.heap[c]] < h.priority[e] {
				return fmt.Errorf("slot %d (p=%v) has smaller child slot %d (p=%v)",
					i, h.priority[e], c, h.priority[h.heap[c]])
			}
		}
	}
	present := 0
	for e, pos := range h.position {
		if pos == Absent {
			continue
		}
		present++
		if pos >= h.size || h.heap[pos] != e {
			return fmt.Errorf("element %d claims slot %d", e, pos)
		}
	}
	if present != h.size {
		return fmt.Errorf("%d elements have positions, size is %d", present, h.size)
	}

	return nil
}

// Slots returns a copy of the occupied heap array. Test-only helper.
func (h *Heap) Slots() []int {
	return append([]int(nil), h.heap[:h.size]...)
}
