package indexheap_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/critpath/indexheap"
)

func mustNew(t *testing.T, n int) *indexheap.Heap {
	t.Helper()
	h, err := indexheap.New(n)
	require.NoError(t, err)

	return h
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, n := range []int{0, -3} {
		h, err := indexheap.New(n)
		assert.Nil(t, h)
		assert.ErrorIs(t, err, indexheap.ErrInvalidCapacity)
	}
}

func TestNew_Empty(t *testing.T) {
	h := mustNew(t, 4)
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 4, h.Cap())
	for e := 0; e < 4; e++ {
		assert.Equal(t, indexheap.Absent, h.Position(e))
		assert.False(t, h.Contains(e))
	}

	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, indexheap.ErrEmptyHeap)
	_, _, err = h.PeekMin()
	assert.ErrorIs(t, err, indexheap.ErrEmptyHeap)
	_, err = h.MinPriority()
	assert.ErrorIs(t, err, indexheap.ErrEmptyHeap)
}

func TestInsert_Errors(t *testing.T) {
	h := mustNew(t, 2)
	assert.ErrorIs(t, h.Insert(2, 1), indexheap.ErrElementOutOfRange)
	assert.ErrorIs(t, h.Insert(-1, 1), indexheap.ErrElementOutOfRange)

	require.NoError(t, h.Insert(0, 5))
	assert.ErrorIs(t, h.Insert(0, 1), indexheap.ErrDuplicateElement)
	require.NoError(t, h.Insert(1, 3))
	assert.Equal(t, 2, h.Len())
	require.NoError(t, h.CheckInvariants())
}

func TestInsert_Reuse(t *testing.T) {
	h := mustNew(t, 2)
	require.NoError(t, h.Insert(0, 1))
	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 0, e)

	// an extracted element may be inserted again
	require.NoError(t, h.Insert(0, 2))
	assert.ErrorIs(t, h.Insert(0, 2), indexheap.ErrDuplicateElement)
}

func TestInsert_Full(t *testing.T) {
	h := mustNew(t, 3)
	for e := 0; e < 3; e++ {
		require.NoError(t, h.Insert(e, float64(e)))
	}
	for e := 0; e < 3; e++ {
		assert.ErrorIs(t, h.Insert(e, 0), indexheap.ErrHeapFull, "element %d", e)
	}
	assert.ErrorIs(t, h.Insert(3, 0), indexheap.ErrElementOutOfRange)
	assert.Equal(t, 3, h.Len())

	// one extraction frees a slot for the extracted element only
	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.ErrorIs(t, h.Insert(1, 0), indexheap.ErrDuplicateElement)
	require.NoError(t, h.Insert(e, 7))
	assert.ErrorIs(t, h.Insert(e, 7), indexheap.ErrHeapFull)
	require.NoError(t, h.CheckInvariants())
}

func TestModifyPriority_Errors(t *testing.T) {
	h := mustNew(t, 3)
	assert.ErrorIs(t, h.ModifyPriority(1, 0), indexheap.ErrUnknownElement)
	assert.ErrorIs(t, h.ModifyPriority(3, 0), indexheap.ErrElementOutOfRange)

	require.NoError(t, h.Insert(1, 4))
	_, err := h.ExtractMin()
	require.NoError(t, err)
	assert.ErrorIs(t, h.ModifyPriority(1, 0), indexheap.ErrUnknownElement)
}

// TestInsert_SiftUpTrace pins the exact slot layout so tie-breaking stays reproducible.
func TestInsert_SiftUpTrace(t *testing.T) {
	h := mustNew(t, 5)
	require.NoError(t, h.Insert(0, 5))
	require.NoError(t, h.Insert(1, 3))
	assert.Equal(t, []int{1, 0}, h.Slots())
	require.NoError(t, h.Insert(2, 4))
	assert.Equal(t, []int{1, 0, 2}, h.Slots())
	require.NoError(t, h.Insert(3, 1))
	assert.Equal(t, []int{3, 1, 2, 0}, h.Slots())
	// equal priority never climbs above its parent
	require.NoError(t, h.Insert(4, 3))
	assert.Equal(t, []int{3, 1, 2, 0, 4}, h.Slots())
	require.NoError(t, h.CheckInvariants())
}

func TestSiftDown_LeftPreferredOnTie(t *testing.T) {
	h := mustNew(t, 3)
	require.NoError(t, h.Insert(0, 0))
	require.NoError(t, h.Insert(1, 2))
	require.NoError(t, h.Insert(2, 2))

	require.NoError(t, h.ModifyPriority(0, 9))
	assert.Equal(t, []int{1, 0, 2}, h.Slots(), "left child wins a tie")
	assert.Equal(t, 1, h.Position(0))
	require.NoError(t, h.CheckInvariants())
}

func TestModifyPriority_Directions(t *testing.T) {
	h := mustNew(t, 6)
	for e, p := range []float64{10, 20, 30, 40, 50, 60} {
		require.NoError(t, h.Insert(e, p))
	}

	// decrease: 5 goes to the root
	require.NoError(t, h.ModifyPriority(5, 1))
	e, p, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 5, e)
	assert.Equal(t, 1.0, p)
	require.NoError(t, h.CheckInvariants())

	// increase: root sinks, 0 becomes minimum again
	require.NoError(t, h.ModifyPriority(5, 100))
	e, _, _ = h.PeekMin()
	assert.Equal(t, 0, e)
	require.NoError(t, h.CheckInvariants())

	// equal: no movement at all
	before := h.Slots()
	require.NoError(t, h.ModifyPriority(3, 40))
	assert.Equal(t, before, h.Slots())

	got, ok := h.Priority(5)
	assert.True(t, ok)
	assert.Equal(t, 100.0, got)
}

func TestExtractMin_OrderAndPositions(t *testing.T) {
	h := mustNew(t, 5)
	prios := []float64{3, 1, 4, 1, 5}
	for e, p := range prios {
		require.NoError(t, h.Insert(e, p))
	}
	var got []float64
	for !h.IsEmpty() {
		e, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, indexheap.Absent, h.Position(e))
		_, ok := h.Priority(e)
		assert.False(t, ok)
		got = append(got, prios[e])
		require.NoError(t, h.CheckInvariants())
	}
	assert.Equal(t, []float64{1, 1, 3, 4, 5}, got)
}

func TestInfinityPriorities(t *testing.T) {
	h := mustNew(t, 3)
	require.NoError(t, h.Insert(0, math.Inf(1)))
	require.NoError(t, h.Insert(1, math.Inf(1)))
	require.NoError(t, h.Insert(2, 0))

	e, _ := h.ExtractMin()
	assert.Equal(t, 2, e)
	require.NoError(t, h.ModifyPriority(1, 7))
	e, _ = h.ExtractMin()
	assert.Equal(t, 1, e)
	p, err := h.MinPriority()
	require.NoError(t, err)
	assert.True(t, math.IsInf(p, 1))
}

// TestRandomOperations checks both invariants after every call for capacities 1..64.
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for capacity := 1; capacity <= 64; capacity++ {
		h := mustNew(t, capacity)
		present := make(map[int]float64)
		for step := 0; step < 8*capacity; step++ {
			switch op := r.Intn(3); {
			case op == 0 && len(present) < capacity:
				e := r.Intn(capacity)
				p := float64(r.Intn(20))
				err := h.Insert(e, p)
				if _, dup := present[e]; dup {
					require.ErrorIs(t, err, indexheap.ErrDuplicateElement)
				} else {
					require.NoError(t, err)
					present[e] = p
				}
			case op == 1 && len(present) > 0:
				e := anyKey(r, present)
				p := float64(r.Intn(20))
				require.NoError(t, h.ModifyPriority(e, p))
				present[e] = p
			case op == 2 && len(present) > 0:
				e, err := h.ExtractMin()
				require.NoError(t, err)
				for _, p := range present {
					require.LessOrEqual(t, present[e], p, "extracted element must be minimal")
				}
				delete(present, e)
			}
			require.NoError(t, h.CheckInvariants(), "capacity %d step %d", capacity, step)
			require.Equal(t, len(present), h.Len())
		}
	}
}

func TestExtractAll_NonDecreasing(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	const n = 64
	h := mustNew(t, n)
	want := make([]float64, n)
	for e := 0; e < n; e++ {
		want[e] = float64(r.Intn(10))
		require.NoError(t, h.Insert(e, want[e]))
	}
	// lower a few priorities after insertion
	for i := 0; i < 10; i++ {
		e := r.Intn(n)
		want[e] -= 5
		require.NoError(t, h.ModifyPriority(e, want[e]))
	}
	sort.Float64s(want)

	got := make([]float64, 0, n)
	for !h.IsEmpty() {
		p, err := h.MinPriority()
		require.NoError(t, err)
		_, err = h.ExtractMin()
		require.NoError(t, err)
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}

func TestString_Dump(t *testing.T) {
	h := mustNew(t, 3)
	require.NoError(t, h.Insert(2, 1.5))
	s := h.String()
	assert.Contains(t, s, "size: 1")
	assert.Contains(t, s, "priority: [- - 1.50]")
	assert.Contains(t, s, "heap: [2]")
}

func anyKey(r *rand.Rand, m map[int]float64) int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys[r.Intn(len(keys))]
}
