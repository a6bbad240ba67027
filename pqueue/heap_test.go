// Package pqueue_test validates the binary heap: ordering under the
// predicate, arbitrary-index removal/replacement, bulk heapify, ordered
// drain, and the soft-fail contract on empty/out-of-range operations.
package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/pqueue"
)

func TestHeap_EmptySoftFail(t *testing.T) {
	h := pqueue.NewMin[int]()

	// Empty-heap reads return (zero, false) rather than failing.
	_, ok := h.Peek()
	assert.False(t, ok, "Peek on empty heap")
	_, ok = h.PopRoot()
	assert.False(t, ok, "PopRoot on empty heap")
	_, ok = h.RemoveAt(0)
	assert.False(t, ok, "RemoveAt on empty heap")

	// Replace out of range is a documented no-op.
	h.Replace(0, 42)
	assert.True(t, h.IsEmpty())
}

func TestHeap_PeekTracksTopPriority(t *testing.T) {
	h := pqueue.NewMin[int]()
	inserted := []int{10, 4, 15, 1, 7, 1}
	min := inserted[0]
	for _, v := range inserted {
		h.Push(v)
		if v < min {
			min = v
		}
		top, ok := h.Peek()
		require.True(t, ok)
		assert.Equal(t, min, top, "Peek must never be outranked by a stored element")
	}
}

func TestHeap_SortedMinHeap(t *testing.T) {
	// Reference property: min-heap over {10,4,15,1} drains to [1 4 10 15].
	h := pqueue.NewMin(pqueue.WithInitial(10, 4, 15, 1))
	assert.Equal(t, []int{1, 4, 10, 15}, h.Sorted())

	// Sorted drains a clone; the receiver keeps its elements.
	assert.Equal(t, 4, h.Len())
	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, top)
}

func TestHeap_SortedMaxHeapAfterPush(t *testing.T) {
	// Max-heap over {3,1,6,7}, then Push(9): drain order [9 7 6 3 1].
	h := pqueue.NewMax(pqueue.WithInitial(3, 1, 6, 7))
	h.Push(9)
	assert.Equal(t, []int{9, 7, 6, 3, 1}, h.Sorted())
}

func TestHeap_PopRoundTripNonDecreasing(t *testing.T) {
	// n PopRoot calls on an n-element min-heap yield a non-decreasing
	// sequence and leave the heap empty.
	r := rand.New(rand.NewSource(42))
	h := pqueue.NewMin[int]()
	const n = 500
	for i := 0; i < n; i++ {
		h.Push(r.Intn(100))
	}

	prev := -1
	for i := 0; i < n; i++ {
		v, ok := h.PopRoot()
		require.True(t, ok, "pop %d of %d", i+1, n)
		require.GreaterOrEqual(t, v, prev, "extraction order must be non-decreasing")
		prev = v
	}
	assert.True(t, h.IsEmpty())
}

func TestHeap_BulkHeapifyMatchesSort(t *testing.T) {
	// WithInitial's O(n) heapify must produce the same drain order as a
	// plain sort of the seed values.
	r := rand.New(rand.NewSource(7))
	seed := make([]int, 257)
	for i := range seed {
		seed[i] = r.Intn(1000)
	}
	h := pqueue.NewMin(pqueue.WithInitial(seed...))

	want := append([]int(nil), seed...)
	sort.Ints(want)
	assert.Equal(t, want, h.Sorted())
}

func TestHeap_RemoveAt(t *testing.T) {
	h := pqueue.NewMin(pqueue.WithInitial(1, 3, 2, 7, 4, 9, 5))

	// Out-of-range removal soft-fails.
	_, ok := h.RemoveAt(-1)
	assert.False(t, ok)
	_, ok = h.RemoveAt(h.Len())
	assert.False(t, ok)

	// Removing the root is equivalent to PopRoot.
	v, ok := h.RemoveAt(0)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Removing an interior slot must keep the remaining drain order sorted.
	_, ok = h.RemoveAt(2)
	require.True(t, ok)
	got := h.Sorted()
	require.Len(t, got, 5)
	assert.True(t, sort.IntsAreSorted(got), "drain order after RemoveAt: %v", got)
}

func TestHeap_RemoveAtLastSlotJustShrinks(t *testing.T) {
	h := pqueue.NewMin(pqueue.WithInitial(1, 2, 3))
	last := h.Len() - 1
	_, ok := h.RemoveAt(last)
	require.True(t, ok)
	assert.Equal(t, 2, h.Len())
	assert.True(t, sort.IntsAreSorted(h.Sorted()))
}

func TestHeap_ReplaceSiftsBothDirections(t *testing.T) {
	h := pqueue.NewMin(pqueue.WithInitial(1, 5, 2, 8, 6, 4, 3))

	// Replacing an interior element with top priority must surface it.
	h.Replace(3, 0) // outranks the old value → sift up
	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 0, top)

	// Replacing the root with a low-priority value must sink it.
	h.Replace(0, 99) // outranked by the old value → sift down
	got := h.Sorted()
	assert.True(t, sort.IntsAreSorted(got), "drain order after Replace: %v", got)
	assert.Equal(t, 99, got[len(got)-1])
}

func TestHeap_Contains(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	h := pqueue.NewMin(pqueue.WithInitial(4, 8, 15))
	assert.True(t, h.Contains(8, eq))
	assert.False(t, h.Contains(16, eq))
}

func TestHeap_CustomPredicateStruct(t *testing.T) {
	// The predicate is first-class: order tasks by deadline, earliest out.
	type task struct {
		name     string
		deadline int
	}
	h := pqueue.New(func(a, b task) bool { return a.deadline < b.deadline })
	h.Push(task{"ship", 30})
	h.Push(task{"review", 10})
	h.Push(task{"design", 20})

	order := make([]string, 0, 3)
	for {
		v, ok := h.PopRoot()
		if !ok {
			break
		}
		order = append(order, v.name)
	}
	assert.Equal(t, []string{"review", "design", "ship"}, order)
}
