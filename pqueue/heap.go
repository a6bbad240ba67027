// Package pqueue implements the binary heap operations: push, pop,
// arbitrary-index removal and replacement, and ordered drain.
//
// Index arithmetic for the implicit tree stored in h.items:
//
//	parent(i) = (i-1)/2
//	left(i)   = 2i+1
//	right(i)  = 2i+2
package pqueue

// Len returns the number of stored elements. Complexity: O(1).
func (h *Heap[T]) Len() int { return h.items.Len() }

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool { return h.items.IsEmpty() }

// Peek returns the root (the element no other stored element outranks)
// without removing it. Returns (zero, false) on an empty heap (soft-fail
// contract). Complexity: O(1).
func (h *Heap[T]) Peek() (T, bool) {
	if h.items.IsEmpty() {
		var zero T
		return zero, false
	}

	return h.items.At(0), true
}

// Push inserts value, appending it to the last slot and sifting it up
// until its parent outranks it. Complexity: O(log n) amortized (the append
// may grow the backing buffer).
func (h *Heap[T]) Push(value T) {
	h.items.Append(value)
	h.siftUp(h.items.Len() - 1)
}

// PopRoot removes and returns the root. Returns (zero, false) on an empty
// heap (soft-fail contract). With one element the heap simply empties;
// otherwise the last element is swapped into the root slot, storage
// shrinks by one, and the relocated element sifts down.
// Complexity: O(log n).
func (h *Heap[T]) PopRoot() (T, bool) {
	n := h.items.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	if n == 1 {
		return h.items.RemoveLast(), true
	}

	root := h.items.At(0)
	h.items.Set(0, h.items.RemoveLast()) // last element takes the root slot
	h.siftDown(0)

	return root, true
}

// RemoveAt removes and returns the element at index i. Out-of-range
// indices return (zero, false) rather than failing (soft-fail contract —
// the deliberate opposite of vec's hard-fail policy). When i is not the
// last slot, the last element is swapped in and sifted both up and down:
// only one direction actually moves it, but both must be attempted since
// the relocated value's order against its new parent and children is
// unknown. Complexity: O(log n).
func (h *Heap[T]) RemoveAt(i int) (T, bool) {
	if i < 0 || i >= h.items.Len() {
		var zero T
		return zero, false
	}

	last := h.items.Len() - 1
	if i == last {
		return h.items.RemoveLast(), true
	}

	removed := h.items.At(i)
	h.items.Set(i, h.items.RemoveLast())
	h.siftUp(i)
	h.siftDown(i)

	return removed, true
}

// Replace overwrites the element at index i with value and repairs the
// heap: sift up if the new value outranks the old one, otherwise sift
// down. Out-of-range indices are a no-op (soft-fail contract).
// Complexity: O(log n).
func (h *Heap[T]) Replace(i int, value T) {
	if i < 0 || i >= h.items.Len() {
		return
	}

	old := h.items.At(i)
	h.items.Set(i, value)
	if h.higherPriority(value, old) {
		h.siftUp(i)
	} else {
		h.siftDown(i)
	}
}

// Contains reports whether any stored element equals value under eq.
// Linear scan over the backing buffer; heap order does not speed up
// equality search. Complexity: O(n).
func (h *Heap[T]) Contains(value T, eq Equal[T]) bool {
	for i := 0; i < h.items.Len(); i++ {
		if eq(h.items.At(i), value) {
			return true
		}
	}

	return false
}

// Clone returns an independent heap sharing the predicate but not the
// storage. Complexity: O(n).
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		items:          h.items.Clone(),
		higherPriority: h.higherPriority,
	}
}

// Sorted drains a private clone via repeated PopRoot and returns the
// values in priority order (ascending for a min-heap, descending for a
// max-heap). The receiver is unmodified. Complexity: O(n log n).
func (h *Heap[T]) Sorted() []T {
	scratch := h.Clone()
	out := make([]T, 0, h.items.Len())
	for {
		value, ok := scratch.PopRoot()
		if !ok {
			break
		}
		out = append(out, value)
	}

	return out
}

// heapify repairs arbitrary storage into a valid heap by sifting down
// every parent, from the last parent index toward the root. Total work is
// O(n): most nodes sit near the leaves where sift distance is short.
func (h *Heap[T]) heapify() {
	for i := h.items.Len()/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// siftUp moves the element at index i toward the root while it outranks
// its parent. Implemented as hole propagation: parents shift down into
// the hole and the element is written exactly once at its final slot,
// avoiding the redundant second write of a swap chain.
func (h *Heap[T]) siftUp(i int) {
	value := h.items.At(i)
	for i > 0 {
		parent := (i - 1) / 2
		if !h.higherPriority(value, h.items.At(parent)) {
			break
		}
		h.items.Set(i, h.items.At(parent)) // parent drops into the hole
		i = parent
	}
	h.items.Set(i, value)
}

// siftDown moves the element at index i toward the leaves while a child
// outranks it. At each step the top-priority of {node, left, right} wins
// the slot; left is examined before right, so on a left/right tie the
// left child advances, and the node itself yields only to a child that
// strictly outranks it under the predicate.
func (h *Heap[T]) siftDown(i int) {
	n := h.items.Len()
	for {
		top := i
		if left := 2*i + 1; left < n && h.higherPriority(h.items.At(left), h.items.At(top)) {
			top = left
		}
		if right := 2*i + 2; right < n && h.higherPriority(h.items.At(right), h.items.At(top)) {
			top = right
		}
		if top == i {
			return // neither child outranks the node
		}
		h.items.Swap(i, top)
		i = top
	}
}
