// Package pqueue defines the Heap type, its ordering predicate, and the
// construction options.
package pqueue

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlds/vec"
)

// Predicate reports whether a must come out of the heap before b.
// It must define a strict weak ordering over the element type:
// irreflexive, transitive, with transitive incomparability.
// For a min-heap over ordered values use "a < b"; for a max-heap "a > b".
type Predicate[T any] func(a, b T) bool

// Equal reports whether two elements are the same value. Used by Contains,
// which cannot rely on the ordering predicate alone (incomparable-equal
// elements are still distinct values).
type Equal[T any] func(a, b T) bool

// Option configures a Heap during construction.
type Option[T any] func(*Heap[T])

// WithCapacity pre-allocates storage for at least n elements.
// Non-positive values are ignored, as is any capacity below the number of
// elements already seeded by an earlier option.
func WithCapacity[T any](n int) Option[T] {
	return func(h *Heap[T]) {
		if n <= h.items.Len() {
			return
		}
		grown := vec.New[T](n)
		for i := 0; i < h.items.Len(); i++ {
			grown.Append(h.items.At(i))
		}
		h.items = grown
	}
}

// WithInitial seeds the heap with the given values and heapifies them in
// O(n) (sift-down from the last parent index toward the root), which beats
// n individual Push calls. The values are copied; the caller's slice is
// not retained.
func WithInitial[T any](values ...T) Option[T] {
	return func(h *Heap[T]) {
		for _, value := range values {
			h.items.Append(value)
		}
	}
}

// Heap is an array-backed binary heap ordered by a caller-supplied
// Predicate. Construct with New, NewMin, or NewMax; the zero value has no
// predicate and is not usable.
type Heap[T any] struct {
	items          *vec.Vec[T] // implicit complete binary tree
	higherPriority Predicate[T]
}

// New returns an empty Heap ordered by higherPriority.
// Options are applied in order; WithInitial triggers an O(n) heapify after
// all options ran.
// Complexity: O(1) without options, O(n) with WithInitial.
func New[T any](higherPriority Predicate[T], opts ...Option[T]) *Heap[T] {
	h := &Heap[T]{
		items:          vec.New[T](0),
		higherPriority: higherPriority,
	}
	for _, opt := range opts {
		opt(h)
	}

	// Bulk-seeded storage must be repaired into a valid heap.
	if h.items.Len() > 1 {
		h.heapify()
	}

	return h
}

// NewMin returns a min-heap over an ordered element type: PopRoot yields
// values in ascending order.
func NewMin[T constraints.Ordered](opts ...Option[T]) *Heap[T] {
	return New[T](func(a, b T) bool { return a < b }, opts...)
}

// NewMax returns a max-heap over an ordered element type: PopRoot yields
// values in descending order.
func NewMax[T constraints.Ordered](opts ...Option[T]) *Heap[T] {
	return New[T](func(a, b T) bool { return a > b }, opts...)
}
