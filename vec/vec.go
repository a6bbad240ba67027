package vec

import "fmt"

// initialCapacity is the allocation size of the first growth step.
const initialCapacity = 4

// Vec is a growable, index-addressable buffer of T.
//
// The zero value is ready to use. Out-of-range indices panic (hard-fail
// policy, see package doc); every other operation is total.
type Vec[T any] struct {
	items []T
}

// New returns an empty Vec with capacity for at least capacity elements.
// A non-positive capacity yields the default initial allocation.
// Complexity: O(1).
func New[T any](capacity int) *Vec[T] {
	if capacity <= 0 {
		capacity = initialCapacity
	}

	return &Vec[T]{items: make([]T, 0, capacity)}
}

// Of returns a Vec holding the given values in order.
// The values are copied; the caller's slice is not retained.
// Complexity: O(n).
func Of[T any](values ...T) *Vec[T] {
	v := New[T](len(values))
	v.items = append(v.items, values...)

	return v
}

// Len returns the number of stored elements. Complexity: O(1).
func (v *Vec[T]) Len() int { return len(v.items) }

// Cap returns the current capacity of the backing array. Complexity: O(1).
func (v *Vec[T]) Cap() int { return cap(v.items) }

// IsEmpty reports whether the buffer holds no elements. Complexity: O(1).
func (v *Vec[T]) IsEmpty() bool { return len(v.items) == 0 }

// Append adds value after the last element, growing the backing array by
// doubling when full. Complexity: O(1) amortized.
func (v *Vec[T]) Append(value T) {
	v.grow(1)
	v.items = append(v.items, value)
}

// At returns the element at index i.
// Panics if i is out of range (hard-fail policy).
// Complexity: O(1).
func (v *Vec[T]) At(i int) T {
	v.mustContain(i)

	return v.items[i]
}

// Set overwrites the element at index i with value.
// Panics if i is out of range (hard-fail policy).
// Complexity: O(1).
func (v *Vec[T]) Set(i int, value T) {
	v.mustContain(i)
	v.items[i] = value
}

// Insert places value at index i, shifting elements [i, Len()) one slot
// right. i == Len() is allowed and behaves like Append.
// Panics if i < 0 or i > Len() (hard-fail policy).
// Complexity: O(n).
func (v *Vec[T]) Insert(i int, value T) {
	if i < 0 || i > len(v.items) {
		panic(outOfRange(i, len(v.items)))
	}
	v.grow(1)

	var zero T
	v.items = append(v.items, zero)  // extend by one slot
	copy(v.items[i+1:], v.items[i:]) // shift the tail right
	v.items[i] = value
}

// RemoveAt deletes and returns the element at index i, shifting the tail
// left to close the gap.
// Panics if i is out of range (hard-fail policy).
// Complexity: O(n).
func (v *Vec[T]) RemoveAt(i int) T {
	v.mustContain(i)

	removed := v.items[i]
	copy(v.items[i:], v.items[i+1:]) // shift the tail left

	var zero T
	last := len(v.items) - 1
	v.items[last] = zero // release the duplicated tail slot
	v.items = v.items[:last]

	return removed
}

// RemoveLast deletes and returns the final element.
// Panics if the buffer is empty (hard-fail policy).
// Complexity: O(1).
func (v *Vec[T]) RemoveLast() T {
	last := len(v.items) - 1
	v.mustContain(last)

	removed := v.items[last]

	var zero T
	v.items[last] = zero
	v.items = v.items[:last]

	return removed
}

// Swap exchanges the elements at indices i and j.
// Panics if either index is out of range (hard-fail policy).
// Complexity: O(1).
func (v *Vec[T]) Swap(i, j int) {
	v.mustContain(i)
	v.mustContain(j)
	v.items[i], v.items[j] = v.items[j], v.items[i]
}

// Clone returns an independent copy of the buffer. Complexity: O(n).
func (v *Vec[T]) Clone() *Vec[T] {
	out := New[T](len(v.items))
	out.items = append(out.items, v.items...)

	return out
}

// Values returns a copy of the stored elements in index order.
// Mutating the returned slice does not affect the buffer.
// Complexity: O(n).
func (v *Vec[T]) Values() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)

	return out
}

// grow ensures capacity for n more elements, doubling from the current
// capacity (or allocating initialCapacity when empty).
func (v *Vec[T]) grow(n int) {
	need := len(v.items) + n
	if need <= cap(v.items) {
		return
	}

	newCap := cap(v.items) * 2
	if newCap < initialCapacity {
		newCap = initialCapacity
	}
	for newCap < need {
		newCap *= 2
	}

	grown := make([]T, len(v.items), newCap)
	copy(grown, v.items)
	v.items = grown
}

// mustContain panics with an index-out-of-range message unless 0 <= i < Len().
func (v *Vec[T]) mustContain(i int) {
	if i < 0 || i >= len(v.items) {
		panic(outOfRange(i, len(v.items)))
	}
}

func outOfRange(i, n int) string {
	return fmt.Sprintf("vec: index %d out of range [0, %d)", i, n)
}
