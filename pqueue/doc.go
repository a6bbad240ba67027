// Package pqueue provides a generic array-backed binary heap (priority
// queue) ordered by a caller-supplied predicate.
//
// Overview:
//
//   - Heap[T] stores an implicit complete binary tree in a growable buffer
//     (vec.Vec): the children of index i live at 2i+1 and 2i+2, its parent
//     at (i-1)/2. The heap invariant is that no child outranks its parent
//     under the ordering predicate.
//   - The predicate higherPriority(a, b) means "a must come out before b"
//     and must be a strict weak ordering. Min-heap: a < b. Max-heap: a > b.
//     It is a first-class value fixed at construction — there are no
//     separate min/max implementations, only NewMin/NewMax convenience
//     constructors for ordered element types.
//
// Key features:
//
//   - Push / Peek / PopRoot with the classic O(log n) sift repairs.
//   - RemoveAt and Replace at an arbitrary index: the relocated element is
//     sifted both up and down, since its order relative to its new parent
//     and children is unknown until checked.
//   - WithInitial bulk construction heapifies in O(n) by sifting down from
//     the last parent index toward the root.
//   - Sorted drains a private clone via repeated PopRoot, returning values
//     in priority order and leaving the receiver untouched.
//
// Failure policy (soft-fail):
//
//   - Peek/PopRoot on an empty heap and RemoveAt with an out-of-range index
//     return (zero, false); Replace out of range is a no-op. This is a
//     deliberately permissive contract, distinct from vec's hard-fail
//     bounds policy — document-level asymmetry, not an accident.
//
// Complexity:
//
//   - Push, PopRoot, RemoveAt, Replace: O(log n) (Push amortized over
//     buffer growth). Peek, Len, IsEmpty: O(1). Contains: O(n).
//     Sorted: O(n log n). WithInitial heapify: O(n).
//
// Concurrency:
//
//   - None. Heap is single-threaded by contract; synchronize externally.
//
// Example usage:
//
//	h := pqueue.NewMin[int]()
//	h.Push(10)
//	h.Push(4)
//	h.Push(15)
//	h.Push(1)
//	fmt.Println(h.Sorted()) // [1 4 10 15]
package pqueue
