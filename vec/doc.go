// Package vec provides Vec, a minimal growable buffer: contiguous,
// index-addressable storage with amortized O(1) append and doubling growth.
//
// Overview:
//
//   - Vec is the storage collaborator the other lvlds containers build on
//     (pqueue keeps its heap in a Vec). It is deliberately small: append,
//     indexed read/write, positional insert/remove, swap, and export.
//   - Growth doubles the capacity starting from a small initial allocation,
//     so n appends cost O(n) total moves.
//
// Failure policy (hard-fail):
//
//   - Unlike the soft optional-return contract of pqueue and hashtable,
//     Vec treats an out-of-range index as a fatal precondition violation
//     and panics, exactly like indexing a built-in slice. Callers are
//     expected to stay within [0, Len()). The asymmetry between the two
//     policies is deliberate; each operation documents which one it obeys.
//
// Identity caveat:
//
//   - Growth reallocates the backing array. Never retain pointers into a
//     Vec's storage across mutating calls.
//
// Complexity:
//
//   - Append: O(1) amortized; At/Set/Swap: O(1); Insert/RemoveAt: O(n).
//
// Concurrency:
//
//   - None. Vec is single-threaded by contract; synchronize externally.
package vec
