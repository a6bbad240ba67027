// Package hashtable provides a from-scratch chained hash table with
// dynamic, load-factor driven rehashing.
//
// Overview:
//
//   - Table[K, V] maps keys to values through an explicit bucket array:
//     bucket index = hash(key) mod bucketCount, collisions resolved by
//     chaining (a short entry list per bucket), never by open addressing.
//   - The hash is a first-class value supplied at construction, because Go
//     does not expose the built-in map hash. StringHasher and IntHasher
//     (seeded hash/maphash) cover the common key types.
//   - When count/bucketCount exceeds the load factor (default 0.75) after
//     an insert, the table doubles its bucket count and reinserts every
//     live entry: bucket placement depends on "mod bucketCount", so a full
//     rehash is the only correct resize. Entries are moved into the fresh
//     bucket array, not recreated, so nothing is double-counted or lost
//     and every stored value survives the move.
//
// Silent correctness precondition:
//
//   - Equal keys MUST hash equally. The type system cannot enforce this;
//     a hasher that violates it strands entries in unreachable buckets.
//
// Failure policy (soft-fail):
//
//   - Get/Remove on an absent key return (zero, false); no operation
//     fails for an algorithmic reason.
//
// Hash normalization:
//
//   - Hashers return uint64 and the bucket index is computed with unsigned
//     arithmetic, so the "negative hash code" normalization required of
//     signed-hash implementations is discharged structurally.
//
// Complexity:
//
//   - Set/Get/Remove/Contains: O(1) amortized (O(n) during a resize pass).
//
// Concurrency:
//
//   - None. Table is single-threaded by contract; synchronize externally.
//
// Example usage:
//
//	t := hashtable.New[string, int](hashtable.StringHasher())
//	t.Set("answer", 42)
//	v, ok := t.Get("answer") // 42, true
package hashtable
