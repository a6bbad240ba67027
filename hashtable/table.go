// Package hashtable implements the Table operations: insert with
// overwrite, lookup, removal, and the load-factor driven full rehash.
package hashtable

// Len returns the number of stored entries. Complexity: O(1).
func (t *Table[K, V]) Len() int { return t.count }

// BucketCount returns the current size of the bucket array. Useful for
// observing resize behavior; the value changes only through rehashing.
// Complexity: O(1).
func (t *Table[K, V]) BucketCount() int { return len(t.buckets) }

// Set inserts key → value. If the key is already present its value is
// overwritten in place and the size does not change; otherwise a new
// entry is appended to the key's bucket chain. A fresh insert that pushes
// count/bucketCount over the load factor triggers a full resize.
// Complexity: O(1) amortized.
func (t *Table[K, V]) Set(key K, value V) {
	idx := t.bucketIndex(key, len(t.buckets))
	chain := t.buckets[idx]

	// Linear scan of the chain: overwrite an existing equal key in place.
	for i := range chain {
		if chain[i].key == key {
			chain[i].value = value
			return
		}
	}

	t.buckets[idx] = append(chain, entry[K, V]{key: key, value: value})
	t.count++

	if float64(t.count)/float64(len(t.buckets)) > t.loadFactor {
		t.resize()
	}
}

// Get returns the value stored under key, or (zero, false) if the key is
// absent (soft-fail contract). Complexity: O(1) amortized.
func (t *Table[K, V]) Get(key K) (V, bool) {
	chain := t.buckets[t.bucketIndex(key, len(t.buckets))]
	for i := range chain {
		if chain[i].key == key {
			return chain[i].value, true
		}
	}

	var zero V
	return zero, false
}

// Contains reports whether key is present. Complexity: O(1) amortized.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// Remove deletes the entry stored under key and returns its value, or
// (zero, false) if the key is absent (soft-fail contract).
// Complexity: O(1) amortized.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	idx := t.bucketIndex(key, len(t.buckets))
	chain := t.buckets[idx]
	for i := range chain {
		if chain[i].key != key {
			continue
		}

		removed := chain[i].value
		last := len(chain) - 1
		chain[i] = chain[last] // order within a chain carries no meaning
		t.buckets[idx] = chain[:last]
		t.count--

		return removed, true
	}

	var zero V
	return zero, false
}

// Keys returns every stored key. Order is unspecified (bucket order).
// Complexity: O(n + bucketCount).
func (t *Table[K, V]) Keys() []K {
	out := make([]K, 0, t.count)
	for _, chain := range t.buckets {
		for i := range chain {
			out = append(out, chain[i].key)
		}
	}

	return out
}

// resize doubles the bucket count and reinserts every live entry under
// the new modulus. Entries are moved as-is; the counter stays valid
// because only placement changes, never membership.
// Complexity: O(n + bucketCount).
func (t *Table[K, V]) resize() {
	grown := make([][]entry[K, V], len(t.buckets)*2)
	for _, chain := range t.buckets {
		for _, e := range chain {
			idx := t.bucketIndex(e.key, len(grown))
			grown[idx] = append(grown[idx], e)
		}
	}
	t.buckets = grown
}

// bucketIndex places key into one of n buckets. The uint64 hash keeps the
// modulus non-negative by construction.
func (t *Table[K, V]) bucketIndex(key K, n int) int {
	return int(t.hash(key) % uint64(n))
}
