// Package hashtable defines the Table type, the Hasher contract, the
// construction options, and their sentinel errors.
package hashtable

import (
	"encoding/binary"
	"errors"
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for hashtable construction. Options panic with these
// messages on invalid configuration, mirroring the library-wide policy of
// failing fast on programmer error while keeping runtime operations
// soft-failing.
var (
	// ErrNilHasher indicates New was called without a hash function.
	ErrNilHasher = errors.New("hashtable: hasher must not be nil")

	// ErrBadBucketCount indicates WithBucketCount received a non-positive count.
	ErrBadBucketCount = errors.New("hashtable: bucket count must be positive")

	// ErrBadLoadFactor indicates WithLoadFactor received a threshold outside (0, 1].
	ErrBadLoadFactor = errors.New("hashtable: load factor must be in (0, 1]")
)

// defaultBucketCount is the initial size of the bucket array.
const defaultBucketCount = 16

// defaultLoadFactor is the count/bucketCount threshold that triggers a resize.
const defaultLoadFactor = 0.75

// Hasher maps a key to a 64-bit hash. Equal keys must produce equal
// hashes; see the package documentation for why this contract cannot be
// enforced by the type system.
type Hasher[K any] func(K) uint64

// seed is the process-wide maphash seed shared by the provided hashers,
// so the same key hashes identically across tables within one process.
var seed = maphash.MakeSeed()

// StringHasher returns a Hasher for string keys backed by hash/maphash.
func StringHasher() Hasher[string] {
	return func(k string) uint64 { return maphash.String(seed, k) }
}

// IntHasher returns a Hasher for any integer key type backed by
// hash/maphash over the key's 64-bit little-endian encoding.
func IntHasher[K constraints.Integer]() Hasher[K] {
	return func(k K) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(k))

		return maphash.Bytes(seed, buf[:])
	}
}

// entry is one (key, value) pair stored in a bucket chain.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Option configures a Table during construction.
type Option[K comparable, V any] func(*Table[K, V])

// WithBucketCount sets the initial bucket count.
// Panics with ErrBadBucketCount if n <= 0.
func WithBucketCount[K comparable, V any](n int) Option[K, V] {
	return func(t *Table[K, V]) {
		if n <= 0 {
			panic(ErrBadBucketCount.Error())
		}
		t.buckets = make([][]entry[K, V], n)
	}
}

// WithLoadFactor sets the count/bucketCount threshold beyond which the
// table resizes. Panics with ErrBadLoadFactor unless 0 < f <= 1.
func WithLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(t *Table[K, V]) {
		if f <= 0 || f > 1 {
			panic(ErrBadLoadFactor.Error())
		}
		t.loadFactor = f
	}
}

// Table is a bucketed hash table over comparable keys. Construct with
// New; the zero value has no hasher and is not usable.
type Table[K comparable, V any] struct {
	buckets    [][]entry[K, V] // chain per bucket; index = hash mod len(buckets)
	count      int             // live entries across all buckets
	loadFactor float64
	hash       Hasher[K]
}

// New returns an empty Table using hash for bucket placement.
// Defaults: 16 buckets, load factor 0.75. Options are applied in order.
// Panics with ErrNilHasher if hash is nil.
// Complexity: O(bucketCount).
func New[K comparable, V any](hash Hasher[K], opts ...Option[K, V]) *Table[K, V] {
	if hash == nil {
		panic(ErrNilHasher.Error())
	}

	t := &Table[K, V]{
		buckets:    make([][]entry[K, V], defaultBucketCount),
		loadFactor: defaultLoadFactor,
		hash:       hash,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}
