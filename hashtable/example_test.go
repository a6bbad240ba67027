// Package hashtable_test provides runnable examples for the hash table.
package hashtable_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/hashtable"
)

// ExampleNew demonstrates the basic insert/lookup/remove cycle.
// Complexity: O(1) amortized per operation.
func ExampleNew() {
	// 1) Build a table over string keys with the provided maphash hasher.
	ages := hashtable.New[string, int](hashtable.StringHasher())

	// 2) Insert a few entries; a repeated key overwrites in place.
	ages.Set("ada", 36)
	ages.Set("alan", 41)
	ages.Set("ada", 37)

	// 3) Lookups soft-fail with ok=false for absent keys.
	v, ok := ages.Get("ada")
	fmt.Println("ada:", v, ok)
	_, ok = ages.Get("grace")
	fmt.Println("grace present:", ok)
	fmt.Println("entries:", ages.Len())
	// Output:
	// ada: 37 true
	// grace present: false
	// entries: 2
}
