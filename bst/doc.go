// Package bst provides a binary search tree over any ordered value type,
// with recursive insert, search, and delete.
//
// Overview:
//
//   - Tree[T] keeps the classic ordering invariant at every node: all
//     values in the left subtree are strictly smaller, all values in the
//     right subtree are greater or equal. Duplicates route right by
//     convention — this affects where repeated inserts land, not whether
//     Contains finds them.
//   - Every node exclusively owns its children; the structure is a strict
//     hierarchy with no back references, so the recursive algorithms
//     reconstruct the parent chain on the way down.
//   - Delete's hard case (two children) copies the in-order successor —
//     the leftmost value of the right subtree — into the doomed node, then
//     deletes the successor from the right subtree, where it has at most
//     one child and falls into the simple cases.
//
// Failure policy (soft-fail):
//
//   - Remove of an absent value is a no-op reported via its bool return;
//     Min/Max on an empty tree return (zero, false).
//
// Complexity:
//
//   - Insert/Contains/Remove: O(h) where h is the tree height (O(log n)
//     balanced, O(n) degenerate — the tree does not self-balance).
//     InOrder: O(n).
//
// Concurrency:
//
//   - None. Tree is single-threaded by contract; synchronize externally.
//
// Example usage:
//
//	t := bst.New[int]()
//	t.Insert(5)
//	t.Insert(2)
//	t.Insert(8)
//	fmt.Println(t.InOrder()) // [2 5 8]
package bst
