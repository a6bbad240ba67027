package bst

import "golang.org/x/exp/constraints"

// node is a tree node owning its two optional children.
type node[T constraints.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree over an ordered value type.
// The zero value is an empty, ready-to-use tree; New is provided for
// symmetry with the other containers.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// New returns an empty Tree. Complexity: O(1).
func New[T constraints.Ordered]() *Tree[T] { return &Tree[T]{} }

// Len returns the number of stored values. Complexity: O(1).
func (t *Tree[T]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no values. Complexity: O(1).
func (t *Tree[T]) IsEmpty() bool { return t.size == 0 }

// Insert adds value via recursive descent. Values smaller than a node go
// left; greater or equal values go right (duplicates route right).
// Complexity: O(h).
func (t *Tree[T]) Insert(value T) {
	t.root = insert(t.root, value)
	t.size++
}

func insert[T constraints.Ordered](n *node[T], value T) *node[T] {
	if n == nil {
		return &node[T]{value: value}
	}
	if value < n.value {
		n.left = insert(n.left, value)
	} else {
		n.right = insert(n.right, value)
	}

	return n
}

// Contains reports whether value is stored. Complexity: O(h).
func (t *Tree[T]) Contains(value T) bool {
	n := t.root
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Remove deletes one occurrence of value and reports whether anything was
// removed; an absent value is a no-op (soft-fail contract).
//
// The two-children case copies the in-order successor's value into the
// node and then deletes the successor from the right subtree, which has
// at most one child there and resolves through the simple cases.
// Complexity: O(h).
func (t *Tree[T]) Remove(value T) bool {
	var removed bool
	t.root, removed = remove(t.root, value)
	if removed {
		t.size--
	}

	return removed
}

func remove[T constraints.Ordered](n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case value < n.value:
		n.left, removed = remove(n.left, value)
	case value > n.value:
		n.right, removed = remove(n.right, value)
	default:
		// Zero or one child: splice the node out.
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}

		// Two children: lift the in-order successor, then delete it below.
		successor := leftmost(n.right)
		n.value = successor
		n.right, _ = remove(n.right, successor)

		return n, true
	}

	return n, removed
}

// leftmost returns the smallest value in the subtree rooted at n.
func leftmost[T constraints.Ordered](n *node[T]) T {
	for n.left != nil {
		n = n.left
	}

	return n.value
}

// Min returns the smallest stored value, or (zero, false) on an empty
// tree (soft-fail contract). Complexity: O(h).
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	return leftmost(t.root), true
}

// Max returns the largest stored value, or (zero, false) on an empty
// tree (soft-fail contract). Complexity: O(h).
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, true
}

// InOrder exports every stored value in non-decreasing order — the
// ordering invariant makes the in-order walk the sorted sequence.
// Complexity: O(n).
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.value)
		walk(n.right)
	}
	walk(t.root)

	return out
}
