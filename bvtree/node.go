package bvtree

import (
	"github.com/tanglebrook/go-boundstree/aabb"
)

// nilIndex marks an absent node reference: a missing child, the parent of
// the root, or the root of an empty tree.
const nilIndex = -1

// node is one arena slot.
//
// For a leaf, bounds is the stored box and value the caller's key. For an
// internal node, bounds is the union of both children's bounds and value
// is the zero value. subtreeSize counts the internal nodes in the subtree
// rooted here, itself included; leaves report zero.
type node[T comparable] struct {
	value       T
	bounds      aabb.Box
	parent      int
	left        int
	right       int
	leaf        bool
	subtreeSize int
}

// leafNode returns an unlinked leaf slot for key.
func leafNode[T comparable](key T, bounds aabb.Box) node[T] {
	return node[T]{
		value:  key,
		bounds: bounds,
		parent: nilIndex,
		left:   nilIndex,
		right:  nilIndex,
		leaf:   true,
	}
}

// freeSlot is the sentinel a released slot is reset to.
func freeSlot[T comparable]() node[T] {
	return node[T]{parent: nilIndex, left: nilIndex, right: nilIndex}
}

// isFree reports whether the slot holds the free sentinel. Live slots are
// either leaves or have both children set, so no extra flag is needed.
func (n *node[T]) isFree() bool {
	return !n.leaf && n.left == nilIndex && n.right == nilIndex
}
