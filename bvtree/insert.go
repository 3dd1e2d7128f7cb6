package bvtree

import (
	"github.com/tanglebrook/go-boundstree/aabb"
)

// Insert adds an entry mapping key to bounds. If the key already has an
// entry, the old entry is discarded first, so insertion doubles as
// replacement and the key count never exceeds one per key.
//
// Returns ErrInvalidBounds, before any mutation, if bounds is inverted.
func (t *Tree[T]) Insert(key T, bounds aabb.Box) error {
	if !bounds.IsValid() {
		return ErrInvalidBounds
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if prior, ok := t.leaves[key]; ok {
		t.removeLeaf(key, prior)
	}
	t.insertLeaf(key, bounds)
	return nil
}

// insertLeaf allocates a leaf for key and links it into the tree. Caller
// holds the write lock and has ensured key is not present.
func (t *Tree[T]) insertLeaf(key T, bounds aabb.Box) {
	leaf := t.arena.alloc(leafNode(key, bounds))
	t.leaves[key] = leaf
	t.count++

	if t.root == nilIndex {
		t.root = leaf
		t.arena.nodes[leaf].parent = nilIndex
		return
	}

	// Pair the new leaf with an existing one: a fresh internal node takes
	// the sibling's place and adopts both.
	sibling := t.chooseSibling(bounds)
	grand := t.arena.nodes[sibling].parent

	parent := t.arena.alloc(node[T]{
		bounds:      t.arena.nodes[sibling].bounds.Union(bounds),
		parent:      grand,
		left:        sibling,
		right:       leaf,
		subtreeSize: 1 + t.arena.nodes[sibling].subtreeSize,
	})
	t.arena.nodes[sibling].parent = parent
	t.arena.nodes[leaf].parent = parent

	if grand == nilIndex {
		t.root = parent
	} else {
		g := &t.arena.nodes[grand]
		if g.left == sibling {
			g.left = parent
		} else {
			g.right = parent
		}
		t.refitFrom(grand)
	}
}

// chooseSibling walks from the root to the leaf the new box should pair
// with. At each internal node it descends into the child that is cheaper
// to enlarge around bounds; when the enlargements are close enough to be
// a tie it descends into the smaller subtree, so ties never pile entries
// down one branch.
func (t *Tree[T]) chooseSibling(bounds aabb.Box) int {
	i := t.root
	for !t.arena.nodes[i].leaf {
		n := &t.arena.nodes[i]
		left := &t.arena.nodes[n.left]
		right := &t.arena.nodes[n.right]

		costLeft := enlargement(left.bounds, bounds)
		costRight := enlargement(right.bounds, bounds)

		switch {
		case costsTied(costLeft, costRight):
			if left.subtreeSize <= right.subtreeSize {
				i = n.left
			} else {
				i = n.right
			}
		case costLeft < costRight:
			i = n.left
		default:
			i = n.right
		}
	}
	return i
}
