package bvtree

import (
	"github.com/tanglebrook/go-boundstree/aabb"
)

// Update moves the entry for key to bounds. The entry is removed and
// re-inserted from scratch rather than refit in place, so its position in
// the tree is always one the cost walk would choose for the new box, no
// matter how far the entry moved. Both steps happen under one lock
// acquisition; concurrent readers see either the old entry or the new
// one, never neither.
//
// Returns ErrInvalidBounds for an inverted box and ErrKeyNotFound for an
// absent key; in both cases the tree is unchanged.
func (t *Tree[T]) Update(key T, bounds aabb.Box) error {
	if !bounds.IsValid() {
		return ErrInvalidBounds
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	leaf, ok := t.leaves[key]
	if !ok {
		return ErrKeyNotFound
	}
	t.removeLeaf(key, leaf)
	t.insertLeaf(key, bounds)
	return nil
}
