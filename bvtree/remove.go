package bvtree

// Remove deletes the entry for key. Removing a key with no entry returns
// ErrKeyNotFound.
func (t *Tree[T]) Remove(key T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	leaf, ok := t.leaves[key]
	if !ok {
		return ErrKeyNotFound
	}
	t.removeLeaf(key, leaf)
	return nil
}

// removeLeaf unlinks leaf and collapses its parent into the sibling.
// Caller holds the write lock; leaf must be the live entry for key.
func (t *Tree[T]) removeLeaf(key T, leaf int) {
	delete(t.leaves, key)
	t.count--

	parent := t.arena.nodes[leaf].parent
	t.arena.release(leaf)

	if parent == nilIndex {
		// The leaf was the root.
		t.root = nilIndex
		return
	}

	p := t.arena.nodes[parent]
	sibling := p.left
	if sibling == leaf {
		sibling = p.right
	}
	grand := p.parent
	t.arena.release(parent)

	t.arena.nodes[sibling].parent = grand
	if grand == nilIndex {
		t.root = sibling
		return
	}
	g := &t.arena.nodes[grand]
	if g.left == parent {
		g.left = sibling
	} else {
		g.right = sibling
	}
	t.refitFrom(grand)
}
