package bvtree

// refitFrom recomputes bounds and subtree size for i and every ancestor
// up to the root. There is no early exit: even when an ancestor's bounds
// already contain the change, its subtree size still moved, so the walk
// always reaches the root.
func (t *Tree[T]) refitFrom(i int) {
	for ; i != nilIndex; i = t.arena.nodes[i].parent {
		n := &t.arena.nodes[i]
		left := &t.arena.nodes[n.left]
		right := &t.arena.nodes[n.right]
		n.bounds = left.bounds.Union(right.bounds)
		n.subtreeSize = 1 + left.subtreeSize + right.subtreeSize
	}
}
