package bvtree

import "fmt"

// Validate walks the whole tree and checks every structural invariant:
// parent and child links agree in both directions, internal nodes have
// exactly two children and leaves none, every internal box is the exact
// union of its children's, subtree sizes satisfy 1+left+right, and the
// set of reachable leaves is exactly the set of keys in the index. It
// returns a descriptive error for the first violation found.
//
// The scan is O(n); it exists for tests and for callers that want to
// assert on the structure after a batch of mutations.
func (t *Tree[T]) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nilIndex {
		if t.count != 0 {
			return fmt.Errorf("empty tree has count %d", t.count)
		}
		if len(t.leaves) != 0 {
			return fmt.Errorf("empty tree has %d indexed keys", len(t.leaves))
		}
		if live := t.arena.live(); live != 0 {
			return fmt.Errorf("empty tree holds %d live arena slots", live)
		}
		return nil
	}

	if p := t.arena.nodes[t.root].parent; p != nilIndex {
		return fmt.Errorf("root %d has parent %d", t.root, p)
	}

	leaves := 0
	internal := 0
	if err := t.check(t.root, &leaves, &internal); err != nil {
		return err
	}

	if leaves != t.count {
		return fmt.Errorf("tree reaches %d leaves but count is %d", leaves, t.count)
	}
	if len(t.leaves) != t.count {
		return fmt.Errorf("key index holds %d keys but count is %d", len(t.leaves), t.count)
	}
	if live := t.arena.live(); live != leaves+internal {
		return fmt.Errorf("arena holds %d live slots for %d reachable nodes", live, leaves+internal)
	}
	return nil
}

func (t *Tree[T]) check(i int, leaves, internal *int) error {
	n := &t.arena.nodes[i]

	if n.leaf {
		if n.left != nilIndex || n.right != nilIndex {
			return fmt.Errorf("leaf %d has children %d,%d", i, n.left, n.right)
		}
		if n.subtreeSize != 0 {
			return fmt.Errorf("leaf %d has subtree size %d", i, n.subtreeSize)
		}
		if indexed, ok := t.leaves[n.value]; !ok || indexed != i {
			return fmt.Errorf("leaf %d for key %v is indexed as %d", i, n.value, indexed)
		}
		*leaves++
		return nil
	}

	if n.left == nilIndex || n.right == nilIndex {
		return fmt.Errorf("internal node %d has children %d,%d", i, n.left, n.right)
	}
	left := &t.arena.nodes[n.left]
	right := &t.arena.nodes[n.right]
	if left.parent != i {
		return fmt.Errorf("node %d is left child of %d but names parent %d", n.left, i, left.parent)
	}
	if right.parent != i {
		return fmt.Errorf("node %d is right child of %d but names parent %d", n.right, i, right.parent)
	}
	if want := left.bounds.Union(right.bounds); n.bounds != want {
		return fmt.Errorf("internal node %d bounds %v differ from children's union %v", i, n.bounds, want)
	}
	if want := 1 + left.subtreeSize + right.subtreeSize; n.subtreeSize != want {
		return fmt.Errorf("internal node %d subtree size %d, want %d", i, n.subtreeSize, want)
	}
	*internal++

	if err := t.check(n.left, leaves, internal); err != nil {
		return err
	}
	return t.check(n.right, leaves, internal)
}

// MaxDepth returns the number of edges on the longest root-to-leaf path.
// An empty tree and a single-leaf tree both report zero.
func (t *Tree[T]) MaxDepth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nilIndex {
		return 0
	}
	return t.depth(t.root)
}

func (t *Tree[T]) depth(i int) int {
	n := &t.arena.nodes[i]
	if n.leaf {
		return 0
	}
	left := t.depth(n.left)
	right := t.depth(n.right)
	if left > right {
		return 1 + left
	}
	return 1 + right
}
