package bvtree

import (
	"github.com/tanglebrook/go-boundstree/aabb"
)

// Query appends to results the key of every entry whose box intersects
// bounds and returns the extended slice. Touching boxes count as
// intersecting. An empty tree appends nothing. results may be nil.
func (t *Tree[T]) Query(bounds aabb.Box, results []T) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nilIndex {
		return results
	}
	return t.collect(t.root, bounds, results)
}

func (t *Tree[T]) collect(i int, bounds aabb.Box, results []T) []T {
	n := &t.arena.nodes[i]
	if !n.bounds.Intersects(bounds) {
		return results
	}
	if n.leaf {
		return append(results, n.value)
	}
	results = t.collect(n.left, bounds, results)
	return t.collect(n.right, bounds, results)
}

// QueryFunc calls visit for every entry whose box intersects bounds,
// passing the key and its stored box. When visit returns false the
// traversal stops immediately. visit must not mutate the tree; the read
// lock is held for the duration of the call.
func (t *Tree[T]) QueryFunc(bounds aabb.Box, visit func(key T, entry aabb.Box) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root == nilIndex {
		return
	}
	t.visit(t.root, bounds, visit)
}

func (t *Tree[T]) visit(i int, bounds aabb.Box, fn func(T, aabb.Box) bool) bool {
	n := &t.arena.nodes[i]
	if !n.bounds.Intersects(bounds) {
		return true
	}
	if n.leaf {
		return fn(n.value, n.bounds)
	}
	if !t.visit(n.left, bounds, fn) {
		return false
	}
	return t.visit(n.right, bounds, fn)
}
