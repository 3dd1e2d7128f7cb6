package bvtree

import "fmt"

// arena is an index stable pool of node slots. alloc hands out a slot
// index that remains valid until released; growth appends to the backing
// slice and never relocates existing slots, so indices stored inside other
// nodes stay good across any number of allocations.
type arena[T comparable] struct {
	nodes []node[T]
	free  []int
}

// alloc stores n in a recycled slot if one is available, otherwise in a
// fresh one, and returns its index.
func (a *arena[T]) alloc(n node[T]) int {
	if k := len(a.free) - 1; k >= 0 {
		i := a.free[k]
		a.free = a.free[:k]
		a.nodes[i] = n
		return i
	}
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// release resets slot i to the free sentinel and marks it reusable.
// Releasing an index that is out of range or already free means the
// caller's links are corrupt, so it panics rather than continuing.
func (a *arena[T]) release(i int) {
	if i < 0 || i >= len(a.nodes) {
		panic(fmt.Sprintf("bvtree: release of node index %d outside arena of %d slots", i, len(a.nodes)))
	}
	if a.nodes[i].isFree() {
		panic(fmt.Sprintf("bvtree: double release of node index %d", i))
	}
	a.nodes[i] = freeSlot[T]()
	a.free = append(a.free, i)
}

// reset logically frees every slot while keeping the backing storage, so
// a cleared tree reallocates without growing.
func (a *arena[T]) reset() {
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}

// live returns the number of slots currently allocated.
func (a *arena[T]) live() int {
	return len(a.nodes) - len(a.free)
}
