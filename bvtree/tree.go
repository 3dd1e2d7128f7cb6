package bvtree

import (
	"errors"
	"sync"
)

var (
	// ErrInvalidBounds is returned when a box whose minimum exceeds its
	// maximum on some axis is offered to Insert or Update. The tree is
	// left untouched.
	ErrInvalidBounds = errors.New("bounding volume is inverted: min exceeds max on an axis")

	// ErrKeyNotFound is returned by Remove and Update for a key with no
	// live entry. It is reported rather than ignored so callers that
	// assume an entry exists find out that it does not.
	ErrKeyNotFound = errors.New("no entry for key")
)

// DefaultCapacity is the entry capacity hint used by New.
const DefaultCapacity = 64

// Tree is a dynamic bounding volume hierarchy mapping keys of type T to
// axis aligned boxes. Keys are compared with ==; each key has at most one
// live entry.
//
// A Tree is safe for concurrent use. Mutations serialize behind a write
// lock; queries run concurrently under a read lock.
//
// The zero value is not usable; construct with New or NewWithCapacity.
type Tree[T comparable] struct {
	mu     sync.RWMutex
	arena  arena[T]
	leaves map[T]int
	root   int
	count  int
}

// New returns an empty tree with the default capacity hint.
func New[T comparable]() *Tree[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity returns an empty tree sized for about capacity entries.
// The hint only presizes the arena and key index; the tree grows past it
// on demand and never shrinks.
func NewWithCapacity[T comparable](capacity int) *Tree[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Tree[T]{
		// n entries occupy at most 2n-1 slots.
		arena:  arena[T]{nodes: make([]node[T], 0, 2*capacity)},
		leaves: make(map[T]int, capacity),
		root:   nilIndex,
	}
}

// Count returns the number of live entries.
func (t *Tree[T]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Clear removes every entry. Arena capacity is retained, so a cleared
// tree refills without reallocating. Clearing an empty tree is a no-op.
func (t *Tree[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.arena.reset()
	clear(t.leaves)
	t.root = nilIndex
	t.count = 0
}
