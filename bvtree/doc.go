// Package bvtree implements a dynamic bounding volume hierarchy: a binary
// tree over axis aligned boxes that is maintained incrementally as entries
// are inserted, removed and moved, rather than being built once from a
// static set.
//
// # Structure
//
// Every entry is a leaf holding an opaque key and its box. Every internal
// node has exactly two children and a box equal to the union of theirs, so
// the root always bounds the whole scene. A query descends from the root
// and prunes any subtree whose box misses the query box; the cost of a
// query is therefore governed by how tightly the internal boxes fit their
// contents.
//
// Nodes live in an arena, a growable slice of fixed-size slots addressed
// by integer index. Parent and child links are indices, never pointers,
// and freed slots are recycled through a free list. Growth appends to the
// backing slice so existing indices stay valid; nothing is ever compacted
// or relocated. Callers only ever see keys and boxes.
//
// # Maintenance
//
// Insertion walks from the root and, at each internal node, descends into
// the child whose box is cheaper to enlarge around the new entry. Cost is
// the increase of the box's Volume metric after union. When the two
// enlargements are within a small relative tolerance of each other the
// walk descends into the child with the smaller subtree instead, which
// stops long chains forming when the geometry alone cannot separate the
// candidates. The walk ends at a leaf; a new internal node is allocated to
// pair that leaf with the new one, and the ancestors' boxes and subtree
// sizes are recomputed up to the root.
//
// Removal is the inverse: the leaf is freed, its parent collapses into the
// sibling, and the ancestors are refit. Moving an entry is a removal
// followed by a fresh insertion, so the entry's position in the tree is
// always one the cost walk would have chosen for its current box.
//
// # Concurrency
//
// A Tree guards itself with a single read-write lock. Mutations take the
// write lock; queries and inspection take the read lock. Concurrent use
// from multiple goroutines is safe and behaves as some serialization of
// the calls.
package bvtree
