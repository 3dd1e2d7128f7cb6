package bvtree

import (
	"math"

	"github.com/tanglebrook/go-boundstree/aabb"
)

// costTieRelTolerance is the relative spread within which two descent
// costs are treated as equal and the choice falls to subtree size.
const costTieRelTolerance = 1e-6

// enlargement returns the growth of b's Volume metric needed for b to
// also cover add. Zero when add is already contained.
func enlargement(b, add aabb.Box) float64 {
	return b.Union(add).Volume() - b.Volume()
}

// costsTied reports whether a and b are within costTieRelTolerance of
// each other, relative to the larger magnitude. Two zero costs are tied.
func costsTied(a, b float64) bool {
	m := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= costTieRelTolerance*m
}
