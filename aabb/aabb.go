package aabb

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis aligned bounding volume described by its minimum and
// maximum corners. A Box is a value type and is never mutated in place;
// every operation returns a new Box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// New returns the box spanning min to max. It does not validate the
// corners; use IsValid before trusting a box from an external source.
func New(min, max mgl64.Vec3) Box {
	return Box{Min: min, Max: max}
}

// FromCenter returns the box centred on center extending halfExtents in
// both directions along each axis.
func FromCenter(center, halfExtents mgl64.Vec3) Box {
	return Box{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// IsValid reports whether Min <= Max holds on every axis.
func (b Box) IsValid() bool {
	return b.Min.X() <= b.Max.X() &&
		b.Min.Y() <= b.Max.Y() &&
		b.Min.Z() <= b.Max.Z()
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Volume returns the size metric used to cost tree operations: the sum of
// the squared extents. It is not the geometric volume. It is zero only for
// a degenerate point box, and it grows monotonically under Union, which is
// the only property the tree relies on.
func (b Box) Volume() float64 {
	s := b.Size()
	return s.X()*s.X() + s.Y()*s.Y() + s.Z()*s.Z()
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: mgl64.Vec3{
			math.Min(b.Min.X(), o.Min.X()),
			math.Min(b.Min.Y(), o.Min.Y()),
			math.Min(b.Min.Z(), o.Min.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(b.Max.X(), o.Max.X()),
			math.Max(b.Max.Y(), o.Max.Y()),
			math.Max(b.Max.Z(), o.Max.Z()),
		},
	}
}

// Intersects reports whether b and o overlap. Extents are closed
// intervals, so boxes that merely touch on a face, edge or corner still
// intersect.
func (b Box) Intersects(o Box) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Contains reports whether o lies entirely within b, boundaries included.
func (b Box) Contains(o Box) bool {
	return b.Min.X() <= o.Min.X() && b.Max.X() >= o.Max.X() &&
		b.Min.Y() <= o.Min.Y() && b.Max.Y() >= o.Max.Y() &&
		b.Min.Z() <= o.Min.Z() && b.Max.Z() >= o.Max.Z()
}
