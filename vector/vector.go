// Package vector provides the Vector type — the displacement between
// two lattice points — along with the cross/dot product arithmetic and
// the pseudoangle ordering the sweep uses throughout.
//
// Components are widened to int64 immediately so that cross and dot
// products, which square the coordinate range, never overflow: two
// differences of at most 2^25 in magnitude multiply out to at most
// 2^50, comfortably inside int64.
package vector

import "github.com/mikenye/polyclip/point"

// Vector is the displacement (dx, dy) between two points.
type Vector struct {
	dx, dy int64
}

// New constructs a Vector directly from its components.
func New(dx, dy int64) Vector {
	return Vector{dx: dx, dy: dy}
}

// Between returns the vector from 'from' to 'to'.
func Between(from, to point.Point) Vector {
	return Vector{
		dx: int64(to.X()) - int64(from.X()),
		dy: int64(to.Y()) - int64(from.Y()),
	}
}

// DX returns the x-component.
func (v Vector) DX() int64 { return v.dx }

// DY returns the y-component.
func (v Vector) DY() int64 { return v.dy }

// IsZero reports whether the vector has zero length, i.e. its two
// endpoints coincide. A zero vector has no meaningful pseudoangle.
func (v Vector) IsZero() bool {
	return v.dx == 0 && v.dy == 0
}

// Reverse returns the vector pointing the opposite way.
func (v Vector) Reverse() Vector {
	return Vector{dx: -v.dx, dy: -v.dy}
}

// CrossProduct returns the 2D cross product (determinant) of v and w:
//
//	v × w = v.dx*w.dy - v.dy*w.dx
//
// Positive means w is counterclockwise from v, negative means
// clockwise, zero means the two vectors are parallel (or one is zero).
func (v Vector) CrossProduct(w Vector) int64 {
	return v.dx*w.dy - v.dy*w.dx
}

// DotProduct returns the dot product of v and w.
func (v Vector) DotProduct(w Vector) int64 {
	return v.dx*w.dx + v.dy*w.dy
}

// SameDirection reports whether v and w point into the same open
// half-plane, i.e. their dot product is positive. Used when two
// collinear edges need to be told apart from their reverse.
func (v Vector) SameDirection(w Vector) bool {
	return v.DotProduct(w) > 0
}

// IsRightDown reports whether the vector points into the "south-east"
// half of the plane used to order the sweep's left-to-right, top-to-
// bottom traversal: strictly rightward, or exactly vertical and
// downward.
func (v Vector) IsRightDown() bool {
	if v.dx != 0 {
		return v.dx > 0
	}
	return v.dy > 0
}
