// Package segment provides Segment, a straight line segment between two
// lattice points, its bounding box, and exact intersection testing with
// the deterministic half-integer snapping the sweep relies on.
//
// There is no epsilon anywhere here: every comparison is either an
// exact integer equality/ordering, or (for the one place two real
// lines must be intersected) a documented, deterministic rounding
// rule — never a tolerance.
package segment

import (
	"fmt"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/rectangle"
	"github.com/mikenye/polyclip/vector"
)

// Segment is a straight line between two distinct lattice points. The
// sweep advances left to right (increasing x), so endpoints are stored
// canonically as left (smaller x, ties broken toward smaller y) and
// right — this is what lets the sweep and the event queue compare
// segments without caring which order the caller supplied the
// endpoints in.
type Segment struct {
	left, right point.Point
}

// NewFromPoints builds a Segment from two distinct points, canonicalizing
// their order. Panics if p and q are equal — a zero-length segment is
// not a segment; callers (principally edge.New) are expected to reject
// null edges with a [polyerr.NullEdge] error before reaching here.
func NewFromPoints(p, q point.Point) Segment {
	if p.Eq(q) {
		panic("segment: NewFromPoints called with coincident points")
	}
	if p.Less(q) {
		return Segment{left: p, right: q}
	}
	return Segment{left: q, right: p}
}

// Left returns the canonical left endpoint (smallest x, ties broken
// toward smallest y).
func (s Segment) Left() point.Point { return s.left }

// Right returns the canonical right endpoint.
func (s Segment) Right() point.Point { return s.right }

// Bounds returns the segment's axis-aligned bounding box.
func (s Segment) Bounds() rectangle.Rectangle {
	return rectangle.New(s.left, s.right)
}

// Vector returns the displacement from the left point to the right
// point.
func (s Segment) Vector() vector.Vector {
	return vector.Between(s.left, s.right)
}

// IsVertical reports whether the segment runs along a single x value.
func (s Segment) IsVertical() bool {
	return s.left.X() == s.right.X()
}

// Eq reports whether two segments have the same endpoints, regardless
// of which endpoint each was constructed with (both are canonicalized
// by NewFromPoints).
func (s Segment) Eq(other Segment) bool {
	return s.left.Eq(other.left) && s.right.Eq(other.right)
}

// Side classifies which side of the segment's supporting line a point
// falls on, using the exact sign of the cross product — never an
// epsilon.
func (s Segment) Side(p point.Point) point.OrientationType {
	return point.Orientation(s.left, s.right, p)
}

// ContainsPoint reports whether p lies exactly on the segment, i.e. on
// its supporting line and within its bounding box.
func (s Segment) ContainsPoint(p point.Point) bool {
	return s.Side(p) == point.Collinear && s.Bounds().ContainsPoint(p)
}

// String renders the segment as "left->right".
func (s Segment) String() string {
	return fmt.Sprintf("%s->%s", s.left, s.right)
}
