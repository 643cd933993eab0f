// Package rectangle provides an axis-aligned bounding box over the
// integer lattice, used by segments and edges to cheaply screen out
// non-intersecting pairs before doing any exact arithmetic.
package rectangle

import (
	"fmt"

	"github.com/mikenye/polyclip/point"
)

// Rectangle is an axis-aligned bounding box, inclusive of its edges.
type Rectangle struct {
	minX, minY, maxX, maxY point.Coordinate
}

// New builds the bounding box of the given points. Panics if called
// with no points — every caller constructs a box from a segment's two
// endpoints or a path's point list, both always non-empty.
func New(pts ...point.Point) Rectangle {
	if len(pts) == 0 {
		panic("rectangle: New called with no points")
	}
	minX, minY := pts[0].X(), pts[0].Y()
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		if p.X() < minX {
			minX = p.X()
		}
		if p.X() > maxX {
			maxX = p.X()
		}
		if p.Y() < minY {
			minY = p.Y()
		}
		if p.Y() > maxY {
			maxY = p.Y()
		}
	}
	return Rectangle{minX: minX, minY: minY, maxX: maxX, maxY: maxY}
}

// Min returns the lower-left corner.
func (r Rectangle) Min() point.Point { return point.NewUnchecked(r.minX, r.minY) }

// Max returns the upper-right corner.
func (r Rectangle) Max() point.Point { return point.NewUnchecked(r.maxX, r.maxY) }

// ContainsPoint reports whether p lies within or on the boundary of r.
func (r Rectangle) ContainsPoint(p point.Point) bool {
	return p.X() >= r.minX && p.X() <= r.maxX && p.Y() >= r.minY && p.Y() <= r.maxY
}

// Intersects reports whether r and other share at least one point.
// Used to screen segment pairs before exact intersection arithmetic:
// disjoint bounding boxes can never produce an intersection.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.minX <= other.maxX && other.minX <= r.maxX &&
		r.minY <= other.maxY && other.minY <= r.maxY
}

// Union returns the smallest box containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	return Rectangle{
		minX: min(r.minX, other.minX),
		minY: min(r.minY, other.minY),
		maxX: max(r.maxX, other.maxX),
		maxY: max(r.maxY, other.maxY),
	}
}

// Eq reports whether r and other have identical bounds.
func (r Rectangle) Eq(other Rectangle) bool {
	return r == other
}

// String renders the box as "[(minX,minY),(maxX,maxY)]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[(%d,%d),(%d,%d)]", r.minX, r.minY, r.maxX, r.maxY)
}
