// Package shape holds the output data model: closed [Path]s and the
// nested [Polygon] they form.
package shape

import (
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/rectangle"
)

// Path is an ordered, closed ring of points: the last point is
// implicitly connected back to the first. It carries its signed area
// (which also gives its orientation), bounding box, depth in the
// polygon's nesting, and optional parent index, computed once at
// construction.
type Path struct {
	points []point.Point
	area2x int64
	bounds rectangle.Rectangle
	depth  int
	parent int
}

// NewPath builds a Path from a non-empty, already-closed-implicitly
// point ring. Depth and parent default to 0 and -1 (no parent); use
// WithPlacement to attach the values [hierarchy.Resolve] computes.
func NewPath(points []point.Point) Path {
	if len(points) < 2 {
		panic("shape: path needs at least 2 points")
	}
	return Path{
		points: points,
		area2x: area2xSigned(points),
		bounds: rectangle.New(points...),
		parent: -1,
	}
}

// WithPlacement returns a copy of p with its nesting depth and parent
// path index set.
func (p Path) WithPlacement(depth, parent int) Path {
	p.depth = depth
	p.parent = parent
	return p
}

// Reversed returns a copy of p with its point order reversed, flipping
// its orientation.
func (p Path) Reversed() Path {
	points := make([]point.Point, len(p.points))
	for i, pt := range p.points {
		points[len(points)-1-i] = pt
	}
	return Path{points: points, area2x: -p.area2x, bounds: p.bounds, depth: p.depth, parent: p.parent}
}

// Points returns the path's vertices, in order.
func (p Path) Points() []point.Point {
	return p.points
}

// Area2XSigned returns twice the signed area of the path (the
// shoelace sum): positive for counter-clockwise, negative for
// clockwise, zero only for a degenerate (zero-area) path.
func (p Path) Area2XSigned() int64 {
	return p.area2x
}

// Clockwise reports whether the path, as currently ordered, winds
// clockwise.
func (p Path) Clockwise() bool {
	return p.area2x < 0
}

// Bounds returns the path's axis-aligned bounding box.
func (p Path) Bounds() rectangle.Rectangle {
	return p.bounds
}

// Depth returns the path's nesting depth (0 for an outermost path).
func (p Path) Depth() int {
	return p.depth
}

// Parent returns the index, within the owning [Polygon], of the
// smallest path containing this one, or -1 if there is none.
func (p Path) Parent() int {
	return p.parent
}

func area2xSigned(points []point.Point) int64 {
	n := len(points)
	var area int64
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += int64(p1.X())*int64(p2.Y()) - int64(p2.X())*int64(p1.Y())
	}
	return area
}
