package segment

import (
	"math"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/vector"
)

// IntersectionType classifies the outcome of intersecting two segments.
type IntersectionType uint8

const (
	// IntersectionNone means the segments do not meet.
	IntersectionNone IntersectionType = iota

	// IntersectionPoint means the segments meet at exactly one point.
	IntersectionPoint

	// IntersectionOverlap means the segments are collinear and share a
	// run of more than one point.
	IntersectionOverlap
)

// String returns the name of the intersection type.
func (t IntersectionType) String() string {
	switch t {
	case IntersectionNone:
		return "IntersectionNone"
	case IntersectionPoint:
		return "IntersectionPoint"
	case IntersectionOverlap:
		return "IntersectionOverlap"
	default:
		return "IntersectionUnknown"
	}
}

// Intersection is the result of intersecting two segments.
type Intersection struct {
	Type    IntersectionType
	Point   point.Point // valid when Type == IntersectionPoint
	Overlap Segment     // valid when Type == IntersectionOverlap
}

// Intersect computes the intersection of a and b.
//
// When the two supporting lines cross at a single point, that point is
// generally not itself a lattice point: its true coordinates are
// rational, the ratio of two integer cross products. Intersect rounds
// each coordinate to the nearest integer, except in the one case that
// needs a documented, deterministic tie-break: a coordinate landing
// exactly on a half-integer. There, each tied axis rounds by the sign
// of the matching component of the bisector of the two segments'
// downright-oriented directions (see snapPoint), so the same pair of
// crossing segments always snaps the same way regardless of which was
// passed as a or b, and the two axes can round in opposite directions
// when the inward angle between the segments calls for it.
//
// Collinear overlaps never need rounding at all: an overlap's endpoints
// are always one of the four input endpoints, computed with exact
// integer comparisons.
func Intersect(a, b Segment) Intersection {
	if !a.Bounds().Intersects(b.Bounds()) {
		return Intersection{Type: IntersectionNone}
	}

	r := vector.Between(a.left, a.right)
	s := vector.Between(b.left, b.right)
	qp := vector.Between(a.left, b.left)

	denom := r.CrossProduct(s)
	if denom == 0 {
		if qp.CrossProduct(r) != 0 {
			return Intersection{Type: IntersectionNone} // parallel, not collinear
		}
		return intersectCollinear(a, b, r)
	}

	tNum := qp.CrossProduct(s)
	uNum := qp.CrossProduct(r)
	if denom < 0 {
		tNum, uNum, denom = -tNum, -uNum, -denom
	}
	if tNum < 0 || tNum > denom || uNum < 0 || uNum > denom {
		return Intersection{Type: IntersectionNone}
	}

	t := float64(tNum) / float64(denom)
	ix := float64(a.left.X()) + t*float64(r.DX())
	iy := float64(a.left.Y()) + t*float64(r.DY())

	return Intersection{Type: IntersectionPoint, Point: snapPoint(ix, iy, a, b)}
}

// intersectCollinear handles the case where a and b lie on the same
// line. All arithmetic is exact integer arithmetic: an overlap's
// endpoints always coincide with one of the four given segment
// endpoints, so nothing ever needs rounding.
func intersectCollinear(a, b Segment, r vector.Vector) Intersection {
	length2 := r.DotProduct(r)

	type candidate struct {
		p point.Point
		t int64
	}
	tB0 := vector.Between(a.left, b.left).DotProduct(r)
	tB1 := vector.Between(a.left, b.right).DotProduct(r)
	minB, maxB := tB0, tB1
	if minB > maxB {
		minB, maxB = maxB, minB
	}

	candidates := []candidate{
		{a.left, 0},
		{a.right, length2},
		{b.left, tB0},
		{b.right, tB1},
	}

	start := max(int64(0), minB)
	end := min(length2, maxB)
	if start > end {
		return Intersection{Type: IntersectionNone}
	}

	var startPoint, endPoint point.Point
	for _, c := range candidates {
		if c.t == start {
			startPoint = c.p
		}
		if c.t == end {
			endPoint = c.p
		}
	}

	if startPoint.Eq(endPoint) {
		return Intersection{Type: IntersectionPoint, Point: startPoint}
	}
	return Intersection{Type: IntersectionOverlap, Overlap: NewFromPoints(startPoint, endPoint)}
}

// snapPoint rounds the computed crossing onto the lattice. Ordinary
// coordinates round to nearest; a coordinate landing on an exact
// half-integer is broken per axis by the sign of the matching
// component of the angular bisector of the two segments'
// downright-oriented directions (bisector), so the same pair of
// crossing segments always snaps the same way regardless of argument
// order, and the snap leans along the inward angle between the two
// segments rather than pulling both axes the same way.
func snapPoint(ix, iy float64, a, b Segment) point.Point {
	xTie, yTie := halfInteger(ix), halfInteger(iy)
	if !xTie && !yTie {
		return point.NewUnchecked(
			point.Coordinate(math.Round(ix)),
			point.Coordinate(math.Round(iy)),
		)
	}
	sumX, sumY := bisector(downright(a.Vector()), downright(b.Vector()))
	return point.NewUnchecked(snapAxis(ix, xTie, sumX), snapAxis(iy, yTie, sumY))
}

func halfInteger(v float64) bool {
	const halfBand = 1e-9
	frac := v - math.Floor(v)
	return frac > 0.5-halfBand && frac < 0.5+halfBand
}

// snapAxis resolves one axis: a tied coordinate floors when the
// bisector component points negative and ceils otherwise; an untied
// one just rounds.
func snapAxis(v float64, tie bool, sum float64) point.Coordinate {
	if !tie {
		return point.Coordinate(math.Round(v))
	}
	if sum < 0 {
		return point.Coordinate(math.Floor(v))
	}
	return point.Coordinate(math.Ceil(v))
}

// bisector returns the component sums of the two directions' unit
// vectors — a vector along the angular bisector of the pair. Both
// inputs point downright, so their pseudoangles sit in (0, 2]; when
// the pair is more than one pseudoangle unit apart, the naive sum
// would bisect the outward angle between them, so the direction
// farther from the shared boundary is reversed first and the sum
// always leans into the inward angle between the two oriented
// segments.
func bisector(v1, v2 vector.Vector) (sumX, sumY float64) {
	pa1, pa2 := vector.AngleOf(v1), vector.AngleOf(v2)
	upperV, upperA, lowerV, lowerA := v1, pa1, v2, pa2
	if pa2 < pa1 {
		upperV, upperA, lowerV, lowerA = v2, pa2, v1, pa1
	}
	if float64(lowerA-upperA) > 1 {
		halfDiff := 1 - float64(lowerA-upperA)/2
		if float64(upperA) > halfDiff {
			upperV, lowerV = lowerV.Reverse(), upperV
		} else {
			upperV, lowerV = lowerV, upperV.Reverse()
		}
	}
	x1, y1 := unit(upperV)
	x2, y2 := unit(lowerV)
	return x1 + x2, y1 + y2
}

func unit(v vector.Vector) (float64, float64) {
	length := math.Hypot(float64(v.DX()), float64(v.DY()))
	return float64(v.DX()) / length, float64(v.DY()) / length
}

func downright(v vector.Vector) vector.Vector {
	if v.IsRightDown() {
		return v
	}
	return v.Reverse()
}
