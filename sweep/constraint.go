package sweep

import (
	"github.com/mikenye/polyclip/edge"
	"github.com/mikenye/polyclip/point"
)

// bendSlack widens every obstacle band by a whisker past exact: a line
// a hair outside the band can still end up on the wrong side of a
// snapped vertex once its own future cuts round by up to half a unit
// each. Keeping the slack well under one lattice unit is what lets
// genuinely separate edges — parallel lines one unit apart — stay
// untouched.
const bendSlack = 0.001

// lineYAt returns the y of e's carrying line at column x, as a float.
// Callers only compare it against band bounds, never feed it back into
// geometry; where the value becomes an output coordinate, the exact
// preferredY below is used instead.
func lineYAt(e edge.Edge, x point.Coordinate) float64 {
	ax, ay := float64(e.From().X()), float64(e.From().Y())
	bx, by := float64(e.To().X()), float64(e.To().Y())
	return ay + (by-ay)*(float64(x)-ax)/(bx-ax)
}

// withinBand reports whether y lies inside [lo,hi] (in either order)
// widened by bendSlack.
func withinBand(y, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return y >= lo-bendSlack && y <= hi+bendSlack
}

// preferredY is the forced-snap target for an edge pinned at column x:
// the nearest integer to its y-intercept there, halves rounding up.
// Exact integer arithmetic, since the result becomes a coordinate.
func preferredY(e edge.Edge, x point.Coordinate) point.Coordinate {
	ax, ay := int64(e.From().X()), int64(e.From().Y())
	bx, by := int64(e.To().X()), int64(e.To().Y())
	d := bx - ax
	n := ay*d + (by-ay)*(int64(x)-ax)
	return point.Coordinate(floorDiv(2*n+d, 2*d))
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}

// traverses reports whether e crosses column x strictly between its
// own endpoints — the only situation in which a forced snap can bend
// it; an edge that starts or ends on the column already sits on the
// lattice there.
func traverses(e edge.Edge, x point.Coordinate) bool {
	return e.From().X() < x && x < e.To().X()
}
