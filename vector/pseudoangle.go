package vector

import "math"

// Pseudoangle is a cheap, monotone surrogate for the true angle of a
// vector from the negative-y direction, taking values in [0, 4). It agrees
// with true angular ordering (a < b implies angle(a) < angle(b)) without
// ever calling atan2, which matters because the sweep compares many
// thousands of angles per operation and only ever needs their order,
// never their value.
type Pseudoangle float64

// Reference angles, matching the cardinal directions.
const (
	Up    Pseudoangle = 0
	Right Pseudoangle = 1
	Down  Pseudoangle = 2
	Left  Pseudoangle = 3
	Stop  Pseudoangle = 4
)

// Of normalizes an arbitrary value into [0, 4).
func Of(value float64) Pseudoangle {
	m := math.Mod(value, 4)
	if m < 0 {
		m += 4
	}
	return Pseudoangle(m)
}

// AngleOf computes the pseudoangle of v, measuring clockwise from
// straight up (the negative-y direction, i.e. "up" on the lattice when
// y increases downward) as 0, through right at 1, down at 2, and left at
// 3, back to up (wrapping) at 4.
//
// It never calls a trigonometric function: each quadrant uses the
// ratio dx/(|dx|+|dy|), which is itself monotone in the true angle
// within that quadrant, and the quadrants are stitched together so the
// whole function is monotone across all four.
//
// Panics if v is the zero vector — a zero-length vector has no angle,
// and every caller in this engine already guarantees edges are
// non-degenerate before computing one.
func AngleOf(v Vector) Pseudoangle {
	dx, dy := float64(v.dx), float64(v.dy)
	if dx == 0 && dy == 0 {
		panic("vector: pseudoangle of zero vector")
	}
	p := dx / (math.Abs(dx) + math.Abs(dy))
	if dy < 0 {
		return Of(p)
	}
	return Of(2 - p)
}

// Reverse returns the pseudoangle pointing the opposite direction.
func (p Pseudoangle) Reverse() Pseudoangle {
	return Of(float64(p) + 2)
}

// Less reports whether p sorts strictly before q. Pseudoangles compare
// directly as floats since the encoding is already monotone.
func (p Pseudoangle) Less(q Pseudoangle) bool {
	return p < q
}
