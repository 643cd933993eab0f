package point

import "fmt"

// OrientationType describes how three points turn relative to each
// other.
type OrientationType uint8

const (
	// Collinear indicates the three points lie on a straight line.
	Collinear OrientationType = iota

	// Counterclockwise indicates p, q, r form a left turn.
	Counterclockwise

	// Clockwise indicates p, q, r form a right turn.
	Clockwise
)

// String returns the name of the orientation.
func (o OrientationType) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Counterclockwise:
		return "Counterclockwise"
	case Clockwise:
		return "Clockwise"
	default:
		panic(fmt.Errorf("unsupported point orientation: %d", o))
	}
}

// Orientation determines whether p, q, r turn clockwise,
// counterclockwise, or are collinear, via the exact sign of the cross
// product of (q-p) and (r-p). Coordinates are exact integers lifted to
// int64 before multiplying, so the result is exact — no epsilon.
func Orientation(p, q, r Point) OrientationType {
	qpx, qpy := int64(q.x-p.x), int64(q.y-p.y)
	rpx, rpy := int64(r.x-p.x), int64(r.y-p.y)
	cross := qpx*rpy - qpy*rpx
	switch {
	case cross == 0:
		return Collinear
	case cross > 0:
		return Counterclockwise
	default:
		return Clockwise
	}
}
