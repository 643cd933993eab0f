// Package point defines the foundational geometric primitive of the
// polyclip engine: a Point on the bounded integer lattice. All other
// geometric types (vectors, segments, edges, paths) are built on top of
// this type.
//
// Coordinates are exact integers confined to [-MaxCoordinate,
// MaxCoordinate]. This keeps comparisons and equality exact — there is
// no epsilon here, and none is needed.
package point

import (
	"encoding/json"
	"fmt"

	"github.com/mikenye/polyclip/polyerr"
)

// Coordinate is a single axis value on the clipping lattice. It is
// backed by int32 but validated to a narrower range so that the
// difference between any two coordinates, and the sum of several such
// differences, never overflows an int64 during sweep arithmetic.
type Coordinate int32

// MaxCoordinate and MinCoordinate bound the supported lattice. 2^24
// leaves ample headroom below int32's range for the intermediate sums
// the sweep and intersection arithmetic produce once lifted to int64.
const (
	MaxCoordinate Coordinate = 1 << 24
	MinCoordinate Coordinate = -(1 << 24)
)

// Checked validates that c falls within [MinCoordinate, MaxCoordinate],
// returning a [polyerr.OutOfBounds] error if not.
func (c Coordinate) Checked() (Coordinate, error) {
	if c < MinCoordinate || c > MaxCoordinate {
		return 0, polyerr.New(polyerr.OutOfBounds, c)
	}
	return c, nil
}

var origin = Point{}

// Origin returns the point (0,0).
func Origin() Point {
	return origin
}

// Point is a location on the clipping lattice.
type Point struct {
	x, y Coordinate
}

// New constructs a Point from raw x/y values, validating that both
// fall within the supported coordinate range.
//
// Parameters:
//   - x, y (int32): the coordinates of the point.
//
// Returns:
//   - Point: the constructed point, zero value on error.
//   - error: a [polyerr.Error] of kind [polyerr.OutOfBounds] if either
//     coordinate is out of range.
func New(x, y int32) (Point, error) {
	cx, err := Coordinate(x).Checked()
	if err != nil {
		return Point{}, err
	}
	cy, err := Coordinate(y).Checked()
	if err != nil {
		return Point{}, err
	}
	return Point{x: cx, y: cy}, nil
}

// NewUnchecked constructs a Point without bounds validation. Used
// internally once a value is already known-valid (e.g. the result of a
// snapped intersection that has itself been range-checked).
func NewUnchecked(x, y Coordinate) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the point.
func (p Point) X() Coordinate {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() Coordinate {
	return p.y
}

// Coordinates returns both coordinates of the point.
func (p Point) Coordinates() (x, y Coordinate) {
	return p.x, p.y
}

// Eq reports whether two points are exactly equal. Coordinates are
// exact integers, so equality needs no tolerance.
func (p Point) Eq(q Point) bool {
	return p.x == q.x && p.y == q.y
}

// Less orders points by x ascending, then y ascending — the sweep's
// natural left-to-right processing order, with ties within a vertical
// line broken from bottom to top.
func (p Point) Less(q Point) bool {
	if p.x != q.x {
		return p.x < q.x
	}
	return p.y < q.y
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}

type pointJSON struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// MarshalJSON serializes the point as {"x":..,"y":..}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON{X: int32(p.x), Y: int32(p.y)})
}

// UnmarshalJSON deserializes a point from {"x":..,"y":..}, validating
// bounds on the way in.
func (p *Point) UnmarshalJSON(data []byte) error {
	var tmp pointJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	np, err := New(tmp.X, tmp.Y)
	if err != nil {
		return err
	}
	*p = np
	return nil
}
