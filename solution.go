package polyclip

import "github.com/mikenye/polyclip/shape"

// Solution is the well-formed result of a Boolean operation or a
// [Normalize] call: a set of closed, simple, correctly-oriented paths
// with nesting information attached.
type Solution struct {
	op      BooleanOp
	polygon shape.Polygon
}

// Paths returns the solution's paths.
func (s Solution) Paths() []shape.Path {
	return s.polygon.Paths()
}

// Polygon returns the solution as a [shape.Polygon].
func (s Solution) Polygon() shape.Polygon {
	return s.polygon
}

// Op returns the operation that produced this solution.
func (s Solution) Op() BooleanOp {
	return s.op
}
