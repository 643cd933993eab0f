package polyclip

import "github.com/mikenye/polyclip/draw"

// BooleanOp identifies which of the four Boolean set operations to
// run.
type BooleanOp uint8

const (
	OpUnion BooleanOp = iota
	OpIntersection
	OpDifference
	OpXor
)

// String returns the name of the operation.
func (op BooleanOp) String() string {
	switch op {
	case OpUnion:
		return "Union"
	case OpIntersection:
		return "Intersection"
	case OpDifference:
		return "Difference"
	case OpXor:
		return "Xor"
	default:
		panic("polyclip: unsupported BooleanOp")
	}
}

// insideFor returns the predicate deciding whether a region with the
// given per-operand membership lies inside op's result. A
// boundary edge survives exactly when the regions on its two sides
// disagree, so these four one-liners are the entire difference between
// the operations — including the self-cancellation cases: xor of a
// polygon with itself keeps nothing, because every boundary has both
// memberships flipping together.
func insideFor(op BooleanOp) draw.Inside {
	switch op {
	case OpUnion:
		return func(p draw.Partition) bool { return p.Subject || p.Clipping }
	case OpIntersection:
		return func(p draw.Partition) bool { return p.Subject && p.Clipping }
	case OpDifference:
		return func(p draw.Partition) bool { return p.Subject && !p.Clipping }
	case OpXor:
		return func(p draw.Partition) bool { return p.Subject != p.Clipping }
	default:
		panic("polyclip: unsupported BooleanOp")
	}
}
