package draw

// Parity records, for one merged boundary edge, whether an odd number
// of subject edges and an odd number of clipping edges ended up
// coincident on it after the sweep. Crossing the edge flips region
// membership for exactly the operands whose count is odd; an even
// count separates nothing for that operand.
type Parity struct {
	Subject  bool
	Clipping bool
}

// None reports whether both operands' counts on the edge are even —
// the edge separates nothing from nothing (a hair retraced over
// itself, or the two operands cancelling) and is dropped.
func (p Parity) None() bool {
	return !p.Subject && !p.Clipping
}

// Partition is the two-axis inside/outside state of a region between
// edges in the active list: one bit per operand.
type Partition struct {
	Subject  bool
	Clipping bool
}

// Cross returns the partition on the far side of a boundary edge with
// the given parity.
func (p Partition) Cross(par Parity) Partition {
	if par.Subject {
		p.Subject = !p.Subject
	}
	if par.Clipping {
		p.Clipping = !p.Clipping
	}
	return p
}

// Inside decides whether a region with the given membership state lies
// inside the result of the Boolean operation being run. A boundary
// edge survives into the output exactly when the regions on its two
// sides disagree under this predicate, so the four operations differ
// only in the function passed here.
type Inside func(Partition) bool
