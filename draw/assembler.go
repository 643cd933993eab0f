package draw

import (
	"github.com/mikenye/polyclip/edge"
	"github.com/mikenye/polyclip/point"
)

// colEntry is one non-vertical boundary edge currently crossing the
// assembler's column: the status structure this package re-derives
// from the resolved edge set, ordered bottom to top by y at the
// current x, mirroring [sweep.Scope]'s active list but with no
// crossings left to find.
type colEntry struct {
	b       boundary
	below   Partition
	pending bool
	kept    bool
	keptIdx int
}

// assembler is the per-run state: the active list plus the kept edges
// and routing data accumulated as it sweeps.
type assembler struct {
	inside Inside
	active []*colEntry
	kept   []boundary
	above  []int
}

// Run classifies the crossing-free output of [sweep.Run] against the
// Boolean operation's inside predicate and assembles the survivors
// into closed paths, plus the [Routes] record the hierarchy resolver
// consumes. It reports a Fatal error if the kept edges fail to close
// up into loops — that would mean the resolved edge set was not a
// valid arrangement.
func Run(edges []edge.Edge, inside Inside) ([][]point.Point, *Routes, error) {
	merged := mergeCoincident(edges)

	var flats, verts []boundary
	for _, b := range merged {
		if b.vertical() {
			verts = append(verts, b)
		} else {
			flats = append(flats, b)
		}
	}

	a := &assembler{inside: inside}
	pos := 0
sweep:
	for {
		hasBatch := pos < len(flats)
		retireX, hasRetire := a.nextRetireX()

		var x point.Coordinate
		switch {
		case hasBatch && hasRetire:
			x = min(flats[pos].from.X(), retireX)
		case hasBatch:
			x = flats[pos].from.X()
		case hasRetire:
			x = retireX
		default:
			break sweep
		}

		a.retire(x)
		if hasBatch && flats[pos].from.X() == x {
			start := pos
			for pos < len(flats) && flats[pos].from.X() == x {
				pos++
			}
			a.admit(flats[start:pos])
		}
		a.classify()
	}

	// Verticals never enter the active list: they live entirely on one
	// column and separate its left side from its right, not two
	// regions stacked in y. They get their own classification.
	for _, v := range verts {
		if a.keepVertical(v, flats) {
			a.kept = append(a.kept, v)
			a.above = append(a.above, -1)
		}
	}
	logf("kept %d of %d boundaries", len(a.kept), len(merged))

	paths, pathOf, representative, err := trace(a.kept)
	if err != nil {
		return nil, nil, err
	}
	logf("traced %d closed paths", len(paths))
	return paths, &Routes{above: a.above, pathOf: pathOf, representative: representative}, nil
}

func (a *assembler) nextRetireX() (point.Coordinate, bool) {
	if len(a.active) == 0 {
		return 0, false
	}
	best := a.active[0].b.to.X()
	for _, ce := range a.active[1:] {
		if t := ce.b.to.X(); t < best {
			best = t
		}
	}
	return best, true
}

func (a *assembler) retire(x point.Coordinate) {
	remaining := a.active[:0]
	for _, ce := range a.active {
		if ce.b.to.X() != x {
			remaining = append(remaining, ce)
		}
	}
	a.active = remaining
}

func (a *assembler) admit(batch []boundary) {
	for _, b := range batch {
		idx := a.insertionIndex(b)
		ce := &colEntry{b: b, pending: true, keptIdx: -1}
		a.active = append(a.active, nil)
		copy(a.active[idx+1:], a.active[idx:])
		a.active[idx] = ce
	}
}

// classify recomputes the column's region structure from the bottom up
// and settles the keep decision for every entry admitted this column.
// Rebuilding the partitions after the whole batch is in — rather than
// deciding per edge at insertion — is what lets an edge's above-link
// reach kept neighbours admitted in the same batch, and removes any
// dependence on stale per-entry snapshots.
func (a *assembler) classify() {
	below := Partition{}
	for _, ce := range a.active {
		ce.below = below
		below = below.Cross(ce.b.parity)
	}

	var newly []int
	for i, ce := range a.active {
		if !ce.pending {
			continue
		}
		ce.pending = false
		if a.inside(ce.below) != a.inside(ce.below.Cross(ce.b.parity)) {
			ce.kept = true
			ce.keptIdx = len(a.kept)
			a.kept = append(a.kept, ce.b)
			a.above = append(a.above, -1)
			newly = append(newly, i)
		}
	}

	// Above-links are patched once the whole column is classified so
	// every same-batch kept neighbour already has its index.
	for _, i := range newly {
		a.above[a.active[i].keptIdx] = a.nearestKeptAbove(i + 1)
	}
}

// nearestKeptAbove returns the kept-edge index of the closest active
// entry at or above position from, or -1 if everything above was
// discarded.
func (a *assembler) nearestKeptAbove(from int) int {
	for i := from; i < len(a.active); i++ {
		if a.active[i].kept {
			return a.active[i].keptIdx
		}
	}
	return -1
}

// insertionIndex finds where b belongs in the active list, which is
// ordered bottom to top by each edge's y just to the right of the
// current column.
func (a *assembler) insertionIndex(b boundary) int {
	lo, hi := 0, len(a.active)
	for lo < hi {
		mid := (lo + hi) / 2
		if a.isBelow(a.active[mid], b) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// isBelow reports whether ce sits below b at the current column. When
// b's start is off ce's line that is a plain side test; when the two
// edges share their start point, the shallower climb is the lower edge
// just right of the column, and climb order is exactly pseudoangle
// order for rightward vectors.
func (a *assembler) isBelow(ce *colEntry, b boundary) bool {
	switch point.Orientation(ce.b.from, ce.b.to, b.from) {
	case point.Counterclockwise:
		return true // b starts above ce's line
	case point.Clockwise:
		return false
	default:
		return angleBetween(ce.b.from, ce.b.to) < angleBetween(b.from, b.to)
	}
}
