// Package sweep implements the Bentley–Ottmann-style sweep that finds
// every intersection between the input edges and emits a new set of
// edges split at those intersections, snapped back onto the integer
// lattice.
//
// The sweep line is vertical and advances left to right in x. At each
// column it holds a status structure ("Scope") ordering every edge
// currently crossing the column by its y at that x, and a queue of
// edges not yet admitted. Within a column, edges that start there are
// admitted in a batch, neighboring edges are tested for intersections,
// and any edge found to cross another is split at the (snapped)
// crossing point: the piece left of it is emitted as output and the
// rest is re-queued as a continuation.
//
// Snapping a crossing onto the lattice bends the edges that meet
// there, and the bend can push a nearby edge — or the crossing itself
// — onto the wrong side of the sweep's already-settled geometry. Two
// mechanisms keep the topology intact under that distortion: every cut
// wipes the obstacles its snap may have displaced (see Scope.wipe),
// and a crossing whose snapped location falls behind the sweep line is
// replaced by pinning both edges to their preferred lattice point on
// the current column (see Scope.pin).
package sweep

import (
	"github.com/mikenye/polyclip/edge"
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/segment"
)

// entry is one edge currently crossing the sweep column: current is
// the remaining, not-yet-finalized piece of some original edge (From
// is wherever it last settled, To is the original far endpoint, until
// the next split). If the entry is known to cross something before
// reaching To, crossAt records the sweep-earliest (already snapped)
// point where. Each entry carries its own cut independently: the entry
// on the other side of a mutual crossing holds the same point and the
// two resolve together simply because their limits coincide.
type entry struct {
	current  edge.Edge
	crossAt  point.Point
	hasCross bool
	position *Position
}

// limitX returns the x at which this entry must next be resolved:
// either a pending crossing, or its natural end.
func (e *entry) limitX() point.Coordinate {
	if e.hasCross {
		return e.crossAt.X()
	}
	return e.current.To().X()
}

// Scope is the sweep's status structure: the set of edges currently
// crossing the sweep line, ordered bottom to top (ascending y), together with the
// dirty-set scheduler used to re-check neighbors after each column.
type Scope struct {
	x      point.Coordinate
	active []*entry // ascending by y at the current column
	dirty  dirtySet
}

// NewScope returns an empty Scope.
func NewScope() *Scope {
	return &Scope{}
}

// Run drains q, resolving every intersection and returning the
// complete set of output edges: every input edge, cut at each snapped
// crossing point it participates in.
func Run(q *edge.Queue) []edge.Edge {
	sc := NewScope()
	var resolved []edge.Edge

	for {
		queueX, hasQueue := q.NextX()
		activeX, hasActive := sc.nextLimitX()

		var nextX point.Coordinate
		switch {
		case hasQueue && hasActive:
			nextX = min(queueX, activeX)
		case hasQueue:
			nextX = queueX
		case hasActive:
			nextX = activeX
		default:
			return resolved
		}
		sc.x = nextX
		logf("advancing to x=%v, %d active", nextX, len(sc.active))

		resolved = append(resolved, sc.resolveLimits(nextX, q)...)

		var incoming []edge.Edge
		if hasQueue && queueX == nextX {
			incoming = append(incoming, q.PopBatch()...)
		}
		sc.admit(incoming, q)
		sc.recheck(q)
	}
}

// nextLimitX returns the smallest limitX among active entries, if any.
func (sc *Scope) nextLimitX() (point.Coordinate, bool) {
	if len(sc.active) == 0 {
		return 0, false
	}
	best := sc.active[0].limitX()
	for _, e := range sc.active[1:] {
		if l := e.limitX(); l < best {
			best = l
		}
	}
	return best, true
}

// resolveLimits finalizes every active entry whose limit has been
// reached at x, emitting resolved output edges and re-queuing crossing
// continuations.
func (sc *Scope) resolveLimits(x point.Coordinate, q *edge.Queue) []edge.Edge {
	var out []edge.Edge
	var remaining []*entry

	for i, e := range sc.active {
		if e.limitX() != x {
			remaining = append(remaining, e)
			continue
		}
		if e.hasCross && !e.crossAt.Eq(e.current.From()) && !e.crossAt.Eq(e.current.To()) {
			head, tail := e.current.SplitAt(e.crossAt)
			out = append(out, head)
			q.Insert(tail.WithIndex(q.MintIndex()))
		} else {
			// The pending cut landed on one of the edge's own
			// endpoints (or there was no cut at all): nothing left to
			// split, the edge simply ends here.
			out = append(out, e.current)
		}
		sc.markNeighborsDirty(i)
	}
	sc.active = remaining
	return out
}

// markNeighborsDirty flags the entries adjacent to the one at index i
// (about to be removed) so their new neighbor, once i is gone, gets a
// fresh intersection check.
func (sc *Scope) markNeighborsDirty(i int) {
	if i > 0 {
		sc.dirty.markTop(sc.active[i-1].position)
	}
	if i < len(sc.active)-1 {
		sc.dirty.markBottom(sc.active[i+1].position)
	}
}

// admit inserts newly-arrived edges into the active list, each in its
// correct y-order position at the current column, found by testing
// which side of each existing neighbor's line the new edge's starting
// point falls on. Edges that share an exact starting point (a shared
// vertex, or several edges snapped onto the same intersection) share
// one [Position].
func (sc *Scope) admit(edges []edge.Edge, q *edge.Queue) {
	byPoint := make(map[point.Point]*Position)
	for _, e := range edges {
		at := e.From()

		pos, ok := byPoint[at]
		if !ok {
			pos = newPosition(at.Y())
			byPoint[at] = pos
		}

		ne := &entry{current: e, position: pos}
		idx := sc.insertionIndex(at)
		sc.active = append(sc.active, nil)
		copy(sc.active[idx+1:], sc.active[idx:])
		sc.active[idx] = ne

		if e.From().X() == e.To().X() {
			// A vertical spans the whole column, not one y; it gets
			// the dedicated first-phase slot in the dirty set.
			sc.dirty.markVertical(ne.position)
			continue
		}
		if idx > 0 {
			sc.dirty.markTop(ne.position)
		}
		if idx < len(sc.active)-1 {
			sc.dirty.markBottom(ne.position)
		}
	}
}

// insertionIndex finds where a new entry starting at p belongs in the
// active list, ascending by y at the current column.
func (sc *Scope) insertionIndex(p point.Point) int {
	lo, hi := 0, len(sc.active)
	for lo < hi {
		mid := (lo + hi) / 2
		if sc.isBelow(sc.active[mid], p) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// isBelow reports whether e sits below p — i.e. e sorts before p in
// ascending-y order.
func (sc *Scope) isBelow(e *entry, p point.Point) bool {
	seg := e.current.Segment()
	switch seg.Side(p) {
	case point.Counterclockwise:
		return true // p is above e's line
	case point.Clockwise:
		return false
	default:
		return false // collinear: treat as equal, new entry goes just below
	}
}

// recheck tests every entry in the dirty set against its current
// neighbors for a future crossing, verticals first, then top-dirty,
// then bottom-dirty. A vertical is tested against the entire column,
// not just its neighbors: it can cut (and be cut by) any traverse it
// spans, regardless of where that traverse sorts.
func (sc *Scope) recheck(q *edge.Queue) {
	sc.dirty.drain(func(p *Position, vertical bool) {
		idx := sc.indexOfPosition(p)
		if idx < 0 {
			return
		}
		last := idx
		for last+1 < len(sc.active) && sc.active[last+1].position == p {
			last++
		}
		if vertical {
			// The vertical (and anything sharing its start) spans the
			// whole column: test the fan against every other entry,
			// not just its neighbors.
			for f := idx; f <= last; f++ {
				for j := range sc.active {
					if j == f {
						continue
					}
					lo, hi := f, j
					if j < f {
						lo, hi = j, f
					}
					sc.testPair(sc.active[lo], sc.active[hi])
				}
			}
			return
		}
		// Entries sharing the position form a contiguous fan; test
		// every member against both outer neighbors (any of them could
		// be the one that crosses) and against the fan member next to
		// it (collinear same-start edges overlap).
		for j := idx; j <= last; j++ {
			if idx > 0 {
				sc.testPair(sc.active[idx-1], sc.active[j])
			}
			if last < len(sc.active)-1 {
				sc.testPair(sc.active[j], sc.active[last+1])
			}
			if j < last {
				sc.testPair(sc.active[j], sc.active[j+1])
			}
		}
	})
}

func (sc *Scope) indexOfPosition(p *Position) int {
	for i, e := range sc.active {
		if e.position == p {
			return i
		}
	}
	return -1
}

// testPair checks two active entries for an upcoming crossing and, if
// found ahead of the current column, records it so resolveLimits picks
// it up when the sweep reaches it. An entry is only scheduled for a
// cut when the point lands strictly inside it: a crossing on an
// entry's own endpoint (a T-junction, or a shared vertex) leaves that
// entry whole and cuts only the other one.
func (sc *Scope) testPair(a, b *entry) {
	result := segment.Intersect(a.current.Segment(), b.current.Segment())
	switch result.Type {
	case segment.IntersectionPoint:
		p := result.Point
		aCut, bCut := interiorTo(a, p), interiorTo(b, p)
		if !aCut && !bCut {
			return // a shared endpoint: nothing crosses
		}
		if p.X() < sc.x {
			// Snapping pulled the crossing behind the sweep line; the
			// exact point can no longer be cut. Pin both edges to the
			// lattice on the current column instead, so they settle on
			// one side of each other from here on.
			sc.pin(a)
			sc.pin(b)
			return
		}
		if aCut {
			sc.schedule(a, p)
		}
		if bCut {
			sc.schedule(b, p)
		}
		if aCut && bCut {
			sc.wipe(a, b, p)
		}
	case segment.IntersectionOverlap:
		// Collinear edges sharing a run: cut each at the overlap
		// endpoints falling strictly inside it, so the coincident
		// pieces come out of the sweep with identical endpoints and
		// can merge or cancel downstream.
		sc.scheduleOverlapCut(a, result.Overlap.Left(), result.Overlap.Right())
		sc.scheduleOverlapCut(b, result.Overlap.Left(), result.Overlap.Right())
	}
}

// interiorTo reports whether p lies strictly inside e's current edge,
// i.e. on neither endpoint.
func interiorTo(e *entry, p point.Point) bool {
	return !p.Eq(e.current.From()) && !p.Eq(e.current.To())
}

// schedule records p as e's pending cut unless e already has an
// earlier one. Keeping only the sweep-earliest cut per entry is
// enough: after e splits there, the right fragment re-enters the queue
// and any later crossing is rediscovered against the fragment.
func (sc *Scope) schedule(e *entry, p point.Point) {
	if e.hasCross && !p.Less(e.crossAt) {
		return
	}
	e.crossAt, e.hasCross = p, true
	logf("scheduled cut at %v", p)
}

// scheduleOverlapCut offers the overlap endpoints left to right,
// taking the first that falls strictly inside e and has not already
// been swept past. Cutting one endpoint at a time is enough for the
// same reason as in schedule.
func (sc *Scope) scheduleOverlapCut(e *entry, candidates ...point.Point) {
	for _, p := range candidates {
		if p.X() < sc.x || !interiorTo(e, p) {
			continue
		}
		sc.schedule(e, p)
		return
	}
}

// wipe re-cuts the obstacles a snapped cut may have displaced: every
// other edge traversing p's column whose carrying line passes through
// the vertical band between the two cut edges' lines there and the
// snapped point itself. Bending such an edge through the same lattice
// point keeps the column's ordering intact; leaving it alone risks a
// micro-crossing behind the sweep once the cut edges bend.
func (sc *Scope) wipe(a, b *entry, p point.Point) {
	// A vertical cut edge has no single line-y at the column; the band
	// is built from the snapped point and whichever of the pair have
	// one.
	ys := []float64{float64(p.Y())}
	for _, e := range []*entry{a, b} {
		if !e.current.Segment().IsVertical() {
			ys = append(ys, lineYAt(e.current, p.X()))
		}
	}
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	for _, o := range sc.active {
		if o == a || o == b {
			continue
		}
		if !traverses(o.current, p.X()) || !interiorTo(o, p) {
			continue
		}
		if withinBand(lineYAt(o.current, p.X()), lo, hi) {
			logf("wiping obstacle %s through %v", o.current, p)
			sc.schedule(o, p)
		}
	}
}

// pin forces e to settle on the lattice at the current column, cutting
// it at the nearest integer y to its intercept (halves rounding up).
// Used when a crossing's snapped location can no longer be honored.
// Any other traverse sitting between the intercept and the pin target
// is wiped through the same point, exactly as wipe does for ordinary
// cuts.
func (sc *Scope) pin(e *entry) {
	if !traverses(e.current, sc.x) {
		return // endpoints on or beyond the column already sit on the lattice
	}
	target := point.NewUnchecked(sc.x, preferredY(e.current, sc.x))
	if !interiorTo(e, target) {
		return
	}
	logf("pinning %s to %v", e.current, target)
	sc.schedule(e, target)

	ye := lineYAt(e.current, sc.x)
	ty := float64(target.Y())
	for _, o := range sc.active {
		if o == e {
			continue
		}
		if !traverses(o.current, sc.x) || !interiorTo(o, target) {
			continue
		}
		if withinBand(lineYAt(o.current, sc.x), ye, ty) {
			logf("wiping obstacle %s through %v", o.current, target)
			sc.schedule(o, target)
		}
	}
}
