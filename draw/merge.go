package draw

import (
	"sort"

	"github.com/mikenye/polyclip/edge"
	"github.com/mikenye/polyclip/point"
)

// boundary is one merged run of coincident resolved edges: the
// canonical geometry (left endpoint first; verticals bottom first)
// plus the combined crossing parity of everything that landed on it.
type boundary struct {
	from, to point.Point
	parity   Parity
}

func (b boundary) vertical() bool {
	return b.from.X() == b.to.X()
}

// mergeCoincident groups the sweep's resolved edges by their canonical
// endpoints and reduces each group to its per-operand crossing parity.
// The sweep has already cut overlapping collinear runs at each other's
// endpoints, so coincident pieces arrive here with identical endpoints
// and collapse into a single boundary. Groups that come out even on
// both operands vanish entirely.
//
// The result is sorted by (from, to), which is exactly the admission
// order the column sweep wants.
func mergeCoincident(edges []edge.Edge) []boundary {
	type key struct{ from, to point.Point }
	parities := make(map[key]Parity, len(edges))
	for _, e := range edges {
		s := e.Segment()
		k := key{from: s.Left(), to: s.Right()}
		p := parities[k]
		switch e.Operand() {
		case edge.Subject:
			p.Subject = !p.Subject
		case edge.Clipping:
			p.Clipping = !p.Clipping
		}
		parities[k] = p
	}

	out := make([]boundary, 0, len(parities))
	for k, p := range parities {
		if p.None() {
			continue
		}
		out = append(out, boundary{from: k.from, to: k.to, parity: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].from.Eq(out[j].from) {
			return out[i].from.Less(out[j].from)
		}
		return out[i].to.Less(out[j].to)
	})
	return out
}
