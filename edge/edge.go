// Package edge defines Edge, the clipping engine's unit of input: a
// directed segment contributed by one of the two operand polygons, plus
// a stable index that identifies it.
package edge

import (
	"fmt"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/polyerr"
	"github.com/mikenye/polyclip/rectangle"
	"github.com/mikenye/polyclip/segment"
)

// Operand identifies which of the two operand polygons contributed an
// edge. The Boolean predicate table (see the root package) keys off
// this to decide in/out membership per region.
type Operand uint8

const (
	// Subject is the first (left-hand) operand of a Boolean operation.
	Subject Operand = iota

	// Clipping is the second (right-hand) operand.
	Clipping
)

// String returns the name of the operand.
func (o Operand) String() string {
	switch o {
	case Subject:
		return "Subject"
	case Clipping:
		return "Clipping"
	default:
		panic(fmt.Errorf("unsupported operand: %d", o))
	}
}

// Edge is a single directed segment contributed by one operand: From
// and To keep the order they were given to [New]. The root package
// passes them left to right (verticals bottom to top), and the drawing
// assembler ignores direction, reassigning orientation from nesting
// depth. Index is a stable mint order identifying the edge; it carries
// no geometric meaning, and neither the queue nor the sweep orders
// edges by it.
type Edge struct {
	from, to point.Point
	operand  Operand
	index    int
}

// New constructs an Edge from two endpoints. Returns a
// [polyerr.NullEdge] error if from and to coincide — a zero-length
// edge carries no direction and cannot participate in the sweep.
//
// index should be assigned by an indexer (normally [Queue.MintIndex])
// so that every edge of an operation, including those minted by
// splitting during the sweep, has its own index.
func New(from, to point.Point, operand Operand, index int) (Edge, error) {
	if from.Eq(to) {
		return Edge{}, polyerr.New(polyerr.NullEdge, from)
	}
	return Edge{from: from, to: to, operand: operand, index: index}, nil
}

// From returns the edge's starting point, as given to [New].
func (e Edge) From() point.Point { return e.from }

// To returns the edge's ending point.
func (e Edge) To() point.Point { return e.to }

// Operand returns which polygon contributed this edge.
func (e Edge) Operand() Operand { return e.operand }

// Index returns the edge's stable mint order.
func (e Edge) Index() int { return e.index }

// Segment returns the edge's undirected, canonically-ordered segment,
// for geometric queries (bounds, intersection, ordering) that don't
// care which way the edge points.
func (e Edge) Segment() segment.Segment {
	return segment.NewFromPoints(e.from, e.to)
}

// Bounds returns the edge's bounding box.
func (e Edge) Bounds() rectangle.Rectangle { return e.Segment().Bounds() }

// Reversed returns the same geometric edge traversed the other way.
func (e Edge) Reversed() Edge {
	return Edge{from: e.to, to: e.from, operand: e.operand, index: e.index}
}

// SplitAt divides the edge at p, a point assumed to lie on its segment,
// into a head (from -> p) and tail (p -> to) piece, each keeping the
// original operand and index. The sweep gives the tail a fresh index
// via [Queue.MintIndex] when it re-queues it.
func (e Edge) SplitAt(p point.Point) (head, tail Edge) {
	return Edge{from: e.from, to: p, operand: e.operand, index: e.index},
		Edge{from: p, to: e.to, operand: e.operand, index: e.index}
}

// WithIndex returns a copy of e with its index replaced.
func (e Edge) WithIndex(index int) Edge {
	e.index = index
	return e
}

// String renders the edge as "from->to [operand#index]".
func (e Edge) String() string {
	return fmt.Sprintf("%s->%s [%s#%d]", e.from, e.to, e.operand, e.index)
}
