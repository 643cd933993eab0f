package draw

import (
	"testing"

	"github.com/mikenye/polyclip/edge"
	"github.com/mikenye/polyclip/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, x, y int32) point.Point {
	t.Helper()
	p, err := point.New(x, y)
	require.NoError(t, err)
	return p
}

func mustEdge(t *testing.T, from, to point.Point, op edge.Operand, idx int) edge.Edge {
	t.Helper()
	e, err := edge.New(from, to, op, idx)
	require.NoError(t, err)
	return e
}

func square(t *testing.T, x0, y0, x1, y1 int32, op edge.Operand) []edge.Edge {
	t.Helper()
	corners := []point.Point{
		mustPoint(t, x0, y0),
		mustPoint(t, x1, y0),
		mustPoint(t, x1, y1),
		mustPoint(t, x0, y1),
	}
	var out []edge.Edge
	for i := range corners {
		out = append(out, mustEdge(t, corners[i], corners[(i+1)%len(corners)], op, i))
	}
	return out
}

func insideSubject(p Partition) bool { return p.Subject }

func insideUnion(p Partition) bool { return p.Subject || p.Clipping }

func TestRun_TracesSingleClosedSquare(t *testing.T) {
	edges := square(t, 0, 0, 10, 10, edge.Subject)

	paths, routes, err := Run(edges, insideSubject)
	require.NoError(t, err)

	require.Len(t, paths, 1)
	assert.Len(t, paths[0], 4)
	assert.Equal(t, 1, routes.NumPaths())
}

func TestRun_UnionOfDisjointSquaresKeepsBoth(t *testing.T) {
	var edges []edge.Edge
	edges = append(edges, square(t, 0, 0, 10, 10, edge.Subject)...)
	edges = append(edges, square(t, 20, 0, 30, 10, edge.Clipping)...)

	paths, _, err := Run(edges, insideUnion)
	require.NoError(t, err)
	require.Len(t, paths, 2)
}

func TestRun_CoincidentSquaresUnionOnce(t *testing.T) {
	// The same square contributed by both operands: every boundary
	// carries odd parity for both, and union keeps each exactly once.
	var edges []edge.Edge
	edges = append(edges, square(t, 0, 0, 10, 10, edge.Subject)...)
	edges = append(edges, square(t, 0, 0, 10, 10, edge.Clipping)...)

	paths, _, err := Run(edges, insideUnion)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Len(t, paths[0], 4)
}

func TestMergeCoincident_CancelsRetracedHair(t *testing.T) {
	a := mustPoint(t, 5, 0)
	b := mustPoint(t, 10, 0)
	edges := []edge.Edge{
		mustEdge(t, a, b, edge.Subject, 0),
		mustEdge(t, b, a, edge.Subject, 1),
	}

	assert.Empty(t, mergeCoincident(edges), "an edge retraced over itself separates nothing")
}

func TestMergeCoincident_KeepsOddParities(t *testing.T) {
	a := mustPoint(t, 0, 0)
	b := mustPoint(t, 10, 5)
	edges := []edge.Edge{
		mustEdge(t, a, b, edge.Subject, 0),
		mustEdge(t, b, a, edge.Clipping, 1),
	}

	merged := mergeCoincident(edges)
	require.Len(t, merged, 1)
	assert.True(t, merged[0].parity.Subject)
	assert.True(t, merged[0].parity.Clipping)
	assert.True(t, merged[0].from.Less(merged[0].to), "merged boundary is canonicalized left to right")
}

func TestRun_BowtieTracesOnePinchedPath(t *testing.T) {
	// A bowtie already resolved at its crossing: four diagonal halves
	// meeting at the origin plus the two closing verticals. The walk
	// must pass through the pinch twice rather than splitting the
	// figure into two triangles.
	pts := map[string]point.Point{
		"bl": mustPoint(t, -10, -10),
		"tl": mustPoint(t, -10, 10),
		"br": mustPoint(t, 10, -10),
		"tr": mustPoint(t, 10, 10),
		"o":  mustPoint(t, 0, 0),
	}
	edges := []edge.Edge{
		mustEdge(t, pts["bl"], pts["o"], edge.Subject, 0),
		mustEdge(t, pts["o"], pts["tr"], edge.Subject, 1),
		mustEdge(t, pts["tr"], pts["br"], edge.Subject, 2),
		mustEdge(t, pts["br"], pts["o"], edge.Subject, 3),
		mustEdge(t, pts["o"], pts["tl"], edge.Subject, 4),
		mustEdge(t, pts["tl"], pts["bl"], edge.Subject, 5),
	}

	paths, _, err := Run(edges, insideSubject)
	require.NoError(t, err)

	require.Len(t, paths, 1)
	require.Len(t, paths[0], 6)
	crossings := 0
	for _, p := range paths[0] {
		if p.Eq(pts["o"]) {
			crossings++
		}
	}
	assert.Equal(t, 2, crossings, "the pinch point appears twice on the single traced path")
}

func TestRoutes_CountAboveParity(t *testing.T) {
	// A square with a square hole: the hole's boundaries each see one
	// outer boundary above them, the outer ones see none.
	var edges []edge.Edge
	edges = append(edges, square(t, 0, 0, 30, 30, edge.Subject)...)
	edges = append(edges, square(t, 10, 10, 20, 20, edge.Clipping)...)

	// Difference keeps the outer square and the hole's boundary.
	insideDifference := func(p Partition) bool { return p.Subject && !p.Clipping }

	paths, routes, err := Run(edges, insideDifference)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	// Tracing starts from the leftmost column, so path 0 is the outer
	// square and path 1 the hole.
	outer, hole := 0, 1
	repHole := routes.Representative(hole)
	assert.Equal(t, 1, routes.CountAbove(repHole, outer)%2, "hole's walk crosses the outer path an odd number of times")
	repOuter := routes.Representative(outer)
	assert.Equal(t, 0, routes.CountAbove(repOuter, hole)%2)
}
