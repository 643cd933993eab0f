package sweep

import (
	"testing"

	"github.com/mikenye/polyclip/edge"
	"github.com/mikenye/polyclip/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEdge(t *testing.T, x0, y0, x1, y1 int32) edge.Edge {
	t.Helper()
	e, err := edge.New(mustPoint(t, x0, y0), mustPoint(t, x1, y1), edge.Subject, 0)
	require.NoError(t, err)
	return e
}

func TestPreferredY_RoundsToNearestHalvesUp(t *testing.T) {
	// y = x/2: intercepts 0.5, 1.0, 1.5 at x = 1, 2, 3.
	e := mustEdge(t, 0, 0, 10, 5)

	assert.Equal(t, point.Coordinate(1), preferredY(e, 1), "0.5 rounds up")
	assert.Equal(t, point.Coordinate(1), preferredY(e, 2))
	assert.Equal(t, point.Coordinate(2), preferredY(e, 3), "1.5 rounds up")
}

func TestPreferredY_NegativeIntercepts(t *testing.T) {
	// y = -x/2: intercepts -0.5, -1.0, -1.5 at x = 1, 2, 3; halves
	// still round up (toward positive y).
	e := mustEdge(t, 0, 0, 10, -5)

	assert.Equal(t, point.Coordinate(0), preferredY(e, 1), "-0.5 rounds up to 0")
	assert.Equal(t, point.Coordinate(-1), preferredY(e, 2))
	assert.Equal(t, point.Coordinate(-1), preferredY(e, 3), "-1.5 rounds up to -1")
}

func TestTraverses(t *testing.T) {
	e := mustEdge(t, 0, 0, 10, 5)

	assert.True(t, traverses(e, 5))
	assert.False(t, traverses(e, 0), "start column is not a traversal")
	assert.False(t, traverses(e, 10), "end column is not a traversal")

	v := mustEdge(t, 3, 0, 3, 8)
	assert.False(t, traverses(v, 3), "a vertical never traverses its own column")
}

func TestWithinBand_OrderAndSlack(t *testing.T) {
	assert.True(t, withinBand(2.5, 2.0, 3.0))
	assert.True(t, withinBand(2.5, 3.0, 2.0), "bounds may come in either order")
	assert.True(t, withinBand(2.0, 2.0005, 3.0), "slack admits a hair outside")
	assert.False(t, withinBand(1.0, 2.0, 3.0))
}
