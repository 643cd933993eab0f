package edge

import (
	"testing"

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

func TestNew_RejectsNullEdge(t *testing.T) {
	p := mustPoint(t, 1, 1)
	_, err := New(p, p, Subject, 0)
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	e, err := New(mustPoint(t, 0, 0), mustPoint(t, 5, 5), Clipping, 3)
	require.NoError(t, err)
	assert.Equal(t, Clipping, e.Operand())
	assert.Equal(t, 3, e.Index())
}

func TestQueue_PopBatchOrdersByYWithinColumn(t *testing.T) {
	q := NewQueue()
	e1, _ := New(mustPoint(t, 0, 5), mustPoint(t, 10, 5), Subject, q.MintIndex())
	e2, _ := New(mustPoint(t, 0, 1), mustPoint(t, 10, 1), Subject, q.MintIndex())
	e3, _ := New(mustPoint(t, 5, 0), mustPoint(t, 15, 0), Clipping, q.MintIndex())

	q.Insert(e1)
	q.Insert(e2)
	q.Insert(e3)

	x, ok := q.NextX()
	require.True(t, ok)
	assert.Equal(t, point.Coordinate(0), x)

	batch := q.PopBatch()
	require.Len(t, batch, 2)
	assert.Equal(t, point.Coordinate(1), batch[0].Segment().Left().Y())
	assert.Equal(t, point.Coordinate(5), batch[1].Segment().Left().Y())

	x, ok = q.NextX()
	require.True(t, ok)
	assert.Equal(t, point.Coordinate(5), x)

	batch = q.PopBatch()
	require.Len(t, batch, 1)
	assert.True(t, q.IsEmpty())
}
