package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFromPoints_Canonicalizes(t *testing.T) {
	p := mustPoint(t, 0, 0)
	q := mustPoint(t, 5, 5)

	s1 := NewFromPoints(p, q)
	s2 := NewFromPoints(q, p)

	assert.True(t, s1.Eq(s2))
	assert.True(t, s1.Right().Eq(q))
	assert.True(t, s1.Left().Eq(p))
}

func TestNewFromPoints_TieBreaksOnY(t *testing.T) {
	lower := mustPoint(t, 5, 0)
	upper := mustPoint(t, 5, 5)

	s := NewFromPoints(upper, lower)
	assert.True(t, s.Left().Eq(lower), "equal x: left should be the point with smaller y")
}

func TestContainsPoint(t *testing.T) {
	s := NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 10, 10))
	assert.True(t, s.ContainsPoint(mustPoint(t, 5, 5)))
	assert.False(t, s.ContainsPoint(mustPoint(t, 5, 6)))
	assert.False(t, s.ContainsPoint(mustPoint(t, 11, 11)))
}

func TestIsVertical(t *testing.T) {
	assert.True(t, NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 0, 10)).IsVertical())
	assert.False(t, NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 1, 10)).IsVertical())
}
