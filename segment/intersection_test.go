package segment

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

func TestIntersect_CrossingPoint(t *testing.T) {
	a := NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 10, 10))
	b := NewFromPoints(mustPoint(t, 0, 10), mustPoint(t, 10, 0))

	got := Intersect(a, b)
	require.Equal(t, IntersectionPoint, got.Type)
	assert.True(t, got.Point.Eq(mustPoint(t, 5, 5)))
}

func TestIntersect_Disjoint(t *testing.T) {
	a := NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 1, 1))
	b := NewFromPoints(mustPoint(t, 100, 100), mustPoint(t, 200, 200))

	got := Intersect(a, b)
	assert.Equal(t, IntersectionNone, got.Type)
}

func TestIntersect_Parallel(t *testing.T) {
	a := NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 10, 0))
	b := NewFromPoints(mustPoint(t, 0, 5), mustPoint(t, 10, 5))

	got := Intersect(a, b)
	assert.Equal(t, IntersectionNone, got.Type)
}

func TestIntersect_CollinearOverlap(t *testing.T) {
	a := NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 10, 0))
	b := NewFromPoints(mustPoint(t, 5, 0), mustPoint(t, 15, 0))

	got := Intersect(a, b)
	require.Equal(t, IntersectionOverlap, got.Type)
	assert.True(t, got.Overlap.Eq(NewFromPoints(mustPoint(t, 5, 0), mustPoint(t, 10, 0))))
}

func TestIntersect_CollinearTouchAtPoint(t *testing.T) {
	a := NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 10, 0))
	b := NewFromPoints(mustPoint(t, 10, 0), mustPoint(t, 20, 0))

	got := Intersect(a, b)
	require.Equal(t, IntersectionPoint, got.Type)
	assert.True(t, got.Point.Eq(mustPoint(t, 10, 0)))
}

func TestIntersect_HalfIntegerTieIsDeterministic(t *testing.T) {
	a := NewFromPoints(mustPoint(t, 0, 0), mustPoint(t, 2, 1))
	b := NewFromPoints(mustPoint(t, 0, 1), mustPoint(t, 2, 0))

	got1 := Intersect(a, b)
	got2 := Intersect(b, a)
	require.Equal(t, IntersectionPoint, got1.Type)
	require.Equal(t, IntersectionPoint, got2.Type)
	assert.True(t, got1.Point.Eq(got2.Point), "snapping must not depend on argument order")
}

func TestIntersect_HalfIntegerTieRoundsPerAxis(t *testing.T) {
	// Every pair crosses at (0.5, 0.5); the bisector of the two
	// downright directions decides each axis independently, so x and y
	// can round opposite ways.
	cases := []struct {
		name                   string
		a0, a1, b0, b1, expect [2]int32
	}{
		{"both up", [2]int32{0, 0}, [2]int32{1, 1}, [2]int32{-1, 0}, [2]int32{2, 1}, [2]int32{1, 1}},
		{"both up mirrored", [2]int32{0, 0}, [2]int32{1, 1}, [2]int32{-1, 1}, [2]int32{2, 0}, [2]int32{1, 1}},
		{"x up y down", [2]int32{0, 1}, [2]int32{1, 0}, [2]int32{-1, 0}, [2]int32{2, 1}, [2]int32{1, 0}},
		{"steep pair reversed", [2]int32{0, 1}, [2]int32{1, 0}, [2]int32{0, -1}, [2]int32{1, 2}, [2]int32{1, 0}},
		{"steep both up", [2]int32{0, 0}, [2]int32{1, 1}, [2]int32{0, -1}, [2]int32{1, 2}, [2]int32{1, 1}},
		{"steep both up mirrored", [2]int32{0, 0}, [2]int32{1, 1}, [2]int32{1, -1}, [2]int32{0, 2}, [2]int32{1, 1}},
		{"wide pair", [2]int32{1, 0}, [2]int32{0, 1}, [2]int32{1, 2}, [2]int32{0, -1}, [2]int32{1, 0}},
		{"wide pair mirrored", [2]int32{1, 0}, [2]int32{0, 1}, [2]int32{1, -1}, [2]int32{0, 2}, [2]int32{1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewFromPoints(mustPoint(t, tc.a0[0], tc.a0[1]), mustPoint(t, tc.a1[0], tc.a1[1]))
			b := NewFromPoints(mustPoint(t, tc.b0[0], tc.b0[1]), mustPoint(t, tc.b1[0], tc.b1[1]))

			got := Intersect(a, b)
			require.Equal(t, IntersectionPoint, got.Type)
			want := mustPoint(t, tc.expect[0], tc.expect[1])
			assert.True(t, got.Point.Eq(want), "got %s, want %s", got.Point, want)

			swapped := Intersect(b, a)
			require.Equal(t, IntersectionPoint, swapped.Type)
			assert.True(t, swapped.Point.Eq(want), "argument order must not change the snap")
		})
	}
}
