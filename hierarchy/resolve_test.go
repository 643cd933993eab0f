package hierarchy

import (
	"testing"

	"github.com/mikenye/polyclip/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve_OuterAndHole(t *testing.T) {
	// Two paths: 0 contains 1.
	m := NewMatrix(2)
	m.Set(0, 1, types.RelationshipContains)

	nodes := Resolve(m, []bool{true, true}) // both traced clockwise

	assert.Equal(t, 0, nodes[0].Depth)
	assert.Equal(t, -1, nodes[0].Parent)
	assert.False(t, nodes[0].Flip, "outer ring already clockwise at depth 0")

	assert.Equal(t, 1, nodes[1].Depth)
	assert.Equal(t, 0, nodes[1].Parent)
	assert.True(t, nodes[1].Flip, "hole traced clockwise must flip to counter-clockwise at depth 1")
}

func TestResolve_ThreeLevelNestingPicksImmediateParent(t *testing.T) {
	// 0 contains 1 contains 2.
	m := NewMatrix(3)
	m.Set(0, 1, types.RelationshipContains)
	m.Set(0, 2, types.RelationshipContains)
	m.Set(1, 2, types.RelationshipContains)

	nodes := Resolve(m, []bool{true, true, true})

	assert.Equal(t, -1, nodes[0].Parent)
	assert.Equal(t, 0, nodes[1].Parent)
	assert.Equal(t, 1, nodes[2].Parent, "path 2's immediate parent is 1, not 0")
	assert.Equal(t, 2, nodes[2].Depth)
}

func TestResolve_UnrelatedSiblingsHaveNoParent(t *testing.T) {
	m := NewMatrix(2)
	nodes := Resolve(m, []bool{true, false})

	assert.Equal(t, -1, nodes[0].Parent)
	assert.Equal(t, -1, nodes[1].Parent)
	assert.False(t, nodes[0].Flip)
	assert.True(t, nodes[1].Flip)
}
