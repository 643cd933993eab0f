package hierarchy

import (
	"github.com/mikenye/polyclip/draw"
	"github.com/mikenye/polyclip/polyerr"
	"github.com/mikenye/polyclip/rectangle"
	"github.com/mikenye/polyclip/types"
)

// Matrix stores every pairwise path relation as a
// [types.Relationship] ("disjoint", "contains", "contained by"). It
// is symmetric by construction (Set keeps both halves consistent via
// [types.Relationship.FlipContainment]), so only the triangle above
// the diagonal is ever computed.
type Matrix struct {
	n   int
	rel [][]types.Relationship
}

// NewMatrix returns an n-path matrix with every pair
// RelationshipDisjoint.
func NewMatrix(n int) *Matrix {
	rel := make([][]types.Relationship, n)
	for i := range rel {
		rel[i] = make([]types.Relationship, n)
	}
	return &Matrix{n: n, rel: rel}
}

// Set records path i's relation to path j, and keeps rel[j][i] as its
// flipped mirror.
func (m *Matrix) Set(i, j int, r types.Relationship) {
	m.rel[i][j] = r
	m.rel[j][i] = r.FlipContainment()
}

// Get returns path i's relation to path j.
func (m *Matrix) Get(i, j int) types.Relationship {
	return m.rel[i][j]
}

// Build computes the pairwise relation matrix for routes.NumPaths()
// paths, consulting bounds to skip pairs that cannot possibly nest
// (their bounding boxes don't even intersect), and walking routes'
// above-chain for the rest. Two paths disagreeing about which contains
// which (both counts odd) is a Fatal: it means the assembled edge set
// is not a valid set of simple, non-crossing paths.
func Build(routes *draw.Routes, bounds []rectangle.Rectangle) (*Matrix, error) {
	n := routes.NumPaths()
	m := NewMatrix(n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !bounds[i].Intersects(bounds[j]) {
				continue
			}

			repI, repJ := routes.Representative(i), routes.Representative(j)
			iInJ := routes.CountAbove(repI, j)%2 == 1
			jInI := routes.CountAbove(repJ, i)%2 == 1

			switch {
			case iInJ && jInI:
				return nil, polyerr.New(polyerr.Fatal, i, j)
			case iInJ:
				m.Set(i, j, types.RelationshipContainedBy)
				logf("path %d contained in path %d", i, j)
			case jInI:
				m.Set(i, j, types.RelationshipContains)
				logf("path %d contains path %d", i, j)
			}
		}
	}
	return m, nil
}
