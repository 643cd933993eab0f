package hierarchy

import "github.com/mikenye/polyclip/types"

// Node is one path's place in the nesting hierarchy.
type Node struct {
	// Depth is the number of paths that contain this one.
	Depth int
	// Parent is the index of the smallest (most immediate) containing
	// path, or -1 for a path with no parent.
	Parent int
	// Flip reports whether the path's point order must be reversed so
	// that its orientation matches its depth (even depth clockwise,
	// odd depth counter-clockwise).
	Flip bool
}

// Resolve assigns every path a depth, an optional parent, and an
// orientation-flip decision from the pairwise Matrix m. clockwise[i]
// reports whether path i's points, as traced, currently wind
// clockwise.
func Resolve(m *Matrix, clockwise []bool) []Node {
	n := len(clockwise)
	nodes := make([]Node, n)

	for i := 0; i < n; i++ {
		var containers []int
		for j := 0; j < n; j++ {
			if j != i && m.Get(i, j) == types.RelationshipContainedBy {
				containers = append(containers, j)
			}
		}

		nodes[i].Depth = len(containers)
		nodes[i].Parent = -1
		for _, j := range containers {
			if isImmediateParent(m, j, containers) {
				nodes[i].Parent = j
				break
			}
		}

		wantClockwise := nodes[i].Depth%2 == 0
		nodes[i].Flip = clockwise[i] != wantClockwise
	}
	return nodes
}

// isImmediateParent reports whether j is contained in every other
// member of containers — i.e. j is the most deeply nested of the
// paths that contain the path whose ancestor list this is, making it
// the immediate parent.
func isImmediateParent(m *Matrix, j int, containers []int) bool {
	for _, k := range containers {
		if k != j && m.Get(j, k) != types.RelationshipContainedBy {
			return false
		}
	}
	return true
}
