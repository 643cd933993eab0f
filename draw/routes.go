package draw

// Routes records, for every edge the assembler kept, which other kept
// edge was immediately above it in the active list at the moment it
// was admitted, and which finished path it ended up belonging to.
// [hierarchy] walks the above-chain from a path's representative edge,
// counting how many of another path's edges it passes, to decide
// containment by parity — without ever testing a point against a
// polygon.
type Routes struct {
	above          []int // above[edgeIdx] = edgeIdx of the kept edge above it; -1 for none, and always -1 for verticals
	pathOf         []int // pathOf[edgeIdx] = path index this edge was traced into
	representative []int // representative[pathID] = a non-vertical edge index belonging to that path
}

// NumPaths returns how many closed paths were traced.
func (r *Routes) NumPaths() int {
	return len(r.representative)
}

// PathOf returns the path index a kept edge was traced into.
func (r *Routes) PathOf(edgeIdx int) int {
	return r.pathOf[edgeIdx]
}

// Representative returns one edge index belonging to the given path,
// suitable as the starting point for a containment walk.
func (r *Routes) Representative(pathID int) int {
	return r.representative[pathID]
}

// CountAbove walks upward from edgeIdx through the above-chain,
// counting how many edges belonging to path it passes before reaching
// open space. Its parity is what [hierarchy] uses to decide whether
// edgeIdx's path lies inside path.
func (r *Routes) CountAbove(edgeIdx, path int) int {
	count := 0
	for cur := r.above[edgeIdx]; cur != -1; cur = r.above[cur] {
		if r.pathOf[cur] == path {
			count++
		}
	}
	return count
}
