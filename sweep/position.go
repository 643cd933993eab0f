package sweep

import "github.com/mikenye/polyclip/point"

// Position identifies one point on the current column where one or
// more edges start. Entries admitted at the same point share a single
// Position, which is what the dirty set and the recheck fan walk use
// to treat a shared-vertex bundle as one schedulable unit.
type Position struct {
	Y point.Coordinate
}

func newPosition(y point.Coordinate) *Position {
	return &Position{Y: y}
}
