package shape

import "github.com/mikenye/polyclip/options"

// Polygon is the final output of a Boolean operation: a flat list of
// [Path]s, each annotated with its nesting depth and parent, oriented
// so that even-depth paths are clockwise and odd-depth paths are
// counter-clockwise.
type Polygon struct {
	paths []Path
}

// NewPolygon builds a Polygon from already-placed, already-oriented
// paths, enforcing the MaxPaths option if set.
func NewPolygon(paths []Path, opts options.Options) (Polygon, error) {
	if opts.MaxPaths > 0 && len(paths) > opts.MaxPaths {
		return Polygon{}, tooManyPaths(len(paths), opts.MaxPaths)
	}
	return Polygon{paths: paths}, nil
}

// Paths returns the polygon's paths, outermost-first is not
// guaranteed; consult each Path's Depth and Parent for structure.
func (p Polygon) Paths() []Path {
	return p.paths
}

// Len returns the number of paths.
func (p Polygon) Len() int {
	return len(p.paths)
}
