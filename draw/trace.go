package draw

import (
	"math"
	"sort"

	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/polyerr"
	"github.com/mikenye/polyclip/vector"
)

func angleBetween(from, to point.Point) vector.Pseudoangle {
	return vector.AngleOf(vector.Between(from, to))
}

// arm is one direction of travel along a kept boundary edge, indexed
// from one of its endpoints.
type arm struct {
	edge  int
	angle vector.Pseudoangle
}

// trace walks the kept boundary edges into closed paths. Edges are
// undirected here — final orientation is reassigned from nesting
// depth — and each is traversed exactly once. At a vertex where more
// than two kept edges meet, the walk continues along the arm that
// comes first counterclockwise past the direction back the way it
// came. Loops traced this way may share a vertex but never cross
// through it, and a pinch point is walked through rather than split: a
// bowtie traces as one path visiting its crossing twice.
//
// Besides the paths themselves, trace reports which path each kept
// edge landed in and, per path, a representative non-vertical edge —
// the anchor [Routes.CountAbove] starts its containment walk from.
func trace(kept []boundary) (paths [][]point.Point, pathOf []int, representative []int, err error) {
	arms := make(map[point.Point][]arm, 2*len(kept))
	for i, b := range kept {
		arms[b.from] = append(arms[b.from], arm{edge: i, angle: angleBetween(b.from, b.to)})
		arms[b.to] = append(arms[b.to], arm{edge: i, angle: angleBetween(b.to, b.from)})
	}
	for _, list := range arms {
		sort.Slice(list, func(i, j int) bool {
			if list[i].angle != list[j].angle {
				return list[i].angle < list[j].angle
			}
			return list[i].edge < list[j].edge
		})
	}

	used := make([]bool, len(kept))
	pathOf = make([]int, len(kept))
	for i := range pathOf {
		pathOf[i] = -1
	}

	for start := range kept {
		if used[start] {
			continue
		}
		id := len(paths)
		rep := -1

		var pts []point.Point
		cur := start
		at := kept[start].from
		head := at
		for {
			used[cur] = true
			pathOf[cur] = id
			if rep < 0 && !kept[cur].vertical() {
				rep = cur
			}
			pts = append(pts, at)

			far := kept[cur].to
			if at.Eq(far) {
				far = kept[cur].from
			}
			if far.Eq(head) {
				break
			}

			next, ok := continueFrom(arms[far], used, angleBetween(far, at))
			if !ok {
				return nil, nil, nil, polyerr.New(polyerr.Fatal, "unmatched chain end at", far)
			}
			cur = next
			at = far
		}
		if rep < 0 {
			rep = start
		}
		paths = append(paths, pts)
		representative = append(representative, rep)
	}
	return paths, pathOf, representative, nil
}

// continueFrom picks the unused arm turning first counterclockwise
// past the back-direction. An arm pointing exactly back the way the
// walk came sorts last, never first.
func continueFrom(list []arm, used []bool, back vector.Pseudoangle) (int, bool) {
	best, bestDelta := -1, 0.0
	for _, a := range list {
		if used[a.edge] {
			continue
		}
		delta := math.Mod(float64(a.angle)-float64(back), 4)
		if delta <= 0 {
			delta += 4
		}
		if best < 0 || delta < bestDelta {
			best, bestDelta = a.edge, delta
		}
	}
	return best, best >= 0
}
