package polyclip

import (
	"github.com/mikenye/polyclip/draw"
	"github.com/mikenye/polyclip/edge"
	"github.com/mikenye/polyclip/hierarchy"
	"github.com/mikenye/polyclip/options"
	"github.com/mikenye/polyclip/point"
	"github.com/mikenye/polyclip/polyerr"
	"github.com/mikenye/polyclip/rectangle"
	"github.com/mikenye/polyclip/shape"
	"github.com/mikenye/polyclip/sweep"
)

// Ring is one closed loop of vertices, in any orientation. A polygon
// passed to the operations below is one or more Rings (multi-ringed
// and self-intersecting input is accepted; the sweep resolves it).
type Ring = []point.Point

// Union returns the set of points inside subject, clipping, or both.
func Union(subject, clipping []Ring, opts ...options.Func) (Solution, error) {
	return run(OpUnion, subject, clipping, opts...)
}

// Intersection returns the set of points inside both subject and
// clipping.
func Intersection(subject, clipping []Ring, opts ...options.Func) (Solution, error) {
	return run(OpIntersection, subject, clipping, opts...)
}

// Difference returns the set of points inside subject but not
// clipping.
func Difference(subject, clipping []Ring, opts ...options.Func) (Solution, error) {
	return run(OpDifference, subject, clipping, opts...)
}

// Xor returns the set of points inside exactly one of subject and
// clipping (the symmetric difference).
func Xor(subject, clipping []Ring, opts ...options.Func) (Solution, error) {
	return run(OpXor, subject, clipping, opts...)
}

// Normalize resolves a single polygon's own self-intersections,
// producing the simple, properly-nested, properly-oriented
// equivalent: every point inside an odd number of the input's rings
// ends up inside the result exactly once.
func Normalize(rings []Ring, opts ...options.Func) (Solution, error) {
	return run(OpXor, rings, nil, opts...)
}

func run(op BooleanOp, subject, clipping []Ring, opts ...options.Func) (Solution, error) {
	cfg := options.Apply(options.Options{}, opts...)

	q := edge.NewQueue()
	if err := enqueue(q, subject, edge.Subject); err != nil {
		return Solution{}, err
	}
	if err := enqueue(q, clipping, edge.Clipping); err != nil {
		return Solution{}, err
	}
	if cfg.MaxEdges > 0 && q.Minted() > cfg.MaxEdges {
		return Solution{}, polyerr.New(polyerr.TooManyEdges, q.Minted(), cfg.MaxEdges)
	}

	logf("running %s over %d queued edges", op, q.Len())
	resolved := sweep.Run(q)
	rawPaths, routes, err := draw.Run(resolved, insideFor(op))
	if err != nil {
		return Solution{}, err
	}

	paths := make([]shape.Path, len(rawPaths))
	bounds := make([]rectangle.Rectangle, len(rawPaths))
	for i, pts := range rawPaths {
		paths[i] = shape.NewPath(pts)
		bounds[i] = paths[i].Bounds()
	}

	matrix, err := hierarchy.Build(routes, bounds)
	if err != nil {
		return Solution{}, err
	}

	clockwise := make([]bool, len(paths))
	for i, p := range paths {
		clockwise[i] = p.Clockwise()
	}
	nodes := hierarchy.Resolve(matrix, clockwise)

	for i, node := range nodes {
		if node.Flip {
			paths[i] = paths[i].Reversed()
		}
		paths[i] = paths[i].WithPlacement(node.Depth, node.Parent)
	}

	polygon, err := shape.NewPolygon(paths, cfg)
	if err != nil {
		return Solution{}, err
	}
	return Solution{op: op, polygon: polygon}, nil
}

func enqueue(q *edge.Queue, rings []Ring, operand edge.Operand) error {
	for _, ring := range rings {
		n := len(ring)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			from, to := ring[i], ring[(i+1)%n]
			if from.Eq(to) {
				continue
			}
			// Edges are canonicalized left-to-right (verticals bottom
			// to top) at ingest. The walk direction carries no
			// information the engine needs: region membership is
			// even-odd parity, and output winding is reassigned from
			// nesting depth.
			if to.Less(from) {
				from, to = to, from
			}
			e, err := edge.New(from, to, operand, q.MintIndex())
			if err != nil {
				return err
			}
			q.Insert(e)
		}
	}
	return nil
}
