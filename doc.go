// Package polyclip computes Boolean set operations — union,
// intersection, symmetric difference, and difference — on
// two-dimensional polygons whose vertices lie on a bounded integer
// lattice.
//
// Inputs may be arbitrarily self-intersecting, multi-ringed,
// degenerate, or nested; outputs are well-formed polygons whose paths
// are simple, properly oriented (outer rings clockwise, holes
// counter-clockwise), and annotated with parent/child nesting.
//
// The engine is a pipeline of five packages, leaves first: point and
// vector primitives, the edge queue ([edge]), the sweep ([sweep]) that
// resolves every crossing on the integer grid, the drawing assembler
// ([draw]) that stitches resolved edges into closed paths, and the
// path hierarchy resolver ([hierarchy]) that recovers nesting. This
// package wires them together behind four entry points — [Union],
// [Intersection], [Xor], and [Difference] — plus [Normalize], which
// runs the same pipeline against a single polygon to resolve its own
// self-intersections.
package polyclip
