// Package draw assembles the edges resolved by [sweep.Run] into closed
// paths.
//
// The sweep hands over a crossing-free edge set in which coincident
// runs have been cut to identical endpoints. Assembly happens in four
// stages:
//
//   - Coincident edges are merged into single boundaries carrying a
//     per-operand crossing [Parity]; boundaries even on both operands
//     (a hair retraced over itself, or the two operands cancelling)
//     disappear here.
//   - A second left-to-right column walk — a lightweight rerun of the
//     active-list bookkeeping [sweep.Scope] used, minus the crossing
//     logic — rebuilds each column's region structure bottom to top
//     and keeps exactly the boundaries whose two flanking regions
//     disagree under the operation's [Inside] predicate. For every
//     kept boundary the identity of the kept boundary above it is
//     recorded in [Routes], which is what the hierarchy resolver walks
//     to count path-in-path crossings without any further geometry.
//   - Vertical boundaries, which live on a single column and separate
//     its left side from its right rather than two regions stacked in
//     y, are classified separately by reading region membership off
//     exactly, as the limit approaching the column from each side at
//     the vertical's mid-height.
//   - The kept boundaries are traced into closed paths, turning
//     counterclockwise-first at shared vertices so that loops may
//     touch but never cross.
//
// Orientation of the traced paths is deliberately arbitrary: the
// hierarchy resolver reassigns winding from nesting depth, so nothing
// here tracks which way the input rings were wound.
package draw
