// Package hierarchy resolves the nesting of the closed paths produced
// by [draw.Run]: which paths contain which, what depth each sits at,
// and which orientation (clockwise/counter-clockwise) it must end up
// with.
//
// Containment between two paths is decided without any further
// geometry, by walking [draw.Routes]: pick a representative edge of
// path A, count how many edges of path B lie above it by following the
// above-chain, and read containment off the parity of that count. A
// triangular [Matrix] stores every pairwise verdict;
// [Resolve] then assigns each path the smallest path that contains it
// as its parent, a depth equal to its nesting chain's length, and
// flips its point order where the depth-parity invariant
// (even depth clockwise, odd depth counter-clockwise) demands it.
package hierarchy
