// Package numeric provides small integer arithmetic helpers. No other
// package in this module imports it.
//
// There is no epsilon-based floating-point comparison here: the
// clipping lattice is exact integers, so equality and ordering never
// need a tolerance.
package numeric
