// Package types defines small shared enums used across the polyclip
// engine — currently just [Relationship], describing how two closed
// paths of a clipped polygon nest (unrelated, container, contained).
//
// There is no generic numeric constraint here: every coordinate in
// this engine is a single concrete integer type ([point.Coordinate]),
// so there is nothing to parameterize over.
package types
