package polyclip

import "github.com/mikenye/polyclip/polyerr"

// Re-exported so callers never need to import polyerr directly.
type (
	// Error is a structured error carrying an [ErrorKind].
	Error = polyerr.Error
	// ErrorKind classifies what went wrong.
	ErrorKind = polyerr.ErrorKind
)

const (
	ErrOutOfBounds  = polyerr.OutOfBounds
	ErrNotANumber   = polyerr.NotANumber
	ErrNullEdge     = polyerr.NullEdge
	ErrTooManyEdges = polyerr.TooManyEdges
	ErrTooManyPaths = polyerr.TooManyPaths
	ErrFatal        = polyerr.Fatal
)
