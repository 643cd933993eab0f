package shape

import "github.com/mikenye/polyclip/polyerr"

func tooManyPaths(got, max int) error {
	return polyerr.New(polyerr.TooManyPaths, got, max)
}
