//go:build !debug

package polyclip

// logf is compiled out entirely outside debug builds.
func logf(format string, v ...interface{}) {}
