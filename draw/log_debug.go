//go:build debug

package draw

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[polyclip draw DEBUG] ", log.LstdFlags)

func logf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
