//go:build debug

package hierarchy

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[polyclip hierarchy DEBUG] ", log.LstdFlags)

func logf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
