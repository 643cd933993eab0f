//go:build debug

package polyclip

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[polyclip DEBUG] ", log.LstdFlags)

func logf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
