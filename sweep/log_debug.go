//go:build debug

package sweep

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[polyclip sweep DEBUG] ", log.LstdFlags)

func logf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
