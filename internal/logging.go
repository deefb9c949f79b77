// Package internal holds small shared helpers for the point-movement CLI.
package internal

import (
	"log"
	"os"
)

// InitLogging routes progress messages to stdout. The run narrates what it
// is reading and creating, the way the original toolbox reported progress.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
