//go:build !unix

package ansipixels

import (
	"os"
	"syscall"
)

// No resize signal here: the size is only read at Open.
var watchedSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func isResize(os.Signal) bool {
	return false
}
