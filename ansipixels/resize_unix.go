//go:build unix

package ansipixels

import (
	"os"
	"syscall"
)

// SIGWINCH redraws, the rest end the read loop with [ErrSignal].
var watchedSignals = []os.Signal{syscall.SIGWINCH, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

func isResize(s os.Signal) bool {
	return s == syscall.SIGWINCH
}
