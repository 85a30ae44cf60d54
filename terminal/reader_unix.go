//go:build unix

package terminal

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/sys/unix"
)

// Reader reads terminal input for an event loop: each Read returns whatever
// arrived within the timeout, or a pending signal (resize, interrupt...), so a
// single call site handles both.
type Reader struct {
	fd      int
	pollMs  int // -1 to block until input or a signal
	signals chan os.Signal
}

// NewReader reads from f waiting at most timeout per Read (0 means no timeout)
// and reports sigs in between.
func NewReader(f *os.File, timeout time.Duration, sigs ...os.Signal) *Reader {
	r := &Reader{
		fd:      safecast.MustConv[int](f.Fd()),
		pollMs:  -1,
		signals: make(chan os.Signal, 4),
	}
	if timeout > 0 {
		r.pollMs = safecast.MustConv[int](max(1, timeout.Milliseconds()))
	}
	if len(sigs) > 0 {
		signal.Notify(r.signals, sigs...)
	}
	return r
}

// Read returns the first pending signal if there is one. Otherwise it waits for
// input and reads it into buf; a timeout returns 0, nil, nil. A signal arriving
// during the wait is returned right away.
func (r *Reader) Read(buf []byte) (int, os.Signal, error) {
	if s := r.pending(); s != nil {
		return 0, s, nil
	}
	fds := []unix.PollFd{{Fd: safecast.MustConv[int32](r.fd), Events: unix.POLLIN}}
	ready, err := unix.Poll(fds, r.pollMs)
	if errors.Is(err, syscall.EINTR) {
		log.LogVf("Poll interrupted")
		return 0, r.pending(), nil
	}
	if err != nil {
		return 0, nil, err
	}
	if ready == 0 {
		return 0, r.pending(), nil
	}
	n, err := unix.Read(r.fd, buf)
	if err != nil {
		return 0, nil, err
	}
	if n == 0 {
		return 0, nil, io.EOF
	}
	return n, nil, nil
}

func (r *Reader) pending() os.Signal {
	select {
	case s := <-r.signals:
		return s
	default:
		return nil
	}
}

// Stop ends the signal reporting. Reads still work.
func (r *Reader) Stop() {
	signal.Stop(r.signals)
}
