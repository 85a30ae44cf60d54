//go:build !unix

package terminal

import (
	"io"
	"os"
	"os/signal"
	"time"
)

// Reader without a timeout: signals are only seen between reads.
type Reader struct {
	file    *os.File
	signals chan os.Signal
}

func NewReader(f *os.File, _ time.Duration, sigs ...os.Signal) *Reader {
	r := &Reader{file: f, signals: make(chan os.Signal, 4)}
	if len(sigs) > 0 {
		signal.Notify(r.signals, sigs...)
	}
	return r
}

func (r *Reader) Read(buf []byte) (int, os.Signal, error) {
	select {
	case s := <-r.signals:
		return 0, s, nil
	default:
	}
	n, err := r.file.Read(buf)
	if n == 0 && err == nil {
		err = io.EOF
	}
	return n, nil, err
}

func (r *Reader) Stop() {
	signal.Stop(r.signals)
}
