// Package terminal has the low level pieces shared by the terminal front end:
// raw mode friendly log output and reads with a timeout.
package terminal // import "fortio.org/colorwheel/terminal"

import (
	"bytes"
	"io"
)

// CRLFWriter adds the \r needed before each \n when the terminal is in raw
// mode. Use it as the logger output: `log.SetOutput(&terminal.CRLFWriter{Out: os.Stderr})`.
type CRLFWriter struct {
	// Out is the underlying writer to write to.
	Out io.Writer
}

var (
	lf   = []byte{'\n'}
	crlf = []byte{'\r', '\n'}
)

// Write does a single write to Out (or none for empty input) and reports
// len(buf) on success so callers don't see the extra \r bytes.
func (w *CRLFWriter) Write(buf []byte) (n int, err error) {
	if len(buf) == 0 {
		return 0, nil
	}
	out := buf
	if bytes.IndexByte(buf, '\n') >= 0 {
		out = bytes.ReplaceAll(buf, lf, crlf)
	}
	_, err = w.Out.Write(out)
	if err != nil {
		return 0, err
	}
	if flusher, ok := w.Out.(FlushWriter); ok {
		err = flusher.Flush()
	}
	return len(buf), err
}

type FlushWriter interface {
	io.Writer
	Flush() error
}
