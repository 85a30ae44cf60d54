// Package ansipixels draws images and text on an ANSI terminal and decodes
// the keyboard and mouse input that comes back.
package ansipixels // import "fortio.org/colorwheel/ansipixels"

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fortio.org/colorwheel/terminal"
	"fortio.org/log"
	"fortio.org/safecast"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

var ErrSignal = errors.New("signal received")

type AnsiPixels struct {
	fd    int
	fdOut int
	Out   *bufio.Writer
	// In reports input, resizes and termination signals.
	In    *terminal.Reader
	state *term.State
	buf   [256]byte
	// Data is the input not consumed by the mouse decoder (keys typically).
	Data []byte
	W, H int // Width and Height in cells.
	// Mouse is true when the last read decoded at least one mouse event.
	Mouse    bool
	Mx, My   int // 1 based cell coordinates of the last mouse event.
	Mbuttons int
	// OnResize is called after W and H are updated on SIGWINCH.
	OnResize func() error
	// OnMouse is called for each decoded mouse event, in order.
	OnMouse func()
}

// NewAnsiPixels uses stdin and stdout. timeout bounds each input read so the
// caller's loop can run at least that often (0 means blocking reads).
func NewAnsiPixels(timeout time.Duration) *AnsiPixels {
	ap := &AnsiPixels{
		fd:    safecast.MustConv[int](os.Stdin.Fd()),
		fdOut: safecast.MustConv[int](os.Stdout.Fd()),
		Out:   bufio.NewWriter(os.Stdout),
		In:    terminal.NewReader(os.Stdin, timeout, watchedSignals...),
	}
	return ap
}

// Open switches to raw mode, reads the size and routes the log output
// through a CRLF translating writer.
func (ap *AnsiPixels) Open() (err error) {
	ap.state, err = term.MakeRaw(ap.fd)
	if err != nil {
		return err
	}
	log.SetOutput(&terminal.CRLFWriter{Out: os.Stderr})
	return ap.GetSize()
}

func (ap *AnsiPixels) GetSize() (err error) {
	ap.W, ap.H, err = term.GetSize(ap.fdOut)
	return
}

func (ap *AnsiPixels) Restore() {
	ap.ShowCursor()
	ap.EndSyncMode()
	_ = ap.Out.Flush()
	if ap.In != nil {
		ap.In.Stop()
	}
	if ap.state == nil {
		return
	}
	err := term.Restore(ap.fd, ap.state)
	if err != nil {
		log.Errf("Error restoring terminal: %v", err)
	}
	ap.state = nil
	log.SetOutput(os.Stderr)
}

func (ap *AnsiPixels) WriteString(s string) {
	_, _ = ap.Out.WriteString(s)
}

func (ap *AnsiPixels) WriteRune(r rune) {
	_, _ = ap.Out.WriteRune(r)
}

func (ap *AnsiPixels) ClearScreen() {
	ap.WriteString("\033[2J")
}

func (ap *AnsiPixels) ClearEndOfLine() {
	ap.WriteString("\033[K")
}

// MoveCursor takes 0 based coordinates.
func (ap *AnsiPixels) MoveCursor(x, y int) {
	ap.WriteString("\033[" + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H")
}

func (ap *AnsiPixels) WriteAtStr(x, y int, msg string) {
	ap.MoveCursor(x, y)
	ap.WriteString(msg)
}

func (ap *AnsiPixels) WriteAt(x, y int, msg string, args ...interface{}) {
	ap.WriteAtStr(x, y, fmt.Sprintf(msg, args...))
}

// ScreenWidth is the number of cells s takes on screen (wide runes count 2,
// combining marks 0). It does not skip escape sequences.
func ScreenWidth(s string) int {
	return uniseg.StringWidth(s)
}

func (ap *AnsiPixels) WriteCentered(y int, msg string, args ...interface{}) {
	s := fmt.Sprintf(msg, args...)
	x := (ap.W - ScreenWidth(s)) / 2
	ap.WriteAtStr(max(0, x), y, s)
}

func (ap *AnsiPixels) WriteRight(y int, msg string, args ...interface{}) {
	s := fmt.Sprintf(msg, args...)
	x := ap.W - ScreenWidth(s)
	ap.WriteAtStr(max(0, x), y, s)
}

// DrawBox draws a w by h box in the given style, top left corner at x, y.
// The inside is cleared.
func (ap *AnsiPixels) DrawBox(x, y, w, h int, style BoxStyle) {
	if w < 2 || h < 2 {
		return
	}
	edge := strings.Repeat(style.Horizontal, w-2)
	inside := style.Vertical + strings.Repeat(" ", w-2) + style.Vertical
	ap.WriteAtStr(x, y, style.TopLeft+edge+style.TopRight)
	for i := 1; i < h-1; i++ {
		ap.WriteAtStr(x, y+i, inside)
	}
	ap.WriteAtStr(x, y+h-1, style.BottomLeft+edge+style.BottomRight)
}

func (ap *AnsiPixels) HideCursor() {
	ap.WriteString("\033[?25l")
}

func (ap *AnsiPixels) ShowCursor() {
	ap.WriteString("\033[?25h")
}

// StartSyncMode asks the terminal to hold rendering until [EndSyncMode].
func (ap *AnsiPixels) StartSyncMode() {
	ap.WriteString("\033[?2026h")
}

func (ap *AnsiPixels) EndSyncMode() {
	ap.WriteString("\033[?2026l")
}

// ReadOrResizeOrSignal waits for input, a resize or a signal, whichever
// comes first. Resizes refresh W and H and call OnResize. Other signals
// return an error wrapping [ErrSignal]. Input is appended to Data after mouse
// events are decoded out of it (see [AnsiPixels.MouseDecodeAll]).
func (ap *AnsiPixels) ReadOrResizeOrSignal() error {
	n, sig, err := ap.In.Read(ap.buf[:])
	if err != nil {
		return err
	}
	if sig != nil {
		return ap.handleSignal(sig)
	}
	ap.Data = append(ap.Data, ap.buf[:n]...)
	ap.MouseDecodeAll()
	return nil
}

func (ap *AnsiPixels) handleSignal(s os.Signal) error {
	if !isResize(s) {
		return fmt.Errorf("%w: %v", ErrSignal, s)
	}
	if err := ap.GetSize(); err != nil {
		return err
	}
	log.LogVf("Resized to %dx%d", ap.W, ap.H)
	if ap.OnResize != nil {
		return ap.OnResize()
	}
	return nil
}
