package ansipixels

import (
	"bytes"

	"fortio.org/colorwheel"
)

// MouseClickOn reports button presses and releases only.
func (ap *AnsiPixels) MouseClickOn() {
	ap.WriteString("\033[?1000h")
}

func (ap *AnsiPixels) MouseClickOff() {
	ap.WriteString("\033[?1000l")
}

// MouseTrackingOn reports all motion, with or without a button down.
func (ap *AnsiPixels) MouseTrackingOn() {
	ap.WriteString("\033[?1003h")
}

func (ap *AnsiPixels) MouseTrackingOff() {
	ap.WriteString("\033[?1003l")
}

var mouseDataPrefix = []byte{0x1b, '[', 'M'}

// MouseDecode decodes a single X10 encoded mouse event (ESC [ M b x y) out
// of Data and sets Mouse, Mx, My and Mbuttons. It returns false when there
// is no complete event in Data.
func (ap *AnsiPixels) MouseDecode() bool {
	ap.Mouse = false
	idx := bytes.Index(ap.Data, mouseDataPrefix)
	if idx == -1 {
		return false
	}
	start := idx + len(mouseDataPrefix)
	if start+3 > len(ap.Data) {
		return false
	}
	b := ap.Data[start]
	x := ap.Data[start+1]
	y := ap.Data[start+2]
	ap.Data = append(ap.Data[:idx], ap.Data[start+3:]...)
	ap.Mx = int(x) - 32
	ap.My = int(y) - 32
	ap.Mbuttons = int(b) - 32
	ap.Mouse = true
	return true
}

// MouseDecodeAll decodes all the mouse events available, calling OnMouse for
// each. Mouse stays true if at least one was decoded, the fields hold the last.
func (ap *AnsiPixels) MouseDecodeAll() {
	gotMouse := false
	for ap.MouseDecode() {
		gotMouse = true
		if ap.OnMouse != nil {
			ap.OnMouse()
		}
	}
	ap.Mouse = gotMouse
}

const (
	MouseLeft       = 0b00
	MouseMiddle     = 0b01
	MouseRight      = 0b10
	MouseRelease    = 0b11
	MouseMove       = 0b100000
	Shift           = 0b000100
	Alt             = 0b001000
	Ctrl            = 0b010000
	AllModifiers    = Shift | Alt | Ctrl
	AnyModifierMask = ^AllModifiers
)

func (ap *AnsiPixels) LeftClick() bool {
	return ap.Mouse && ((ap.Mbuttons & AnyModifierMask) == MouseLeft)
}

func (ap *AnsiPixels) LeftDrag() bool {
	return ap.Mouse && ((ap.Mbuttons & AnyModifierMask) == MouseMove|MouseLeft)
}

// Release is a button release, or in tracking mode a motion with no button
// down (which also means any earlier press is over).
func (ap *AnsiPixels) Release() bool {
	return ap.Mouse && ((ap.Mbuttons & AnyModifierMask &^ MouseMove) == MouseRelease)
}

// PointerEvent converts the last mouse event to a widget pointer event in
// pixel coordinates: a column is 1 pixel wide and a row 2 pixels high, the
// point is the middle of the cell. ok is false for events the widget
// doesn't use (other buttons).
func (ap *AnsiPixels) PointerEvent() (ev colorwheel.Event, ok bool) {
	switch {
	case ap.LeftClick():
		ev.Kind = colorwheel.PointerDown
	case ap.LeftDrag():
		ev.Kind = colorwheel.PointerMove
	case ap.Release():
		ev.Kind = colorwheel.PointerUp
	default:
		return ev, false
	}
	ev.Point = CellToPixel(ap.Mx-1, ap.My-1)
	return ev, true
}

// CellToPixel returns the pixel coordinates of the middle of 0 based cell x, y.
func CellToPixel(x, y int) colorwheel.Point {
	return colorwheel.Point{X: float64(x) + 0.5, Y: float64(2*y) + 1}
}
