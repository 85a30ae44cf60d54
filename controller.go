package colorwheel

import (
	"errors"

	"fortio.org/colorwheel/codec"
	"fortio.org/log"
)

var (
	// ErrCaptured is returned by [Controller.Down] while another gesture,
	// of any widget sharing the [Surface], is in progress.
	ErrCaptured = errors.New("pointer already captured by another gesture")
	// ErrGestureEnded is returned when moving a gesture after its Up().
	ErrGestureEnded = errors.New("gesture already ended")
)

// State of a [Controller].
type State int

const (
	Idle State = iota
	DraggingHue
	DraggingPad
)

func (s State) String() string {
	switch s {
	case DraggingHue:
		return "DraggingHue"
	case DraggingPad:
		return "DraggingPad"
	default:
		return "Idle"
	}
}

// Surface is the interactive area widgets are placed on (the page, the
// terminal screen). Pointer capture is per surface: at most one gesture is
// active at a time across all the widgets sharing it.
type Surface struct {
	active *Gesture
}

// NewSurface returns a surface with no gesture in progress.
func NewSurface() *Surface {
	return &Surface{}
}

// Active returns the gesture currently holding the capture, if any.
func (s *Surface) Active() *Gesture {
	return s.active
}

// Controller interprets pointer events for one widget and drives its [Picker].
type Controller struct {
	picker  *Picker
	geom    Geometry
	surface *Surface
	origin  func() Point
	offset  Point
	current *Gesture
}

// NewController creates a controller. origin returns the widget's top left
// position in pointer coordinates; it is queried on each pointer down.
// A nil origin means the widget is at (0,0). A nil surface gets a private one.
func NewController(p *Picker, g Geometry, s *Surface, origin func() Point) *Controller {
	if s == nil {
		s = NewSurface()
	}
	return &Controller{picker: p, geom: g, surface: s, origin: origin}
}

// Gesture is the token for one drag, from pointer down to pointer up.
// Its mode is frozen at creation.
type Gesture struct {
	c     *Controller
	mode  DragMode
	ended bool
}

func (g *Gesture) Mode() DragMode {
	return g.mode
}

func (g *Gesture) Ended() bool {
	return g.ended
}

// Down starts a gesture: classifies ring vs pad from the down position,
// captures the surface and immediately applies the position (click to jump).
func (c *Controller) Down(ev Point) (*Gesture, error) {
	if c.surface.active != nil {
		log.LogVf("Pointer down at %v ignored, surface captured", ev)
		return nil, ErrCaptured
	}
	if c.origin != nil {
		c.offset = c.origin()
	}
	x, y := c.geom.Relative(ev, c.offset)
	g := &Gesture{c: c, mode: c.geom.Classify(x, y)}
	c.surface.active = g
	c.current = g
	log.Debugf("Pointer down at %v (%.1f, %.1f) -> %s", ev, x, y, g.mode)
	g.apply(x, y)
	return g, nil
}

// Move applies a pointer position to the picker according to the gesture's mode.
func (g *Gesture) Move(ev Point) error {
	if g.ended {
		return ErrGestureEnded
	}
	x, y := g.c.geom.Relative(ev, g.c.offset)
	g.apply(x, y)
	return nil
}

func (g *Gesture) apply(x, y float64) {
	p := g.c.picker
	cur := p.HSL()
	if g.mode == HueRing {
		p.SetHSL(codec.HSL{H: g.c.geom.Hue(x, y), S: cur.S, L: cur.L})
		return
	}
	sat, lum := g.c.geom.SatLum(x, y)
	p.SetHSL(codec.HSL{H: cur.H, S: sat, L: lum})
}

// Up ends the gesture and releases the capture. Calling it again is a no-op.
func (g *Gesture) Up() {
	if g.ended {
		return
	}
	g.ended = true
	if g.c.surface.active == g {
		g.c.surface.active = nil
	}
	if g.c.current == g {
		g.c.current = nil
	}
	log.Debugf("Pointer up, %s gesture done", g.mode)
}

// State is Idle or which drag is in progress.
func (c *Controller) State() State {
	if c.current == nil {
		return Idle
	}
	if c.current.mode == HueRing {
		return DraggingHue
	}
	return DraggingPad
}

// Gesture returns the in progress gesture of this controller, or nil.
func (c *Controller) Gesture() *Gesture {
	return c.current
}

// EventKind of a pointer [Event].
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
)

// Event is a pointer event with absolute coordinates.
type Event struct {
	Kind EventKind
	Point
}

// Handle dispatches a stream of events: down starts a gesture, moves and up
// go to this controller's gesture and are ignored when there is none.
func (c *Controller) Handle(ev Event) error {
	switch ev.Kind {
	case PointerDown:
		if c.current != nil {
			// Missed the up (e.g. released outside the terminal): restart.
			c.current.Up()
		}
		_, err := c.Down(ev.Point)
		return err
	case PointerMove:
		if c.current == nil {
			return nil
		}
		return c.current.Move(ev.Point)
	case PointerUp:
		if c.current != nil {
			c.current.Up()
		}
	}
	return nil
}
