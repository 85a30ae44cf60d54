// Package cli is the colorpick terminal color picker: a color wheel widget
// drawn with half block pixels, driven by the mouse, with a hex field that
// can also be typed into.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"fortio.org/cli"
	"fortio.org/colorwheel"
	"fortio.org/colorwheel/ansipixels"
	"fortio.org/colorwheel/codec"
	"fortio.org/colorwheel/raster"
	"fortio.org/log"
	"github.com/loov/hrtime"
)

const (
	// EnvPrefix for the environment variables overriding the defaults.
	EnvPrefix = "COLORWHEEL_"
	// Upper bound on how long we wait for input before checking signals.
	readTimeout = 250 * time.Millisecond
	minWidth    = 10
	fieldWidth  = 11 // box around " #rrggbb "
)

func Main() int {
	env, err := colorwheel.EnvConfig(EnvPrefix)
	if err != nil {
		return log.FErrf("Invalid %s environment: %v", EnvPrefix, err)
	}
	colorFlag := flag.String("color", env.InitialColor, "Initial `color` as #rrggbb or #rgb")
	widthFlag := flag.Int("width", 0,
		"Widget `width` in pixels, 0 to fit the terminal (or "+EnvPrefix+"WIDTH, default 194, for -png)")
	pngFlag := flag.String("png", "", "Write a snapshot of the widget to this PNG `file` and exit")
	scaleFlag := flag.Int("scale", 1, "Snapshot `scale` factor")
	noMouse := flag.Bool("nomouse", false, "Don't turn on mouse tracking")
	cli.Main()
	cfg := env
	cfg.InitialColor = *colorFlag
	if *widthFlag < 0 {
		return log.FErrf("Invalid -width %d", *widthFlag)
	}
	if *pngFlag != "" {
		if *widthFlag > 0 {
			cfg.Width = *widthFlag
		}
		return Snapshot(cfg, *pngFlag, *scaleFlag)
	}
	if err = cfg.Validate(); err != nil {
		return log.FErrf("Invalid configuration: %v", err)
	}
	ap := ansipixels.NewAnsiPixels(readTimeout)
	if err = ap.Open(); err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer ap.Restore()
	app := NewApp(ap, cfg.InitialColor, *widthFlag)
	app.Mouse = !*noMouse
	return app.Run()
}

// Snapshot paints a widget for cfg and writes it as a PNG file.
func Snapshot(cfg colorwheel.Config, path string, scale int) int {
	if scale < 1 {
		return log.FErrf("Invalid -scale %d", scale)
	}
	canvas := raster.NewCanvas(colorwheel.NewGeometry(max(cfg.Width, 1)))
	if _, err := colorwheel.New(cfg, canvas, nil, nil); err != nil {
		return log.FErrf("Invalid configuration: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return log.FErrf("Error creating %s: %v", path, err)
	}
	err = raster.WritePNG(f, canvas.Paint(), scale)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return log.FErrf("Error writing %s: %v", path, err)
	}
	log.Infof("Wrote %s (%d pixels, scale %d)", path, cfg.Width, scale)
	return 0
}

// App is the interactive picker.
type App struct {
	ap      *ansipixels.AnsiPixels
	widget  *colorwheel.Widget
	canvas  *raster.Canvas
	field   *colorwheel.TextField
	surface *colorwheel.Surface
	width   int // requested width, 0 to fit
	sx, sy  int // top left cell of the widget
	dirty   bool
	// Mouse turns on mouse tracking in [App.Run].
	Mouse      bool
	RenderTime time.Duration
}

func NewApp(ap *ansipixels.AnsiPixels, color string, width int) *App {
	a := &App{
		ap:      ap,
		field:   colorwheel.NewTextField(color),
		surface: colorwheel.NewSurface(),
		width:   width,
		sx:      1,
		sy:      1,
	}
	ap.OnResize = a.Layout
	ap.OnMouse = a.onMouse
	return a
}

// Layout (re)creates the widget to fit the terminal, keeping the color.
func (a *App) Layout() error {
	w := a.width
	if w == 0 {
		// rows: title, widget, blank, 3 for the field box, help.
		w = min(a.ap.W-2*a.sx, 2*(a.ap.H-a.sy-6))
	}
	w = max(w, minWidth)
	if a.widget != nil {
		a.widget.Link(nil) // stop watching the field
	}
	cfg := colorwheel.Config{InitialColor: a.Color(), Width: w, OnColorChange: colorwheel.Fields{a.field}}
	a.canvas = raster.NewCanvas(colorwheel.NewGeometry(w))
	widget, err := colorwheel.New(cfg, a.canvas, a.surface, a.origin)
	if err != nil {
		return err
	}
	a.widget = widget
	log.LogVf("Layout %dx%d: widget %d pixels", a.ap.W, a.ap.H, w)
	a.dirty = true
	return nil
}

// Color is the current color, or the field's content before the first layout.
func (a *App) Color() string {
	if a.widget == nil {
		return a.field.Value()
	}
	return a.widget.Picker().Hex()
}

// origin is the top left pixel of the widget.
func (a *App) origin() colorwheel.Point {
	return colorwheel.Point{X: float64(a.sx), Y: float64(2 * a.sy)}
}

// inside is true for pointer positions over the widget's square.
func (a *App) inside(p colorwheel.Point) bool {
	o := a.origin()
	w := float64(a.widget.Geometry().Width)
	return p.X >= o.X && p.Y >= o.Y && p.X < o.X+w && p.Y < o.Y+w
}

func (a *App) onMouse() {
	ev, ok := a.ap.PointerEvent()
	if !ok || a.widget == nil {
		return
	}
	if ev.Kind == colorwheel.PointerDown && !a.inside(ev.Point) {
		return
	}
	// Motion and releases without a press (hover) are frequent in tracking mode.
	if ev.Kind != colorwheel.PointerDown && a.widget.Controller().Gesture() == nil {
		return
	}
	if err := a.widget.Controller().Handle(ev); err != nil {
		log.Debugf("Pointer event %+v: %v", ev, err)
	}
	a.dirty = true
}

// HandleKeys consumes the typed input and returns true to quit.
func (a *App) HandleKeys() bool {
	if len(a.ap.Data) == 0 {
		return false
	}
	text := a.field.Value()
	edited := false
loop:
	for _, c := range a.ap.Data {
		switch {
		case c == 'q' || c == 'Q' || c == ansipixels.CtrlC || c == ansipixels.CtrlD:
			a.ap.Data = a.ap.Data[:0]
			return true
		case c == '#':
			text = "#"
			edited = true
		case isHexDigit(c):
			if len(text) < 7 {
				text += string(lower(c))
				edited = true
			}
		case c == ansipixels.Backspace || c == ansipixels.CtrlH:
			if text != "" {
				text = text[:len(text)-1]
				edited = true
			}
		case c == ansipixels.Escape:
			// Also the start of arrow keys and such, whose remaining bytes are dropped.
			a.field.SetValue(a.Color())
			edited = false
			a.dirty = true
			break loop
		}
	}
	a.ap.Data = a.ap.Data[:0]
	if edited {
		a.field.Edit(text)
		a.dirty = true
	}
	return false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Draw paints the widget, the field and the status line.
func (a *App) Draw() {
	ap := a.ap
	start := hrtime.Now()
	ap.StartSyncMode()
	ap.ClearScreen()
	ap.WriteAtStr(a.sx, 0, ansipixels.Bold+"colorwheel"+ansipixels.Reset)
	if err := ap.DrawTrueColorImage(a.sx, a.sy, a.canvas.Paint()); err != nil {
		log.Errf("Error drawing the wheel: %v", err)
	}
	a.RenderTime = hrtime.Since(start)
	y := a.sy + (a.widget.Geometry().Width+1)/2 + 1
	ap.DrawBox(a.sx, y, fieldWidth, 3, ansipixels.RoundBox)
	ap.WriteAtStr(a.sx+1, y+1, fieldStyle(a.field)+fmt.Sprintf(" %-7s ", a.field.Value())+ansipixels.Reset)
	p := a.widget.Picker()
	ap.WriteAt(a.sx+fieldWidth+1, y+1, "%s %s", p.HSL(), a.widget.Controller().State())
	ap.WriteAt(a.sx+fieldWidth+1, y+2, "%s%v%s", ansipixels.Dim, a.RenderTime, ansipixels.Reset)
	ap.WriteCentered(ap.H-1, "%sDrag on the wheel, type #hex, Esc to reset, Q to quit%s", ansipixels.Dim, ansipixels.Reset)
	ap.EndSyncMode()
	if err := ap.Out.Flush(); err != nil {
		log.Errf("Error flushing output: %v", err)
	}
	a.dirty = false
}

func fieldStyle(f *colorwheel.TextField) string {
	bg, ok := codec.Unpack(f.Background)
	if !ok {
		return ""
	}
	fg, _ := codec.Unpack(f.Foreground)
	return bg.Background() + fg.Foreground()
}

// Run is the event loop, until Q or a terminating signal.
func (a *App) Run() int {
	ap := a.ap
	ap.HideCursor()
	if a.Mouse {
		ap.MouseTrackingOn()
		defer ap.MouseTrackingOff()
	}
	if err := a.Layout(); err != nil {
		return log.FErrf("Error laying out the widget: %v", err)
	}
	a.Draw()
	for {
		err := ap.ReadOrResizeOrSignal()
		switch {
		case errors.Is(err, io.EOF):
			return 0
		case errors.Is(err, ansipixels.ErrSignal):
			log.Infof("Exiting on %v", err)
			return 0
		case err != nil:
			return log.FErrf("Error reading input: %v", err)
		}
		if a.HandleKeys() {
			log.Infof("Picked %s", a.Color())
			return 0
		}
		if a.dirty {
			a.Draw()
		}
	}
}
