package colorwheel

import (
	"fortio.org/colorwheel/codec"
)

// Renderer is the display side of a widget.
type Renderer interface {
	// Swatch sets the pad backdrop color (hue only).
	Swatch(hex string)
	HueMarker(p Point)
	// PadMarker moves the saturation/luminance marker; invert is true when the
	// color under it is dark.
	PadMarker(p Point, invert bool)
}

// Widget is one color picker: state, geometry and pointer controller.
type Widget struct {
	picker     *Picker
	geom       Geometry
	controller *Controller
	renderer   Renderer
}

// New creates a widget from a validated configuration. r may be nil.
// Widgets sharing a surface share pointer capture (see [Surface]).
func New(cfg Config, r Renderer, s *Surface, origin func() Point) (*Widget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &Widget{geom: NewGeometry(cfg.Width), renderer: r}
	w.picker = NewPicker(cfg.InitialColor)
	w.picker.display = w.display
	w.controller = NewController(w.picker, w.geom, s, origin)
	w.display(w.picker) // initial paint
	if cfg.OnColorChange != nil {
		w.picker.Link(cfg.OnColorChange)
	}
	return w, nil
}

func (w *Widget) display(p *Picker) {
	if w.renderer == nil {
		return
	}
	w.renderer.Swatch(p.Swatch())
	w.renderer.HueMarker(w.geom.HueMarker(p.HSL()))
	w.renderer.PadMarker(w.geom.PadMarker(p.HSL()), p.Invert())
}

func (w *Widget) SetColor(hex string) *Widget {
	w.picker.SetColor(hex)
	return w
}

func (w *Widget) SetHSL(hsl codec.HSL) *Widget {
	w.picker.SetHSL(hsl)
	return w
}

func (w *Widget) Link(t Target) *Widget {
	w.picker.Link(t)
	return w
}

func (w *Widget) Picker() *Picker {
	return w.picker
}

func (w *Widget) Controller() *Controller {
	return w.controller
}

func (w *Widget) Geometry() Geometry {
	return w.geom
}
