// Package colorwheel is the state and interaction core of a hue ring plus
// saturation/luminance pad color picker.
//
// A [Picker] owns the current color, a [Controller] turns pointer events into
// color changes and a [Widget] ties both to a [Renderer] and a [Geometry].
// Nothing in this package is safe for concurrent use: all calls are expected
// from the single UI event loop.
package colorwheel // import "fortio.org/colorwheel"

import (
	"fortio.org/colorwheel/codec"
	"fortio.org/log"
)

// DefaultColor is the initial color when none is configured.
const DefaultColor = "#808080"

// Picker holds the currently selected color. HSL is the ground truth, RGB and
// the hex string are derived from it on each change.
type Picker struct {
	hsl    codec.HSL
	rgb    codec.RGB
	hex    string
	swatch string
	invert bool
	set    bool // false after (re)linking, so the next change always notifies.

	target  Target
	detach  func()
	display func(p *Picker)
}

// NewPicker creates a picker at the given initial color (or [DefaultColor]
// when empty or invalid). No target is linked yet.
func NewPicker(initial string) *Picker {
	if initial == "" {
		initial = DefaultColor
	}
	if _, ok := codec.Unpack(initial); !ok {
		log.Warnf("Invalid initial color %q, using %s", initial, DefaultColor)
		initial = DefaultColor
	}
	p := &Picker{}
	p.SetColor(initial)
	return p
}

// SetColor changes the color using `#RRGGBB` or `#RGB` syntax. Unparseable
// input is ignored, as is a color equal to the current one.
func (p *Picker) SetColor(hex string) *Picker {
	rgb, ok := codec.Unpack(hex)
	if !ok {
		log.Debugf("Ignoring unparseable color %q", hex)
		return p
	}
	canonical := codec.Pack(rgb)
	if p.set && canonical == p.hex {
		return p
	}
	p.hex = canonical
	p.rgb = rgb
	p.hsl = codec.RGBToHSL(rgb)
	p.changed()
	return p
}

// SetHSL changes the color from an HSL triplet. There is no range check nor
// equality short circuit: every call notifies.
func (p *Picker) SetHSL(hsl codec.HSL) *Picker {
	p.hsl = hsl
	p.rgb = codec.HSLToRGB(hsl)
	p.hex = codec.Pack(p.rgb)
	p.changed()
	return p
}

func (p *Picker) changed() {
	p.set = true
	p.invert = p.hsl.L <= 0.5
	p.swatch = codec.Pack(codec.Hue(p.hsl.H))
	log.LogVf("Color changed to %s %s (invert %t)", p.hex, p.hsl, p.invert)
	if p.display != nil {
		p.display(p)
	}
	if p.target != nil {
		p.target.notify(p)
	}
}

// Hex is the canonical `#rrggbb` current color.
func (p *Picker) Hex() string {
	return p.hex
}

// RGB is the current color as [0,1] channels.
func (p *Picker) RGB() codec.RGB {
	return p.rgb
}

// HSL is the current color, the source of the other representations.
func (p *Picker) HSL() codec.HSL {
	return p.hsl
}

// Swatch is the pad backdrop: the current hue at full saturation and mid
// luminance, independent of the current saturation and luminance.
func (p *Picker) Swatch() string {
	return p.swatch
}

// Invert is true when the color is dark (luminance <= 0.5) and labels or
// markers drawn over it should be light.
func (p *Picker) Invert() bool {
	return p.invert
}

// IsSet is false right after [Picker.Link] until the next color change.
func (p *Picker) IsSet() bool {
	return p.set
}

// Link replaces the linked target (a [Callback], [Fields] or nil to unlink).
// The previous target's edit watchers are detached first and the color is
// reset to unset so the next change notifies the new target.
func (p *Picker) Link(target Target) *Picker {
	if p.detach != nil {
		p.detach()
		p.detach = nil
	}
	p.set = false
	p.target = target
	if target != nil {
		p.detach = target.attach(p)
	}
	return p
}
