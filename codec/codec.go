// Package codec converts colors between hex strings, normalized RGB and HSL.
// Values stay [0,1] floats throughout, bytes only appear at the edges
// ([RGB.Bytes], ANSI output).
package codec // import "fortio.org/colorwheel/codec"

import (
	"fmt"
	"math"
	"strconv"

	"fortio.org/safecast"
)

// RGB is a color with each channel in [0,1]. No alpha.
type RGB struct {
	R, G, B float64
}

// HSL is hue [0,1) (wraps), saturation and luminance in [0,1].
type HSL struct {
	H, S, L float64
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.3f,%.3f,%.3f)", h.H, h.S, h.L)
}

const (
	White = "#ffffff"
	Black = "#000000"
)

// Unpack parses `#RRGGBB` or the `#RGB` shorthand. ok is false for anything
// else, which callers must treat as "ignore this color".
func Unpack(hex string) (RGB, bool) {
	var digits, div int
	switch len(hex) {
	case 7:
		digits, div = 2, 255
	case 4:
		digits, div = 1, 15
	default:
		return RGB{}, false
	}
	if hex[0] != '#' {
		return RGB{}, false
	}
	var ch [3]float64
	for i := range ch {
		start := 1 + i*digits
		v, err := strconv.ParseUint(hex[start:start+digits], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = float64(v) / float64(div)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// Pack formats rgb as canonical `#rrggbb`. Channels are expected in [0,1];
// out of range values are still formatted, not clamped.
func Pack(rgb RGB) string {
	return "#" + dec2hex(rgb.R) + dec2hex(rgb.G) + dec2hex(rgb.B)
}

// dec2hex pads anything below 16 with a single 0, negative values included
// (-5 is "0-5").
func dec2hex(c float64) string {
	v := int64(math.Round(c * 255))
	s := strconv.FormatInt(v, 16)
	if v < 16 {
		return "0" + s
	}
	return s
}

// Canonical returns the `#rrggbb` form of hex, or false if it can't be parsed.
func Canonical(hex string) (string, bool) {
	rgb, ok := Unpack(hex)
	if !ok {
		return "", false
	}
	return Pack(rgb), true
}

// RGBToHSL is the min/max/delta decomposition. When two channels tie for max
// only one of them contributes to the hue; grays get hue 0 and a red/blue tie
// yields -1/6, which HSLToRGB maps back to the same color.
func RGBToHSL(rgb RGB) HSL {
	r, g, b := rgb.R, rgb.G, rgb.B
	lo := min(r, g, b)
	hi := max(r, g, b)
	delta := hi - lo
	hsl := HSL{L: (lo + hi) / 2}
	if hsl.L > 0 && hsl.L < 1 {
		if hsl.L < 0.5 {
			hsl.S = delta / (2 * hsl.L)
		} else {
			hsl.S = delta / (2 - 2*hsl.L)
		}
	}
	if delta > 0 {
		if hi == r && hi != g {
			hsl.H += (g - b) / delta
		}
		if hi == g && hi != b {
			hsl.H += 2 + (b-r)/delta
		}
		if hi == b && hi != r {
			hsl.H += 4 + (r-g)/delta
		}
		hsl.H /= 6
	}
	return hsl
}

// HSLToRGB converts using the m1/m2 formulation.
func HSLToRGB(hsl HSL) RGB {
	h, s, l := hsl.H, hsl.S, hsl.L
	var m2 float64
	if l <= 0.5 {
		m2 = l * (s + 1)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2 - m2
	return RGB{
		R: HueToChannel(m1, m2, h+1/3.),
		G: HueToChannel(m1, m2, h),
		B: HueToChannel(m1, m2, h-1/3.),
	}
}

// HueToChannel wraps h once into [0,1] and evaluates the piecewise ramp.
func HueToChannel(m1, m2, h float64) float64 {
	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}
	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*h*6
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*(2/3.-h)*6
	}
	return m1
}

// Hue returns the fully saturated, mid luminance color of hue h,
// the backdrop of the saturation/luminance pad.
func Hue(h float64) RGB {
	return HSLToRGB(HSL{H: h, S: 1, L: 0.5})
}

// Contrast returns the label color to use over a background: white when
// invert is true (dark background), black otherwise.
func Contrast(invert bool) string {
	if invert {
		return White
	}
	return Black
}

func toByte(c float64) uint8 {
	return safecast.MustConv[uint8](math.Round(255 * min(1, max(0, c))))
}

// Bytes returns the clamped 8 bit channels.
func (c RGB) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// FromBytes is the inverse of [RGB.Bytes].
func FromBytes(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Terminal foreground color string for RGB.
func (c RGB) Foreground() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// Terminal background color string for RGB.
func (c RGB) Background() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}
