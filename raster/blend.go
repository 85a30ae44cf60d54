package raster

import (
	"image/color"
	"math"

	"fortio.org/safecast"
)

// sRGB <-> linear helpers.
func srgbToLinear(c uint8) float64 {
	f := float64(c) / 255.0
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

func linearToSrgb(f float64) uint8 {
	if f <= 0.0 {
		return 0
	}
	if f >= 1.0 {
		return 255
	}
	var c float64
	if f <= 0.0031308 {
		c = f * 12.92
	} else {
		c = 1.055*math.Pow(f, 1./2.4) - 0.055
	}
	return safecast.MustConv[uint8](math.Round(c * 255.0))
}

// BlendSRGB is gamma aware blending of fg over an opaque bg.
func BlendSRGB(bg, fg color.RGBA, alpha float64) color.RGBA {
	alpha = clamp01(alpha)
	r := (1-alpha)*srgbToLinear(bg.R) + alpha*srgbToLinear(fg.R)
	g := (1-alpha)*srgbToLinear(bg.G) + alpha*srgbToLinear(fg.G)
	b := (1-alpha)*srgbToLinear(bg.B) + alpha*srgbToLinear(fg.B)
	return color.RGBA{R: linearToSrgb(r), G: linearToSrgb(g), B: linearToSrgb(b), A: 255}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// coverage is the anti-aliased fraction of a pixel at distance d from the
// middle line of a band of the given width.
func coverage(d, width float64) float64 {
	return clamp01(width/2 + 0.5 - math.Abs(d))
}
