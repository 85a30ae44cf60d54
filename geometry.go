package colorwheel

import (
	"math"

	"fortio.org/colorwheel/codec"
)

// Point is a position in widget pixels (integers for markers) or
// pointer coordinates.
type Point struct {
	X, Y float64
}

// DragMode is which part of the widget a gesture drives.
type DragMode int

const (
	HueRing DragMode = iota
	SatLumPad
)

func (m DragMode) String() string {
	if m == HueRing {
		return "HueRing"
	}
	return "SatLumPad"
}

// Geometry of a widget of a given width. Only [NewGeometry] should create one.
type Geometry struct {
	Width      int
	Radius     float64 // of the hue ring (center of the band)
	Square     float64 // side of the saturation/luminance pad
	Mid        int     // center offset
	WheelWidth float64 // thickness of the hue ring band
}

// NewGeometry derives the ring and pad dimensions from the widget width.
func NewGeometry(width int) Geometry {
	w := float64(width)
	return Geometry{
		Width:      width,
		Radius:     0.433 * w,
		Square:     0.515 * w,
		Mid:        width / 2,
		WheelWidth: w / 10,
	}
}

// Relative converts a pointer position to coordinates relative to the widget
// center, given the widget's top left origin.
func (g Geometry) Relative(pointer, origin Point) (x, y float64) {
	mid := float64(g.Mid)
	return pointer.X - origin.X - mid, pointer.Y - origin.Y - mid
}

// Classify decides the drag mode from center relative coordinates: anything
// outside the pad square is the ring.
func (g Geometry) Classify(x, y float64) DragMode {
	if max(math.Abs(x), math.Abs(y))*2 > g.Square {
		return HueRing
	}
	return SatLumPad
}

// Hue at center relative coordinates, in [0,1), 0 at the top going clockwise.
func (g Geometry) Hue(x, y float64) float64 {
	hue := math.Atan2(x, -y) / (2 * math.Pi)
	if hue < 0 {
		hue++
	}
	return hue
}

// SatLum at center relative coordinates, clamped to [0,1]. Saturation grows
// to the left and luminance to the top.
func (g Geometry) SatLum(x, y float64) (sat, lum float64) {
	sat = clamp01(0.5 - x/g.Square)
	lum = clamp01(0.5 - y/g.Square)
	return sat, lum
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

// HueMarker is the (rounded) position of the hue marker on the ring.
func (g Geometry) HueMarker(hsl codec.HSL) Point {
	angle := hsl.H * 2 * math.Pi
	mid := float64(g.Mid)
	return Point{
		X: math.Round(mid + g.Radius*math.Sin(angle)),
		Y: math.Round(mid - g.Radius*math.Cos(angle)),
	}
}

// PadMarker is the (rounded) position of the saturation/luminance marker.
func (g Geometry) PadMarker(hsl codec.HSL) Point {
	mid := float64(g.Mid)
	return Point{
		X: math.Round(mid + g.Square*(0.5-hsl.S)),
		Y: math.Round(mid + g.Square*(0.5-hsl.L)),
	}
}
