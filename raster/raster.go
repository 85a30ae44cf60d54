// Package raster paints a color wheel widget into an image: the hue ring,
// the saturation/luminance pad and both markers. It implements
// [colorwheel.Renderer] so a widget keeps it current.
package raster // import "fortio.org/colorwheel/raster"

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"fortio.org/colorwheel"
	"fortio.org/colorwheel/codec"
	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/image/draw"
)

var (
	markerDark  = color.RGBA{A: 255}
	markerLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Canvas records what the widget asks to display; [Canvas.Paint] renders it.
type Canvas struct {
	geom   colorwheel.Geometry
	hue    float64
	hueAt  colorwheel.Point
	padAt  colorwheel.Point
	invert bool
	// MarkerRadius in pixels, derived from the width by default.
	MarkerRadius float64
}

func NewCanvas(g colorwheel.Geometry) *Canvas {
	return &Canvas{
		geom:         g,
		MarkerRadius: math.Max(2, float64(g.Width)/25),
	}
}

func (c *Canvas) Swatch(hex string) {
	rgb, ok := codec.Unpack(hex)
	if !ok {
		log.Warnf("Invalid swatch color %q", hex)
		return
	}
	c.hue = codec.RGBToHSL(rgb).H
}

func (c *Canvas) HueMarker(p colorwheel.Point) {
	c.hueAt = p
}

func (c *Canvas) PadMarker(p colorwheel.Point, invert bool) {
	c.padAt = p
	c.invert = invert
}

func toRGBA(rgb codec.RGB) color.RGBA {
	r, g, b := rgb.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Paint returns a new Width x Width image. Pixels outside the ring and the pad
// are transparent.
func (c *Canvas) Paint() *image.RGBA {
	g := c.geom
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Width))
	mid := float64(g.Mid)
	half := g.Square / 2
	for py := range g.Width {
		y := float64(py) + 0.5 - mid
		for px := range g.Width {
			x := float64(px) + 0.5 - mid
			if math.Abs(x) <= half && math.Abs(y) <= half {
				s, l := g.SatLum(x, y)
				img.SetRGBA(px, py, toRGBA(codec.HSLToRGB(codec.HSL{H: c.hue, S: s, L: l})))
				continue
			}
			a := coverage(math.Hypot(x, y)-g.Radius, g.WheelWidth)
			if a == 0 {
				continue
			}
			r, gg, b := codec.Hue(g.Hue(x, y)).Bytes()
			img.Set(px, py, color.NRGBA{R: r, G: gg, B: b, A: safecast.MustConv[uint8](math.Round(a * 255))})
		}
	}
	c.marker(img, c.hueAt, markerDark)
	padColor := markerDark
	if c.invert {
		padColor = markerLight
	}
	c.marker(img, c.padAt, padColor)
	return img
}

// marker draws an anti-aliased circle outline centered on pixel p.
func (c *Canvas) marker(img *image.RGBA, p colorwheel.Point, col color.RGBA) {
	r := c.MarkerRadius
	reach := int(math.Ceil(r + 2))
	cx, cy := int(p.X), int(p.Y)
	bounds := img.Bounds()
	for py := cy - reach; py <= cy+reach; py++ {
		for px := cx - reach; px <= cx+reach; px++ {
			if !image.Pt(px, py).In(bounds) {
				continue
			}
			d := math.Hypot(float64(px)-p.X, float64(py)-p.Y)
			a := coverage(d-r, 1.5)
			if a == 0 {
				continue
			}
			under := img.RGBAAt(px, py)
			if under.A < 255 {
				img.Set(px, py, color.NRGBA{R: col.R, G: col.G, B: col.B, A: safecast.MustConv[uint8](math.Round(a * 255))})
				continue
			}
			img.SetRGBA(px, py, BlendSRGB(under, col, a))
		}
	}
}

// WritePNG encodes img as PNG, enlarged scale times with nearest neighbor
// sampling when scale > 1.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}
