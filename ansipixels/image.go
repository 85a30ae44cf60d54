package ansipixels

import (
	"fmt"
	"image"
	"image/color"
)

const (
	defaultBackground = "\033[49m"

	// Half block pixels: the other half shows the background color, so one
	// cell holds 2 vertical pixels.
	TopHalfPixel    = '▀'
	BottomHalfPixel = '▄'
)

func bgColor(c color.RGBA) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func fgColor(c color.RGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// DrawTrueColorImage draws img with its top left corner at cell sx, sy using
// half block characters, so each cell shows 2 vertical pixels. Pixels with 0
// alpha are left to the terminal's own background.
func (ap *AnsiPixels) DrawTrueColorImage(sx, sy int, img *image.RGBA) error {
	b := img.Bounds()
	var prevBG, prevFG color.RGBA
	haveBG, haveFG := false, false
	setBG := func(c color.RGBA) {
		if haveBG && c == prevBG {
			return
		}
		ap.WriteString(bgColor(c))
		prevBG, haveBG = c, true
	}
	setFG := func(c color.RGBA) {
		if haveFG && c == prevFG {
			return
		}
		ap.WriteString(fgColor(c))
		prevFG, haveFG = c, true
	}
	clearBG := func() {
		if haveBG {
			ap.WriteString(defaultBackground)
			haveBG = false
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		ap.MoveCursor(sx, sy+(y-b.Min.Y)/2)
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := color.RGBA{}
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			switch {
			case top.A == 0 && bottom.A == 0:
				clearBG()
				ap.WriteRune(' ')
			case top.A == 0:
				clearBG()
				setFG(bottom)
				ap.WriteRune(BottomHalfPixel)
			case bottom.A == 0:
				clearBG()
				setFG(top)
				ap.WriteRune(TopHalfPixel)
			case top == bottom:
				setBG(top)
				ap.WriteRune(' ')
			default:
				setBG(top)
				setFG(bottom)
				ap.WriteRune(BottomHalfPixel)
			}
		}
	}
	ap.WriteString(Reset)
	return ap.Out.Flush()
}
