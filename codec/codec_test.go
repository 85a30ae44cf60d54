package codec_test

import (
	"fmt"
	"testing"

	"fortio.org/colorwheel/codec"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats/scalar"
)

func closeRGB(a, b codec.RGB, tol float64) bool {
	return scalar.EqualWithinAbs(a.R, b.R, tol) &&
		scalar.EqualWithinAbs(a.G, b.G, tol) &&
		scalar.EqualWithinAbs(a.B, b.B, tol)
}

func TestUnpack(t *testing.T) {
	tests := []struct {
		input    string
		expected codec.RGB
		ok       bool
	}{
		{"#000000", codec.RGB{}, true},
		{"#ffffff", codec.RGB{R: 1, G: 1, B: 1}, true},
		{"#FF0000", codec.RGB{R: 1}, true},
		{"#00ff00", codec.RGB{G: 1}, true},
		{"#f00", codec.RGB{R: 1}, true},
		{"#fff", codec.RGB{R: 1, G: 1, B: 1}, true},
		{"#808080", codec.RGB{R: 128. / 255, G: 128. / 255, B: 128. / 255}, true},
		{"", codec.RGB{}, false},
		{"#", codec.RGB{}, false},
		{"#12345", codec.RGB{}, false},
		{"#1234567", codec.RGB{}, false},
		{"123456", codec.RGB{}, false},
		{"x123456", codec.RGB{}, false},
		{"f00f", codec.RGB{}, false},
		{"#zz0000", codec.RGB{}, false},
		{"#+10000", codec.RGB{}, false},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			rgb, ok := codec.Unpack(test.input)
			if ok != test.ok {
				t.Fatalf("Unpack(%q) ok = %t, expected %t", test.input, ok, test.ok)
			}
			if ok && !closeRGB(rgb, test.expected, 1e-12) {
				t.Errorf("Unpack(%q) = %v, expected %v", test.input, rgb, test.expected)
			}
		})
	}
}

func TestShorthandMatchesLongForm(t *testing.T) {
	for _, short := range []string{"#abc", "#123", "#F0a", "#000", "#999"} {
		long := "#" + string([]byte{short[1], short[1], short[2], short[2], short[3], short[3]})
		s, ok1 := codec.Unpack(short)
		l, ok2 := codec.Unpack(long)
		if !ok1 || !ok2 {
			t.Fatalf("unexpected parse failure %q %t / %q %t", short, ok1, long, ok2)
		}
		if !closeRGB(s, l, 1e-12) {
			t.Errorf("Unpack(%q) = %v != Unpack(%q) = %v", short, s, long, l)
		}
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		input    codec.RGB
		expected string
	}{
		{codec.RGB{}, "#000000"},
		{codec.RGB{R: 1, G: 1, B: 1}, "#ffffff"},
		{codec.RGB{R: 1, G: 0.5, B: 0}, "#ff8000"},
		{codec.RGB{R: 0.2, G: 0.4, B: 0.6}, "#336699"},
		{codec.RGB{R: 1. / 255, G: 15. / 255, B: 16. / 255}, "#010f10"},
	}
	for _, test := range tests {
		if got := codec.Pack(test.input); got != test.expected {
			t.Errorf("Pack(%v) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestPackOutOfRangeIsNotClamped(t *testing.T) {
	got := codec.Pack(codec.RGB{R: 2, G: 0, B: 0})
	if got != "#1fe0000" {
		t.Errorf("Pack of out of range red = %q, expected the raw 0x1fe byte", got)
	}
	got = codec.Pack(codec.RGB{R: -5. / 255, G: 1, B: 0.5})
	if got != "#0-5ff80" {
		t.Errorf("Pack of negative red = %q, expected #0-5ff80", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 7 {
			for b := 0; b < 256; b += 11 {
				hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
				rgb, ok := codec.Unpack(hex)
				if !ok {
					t.Fatalf("Unpack(%q) failed", hex)
				}
				if out := codec.Pack(rgb); out != hex {
					t.Fatalf("Pack(Unpack(%q)) = %q", hex, out)
				}
			}
		}
	}
}

func TestCanonical(t *testing.T) {
	c, ok := codec.Canonical("#ABC")
	if !ok || c != "#aabbcc" {
		t.Errorf("Canonical(#ABC) = %q %t", c, ok)
	}
	if _, ok := codec.Canonical("nope"); ok {
		t.Errorf("Canonical(nope) should fail")
	}
}

func TestGrayIsAchromatic(t *testing.T) {
	hsl := codec.RGBToHSL(codec.RGB{R: 0.5, G: 0.5, B: 0.5})
	if hsl.H != 0 || hsl.S != 0 || hsl.L != 0.5 {
		t.Errorf("RGBToHSL(gray) = %v, expected hue 0 sat 0 lum 0.5", hsl)
	}
}

func TestRGBToHSLPrimaries(t *testing.T) {
	tests := []struct {
		input    codec.RGB
		expected codec.HSL
	}{
		{codec.RGB{R: 1}, codec.HSL{H: 0, S: 1, L: 0.5}},
		{codec.RGB{G: 1}, codec.HSL{H: 1. / 3, S: 1, L: 0.5}},
		{codec.RGB{B: 1}, codec.HSL{H: 2. / 3, S: 1, L: 0.5}},
		{codec.RGB{R: 1, G: 1}, codec.HSL{H: 1. / 6, S: 1, L: 0.5}},
		{codec.RGB{G: 1, B: 1}, codec.HSL{H: 0.5, S: 1, L: 0.5}},
		// red/blue tie: only red contributes, hue comes out negative.
		{codec.RGB{R: 1, B: 1}, codec.HSL{H: -1. / 6, S: 1, L: 0.5}},
		{codec.RGB{}, codec.HSL{}},
		{codec.RGB{R: 1, G: 1, B: 1}, codec.HSL{L: 1}},
	}
	for _, test := range tests {
		hsl := codec.RGBToHSL(test.input)
		if !scalar.EqualWithinAbs(hsl.H, test.expected.H, 1e-9) ||
			!scalar.EqualWithinAbs(hsl.S, test.expected.S, 1e-9) ||
			!scalar.EqualWithinAbs(hsl.L, test.expected.L, 1e-9) {
			t.Errorf("RGBToHSL(%v) = %v, expected %v", test.input, hsl, test.expected)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	steps := 17
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j++ {
			for k := 0; k <= steps; k++ {
				in := codec.RGB{
					R: float64(i) / float64(steps),
					G: float64(j) / float64(steps),
					B: float64(k) / float64(steps),
				}
				hsl := codec.RGBToHSL(in)
				if hsl.L == 0 || hsl.L == 1 {
					continue
				}
				out := codec.HSLToRGB(hsl)
				if !closeRGB(in, out, 1e-3) {
					t.Errorf("Round trip %v -> %v -> %v", in, hsl, out)
				}
			}
		}
	}
}

func TestHSLToRGBMatchesColorful(t *testing.T) {
	for h := 0.0; h < 1; h += 0.05 {
		for s := 0.0; s <= 1; s += 0.25 {
			for l := 0.05; l < 1; l += 0.15 {
				ours := codec.HSLToRGB(codec.HSL{H: h, S: s, L: l})
				ref := colorful.Hsl(h*360, s, l)
				expected := codec.RGB{R: ref.R, G: ref.G, B: ref.B}
				if !closeRGB(ours, expected, 1e-3) {
					t.Errorf("HSLToRGB(%.2f,%.2f,%.2f) = %v, colorful says %v", h, s, l, ours, expected)
				}
			}
		}
	}
}

func TestHueToChannelWraps(t *testing.T) {
	// m1=0, m2=1 is the pure ramp.
	tests := []struct {
		h, expected float64
	}{
		{0, 0},
		{1. / 12, 0.5},
		{0.25, 1},
		{0.6, 0.4},
		{0.9, 0},
		{-0.75, 1},       // wraps to 0.25
		{1 + 1./12, 0.5}, // wraps to 1/12
	}
	for _, test := range tests {
		got := codec.HueToChannel(0, 1, test.h)
		if !scalar.EqualWithinAbs(got, test.expected, 1e-9) {
			t.Errorf("HueToChannel(0,1,%v) = %v, expected %v", test.h, got, test.expected)
		}
	}
}

func TestHueBackdrop(t *testing.T) {
	if got := codec.Pack(codec.Hue(0)); got != "#ff0000" {
		t.Errorf("Hue(0) = %s", got)
	}
	if got := codec.Pack(codec.Hue(0.5)); got != "#00ffff" {
		t.Errorf("Hue(0.5) = %s", got)
	}
}

func TestBytesClampAndANSI(t *testing.T) {
	r, g, b := codec.RGB{R: 1.5, G: -0.2, B: 0.5}.Bytes()
	if r != 255 || g != 0 || b != 128 {
		t.Errorf("Bytes() = %d %d %d", r, g, b)
	}
	c := codec.FromBytes(255, 0, 128)
	if fg := c.Foreground(); fg != "\033[38;2;255;0;128m" {
		t.Errorf("Foreground() = %q", fg)
	}
	if bg := c.Background(); bg != "\033[48;2;255;0;128m" {
		t.Errorf("Background() = %q", bg)
	}
	if codec.Contrast(true) != codec.White || codec.Contrast(false) != codec.Black {
		t.Errorf("Contrast mismatch")
	}
}
