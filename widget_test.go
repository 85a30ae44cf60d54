package colorwheel_test

import (
	"errors"
	"testing"

	"fortio.org/colorwheel"
	"fortio.org/colorwheel/codec"
)

type fakeRenderer struct {
	swatch    string
	hue, pad  colorwheel.Point
	invert    bool
	callCount int
}

func (f *fakeRenderer) Swatch(hex string) {
	f.swatch = hex
	f.callCount++
}

func (f *fakeRenderer) HueMarker(p colorwheel.Point) {
	f.hue = p
}

func (f *fakeRenderer) PadMarker(p colorwheel.Point, invert bool) {
	f.pad = p
	f.invert = invert
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      colorwheel.Config
		expected error
	}{
		{"default", colorwheel.DefaultConfig(), nil},
		{"zero width", colorwheel.Config{InitialColor: "#fff", Width: 0}, colorwheel.ErrInvalidWidth},
		{"negative width", colorwheel.Config{InitialColor: "#fff", Width: -3}, colorwheel.ErrInvalidWidth},
		{"bad color", colorwheel.Config{InitialColor: "blue", Width: 10}, colorwheel.ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.expected) {
				t.Errorf("Validate() = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := colorwheel.DefaultConfig()
	if cfg.InitialColor != "#808080" || cfg.Width != 194 {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("CWTEST_WIDTH", "120")
	t.Setenv("CWTEST_INITIAL_COLOR", "#abc")
	cfg, err := colorwheel.EnvConfig("CWTEST_")
	if err != nil {
		t.Fatalf("EnvConfig: %v", err)
	}
	if cfg.Width != 120 || cfg.InitialColor != "#abc" {
		t.Errorf("Env not applied: %+v", cfg)
	}
	t.Setenv("CWTEST_WIDTH", "0")
	if _, err := colorwheel.EnvConfig("CWTEST_"); !errors.Is(err, colorwheel.ErrInvalidWidth) {
		t.Errorf("Expected invalid width from env, got %v", err)
	}
}

func TestNewWidgetRendersAndLinks(t *testing.T) {
	r := &fakeRenderer{}
	var got []string
	cfg := colorwheel.Config{
		InitialColor:  "#ff0000",
		Width:         200,
		OnColorChange: colorwheel.Callback(func(hex string) { got = append(got, hex) }),
	}
	w, err := colorwheel.New(cfg, r, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.swatch != "#ff0000" || r.hue != (colorwheel.Point{X: 100, Y: 13}) {
		t.Errorf("Initial paint: swatch %s hue marker %v", r.swatch, r.hue)
	}
	if r.pad != w.Geometry().PadMarker(w.Picker().HSL()) || r.pad.Y != 100 || !r.invert {
		t.Errorf("Initial pad marker %v invert %t", r.pad, r.invert)
	}
	if len(got) != 0 {
		t.Errorf("Linking a callback should not notify by itself: %v", got)
	}
	w.SetHSL(codec.HSL{H: 0.5, S: 0.5, L: 0.75})
	if r.swatch != "#00ffff" || r.invert {
		t.Errorf("After SetHSL swatch %s invert %t", r.swatch, r.invert)
	}
	if len(got) != 1 || got[0] != w.Picker().Hex() {
		t.Errorf("Callback got %v, picker at %s", got, w.Picker().Hex())
	}
	// Pointer drag through the widget updates the renderer too.
	calls := r.callCount
	if err := w.Controller().Handle(colorwheel.Event{Kind: colorwheel.PointerDown, Point: colorwheel.Point{X: 100, Y: 100}}); err != nil {
		t.Fatalf("Down: %v", err)
	}
	if r.callCount != calls+1 || r.pad != (colorwheel.Point{X: 100, Y: 100}) {
		t.Errorf("Down did not repaint: %d %v", r.callCount, r.pad)
	}
	_ = w.Controller().Handle(colorwheel.Event{Kind: colorwheel.PointerUp})
	if w.Geometry().Width != 200 {
		t.Errorf("Geometry width %d", w.Geometry().Width)
	}
}

func TestNewWidgetInvalid(t *testing.T) {
	if _, err := colorwheel.New(colorwheel.Config{InitialColor: "#fff"}, nil, nil, nil); !errors.Is(err, colorwheel.ErrInvalidWidth) {
		t.Errorf("Expected ErrInvalidWidth, got %v", err)
	}
}

func TestWidgetWithFields(t *testing.T) {
	f := colorwheel.NewTextField("#0000ff")
	w, err := colorwheel.New(colorwheel.Config{InitialColor: "#808080", Width: 100, OnColorChange: colorwheel.Fields{f}}, nil, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w.Picker().Hex() != "#0000ff" {
		t.Errorf("Field color not applied: %s", w.Picker().Hex())
	}
	w.SetColor("#00ff00")
	if f.Value() != "#00ff00" {
		t.Errorf("Field not updated: %q", f.Value())
	}
	w.Link(nil)
	if f.Watchers() != 0 {
		t.Errorf("Field still watched after unlink")
	}
}
