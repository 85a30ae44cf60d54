package colorwheel

import (
	"fortio.org/colorwheel/codec"
	"fortio.org/log"
)

// Target is something a [Picker] keeps synchronized with its color:
// a [Callback] or [Fields].
type Target interface {
	// attach is called by Link and returns the function detaching the target.
	attach(p *Picker) (detach func())
	notify(p *Picker)
}

// Callback is invoked with the canonical hex color on every change.
type Callback func(hex string)

func (c Callback) attach(*Picker) func() {
	return func() {}
}

func (c Callback) notify(p *Picker) {
	c(p.Hex())
}

// Field is an editable value, typically a text input.
type Field interface {
	Value() string
	SetValue(v string)
	// Watch registers fn to be called with the new value on each user edit.
	// The returned function unregisters it.
	Watch(fn func(value string)) (unwatch func())
}

// Styler is optionally implemented by a [Field] to be painted with the
// current color (background) and a contrasting text color (foreground).
type Styler interface {
	Style(background, foreground string)
}

// Fields links a collection of editable values: they display the current
// color and their edits are read back into the picker.
type Fields []Field

func (fs Fields) attach(p *Picker) func() {
	unwatch := make([]func(), 0, len(fs))
	for _, f := range fs {
		unwatch = append(unwatch, f.Watch(func(v string) {
			if v != "" && v != p.Hex() {
				p.SetColor(v)
			}
		}))
	}
	// The first field's color wins; otherwise the current color is kept
	// (unset, so the next change still notifies).
	if len(fs) > 0 {
		if v := fs[0].Value(); v != "" {
			if _, ok := codec.Unpack(v); ok {
				p.SetColor(v)
			} else {
				log.Debugf("Linked field value %q is not a color, keeping %s", v, p.Hex())
			}
		}
	}
	return func() {
		for _, u := range unwatch {
			u()
		}
	}
}

func (fs Fields) notify(p *Picker) {
	fg := codec.Contrast(p.Invert())
	for _, f := range fs {
		if s, ok := f.(Styler); ok {
			s.Style(p.Hex(), fg)
		}
		// A field already denoting the color (e.g. `#abc` for #aabbcc, or mid
		// typing) is left alone.
		if c, ok := codec.Canonical(f.Value()); ok && c == p.Hex() {
			continue
		}
		f.SetValue(p.Hex())
	}
}

// TextField is an in memory [Field] and [Styler].
type TextField struct {
	value      string
	Background string
	Foreground string
	watchers   map[int]func(string)
	nextID     int
}

func NewTextField(value string) *TextField {
	return &TextField{value: value, watchers: make(map[int]func(string))}
}

func (t *TextField) Value() string {
	return t.value
}

// SetValue sets the value programmatically, watchers are not called.
func (t *TextField) SetValue(v string) {
	t.value = v
}

// Edit sets the value as a user would and notifies the watchers.
func (t *TextField) Edit(v string) {
	t.value = v
	for id := 0; id < t.nextID; id++ {
		if fn, ok := t.watchers[id]; ok {
			fn(v)
		}
	}
}

func (t *TextField) Watch(fn func(string)) func() {
	if t.watchers == nil {
		t.watchers = make(map[int]func(string))
	}
	id := t.nextID
	t.nextID++
	t.watchers[id] = fn
	return func() {
		delete(t.watchers, id)
	}
}

// Watchers returns how many watchers are currently registered.
func (t *TextField) Watchers() int {
	return len(t.watchers)
}

func (t *TextField) Style(background, foreground string) {
	t.Background = background
	t.Foreground = foreground
}
