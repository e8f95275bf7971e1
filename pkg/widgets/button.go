package widgets

import (
	"math"

	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
)

// colorPair is a button's back (frame) and front (face) fill.
type colorPair struct {
	back  graphics.Color
	front graphics.Color
}

// Button is a pressable rectangle: an outer frame with an inset face.
// Pointer-over highlights it, releasing the pointer over a highlighted
// button presses it, and a focused button also presses on Enter.
//
// Button is meant to be embedded; TextButton is the ready-made labeled
// kind. The hooks onSizeChanged and onLocationChanged let embedding
// types keep their extra drawables in place.
type Button struct {
	location graphics.Offset
	size     graphics.Size
	padding  float64

	reg   colorPair
	hover colorPair

	highlighted bool
	focused     bool
	hidden      bool

	onPress           func()
	onSizeChanged     func(oldW, oldH float64)
	onLocationChanged func(oldX, oldY float64)
}

// SetPressEvent installs the callback fired when the button is pressed.
func (b *Button) SetPressEvent(fn func()) { b.onPress = fn }

// Press fires the press callback directly.
func (b *Button) Press() {
	if b.onPress != nil {
		b.onPress()
	}
}

func (b *Button) bounds() graphics.Rect { return Bounds(b) }

// ProcessEvent updates highlight state and fires presses.
func (b *Button) ProcessEvent(ev events.Event) {
	switch e := ev.(type) {
	case events.PointerReleased:
		if b.highlighted && b.bounds().Contains(e.Pos) {
			b.Press()
		}
	case events.PointerMoved:
		if b.bounds().Contains(e.Pos) {
			b.highlight()
		} else {
			b.deselect()
		}
	case events.KeyPressed:
		if b.focused && e.Key == events.KeyEnter {
			b.Press()
		}
	case events.FocusLost, events.Resized, events.WindowClosed:
		b.deselect()
	}
}

// SetLocation moves the button.
func (b *Button) SetLocation(x, y float64) {
	old := b.location
	b.location = graphics.Offset{X: x, Y: y}
	if b.onLocationChanged != nil {
		b.onLocationChanged(old.X, old.Y)
	}
}

// Location returns the button's top-left corner.
func (b *Button) Location() graphics.Offset { return b.location }

// Width returns the button's width.
func (b *Button) Width() float64 { return b.size.Width }

// Height returns the button's height.
func (b *Button) Height() float64 { return b.size.Height }

// SetSize resizes the button. Both dimensions must be positive; a button
// that cannot be seen cannot be pressed.
func (b *Button) SetSize(w, h float64) error {
	if w <= 0 || h <= 0 {
		return errors.Newf("widgets.Button.SetSize", errors.KindArgument,
			"width and height must be positive (got %v by %v)", w, h)
	}
	old := b.size
	b.size = graphics.Size{Width: w, Height: h}
	if b.onSizeChanged != nil {
		b.onSizeChanged(old.Width, old.Height)
	}
	return nil
}

// IsVisible reports whether the button draws itself.
func (b *Button) IsVisible() bool { return !b.hidden }

// SetVisible shows or hides the button.
func (b *Button) SetVisible(v bool) { b.hidden = !v }

// SetStyle pulls the regular and hover color pairs and the face inset
// from m.
func (b *Button) SetStyle(m styles.Map) {
	styles.SetIfFound(m, styles.ButtonBackColor, &b.reg.back)
	styles.SetIfFound(m, styles.ButtonFrontColor, &b.reg.front)
	styles.SetIfFound(m, styles.ButtonHoverBackColor, &b.hover.back)
	styles.SetIfFound(m, styles.ButtonHoverFrontColor, &b.hover.front)
	styles.SetIfFound(m, styles.GlobalPadding, &b.padding)
}

func (b *Button) IssueAutoResize() {}

// Draw renders the frame and the inset face using the active color pair.
func (b *Button) Draw(c graphics.Canvas) {
	if b.hidden {
		return
	}
	colors := b.reg
	if b.highlighted {
		colors = b.hover
	}
	c.FillRect(b.bounds(), colors.back)
	inner := graphics.RectFromLTWH(
		b.location.X+b.padding, b.location.Y+b.padding,
		math.Max(b.size.Width-2*b.padding, 0),
		math.Max(b.size.Height-2*b.padding, 0))
	c.FillRect(inner, colors.front)
}

func (b *Button) IterateChildren(func(Widget)) {}

// AcceptsFocus reports whether the button can take keyboard focus.
func (b *Button) AcceptsFocus() bool { return !b.hidden }

// SetFocused notifies the button of focus gain or loss. A focused button
// shows its hover colors.
func (b *Button) SetFocused(focused bool) {
	b.focused = focused
	if focused {
		b.highlight()
	} else {
		b.deselect()
	}
}

// FocusBounds returns the button's on-screen rectangle.
func (b *Button) FocusBounds() graphics.Rect { return b.bounds() }

// IsHighlighted reports whether the button currently shows its hover
// colors.
func (b *Button) IsHighlighted() bool { return b.highlighted }

func (b *Button) highlight() { b.highlighted = true }

func (b *Button) deselect() { b.highlighted = false }
