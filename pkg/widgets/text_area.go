package widgets

import (
	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
)

// UnassignedSize marks a TextArea dimension as unassigned: the text area
// reports the measured text extent for that dimension instead of a fixed
// one.
const UnassignedSize = -1.0

// TextArea displays a run of text. With no assigned size it shrinks to
// its text; with an assigned size it centers the text inside its bounds.
// The zero value is an empty text area with both dimensions unassigned.
type TextArea struct {
	text     string
	font     *graphics.Font
	color    graphics.Color
	location graphics.Offset

	// assigned dimensions, UnassignedSize when tracking the text
	boundsW float64
	boundsH float64

	textAt   graphics.Offset
	assigned bool // boundsW/boundsH initialized
	hidden   bool
}

func (t *TextArea) ensureInit() {
	if !t.assigned {
		t.boundsW = UnassignedSize
		t.boundsH = UnassignedSize
		t.assigned = true
	}
	if t.font == nil {
		t.font = graphics.DefaultFont()
	}
	if t.color == 0 {
		t.color = graphics.ColorWhite
	}
}

// SetText replaces the displayed text.
func (t *TextArea) SetText(text string) {
	t.text = text
	t.recomputeGeometry()
}

// Text returns the displayed text.
func (t *TextArea) Text() string { return t.text }

// SetFont sets the font used to measure and draw the text.
func (t *TextArea) SetFont(f *graphics.Font) {
	t.ensureInit()
	if f != nil {
		t.font = f
	}
	t.recomputeGeometry()
}

func (t *TextArea) ProcessEvent(events.Event) {}

// SetLocation moves the text area's top-left corner.
func (t *TextArea) SetLocation(x, y float64) {
	t.location = graphics.Offset{X: x, Y: y}
	t.recomputeGeometry()
}

// Location returns the text area's top-left corner.
func (t *TextArea) Location() graphics.Offset { return t.location }

func (t *TextArea) textSize() graphics.Size {
	t.ensureInit()
	return t.font.MeasureText(t.text)
}

// Width returns the assigned width, or the measured text width when
// unassigned.
func (t *TextArea) Width() float64 {
	t.ensureInit()
	if t.boundsW == UnassignedSize {
		return t.textSize().Width
	}
	return t.boundsW
}

// Height returns the assigned height, or the measured text height when
// unassigned.
func (t *TextArea) Height() float64 {
	t.ensureInit()
	if t.boundsH == UnassignedSize {
		return t.textSize().Height
	}
	return t.boundsH
}

// SetSize assigns fixed dimensions. Either dimension may be
// UnassignedSize to track the text extent instead; anything else must be
// non-negative.
func (t *TextArea) SetSize(w, h float64) error {
	const op = "widgets.TextArea.SetSize"
	if w != UnassignedSize && w < 0 {
		return errors.Newf(op, errors.KindArgument,
			"width must be non-negative or UnassignedSize (got %v)", w)
	}
	if h != UnassignedSize && h < 0 {
		return errors.Newf(op, errors.KindArgument,
			"height must be non-negative or UnassignedSize (got %v)", h)
	}
	t.ensureInit()
	t.boundsW = w
	t.boundsH = h
	t.recomputeGeometry()
	return nil
}

// SetWidth assigns only the width.
func (t *TextArea) SetWidth(w float64) error {
	t.ensureInit()
	return t.SetSize(w, t.boundsH)
}

// SetHeight assigns only the height.
func (t *TextArea) SetHeight(h float64) error {
	t.ensureInit()
	return t.SetSize(t.boundsW, h)
}

// IsVisible reports whether the text area draws itself.
func (t *TextArea) IsVisible() bool { return !t.hidden }

// SetVisible shows or hides the text area.
func (t *TextArea) SetVisible(v bool) { t.hidden = !v }

// SetStyle pulls the text color and font from m.
func (t *TextArea) SetStyle(m styles.Map) {
	t.ensureInit()
	if c, ok := styles.Find[graphics.Color](m, styles.TextColor); ok {
		t.color = c
	} else {
		t.color = graphics.ColorWhite
	}
	if f, ok := styles.Find[*graphics.Font](m, styles.GlobalFont); ok && f != nil {
		t.font = f
	}
	t.recomputeGeometry()
}

func (t *TextArea) IssueAutoResize() { t.recomputeGeometry() }

// Draw renders the text at its centered position.
func (t *TextArea) Draw(c graphics.Canvas) {
	if t.hidden {
		return
	}
	t.ensureInit()
	c.DrawText(t.text, t.textAt, t.font, t.color)
}

func (t *TextArea) IterateChildren(func(Widget)) {}

// recomputeGeometry centers the text inside assigned dimensions; an
// unassigned dimension pins the text to the top-left corner.
func (t *TextArea) recomputeGeometry() {
	t.ensureInit()
	ts := t.textSize()
	at := t.location
	if t.boundsW != UnassignedSize {
		at.X = t.location.X + (t.boundsW-ts.Width)/2
	}
	if t.boundsH != UnassignedSize {
		at.Y = t.location.Y + (t.boundsH-ts.Height)/2
	}
	t.textAt = at
}
