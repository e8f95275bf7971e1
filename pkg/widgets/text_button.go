package widgets

import (
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
)

// TextButton is a Button with a centered label. With no assigned size it
// auto-sizes to fit its label plus padding.
type TextButton struct {
	Button
	label TextArea
}

// NewTextButton returns a labeled button.
func NewTextButton(label string) *TextButton {
	t := &TextButton{}
	t.SetText(label)
	return t
}

// SetText replaces the label and recenters it.
func (t *TextButton) SetText(label string) {
	t.wireHooks()
	t.label.SetText(label)
	t.centerLabel()
}

// Text returns the label.
func (t *TextButton) Text() string { return t.label.Text() }

// SetStyle styles the button chrome and the label.
func (t *TextButton) SetStyle(m styles.Map) {
	t.wireHooks()
	t.Button.SetStyle(m)
	t.label.SetStyle(m)
	t.centerLabel()
}

// IssueAutoResize fits the button to its label when it has no size yet.
func (t *TextButton) IssueAutoResize() {
	t.wireHooks()
	if t.Width() > 0 && t.Height() > 0 {
		return
	}
	ts := t.label.textSize()
	w := ts.Width + 2*t.padding + 2
	h := ts.Height + 2*t.padding + 2
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	// ignore the error, the computed size is always positive
	_ = t.SetSize(w, h)
}

// Draw renders the button chrome then the label.
func (t *TextButton) Draw(c graphics.Canvas) {
	if !t.IsVisible() {
		return
	}
	t.Button.Draw(c)
	t.label.Draw(c)
}

// wireHooks connects the embedded Button's geometry hooks to label
// recentering. Done lazily so the zero value works.
func (t *TextButton) wireHooks() {
	if t.onSizeChanged == nil {
		t.onSizeChanged = func(_, _ float64) { t.centerLabel() }
	}
	if t.onLocationChanged == nil {
		t.onLocationChanged = func(_, _ float64) { t.centerLabel() }
	}
}

// centerLabel centers the label inside the button's current bounds.
func (t *TextButton) centerLabel() {
	ts := t.label.textSize()
	t.label.SetLocation(
		t.Location().X+(t.Width()-ts.Width)/2,
		t.Location().Y+(t.Height()-ts.Height)/2)
}
