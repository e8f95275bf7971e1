package widgets

import (
	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
)

// HorizontalSpacer is a blank widget that expands to absorb a line's
// leftover space. Its width is assigned by the frame's layout pass, never
// by content; its height is zero, so it does not affect line height.
//
// Spacers are created by [WidgetAdder.AddHorizontalSpacer] and owned by the
// frame they were added to.
type HorizontalSpacer struct {
	location graphics.Offset
	width    float64
	hidden   bool
}

func (s *HorizontalSpacer) ProcessEvent(events.Event) {}

func (s *HorizontalSpacer) SetLocation(x, y float64) {
	s.location = graphics.Offset{X: x, Y: y}
}

func (s *HorizontalSpacer) Location() graphics.Offset { return s.location }

func (s *HorizontalSpacer) Width() float64 { return s.width }

// Height always reports zero; spacers do not participate in line height.
func (s *HorizontalSpacer) Height() float64 { return 0 }

// SetSize assigns the spacer's width; the height argument is ignored.
// Layout normally assigns spacer widths itself.
func (s *HorizontalSpacer) SetSize(w, _ float64) error {
	if w < 0 {
		return errors.Newf("widgets.HorizontalSpacer.SetSize", errors.KindArgument,
			"width must be non-negative, got %v", w)
	}
	s.width = w
	return nil
}

func (s *HorizontalSpacer) IsVisible() bool { return !s.hidden }

func (s *HorizontalSpacer) SetVisible(visible bool) { s.hidden = !visible }

func (s *HorizontalSpacer) SetStyle(styles.Map) {}

func (s *HorizontalSpacer) IssueAutoResize() {}

func (s *HorizontalSpacer) Draw(graphics.Canvas) {}

func (s *HorizontalSpacer) IterateChildren(func(Widget)) {}

// setWidth is the layout pass's entry point for spacer-width distribution.
func (s *HorizontalSpacer) setWidth(w float64) { s.width = w }

// LineSeparator is a zero-footprint marker that forces a line break in a
// frame's widget sequence. Each frame owns exactly one separator for its
// lifetime; [WidgetAdder.AddLineSeparator] inserts a reference to it, and
// the frame recognizes it by identity during layout.
//
// The struct must not be zero-sized: separate allocations of a zero-size
// type may share an address, which would defeat the identity check.
type LineSeparator struct {
	_ [1]byte
}

func (l *LineSeparator) ProcessEvent(events.Event) {}

func (l *LineSeparator) SetLocation(x, y float64) {}

func (l *LineSeparator) Location() graphics.Offset { return graphics.Offset{} }

func (l *LineSeparator) Width() float64 { return 0 }

func (l *LineSeparator) Height() float64 { return 0 }

func (l *LineSeparator) SetSize(w, h float64) error { return nil }

func (l *LineSeparator) IsVisible() bool { return true }

func (l *LineSeparator) SetVisible(bool) {}

func (l *LineSeparator) SetStyle(styles.Map) {}

func (l *LineSeparator) IssueAutoResize() {}

func (l *LineSeparator) Draw(graphics.Canvas) {}

func (l *LineSeparator) IterateChildren(func(Widget)) {}
