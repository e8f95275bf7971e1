package widgets

import (
	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
)

// Widget is the capability set every composable element satisfies: leaf
// controls, frames, spacers, and separators are all Widgets.
//
// Widgets are retained objects. A widget keeps its own geometry and state;
// frames reposition members by calling SetLocation during layout and query
// Width/Height when wrapping lines.
type Widget interface {
	// ProcessEvent reacts to an input event. Widgets that do not handle
	// input implement it as a no-op.
	ProcessEvent(event events.Event)

	// SetLocation moves the widget so its top-left corner is at (x, y).
	SetLocation(x, y float64)

	// Location returns the widget's top-left corner.
	Location() graphics.Offset

	// Width returns the widget's current width in pixels.
	Width() float64

	// Height returns the widget's current height in pixels.
	Height() float64

	// SetSize resizes the widget. Widgets that require positive dimensions
	// return an argument error for anything else; widgets that support
	// auto-sizing accept zero as a request to size from content.
	SetSize(w, h float64) error

	// IsVisible reports whether the widget participates in drawing and
	// event dispatch. Widgets start visible.
	IsVisible() bool

	// SetVisible shows or hides the widget.
	SetVisible(visible bool)

	// SetStyle applies a style table to the widget and, for containers, to
	// every member widget.
	SetStyle(m styles.Map)

	// IssueAutoResize asks the widget to recompute its size from its
	// content. Containers forward the request to members first.
	IssueAutoResize()

	// Draw renders the widget into the canvas. Hidden widgets draw
	// nothing.
	Draw(canvas graphics.Canvas)

	// IterateChildren calls fn for every member widget, depth first.
	// Leaf widgets implement it as a no-op.
	IterateChildren(fn func(Widget))
}

// Bounds returns the widget's on-screen rectangle.
func Bounds(w Widget) graphics.Rect {
	loc := w.Location()
	return graphics.RectFromLTWH(loc.X, loc.Y, w.Width(), w.Height())
}
