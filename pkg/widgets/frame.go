package widgets

import (
	"math"

	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/focus"
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
)

// DefaultPadding is the gap, in pixels, used between widgets and around
// the frame's interior when no style map provides global-padding.
const DefaultPadding = 5.0

// Frame is a container that owns no client widgets but arranges them on
// horizontal lines, left to right, wrapping when a line runs out of room.
// The zero value is a usable, empty, untitled frame.
//
// Populate a frame through BeginAddingWidgets; the returned WidgetAdder
// collects widgets and commits them all at once in Finish. Frames nest:
// adding a Frame (or any type embedding one) to another frame makes the
// outer frame position the inner one and route events to it.
type Frame struct {
	border FrameBorder

	widgets []Widget
	spacers []*HorizontalSpacer
	lineSep *LineSeparator

	padding    float64
	hasPadding bool

	focusHandler focus.Handler

	hidden bool

	// OnAutoResize, when set, runs during the auto-resize pass after the
	// frame's children have resized but before the frame fits itself.
	// Types embedding Frame use it to adjust contents to a new size.
	OnAutoResize func()
}

// frameRefer is implemented only by Frame; the promoted method lets a
// frame recognize nested frames among its widgets, including user types
// that embed Frame.
type frameRefer interface {
	frameRef() *Frame
}

func (f *Frame) frameRef() *Frame { return f }

// SetLocation moves the frame's top-left corner. Widgets are re-placed on
// the next layout pass; call UpdateGeometry to re-place them immediately.
func (f *Frame) SetLocation(x, y float64) {
	f.border.SetLocation(x, y)
	f.checkInvariants("widgets.Frame.SetLocation")
}

// Location returns the frame's top-left corner.
func (f *Frame) Location() graphics.Offset { return f.border.Location() }

// Width returns the frame's outer width.
func (f *Frame) Width() float64 { return f.border.Width() }

// Height returns the frame's outer height.
func (f *Frame) Height() float64 { return f.border.Height() }

// SetSize sets the frame's outer size and re-places its widgets. Negative
// dimensions are rejected.
func (f *Frame) SetSize(w, h float64) error {
	if w < 0 || h < 0 {
		return errors.Newf("widgets.Frame.SetSize", errors.KindArgument,
			"frame size may not be negative (got %v by %v)", w, h)
	}
	f.border.SetSize(w, h)
	f.checkInvariants("widgets.Frame.SetSize")
	return nil
}

// AutomaticallySetSize sizes the frame to fit its current widgets, one
// line per separator-delimited run.
func (f *Frame) AutomaticallySetSize() {
	w, h := f.computeSizeToFit()
	f.border.SetSize(w, h)
	f.checkInvariants("widgets.Frame.AutomaticallySetSize")
}

// SetTitle sets the frame's title bar text. An empty string removes the
// title bar.
func (f *Frame) SetTitle(title string) {
	f.border.SetTitle(title)
}

// Title returns the title bar text.
func (f *Frame) Title() string { return f.border.Title() }

// SetTitleSize sets the title text size in pixels.
func (f *Frame) SetTitleSize(size float64) { f.border.SetTitleSize(size) }

// SetFrameBorderSize sets the outline thickness around the frame.
func (f *Frame) SetFrameBorderSize(size float64) error {
	return f.border.SetBorderSize(size)
}

// SetDragEnabled enables or disables moving the frame by dragging its
// title bar.
func (f *Frame) SetDragEnabled(enabled bool) { f.border.SetDragEnabled(enabled) }

// HasDragEnabled reports whether drag-by-title is enabled.
func (f *Frame) HasDragEnabled() bool { return f.border.HasDragEnabled() }

// SetPadding overrides the gap between widgets. The next SetStyle call
// replaces it again.
func (f *Frame) SetPadding(p float64) {
	f.padding = p
	f.hasPadding = true
}

// Padding returns the gap used between widgets.
func (f *Frame) Padding() float64 {
	if !f.hasPadding {
		return DefaultPadding
	}
	return f.padding
}

// SetRegisterClickEvent installs a callback fired on a pointer press
// inside the frame's widget body. Its ClickResponse decides whether the
// press still reaches the frame's widgets.
func (f *Frame) SetRegisterClickEvent(fn func() ClickResponse) {
	f.border.SetRegisterClickEvent(fn)
}

// ResetRegisterClickEvent removes the click callback.
func (f *Frame) ResetRegisterClickEvent() { f.border.ResetRegisterClickEvent() }

// separator returns the frame's line separator sentinel, creating it on
// first use so the zero-value Frame works.
func (f *Frame) separator() *LineSeparator {
	if f.lineSep == nil {
		f.lineSep = &LineSeparator{}
	}
	return f.lineSep
}

// BeginAddingWidgets starts (re)populating the frame. The returned adder
// collects widgets; nothing changes on the frame until Finish. The adder
// carries no style map, so committed widgets keep their current styles.
func (f *Frame) BeginAddingWidgets() *WidgetAdder {
	return newWidgetAdder(f, nil, f.separator())
}

// BeginAddingWidgetsStyled is BeginAddingWidgets with a style map that
// Finish applies to the frame and every added widget before layout.
func (f *Frame) BeginAddingWidgetsStyled(m styles.Map) *WidgetAdder {
	return newWidgetAdder(f, m, f.separator())
}

// finalizeWidgets is the adder's commit. It verifies the handshake and
// the no-cycles rule, swaps in the new widget lists, and lays them out.
func (f *Frame) finalizeWidgets(widgets []Widget, spacers []*HorizontalSpacer,
	sep *LineSeparator, styleMap styles.Map) error {

	const op = "widgets.Frame.finalizeWidgets"
	if sep != f.lineSep {
		return errors.New(op, errors.KindConstruct,
			"widget adder was not created by this frame")
	}
	for _, w := range widgets {
		fr, ok := w.(frameRefer)
		if !ok {
			continue
		}
		inner := fr.frameRef()
		if inner == f || inner.containsFrame(f) {
			return errors.New(op, errors.KindConstruct,
				"a frame may not contain itself, directly or indirectly")
		}
	}

	f.widgets = widgets
	f.spacers = spacers
	if styleMap != nil {
		f.SetStyle(styleMap)
	}
	f.finalizeLayout()
	f.checkInvariants(op)
	return nil
}

// containsFrame reports whether other is reachable from f through nested
// frames.
func (f *Frame) containsFrame(other *Frame) bool {
	for _, w := range f.widgets {
		fr, ok := w.(frameRefer)
		if !ok {
			continue
		}
		inner := fr.frameRef()
		if inner == other || inner.containsFrame(other) {
			return true
		}
	}
	return false
}

// UpdateGeometry re-places the frame's widgets from its current location
// and size. Call it after mutating widget sizes outside the frame's own
// operations.
func (f *Frame) UpdateGeometry() {
	f.finalizeLayout()
	f.checkInvariants("widgets.Frame.UpdateGeometry")
}

// ProcessEvent routes an event to the border first, then to visible
// widgets and the focus handler unless the border consumed it.
func (f *Frame) ProcessEvent(ev events.Event) {
	resp := f.border.ProcessEvent(ev)
	if !resp.SkipOtherEvents {
		for _, w := range f.widgets {
			if w.IsVisible() {
				w.ProcessEvent(ev)
			}
		}
		f.focusHandler.ProcessEvent(ev)
	}
	if resp.ShouldUpdateGeometry {
		f.finalizeLayout()
	}
	f.checkInvariants("widgets.Frame.ProcessEvent")
}

// SetStyle styles the border, reads global-padding, and restyles every
// widget. A map without global-padding resets the gap to DefaultPadding.
func (f *Frame) SetStyle(m styles.Map) {
	f.border.SetStyle(m)
	if p, ok := styles.Find[float64](m, styles.GlobalPadding); ok {
		f.padding = p
	} else {
		f.padding = DefaultPadding
	}
	f.hasPadding = true
	for _, w := range f.widgets {
		w.SetStyle(m)
	}
}

// IsVisible reports whether the frame draws itself and its widgets.
func (f *Frame) IsVisible() bool { return !f.hidden }

// SetVisible shows or hides the frame.
func (f *Frame) SetVisible(v bool) { f.hidden = !v }

// IssueAutoResize asks every widget to adopt its natural size, runs the
// OnAutoResize hook, and, when the frame has no size yet, fits the frame
// to the result.
func (f *Frame) IssueAutoResize() {
	for _, w := range f.widgets {
		w.IssueAutoResize()
	}
	if f.OnAutoResize != nil {
		f.OnAutoResize()
	}
	if f.border.Width() == 0 || f.border.Height() == 0 {
		w, h := f.computeSizeToFit()
		f.border.SetSize(w, h)
	}
}

// Draw renders the border and every visible widget.
func (f *Frame) Draw(c graphics.Canvas) {
	if f.hidden {
		return
	}
	f.border.Draw(c)
	for _, w := range f.widgets {
		if w.IsVisible() {
			w.Draw(c)
		}
	}
}

// IterateChildren calls fn for every widget, depth first.
func (f *Frame) IterateChildren(fn func(Widget)) {
	for _, w := range f.widgets {
		fn(w)
		w.IterateChildren(fn)
	}
}

// finalizeLayout is the geometry pipeline: auto-resize children, settle
// the border, distribute spacer widths, place widgets on wrapped lines,
// descend into nested frames, and rebuild the focus chain.
func (f *Frame) finalizeLayout() {
	f.IssueAutoResize()
	f.border.UpdateGeometry()
	f.updateHorizontalSpacers()
	f.placeWidgets()

	for _, w := range f.widgets {
		if fr, ok := w.(frameRefer); ok {
			fr.frameRef().finalizeLayout()
		}
	}

	// vertical overflow is deliberately not handled here

	// hoist every descendant focus target into this frame's handler;
	// only the outermost frame routes focus
	var targets []focus.Target
	f.IterateChildren(func(w Widget) {
		if fr, ok := w.(frameRefer); ok {
			fr.frameRef().focusHandler.ClearWidgets()
		}
		if t, ok := w.(focus.Target); ok {
			targets = append(targets, t)
		}
	})
	f.focusHandler.TakeWidgets(targets)
}

// placeWidgets walks the widget list left to right, wrapping on line
// separators and on overflow past the frame's right limit. The padFix
// rewinds one padding unit when a spacer directly follows another widget,
// so spacers butt up against their neighbors.
func (f *Frame) placeWidgets() {
	pad := f.Padding()
	start := f.border.WidgetStart()
	rightLimit := f.border.Location().X + f.border.Width()

	startX := start.X + pad
	x := startX
	y := start.Y + pad
	lineHeight := 0.0
	padFix := 0.0

	newLine := func() {
		y += lineHeight + pad
		x = startX
		lineHeight = 0
		padFix = 0
	}

	for _, w := range f.widgets {
		if f.isLineSeparator(w) {
			newLine()
			continue
		}
		if x+f.widgetAdvance(w) > rightLimit {
			// w becomes the first widget of a fresh line
			newLine()
		}
		if f.isSpacer(w) {
			x += padFix
		}
		w.SetLocation(x, y)
		if h := w.Height(); h > lineHeight {
			lineHeight = h
		}
		x += f.widgetAdvance(w)
		padFix = -pad
	}
}

// isSpacer reports whether w is one of the frame's horizontal spacers.
func (f *Frame) isSpacer(w Widget) bool {
	_, ok := w.(*HorizontalSpacer)
	return ok
}

// isLineSeparator reports whether w is the frame's own separator sentinel.
func (f *Frame) isLineSeparator(w Widget) bool {
	return f.lineSep != nil && w == Widget(f.lineSep)
}

// widgetAdvance is the horizontal room w takes on its line: its width
// plus trailing padding, except spacers and separators which take only
// their bare width.
func (f *Frame) widgetAdvance(w Widget) float64 {
	if f.isSpacer(w) || f.isLineSeparator(w) {
		return w.Width()
	}
	return w.Width() + f.Padding()
}

// updateHorizontalSpacers walks the widget sequence the same way the
// placement pass will, and for each line (ended by a separator or an
// implicit wrap) divides the line's leftover width evenly among its
// spacers. Spacer widths themselves do not count as consumed space.
func (f *Frame) updateHorizontalSpacers() {
	if len(f.spacers) == 0 {
		return
	}
	avail := f.border.WidthAvailableForWidgets()
	pad := f.Padding()

	x := 0.0
	padFix := 0.0
	lineBegin := 0
	for i, w := range f.widgets {
		if f.isSpacer(w) {
			x += padFix
			padFix = 0
			continue
		}
		padFix = -pad
		step := f.widgetAdvance(w)

		if x+step > avail || f.isLineSeparator(w) {
			f.setSpacerWidths(f.widgets[lineBegin:i], math.Max(avail-x, 0))
			lineBegin = i
			x = 0
			padFix = 0
		}
		x += step
	}
	if lineBegin == len(f.widgets) {
		return
	}
	f.setSpacerWidths(f.widgets[lineBegin:], math.Max(avail-x, 0))
}

// setSpacerWidths gives each spacer on one line an equal share of the
// line's leftover space, less one padding unit, floored at zero.
func (f *Frame) setSpacerWidths(line []Widget, leftover float64) {
	count := 0
	for _, w := range line {
		if f.isSpacer(w) {
			count++
		}
	}
	if count == 0 {
		return
	}
	share := leftover/float64(count) - f.Padding()
	if share < 0 {
		share = 0
	}
	for _, w := range line {
		if sp, ok := w.(*HorizontalSpacer); ok {
			sp.setWidth(share)
		}
	}
}

// computeSizeToFit returns the outer size that fits the current widgets,
// one line per separator-delimited run. Spacers contribute no width of
// their own; a nested frame with no size yet is asked for its own fit
// size.
func (f *Frame) computeSizeToFit() (float64, float64) {
	pad := f.Padding()

	totalWidth := 0.0
	totalHeight := 0.0
	lineWidth := 0.0
	lineHeight := 0.0
	padFix := 0.0

	for _, w := range f.widgets {
		if f.isSpacer(w) {
			padFix = -pad
			continue
		}
		if f.isLineSeparator(w) {
			totalWidth = math.Max(lineWidth, totalWidth)
			lineWidth = 0
			totalHeight += lineHeight + pad
			lineHeight = 0
			padFix = 0
			continue
		}
		width, height := w.Width(), w.Height()
		if width == 0 && height == 0 {
			if fr, ok := w.(frameRefer); ok {
				width, height = fr.frameRef().computeSizeToFit()
			}
		}
		lineWidth += width + pad + padFix
		lineHeight = math.Max(lineHeight, height)
		padFix = 0
	}
	if lineWidth != 0 {
		totalWidth = math.Max(totalWidth, lineWidth)
		totalHeight += lineHeight + pad
	}

	// room for the title bar, and never narrower than the title
	totalHeight += f.border.WidgetStart().Y - f.border.Location().Y
	totalWidth = math.Max(totalWidth, f.border.TitleWidth()+2*pad)

	if len(f.widgets) > 0 {
		// border sides plus the trailing padding the walk leaves out
		totalWidth += 3 * pad
		totalHeight += 3 * pad
	}
	return totalWidth, totalHeight
}

// checkInvariants panics when the frame's geometry has gone non-finite
// or negative. These are programmer errors, not user input errors.
func (f *Frame) checkInvariants(op string) {
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(errors.Newf(op, errors.KindInvariant, "frame %s is not a real number", name))
		}
	}
	check("x", f.border.Location().X)
	check("y", f.border.Location().Y)
	check("width", f.border.Width())
	check("height", f.border.Height())
	if f.border.Width() < 0 || f.border.Height() < 0 {
		panic(errors.New(op, errors.KindInvariant, "frame size is negative"))
	}
	for _, w := range f.widgets {
		check("widget x", w.Location().X)
		check("widget y", w.Location().Y)
		check("widget width", w.Width())
		check("widget height", w.Height())
		if w.Width() < 0 || w.Height() < 0 {
			panic(errors.New(op, errors.KindInvariant, "widget size is negative"))
		}
	}
}
