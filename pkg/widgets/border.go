package widgets

import (
	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
)

// ClickResponse tells a Frame whether the remaining widgets should still
// see the click that triggered a registered click event.
type ClickResponse int

const (
	// ContinueOtherEvents lets the click propagate to the frame's widgets.
	ContinueOtherEvents ClickResponse = iota
	// SkipOtherEvents consumes the click.
	SkipOtherEvents
)

// EventResponse is what FrameBorder reports back to its Frame after
// handling an event.
type EventResponse struct {
	// SkipOtherEvents stops the frame from forwarding the event to its
	// widgets and focus handler.
	SkipOtherEvents bool
	// ShouldUpdateGeometry asks the frame to re-run widget placement,
	// typically because a drag moved the border.
	ShouldUpdateGeometry bool
}

// vertical breathing room around the title text inside the title bar
const titleBarVerticalPad = 2.0

// FrameBorder draws a Frame's chrome and owns the geometry questions the
// layout pipeline asks: where widgets start and how much width they have.
// It also implements drag-by-title and the registered click event.
type FrameBorder struct {
	location   graphics.Offset
	size       graphics.Size
	borderSize float64

	title     string
	titleFont *graphics.Font
	titleSize float64

	backColor     graphics.Color
	titleBarColor graphics.Color
	bodyColor     graphics.Color
	titleColor    graphics.Color

	dragger Draggable
	onClick func() ClickResponse
}

// SetLocation moves the border's outer top-left corner.
func (b *FrameBorder) SetLocation(x, y float64) {
	b.location = graphics.Offset{X: x, Y: y}
}

// Location returns the outer top-left corner.
func (b *FrameBorder) Location() graphics.Offset { return b.location }

// Width returns the outer width.
func (b *FrameBorder) Width() float64 { return b.size.Width }

// Height returns the outer height.
func (b *FrameBorder) Height() float64 { return b.size.Height }

// SetSize sets the outer size directly.
func (b *FrameBorder) SetSize(w, h float64) {
	b.size = graphics.Size{Width: w, Height: h}
}

// SetTitle sets the title bar text. An empty title removes the title bar
// entirely, which also makes the frame undraggable.
func (b *FrameBorder) SetTitle(title string) {
	b.title = title
	if title == "" {
		b.dragger.Release()
	}
}

// Title returns the title bar text.
func (b *FrameBorder) Title() string { return b.title }

// SetTitleSize sets the title text size in pixels.
func (b *FrameBorder) SetTitleSize(size float64) { b.titleSize = size }

// SetBorderSize sets the thickness of the outline around the frame.
func (b *FrameBorder) SetBorderSize(size float64) error {
	if size < 0 {
		return errors.Newf("widgets.FrameBorder.SetBorderSize", errors.KindArgument,
			"border size may not be negative (got %v)", size)
	}
	b.borderSize = size
	return nil
}

// BorderSize returns the outline thickness.
func (b *FrameBorder) BorderSize() float64 { return b.borderSize }

// SetDragEnabled enables or disables moving the frame by dragging its
// title bar. A frame without a title cannot be dragged.
func (b *FrameBorder) SetDragEnabled(enabled bool) {
	if enabled {
		b.dragger.WatchForDragEvents()
	} else {
		b.dragger.IgnoreDragEvents()
	}
}

// HasDragEnabled reports whether drag-by-title is enabled.
func (b *FrameBorder) HasDragEnabled() bool {
	return b.dragger.IsWatchingForDragEvents()
}

// SetRegisterClickEvent installs a callback fired on a pointer press in
// the widget body. Its ClickResponse decides whether the press still
// reaches the frame's widgets.
func (b *FrameBorder) SetRegisterClickEvent(fn func() ClickResponse) { b.onClick = fn }

// ResetRegisterClickEvent removes the click callback.
func (b *FrameBorder) ResetRegisterClickEvent() { b.onClick = nil }

func (b *FrameBorder) titleBarHeight() float64 {
	if b.title == "" {
		return 0
	}
	f := b.titleFont
	if f == nil {
		f = graphics.DefaultFont()
	}
	return f.MeasureText(b.title).Height + 2*titleBarVerticalPad
}

// WidgetStart returns the top-left corner of the interior region that
// widgets are placed in, just below the title bar and inside the outline.
func (b *FrameBorder) WidgetStart() graphics.Offset {
	return graphics.Offset{
		X: b.location.X + b.borderSize,
		Y: b.location.Y + b.borderSize + b.titleBarHeight(),
	}
}

// WidthAvailableForWidgets returns the interior width the layout walk may
// fill before wrapping to a new line.
func (b *FrameBorder) WidthAvailableForWidgets() float64 {
	w := b.size.Width - 2*b.borderSize
	if w < 0 {
		return 0
	}
	return w
}

// TitleWidth returns the width the title text needs, zero when untitled.
// Frames use it to make sure a fitted frame is wide enough for its title.
func (b *FrameBorder) TitleWidth() float64 {
	if b.title == "" {
		return 0
	}
	f := b.titleFont
	if f == nil {
		f = graphics.DefaultFont()
	}
	return f.MeasureText(b.title).Width
}

func (b *FrameBorder) titleBarBounds() graphics.Rect {
	return graphics.RectFromLTWH(
		b.location.X+b.borderSize, b.location.Y+b.borderSize,
		b.WidthAvailableForWidgets(), b.titleBarHeight())
}

func (b *FrameBorder) bodyBounds() graphics.Rect {
	start := b.WidgetStart()
	h := b.size.Height - 2*b.borderSize - b.titleBarHeight()
	if h < 0 {
		h = 0
	}
	return graphics.RectFromLTWH(start.X, start.Y, b.WidthAvailableForWidgets(), h)
}

// ProcessEvent handles dragging and the registered click event. The
// returned EventResponse tells the frame what to do next.
func (b *FrameBorder) ProcessEvent(ev events.Event) EventResponse {
	switch e := ev.(type) {
	case events.PointerPressed:
		if e.Button == events.ButtonLeft && b.dragger.MouseClick(e.Pos, b.titleBarBounds()) {
			return EventResponse{SkipOtherEvents: true}
		}
		if b.onClick != nil && b.bodyBounds().Contains(e.Pos) {
			if b.onClick() == SkipOtherEvents {
				return EventResponse{SkipOtherEvents: true}
			}
		}
	case events.PointerMoved:
		if next, ok := b.dragger.MouseMove(e.Pos); ok {
			b.location = next
			return EventResponse{SkipOtherEvents: true, ShouldUpdateGeometry: true}
		}
	case events.PointerReleased:
		b.dragger.Release()
	case events.FocusLost, events.WindowClosed:
		b.dragger.Release()
	}
	return EventResponse{}
}

// UpdateGeometry recomputes derived geometry after a move or resize. The
// border keeps no cached positions today, so this only guards against an
// outer size smaller than the chrome itself.
func (b *FrameBorder) UpdateGeometry() {
	min := 2*b.borderSize + b.titleBarHeight()
	if b.size.Height < min {
		b.size.Height = min
	}
	if b.size.Width < 2*b.borderSize {
		b.size.Width = 2 * b.borderSize
	}
}

// SetStyle pulls the border's colors, title size and outline thickness
// from m.
func (b *FrameBorder) SetStyle(m styles.Map) {
	styles.SetIfFound(m, styles.FrameBackground, &b.backColor)
	styles.SetIfFound(m, styles.FrameTitleBarColor, &b.titleBarColor)
	styles.SetIfFound(m, styles.FrameTitleColor, &b.titleColor)
	styles.SetIfFound(m, styles.FrameWidgetBody, &b.bodyColor)
	styles.SetIfFound(m, styles.FrameTitleSize, &b.titleSize)
	if v, ok := styles.Find[float64](m, styles.FrameBorderSize); ok && v >= 0 {
		b.borderSize = v
	}
	if f, ok := styles.Find[*graphics.Font](m, styles.GlobalFont); ok {
		b.titleFont = f
	}
}

// Draw renders the outline, title bar, title text and widget body.
func (b *FrameBorder) Draw(c graphics.Canvas) {
	outer := graphics.RectFromLTWH(b.location.X, b.location.Y, b.size.Width, b.size.Height)
	c.FillRect(outer, b.backColor)
	if bar := b.titleBarBounds(); !bar.IsEmpty() {
		c.FillRect(bar, b.titleBarColor)
		f := b.titleFont
		if f == nil {
			f = graphics.DefaultFont()
		}
		ts := f.MeasureText(b.title)
		at := graphics.Offset{
			X: bar.Left + (bar.Width()-ts.Width)/2,
			Y: bar.Top + (bar.Height()-ts.Height)/2,
		}
		c.DrawText(b.title, at, f, b.titleColor)
	}
	if body := b.bodyBounds(); !body.IsEmpty() {
		c.FillRect(body, b.bodyColor)
	}
}
