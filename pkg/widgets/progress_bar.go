package widgets

import (
	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
	"github.com/go-sash/sash/pkg/styles"
)

// ProgressBar shows a fill fraction as three stacked boxes: an outer
// frame, an inner background, and an inner front whose width tracks the
// fill amount. The zero value is an empty, unfilled bar.
type ProgressBar struct {
	location graphics.Offset
	size     graphics.Size

	fill    float64 // in [0, 1]
	padding float64

	outerColor      graphics.Color
	innerBackColor  graphics.Color
	innerFrontColor graphics.Color

	hidden bool
}

func (p *ProgressBar) ProcessEvent(events.Event) {}

// SetLocation moves the bar.
func (p *ProgressBar) SetLocation(x, y float64) {
	p.location = graphics.Offset{X: x, Y: y}
}

// Location returns the bar's top-left corner.
func (p *ProgressBar) Location() graphics.Offset { return p.location }

// Width returns the outer width.
func (p *ProgressBar) Width() float64 { return p.size.Width }

// Height returns the outer height.
func (p *ProgressBar) Height() float64 { return p.size.Height }

// SetSize resizes the outer box. Negative dimensions are rejected.
func (p *ProgressBar) SetSize(w, h float64) error {
	if w < 0 || h < 0 {
		return errors.Newf("widgets.ProgressBar.SetSize", errors.KindArgument,
			"size may not be negative (got %v by %v)", w, h)
	}
	p.size = graphics.Size{Width: w, Height: h}
	return nil
}

// IsVisible reports whether the bar draws itself.
func (p *ProgressBar) IsVisible() bool { return !p.hidden }

// SetVisible shows or hides the bar.
func (p *ProgressBar) SetVisible(v bool) { p.hidden = !v }

// SetStyle pulls the three box colors and the inner inset from m.
func (p *ProgressBar) SetStyle(m styles.Map) {
	styles.SetIfFound(m, styles.ProgressBarPadding, &p.padding)
	styles.SetIfFound(m, styles.ProgressBarOuterColor, &p.outerColor)
	styles.SetIfFound(m, styles.ProgressBarInnerBackColor, &p.innerBackColor)
	styles.SetIfFound(m, styles.ProgressBarInnerFrontColor, &p.innerFrontColor)
}

func (p *ProgressBar) IssueAutoResize() {}

// Draw renders the outer box, then the inner background, then the fill.
func (p *ProgressBar) Draw(c graphics.Canvas) {
	if p.hidden {
		return
	}
	c.FillRect(graphics.RectFromLTWH(p.location.X, p.location.Y,
		p.size.Width, p.size.Height), p.outerColor)
	c.FillRect(p.innerBackBounds(), p.innerBackColor)
	c.FillRect(p.innerFrontBounds(), p.innerFrontColor)
}

func (p *ProgressBar) IterateChildren(func(Widget)) {}

// SetFillAmount sets the filled fraction, which must be in [0, 1].
func (p *ProgressBar) SetFillAmount(fill float64) error {
	if fill < 0 || fill > 1 {
		return errors.Newf("widgets.ProgressBar.SetFillAmount", errors.KindRange,
			"fill amount must be in [0, 1] (got %v)", fill)
	}
	p.fill = fill
	return nil
}

// FillAmount returns the filled fraction.
func (p *ProgressBar) FillAmount() float64 { return p.fill }

// SetPadding sets the inset between the outer box and the inner boxes.
func (p *ProgressBar) SetPadding(pad float64) { p.padding = pad }

// SetOuterColor overrides the outer box color.
func (p *ProgressBar) SetOuterColor(c graphics.Color) { p.outerColor = c }

// SetInnerBackColor overrides the inner background color.
func (p *ProgressBar) SetInnerBackColor(c graphics.Color) { p.innerBackColor = c }

// SetInnerFrontColor overrides the fill color.
func (p *ProgressBar) SetInnerFrontColor(c graphics.Color) { p.innerFrontColor = c }

// activePadding collapses the inset to zero when the bar is smaller than
// the inset itself.
func (p *ProgressBar) activePadding() float64 {
	if p.size.Width < p.padding || p.size.Height < p.padding {
		return 0
	}
	return p.padding
}

func (p *ProgressBar) innerBackBounds() graphics.Rect {
	pad := p.activePadding()
	return graphics.RectFromLTWH(p.location.X+pad, p.location.Y+pad,
		p.size.Width-2*pad, p.size.Height-2*pad)
}

// InnerFrontBounds returns the filled portion's rectangle. Exposed so
// callers can report fill geometry without drawing.
func (p *ProgressBar) InnerFrontBounds() graphics.Rect {
	return p.innerFrontBounds()
}

func (p *ProgressBar) innerFrontBounds() graphics.Rect {
	pad := p.activePadding()
	return graphics.RectFromLTWH(p.location.X+pad, p.location.Y+pad,
		(p.size.Width-2*pad)*p.fill, p.size.Height-2*pad)
}
