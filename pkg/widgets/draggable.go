package widgets

import (
	"math"

	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/graphics"
)

// Draggable tracks the state of a press-and-move drag interaction. The
// frame border embeds one to implement drag-by-title.
type Draggable struct {
	dragged     bool
	watching    bool
	dragOffset  graphics.Offset
	constraints graphics.Rect // zero rect means unconstrained
}

// WatchForDragEvents enables drag tracking.
func (d *Draggable) WatchForDragEvents() { d.watching = true }

// IgnoreDragEvents disables drag tracking and ends any drag in progress.
func (d *Draggable) IgnoreDragEvents() {
	d.watching = false
	d.dragged = false
}

// IsWatchingForDragEvents reports whether drag tracking is enabled.
func (d *Draggable) IsWatchingForDragEvents() bool { return d.watching }

// MouseClick begins a drag when the press lands inside handle. Returns true
// when the press was consumed.
func (d *Draggable) MouseClick(pos graphics.Offset, handle graphics.Rect) bool {
	if !d.watching {
		return false
	}
	if !handle.Contains(pos) {
		return false
	}
	d.dragged = true
	d.dragOffset = pos.Sub(handle.TopLeft())
	return true
}

// MouseMove computes the dragged object's new top-left corner for a pointer
// at pos. Returns false when no drag is in progress.
func (d *Draggable) MouseMove(pos graphics.Offset) (graphics.Offset, bool) {
	if !d.dragged {
		return graphics.Offset{}, false
	}
	next := pos.Sub(d.dragOffset)
	if !d.constraints.IsEmpty() {
		next.X = math.Min(next.X, d.constraints.Right)
		next.X = math.Max(next.X, d.constraints.Left)
		next.Y = math.Min(next.Y, d.constraints.Bottom)
		next.Y = math.Max(next.Y, d.constraints.Top)
	}
	return next, true
}

// Release ends any drag in progress.
func (d *Draggable) Release() { d.dragged = false }

// IsDragged reports whether a drag is in progress.
func (d *Draggable) IsDragged() bool { return d.dragged }

// SetDragConstraints restricts the draggable's top-left corner to area.
// A zero-area rect is rejected; disable dragging instead.
func (d *Draggable) SetDragConstraints(area graphics.Rect) error {
	if area.IsEmpty() {
		return errors.New("widgets.Draggable.SetDragConstraints", errors.KindArgument,
			"constraint area may not have a zero-sized area; consider disabling dragging instead")
	}
	d.constraints = area
	return nil
}

// RemoveDragConstraints removes any position constraint.
func (d *Draggable) RemoveDragConstraints() { d.constraints = graphics.Rect{} }
