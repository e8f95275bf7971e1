// Package focus provides focus routing for widget trees.
//
// A Handler owns a flat, ordered list of focus targets. Frames repopulate
// the list on every layout finalization, then forward events to the handler:
// Tab (and Shift+Tab) cycles focus with wrap-around, and a pointer press
// focuses the target under the pointer or clears focus when there is none.
package focus

import (
	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
)

// Target is implemented by widgets that can receive keyboard focus.
type Target interface {
	// AcceptsFocus reports whether the target can take focus right now.
	// Hidden or disabled widgets return false and are skipped during
	// traversal.
	AcceptsFocus() bool

	// SetFocused notifies the target that it gained or lost focus.
	SetFocused(focused bool)

	// FocusBounds returns the target's on-screen rectangle, used to route
	// pointer presses to the target under the pointer.
	FocusBounds() graphics.Rect
}

// Handler tracks which of a frame's descendant widgets holds focus.
// The zero value is ready to use.
type Handler struct {
	targets []Target
	current int // index into targets, -1 when nothing is focused
}

// TakeWidgets replaces the handler's target list. Any previously focused
// target is notified of focus loss first; the new list starts with nothing
// focused.
func (h *Handler) TakeWidgets(targets []Target) {
	h.dropFocus()
	h.targets = targets
	h.current = -1
}

// ClearWidgets removes all targets, notifying the focused one if any.
func (h *Handler) ClearWidgets() {
	h.dropFocus()
	h.targets = nil
	h.current = -1
}

// Current returns the focused target, or nil when none is focused.
func (h *Handler) Current() Target {
	if h.current < 0 || h.current >= len(h.targets) {
		return nil
	}
	return h.targets[h.current]
}

// ProcessEvent advances or reassigns focus in response to an event.
func (h *Handler) ProcessEvent(event events.Event) {
	switch e := event.(type) {
	case events.KeyPressed:
		if e.Key != events.KeyTab {
			return
		}
		if e.Shift {
			h.moveFocus(-1)
		} else {
			h.moveFocus(1)
		}
	case events.PointerPressed:
		h.focusAt(e.Pos)
	case events.FocusLost:
		h.dropFocus()
		h.current = -1
	}
}

// moveFocus advances focus by delta positions with wrap-around, skipping
// targets that do not accept focus. Returns false when no target accepted.
func (h *Handler) moveFocus(delta int) bool {
	count := len(h.targets)
	if count == 0 {
		return false
	}
	start := h.current
	if start < 0 && delta < 0 {
		start = 0
	}
	for step := 1; step <= count; step++ {
		next := wrapIndex(start+delta*step, count)
		if h.targets[next].AcceptsFocus() {
			h.setFocus(next)
			return true
		}
	}
	return false
}

// focusAt focuses the first accepting target whose bounds contain pos, or
// clears focus when the press landed on none.
func (h *Handler) focusAt(pos graphics.Offset) {
	for i, target := range h.targets {
		if target.AcceptsFocus() && target.FocusBounds().Contains(pos) {
			h.setFocus(i)
			return
		}
	}
	h.dropFocus()
	h.current = -1
}

func (h *Handler) setFocus(index int) {
	if index == h.current {
		return
	}
	h.dropFocus()
	h.current = index
	h.targets[index].SetFocused(true)
}

func (h *Handler) dropFocus() {
	if current := h.Current(); current != nil {
		current.SetFocused(false)
	}
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
