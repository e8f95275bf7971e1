package focus

import (
	"testing"

	"github.com/go-sash/sash/pkg/events"
	"github.com/go-sash/sash/pkg/graphics"
)

type stubTarget struct {
	accepts bool
	focused bool
	bounds  graphics.Rect
}

func (s *stubTarget) AcceptsFocus() bool         { return s.accepts }
func (s *stubTarget) SetFocused(f bool)          { s.focused = f }
func (s *stubTarget) FocusBounds() graphics.Rect { return s.bounds }

func tab() events.Event      { return events.KeyPressed{Key: events.KeyTab} }
func shiftTab() events.Event { return events.KeyPressed{Key: events.KeyTab, Shift: true} }

func TestHandler_TabCyclesWithWraparound(t *testing.T) {
	a := &stubTarget{accepts: true}
	b := &stubTarget{accepts: true}
	var h Handler
	h.TakeWidgets([]Target{a, b})

	h.ProcessEvent(tab())
	if h.Current() != Target(a) || !a.focused {
		t.Fatal("expected the first tab to focus a")
	}
	h.ProcessEvent(tab())
	if h.Current() != Target(b) || a.focused || !b.focused {
		t.Fatal("expected the second tab to move focus to b")
	}
	h.ProcessEvent(tab())
	if h.Current() != Target(a) {
		t.Fatal("expected focus to wrap back to a")
	}
}

func TestHandler_ShiftTabMovesBackwards(t *testing.T) {
	a := &stubTarget{accepts: true}
	b := &stubTarget{accepts: true}
	var h Handler
	h.TakeWidgets([]Target{a, b})

	h.ProcessEvent(shiftTab())
	if h.Current() != Target(b) {
		t.Fatal("expected shift-tab from nothing to focus the last target")
	}
	h.ProcessEvent(shiftTab())
	if h.Current() != Target(a) {
		t.Fatal("expected shift-tab to move backwards")
	}
}

func TestHandler_SkipsNonAcceptingTargets(t *testing.T) {
	a := &stubTarget{accepts: true}
	skip := &stubTarget{accepts: false}
	b := &stubTarget{accepts: true}
	var h Handler
	h.TakeWidgets([]Target{a, skip, b})

	h.ProcessEvent(tab())
	h.ProcessEvent(tab())
	if h.Current() != Target(b) {
		t.Fatal("expected tab to skip the non-accepting target")
	}
	if skip.focused {
		t.Error("a non-accepting target must never be focused")
	}
}

func TestHandler_PointerPressFocusesTargetUnderPointer(t *testing.T) {
	a := &stubTarget{accepts: true, bounds: graphics.RectFromLTWH(0, 0, 10, 10)}
	b := &stubTarget{accepts: true, bounds: graphics.RectFromLTWH(20, 0, 10, 10)}
	var h Handler
	h.TakeWidgets([]Target{a, b})

	h.ProcessEvent(events.PointerPressed{Pos: graphics.Offset{X: 25, Y: 5}})
	if h.Current() != Target(b) || !b.focused {
		t.Fatal("expected the press to focus b")
	}

	// a press on empty space clears focus
	h.ProcessEvent(events.PointerPressed{Pos: graphics.Offset{X: 100, Y: 100}})
	if h.Current() != nil || b.focused {
		t.Fatal("expected a press on nothing to clear focus")
	}
}

func TestHandler_FocusLostDropsFocus(t *testing.T) {
	a := &stubTarget{accepts: true}
	var h Handler
	h.TakeWidgets([]Target{a})
	h.ProcessEvent(tab())

	h.ProcessEvent(events.FocusLost{})
	if h.Current() != nil || a.focused {
		t.Fatal("expected window focus loss to drop widget focus")
	}
}

func TestHandler_TakeWidgetsNotifiesOldFocus(t *testing.T) {
	a := &stubTarget{accepts: true}
	var h Handler
	h.TakeWidgets([]Target{a})
	h.ProcessEvent(tab())

	b := &stubTarget{accepts: true}
	h.TakeWidgets([]Target{b})
	if a.focused {
		t.Error("expected the old focus holder to be notified of the loss")
	}
	if h.Current() != nil {
		t.Error("expected a fresh list to start unfocused")
	}
}

func TestHandler_EmptyHandlerIgnoresEvents(t *testing.T) {
	var h Handler
	h.ProcessEvent(tab())
	h.ProcessEvent(events.PointerPressed{Pos: graphics.Offset{X: 1, Y: 1}})
	if h.Current() != nil {
		t.Fatal("expected an empty handler to stay unfocused")
	}
}
