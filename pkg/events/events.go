// Package events defines the input events widgets consume.
//
// An Event is one of a closed set of concrete types; widgets dispatch on
// them with a type switch. Events carry already-translated window
// coordinates; the library performs no event-pump integration of its own.
package events

import (
	"fmt"

	"github.com/go-sash/sash/pkg/graphics"
)

// Event is a member of the closed set of input event types.
type Event interface {
	isEvent()
}

// MouseButton identifies which pointer button an event refers to.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// String returns a human-readable representation of the mouse button.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// Key identifies a keyboard key in a KeyPressed event. Only the keys the
// library reacts to are enumerated; everything else maps to KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyTab
	KeyEnter
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch k {
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	default:
		return "other"
	}
}

// PointerPressed reports a pointer button going down at Pos.
type PointerPressed struct {
	Pos    graphics.Offset
	Button MouseButton
}

// PointerReleased reports a pointer button going up at Pos.
type PointerReleased struct {
	Pos    graphics.Offset
	Button MouseButton
}

// PointerMoved reports pointer motion to Pos.
type PointerMoved struct {
	Pos graphics.Offset
}

// KeyPressed reports a key going down. Shift reports whether a shift
// modifier was held, which reverses Tab focus traversal.
type KeyPressed struct {
	Key   Key
	Shift bool
}

// FocusLost reports that the window lost input focus.
type FocusLost struct{}

// Resized reports that the window was resized.
type Resized struct {
	Size graphics.Size
}

// WindowClosed reports that the window received a close request.
type WindowClosed struct{}

func (PointerPressed) isEvent()  {}
func (PointerReleased) isEvent() {}
func (PointerMoved) isEvent()    {}
func (KeyPressed) isEvent()      {}
func (FocusLost) isEvent()       {}
func (Resized) isEvent()         {}
func (WindowClosed) isEvent()    {}
