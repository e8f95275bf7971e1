// Package styles provides the key-to-value style tables widgets are
// configured with.
//
// A style Map associates string keys with typed values: colors, sizes, and
// font handles. Widgets query the map by the key constants below during
// SetStyle and fall back to built-in defaults for anything missing. Style
// maps are plain data; sharing one map across many widgets is the normal
// usage.
package styles

import "github.com/go-sash/sash/pkg/graphics"

// Style keys recognized by the built-in widgets.
const (
	// GlobalPadding is the padding, in pixels, frames place between
	// widgets. Applies to every widget that spaces its interior.
	GlobalPadding = "global-padding"
	// GlobalFont is the font handle (*graphics.Font) used by all text.
	GlobalFont = "global-font"

	FrameBackground    = "frame-background"
	FrameTitleBarColor = "frame-title-bar-color"
	FrameTitleSize     = "frame-title-size"
	FrameTitleColor    = "frame-title-color"
	FrameWidgetBody    = "frame-body"
	FrameBorderSize    = "frame-border-size"

	TextColor = "text-color"
	TextSize  = "text-size"

	ButtonHoverBackColor  = "button-hover-back"
	ButtonHoverFrontColor = "button-hover-front"
	ButtonBackColor       = "button-back"
	ButtonFrontColor      = "button-front"

	ProgressBarOuterColor      = "progress-bar-outer"
	ProgressBarInnerFrontColor = "progress-bar-inner-front"
	ProgressBarInnerBackColor  = "progress-bar-inner-back"
	ProgressBarPadding         = "progress-bar-padding"
)

// Map is a style table. Values are one of: graphics.Color, float64, or
// *graphics.Font.
type Map map[string]any

// Find returns the value stored under key if it has type T.
func Find[T any](m Map, key string) (T, bool) {
	var zero T
	raw, ok := m[key]
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

// SetIfFound assigns *dst from the map when key holds a value of type T,
// reporting whether an assignment happened.
func SetIfFound[T any](m Map, key string, dst *T) bool {
	value, ok := Find[T](m, key)
	if !ok {
		return false
	}
	*dst = value
	return true
}

// Merge copies every entry of src into dst, overwriting existing keys.
func Merge(dst, src Map) {
	for key, value := range src {
		dst[key] = value
	}
}

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	clone := make(Map, len(m))
	for key, value := range m {
		clone[key] = value
	}
	return clone
}

// DefaultStyles returns the built-in system style table: a dark frame with
// light text and the default font. Callers typically clone it and override
// individual keys.
func DefaultStyles() Map {
	return Map{
		GlobalPadding: 5.0,
		GlobalFont:    graphics.DefaultFont(),

		FrameBackground:    graphics.RGB(0x20, 0x20, 0x30),
		FrameTitleBarColor: graphics.RGB(0x10, 0x10, 0x28),
		FrameTitleSize:     20.0,
		FrameTitleColor:    graphics.ColorWhite,
		FrameWidgetBody:    graphics.RGB(0x18, 0x18, 0x28),
		FrameBorderSize:    5.0,

		TextColor: graphics.ColorWhite,
		TextSize:  13.0,

		ButtonHoverBackColor:  graphics.RGB(0x4a, 0x4a, 0x70),
		ButtonHoverFrontColor: graphics.RGB(0x30, 0x30, 0x50),
		ButtonBackColor:       graphics.RGB(0x38, 0x38, 0x58),
		ButtonFrontColor:      graphics.RGB(0x24, 0x24, 0x40),

		ProgressBarOuterColor:      graphics.RGB(0x10, 0x10, 0x18),
		ProgressBarInnerFrontColor: graphics.RGB(0x0c, 0xc8, 0x56),
		ProgressBarInnerBackColor:  graphics.RGB(0x28, 0x28, 0x38),
		ProgressBarPadding:         2.0,
	}
}
