package graphics

import "fmt"

// Color is a 32-bit ARGB value with alpha in the high byte. The zero
// value is transparent black; widgets build their colors with RGB or
// RGBA, or receive them from a style map.
type Color uint32

// RGBA packs the four channel bytes into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color { return RGBA(r, g, b, 0xff) }

// Alpha returns the alpha byte; 0xff is fully opaque.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Hex formats the color in style-sheet notation: "#rrggbb" for opaque
// colors, "#aarrggbb" otherwise.
func (c Color) Hex() string {
	if c.Alpha() == 0xff {
		return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(0xff, 0xff, 0xff)
	ColorRed   = RGB(0xff, 0, 0)
)
