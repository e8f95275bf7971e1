package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font wraps a font.Face and provides the text measurement widgets need for
// layout. The face itself is owned by the caller and must outlive the Font.
type Font struct {
	face font.Face
}

// NewFont creates a Font from a font.Face. Passing nil returns the default
// font.
func NewFont(face font.Face) *Font {
	if face == nil {
		return DefaultFont()
	}
	return &Font{face: face}
}

var defaultFont = &Font{face: basicfont.Face7x13}

// DefaultFont returns the built-in fixed-size face. It is used whenever no
// font has been supplied through styles.
func DefaultFont() *Font {
	return defaultFont
}

// Face returns the underlying font.Face.
func (f *Font) Face() font.Face {
	return f.face
}

// LineHeight returns the vertical extent of a single line of text.
func (f *Font) LineHeight() float64 {
	metrics := f.face.Metrics()
	return fixedToFloat(metrics.Ascent + metrics.Descent)
}

// MeasureText returns the size of a single run of text. An empty string
// measures as zero width and zero height.
func (f *Font) MeasureText(text string) Size {
	if text == "" {
		return Size{}
	}
	advance := font.MeasureString(f.face, text)
	return Size{
		Width:  fixedToFloat(advance),
		Height: f.LineHeight(),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
