package styles

import (
	"testing"

	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/graphics"
)

func TestParseSheet_OverlaysDefaults(t *testing.T) {
	sheet, err := ParseSheet([]byte(
		"global-padding: 8\n" +
			"frame-background: \"#202030\"\n" +
			"frame-title-color: \"#80ff0000\"\n"))
	if err != nil {
		t.Fatalf("ParseSheet failed: %v", err)
	}

	if v, _ := Find[float64](sheet, GlobalPadding); v != 8 {
		t.Errorf("expected padding 8, got %v", v)
	}
	if c, _ := Find[graphics.Color](sheet, FrameBackground); c != graphics.Color(0xFF202030) {
		t.Errorf("expected opaque #202030, got %08x", uint32(c))
	}
	if c, _ := Find[graphics.Color](sheet, FrameTitleColor); c != graphics.Color(0x80FF0000) {
		t.Errorf("expected #80ff0000, got %08x", uint32(c))
	}
	// untouched keys keep their defaults
	if _, ok := Find[graphics.Color](sheet, ButtonBackColor); !ok {
		t.Error("expected the default button color to survive the overlay")
	}
}

func TestParseSheet_FractionalPadding(t *testing.T) {
	sheet, err := ParseSheet([]byte("global-padding: 2.5\n"))
	if err != nil {
		t.Fatalf("ParseSheet failed: %v", err)
	}
	if v, _ := Find[float64](sheet, GlobalPadding); v != 2.5 {
		t.Errorf("expected padding 2.5, got %v", v)
	}
}

func TestParseSheet_RejectsMalformedColors(t *testing.T) {
	for _, bad := range []string{
		"text-color: \"ff0000\"\n",  // missing '#'
		"text-color: \"#ff00\"\n",   // wrong digit count
		"text-color: \"#nothex\"\n", // not hex
		"text-color: [1, 2]\n",      // not a scalar
	} {
		_, err := ParseSheet([]byte(bad))
		if !errors.IsKind(err, errors.KindStyle) {
			t.Errorf("%q: expected a style error, got %v", bad, err)
		}
	}
}

func TestParseSheet_RejectsInvalidYAML(t *testing.T) {
	_, err := ParseSheet([]byte(":\n\t-"))
	if !errors.IsKind(err, errors.KindStyle) {
		t.Fatalf("expected a style error, got %v", err)
	}
}
