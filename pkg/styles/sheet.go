package styles

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-sash/sash/pkg/errors"
	"github.com/go-sash/sash/pkg/graphics"
)

// LoadSheet reads a YAML style sheet and returns the defaults overlaid with
// its entries. The sheet is a flat mapping of style keys to values:
//
//	global-padding: 8
//	frame-background: "#202030"
//	frame-title-color: "#ffffffff"
//
// Numbers become float64 values; strings beginning with '#' become colors
// ("#RRGGBB" or "#AARRGGBB"). Anything else is a style error.
func LoadSheet(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("styles.LoadSheet", errors.KindStyle, err)
	}
	return ParseSheet(data)
}

// ParseSheet parses YAML style sheet data. See LoadSheet for the format.
func ParseSheet(data []byte) (Map, error) {
	const op = "styles.ParseSheet"

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(op, errors.KindStyle, err)
	}

	sheet := DefaultStyles()
	for key, value := range raw {
		parsed, err := parseValue(value)
		if err != nil {
			return nil, errors.Newf(op, errors.KindStyle, "key %q: %v", key, err)
		}
		sheet[key] = parsed
	}
	return sheet, nil
}

func parseValue(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return parseColor(v)
	default:
		return nil, fmt.Errorf("unsupported value %v (%T)", value, value)
	}
}

// parseColor parses "#RRGGBB" or "#AARRGGBB" hex notation.
func parseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("color %q must start with '#'", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q is not valid hex: %v", s, err)
	}
	switch len(hex) {
	case 6:
		// Opaque unless an alpha byte was given.
		return graphics.Color(value | 0xFF000000), nil
	case 8:
		return graphics.Color(value), nil
	default:
		return 0, fmt.Errorf("color %q must have 6 or 8 hex digits", s)
	}
}
