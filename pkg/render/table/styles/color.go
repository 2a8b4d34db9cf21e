package styles

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/ptable/pkg/errors"
)

// None is the colour value meaning "do not paint".
const None = "none"

// DefaultPalette is the colour cycle for labels without an explicit colour.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var paletteNames = map[string]int{
	"tab:blue": 0, "tab:orange": 1, "tab:green": 2, "tab:red": 3, "tab:purple": 4,
	"tab:brown": 5, "tab:pink": 6, "tab:gray": 7, "tab:olive": 8, "tab:cyan": 9,
	"tab:grey": 7,
}

// single-letter shorthands
var letterColors = map[string]string{
	"b": "#0000ff", "g": "#008000", "r": "#ff0000", "c": "#00bfbf",
	"m": "#bf00bf", "y": "#bfbf00", "k": "#000000", "w": "#ffffff",
}

// IsNone reports whether s means no paint.
func IsNone(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == None || s == "transparent"
}

// ParseColor converts a colour string to an RGBA value. "none" yields a fully
// transparent colour.
func ParseColor(s string) (color.NRGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if IsNone(key) {
		return color.NRGBA{}, nil
	}
	if i, ok := paletteNames[key]; ok {
		key = DefaultPalette[i]
	} else if len(key) == 2 && key[0] == 'c' && key[1] >= '0' && key[1] <= '9' {
		key = DefaultPalette[key[1]-'0']
	} else if hex, ok := letterColors[key]; ok {
		key = hex
	}

	if strings.HasPrefix(key, "#") {
		alpha := uint8(0xff)
		switch len(key) {
		case 4, 7:
		case 9:
			a, err := strconv.ParseUint(key[7:], 16, 8)
			if err != nil {
				return color.NRGBA{}, invalidColor(s)
			}
			alpha = uint8(a)
			key = key[:7]
		default:
			return color.NRGBA{}, invalidColor(s)
		}
		c, err := colorful.Hex(key)
		if err != nil {
			return color.NRGBA{}, invalidColor(s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
	}

	if c, ok := colornames.Map[strings.ReplaceAll(key, " ", "")]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, invalidColor(s)
}

func invalidColor(s string) error {
	return errors.New(errors.ErrCodeInvalidColor, "invalid colour %q", s)
}

// ValidateColor checks that s is a recognised colour string.
func ValidateColor(s string) error {
	_, err := ParseColor(s)
	return err
}

// Hex returns s as "#rrggbb". It reports false for "none" and for invalid
// colours.
func Hex(s string) (string, bool) {
	c, err := ParseColor(s)
	if err != nil || c.A == 0 {
		return "", false
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex(), true
}

// ContrastText returns the symbol colour readable on the given fill: white
// on dark fills, black otherwise.
func ContrastText(fill string) string {
	c, err := ParseColor(fill)
	if err != nil || c.A < 0x80 {
		return "black"
	}
	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	if l, _, _ := cf.Lab(); l < 0.5 {
		return "white"
	}
	return "black"
}

func toHex(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return None
	}
	// Un-premultiply before encoding.
	cf := colorful.Color{R: float64(r) / float64(a), G: float64(g) / float64(a), B: float64(b) / float64(a)}
	return cf.Clamped().Hex()
}
