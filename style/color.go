package style

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Transparent is the fully transparent color.
var Transparent = color.NRGBA{}

var colorFunc = regexp.MustCompile(`^(rgba?|hsla?)\((.*)\)$`)

// ParseColor parses a color value. Supported are
//
//     #rgb  #rgba  #rrggbb  #rrggbbaa
//     named colors (SVG 1.1 keywords) and 'transparent'
//     rgb(r, g, b)  rgba(r, g, b, a)
//     hsl(h, s%, l%)  hsla(h, s%, l%, a)
//
// Components of functional notation may be separated by commas or blanks.
// Color components are either integers 0…255 or percentages, alpha is a
// number 0…1 or a percentage.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Transparent, colorErr(s)
	}
	if s[0] == '#' {
		return parseHexColor(s)
	}
	if s == "transparent" {
		return Transparent, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}
	m := colorFunc.FindStringSubmatch(s)
	if m == nil {
		return Transparent, colorErr(s)
	}
	args := strings.FieldsFunc(m[2], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	switch m[1] {
	case "rgb", "rgba":
		return parseRGB(s, args)
	default:
		return parseHSL(s, args)
	}
}

// MustParseColor is like ParseColor, but panics on malformed input.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func colorErr(s string) error {
	return fmt.Errorf("%w: not a color: %q", ErrInvalidStyleValue, s)
}

func parseHexColor(s string) (color.NRGBA, error) {
	hex := s[1:]
	switch len(hex) {
	case 3, 4: // #rgb(a) => #rrggbb(aa)
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return Transparent, colorErr(s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Transparent, colorErr(s)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

func parseRGB(s string, args []string) (color.NRGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return Transparent, colorErr(s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		x, ok := channel(args[i])
		if !ok {
			return Transparent, colorErr(s)
		}
		rgb[i] = x
	}
	a := uint8(255)
	if len(args) == 4 {
		var ok bool
		if a, ok = alpha(args[3]); !ok {
			return Transparent, colorErr(s)
		}
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: a}, nil
}

func parseHSL(s string, args []string) (color.NRGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return Transparent, colorErr(s)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Transparent, colorErr(s)
	}
	sat, ok1 := percentage(args[1])
	lum, ok2 := percentage(args[2])
	if !ok1 || !ok2 {
		return Transparent, colorErr(s)
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, sat, lum).Clamped().RGB255()
	a := uint8(255)
	if len(args) == 4 {
		var ok bool
		if a, ok = alpha(args[3]); !ok {
			return Transparent, colorErr(s)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// channel parses a color channel, either 0…255 or a percentage.
func channel(arg string) (uint8, bool) {
	if strings.HasSuffix(arg, "%") {
		f, ok := percentage(arg)
		return uint8(math.Round(f * 255)), ok
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return uint8(n), true
}

// alpha parses an alpha value, either 0…1 or a percentage.
func alpha(arg string) (uint8, bool) {
	if strings.HasSuffix(arg, "%") {
		f, ok := percentage(arg)
		return uint8(math.Round(f * 255)), ok
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return uint8(math.Round(f * 255)), true
}

// percentage parses "n%" to a fraction 0…1.
func percentage(arg string) (float64, bool) {
	if !strings.HasSuffix(arg, "%") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil || f < 0 || f > 100 {
		return 0, false
	}
	return f / 100, true
}

// ColorString returns a CSS representation of a color, either in hex
// notation or, for translucent colors, as an rgba-function.
func ColorString(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", n.R, n.G, n.B, float64(n.A)/255)
}

// Color interprets a property as a color. Properties which do not denote
// a valid color, including "default", yield Transparent.
func (p Property) Color() color.NRGBA {
	c, err := ParseColor(string(p))
	if err != nil {
		return Transparent
	}
	return c
}
