package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// FontSize interprets the font size of a resolved style. Keywords are taken
// from style.FontSizes, 'larger' and 'smaller' are absolute sizes as well.
// Unparsable sizes yield the size for 'medium'.
func FontSize(s *style.Style) dimen.DU {
	p := style.Property(strings.ToLower(string(s.Font().Size())))
	if pt, ok := style.FontSizes[string(p)]; ok {
		return dimen.DU(pt * float64(dimen.PT))
	}
	if d := ParseDimen(p); d.IsAbsolute() {
		return d.Unwrap()
	}
	return dimen.DU(style.FontSizes["medium"] * float64(dimen.PT))
}

// FontWeight interprets the font weight of a resolved style as a number
// 100…900. Normal is 400, bold is 700; bolder and lighter are taken as
// absolute weights 900 and 100.
func FontWeight(s *style.Style) int {
	switch w := strings.ToLower(string(s.Font().Weight())); w {
	case "bold":
		return 700
	case "bolder":
		return 900
	case "lighter":
		return 100
	default:
		if n, err := strconv.Atoi(w); err == nil {
			return n
		}
	}
	return 400
}

// IsBold is true for font weights of 600 and above.
func IsBold(s *style.Style) bool {
	return FontWeight(s) >= 600
}

// IsItalic is true for italic and oblique font styles.
func IsItalic(s *style.Style) bool {
	st := s.Font().Style()
	return st == "italic" || st == "oblique"
}
