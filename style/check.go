package style

import (
	"regexp"
	"strconv"
	"strings"
)

// A checker validates a value for a single sub-property and returns the
// normalized property to store.
type checker func(v Value) (Property, bool)

var lengthPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?(px|pt)?$`)

// IsLength checks if a property is a plain length, i.e. a number with an
// optional unit of 'px' or 'pt'.
func IsLength(p Property) bool {
	return lengthPattern.MatchString(strings.ToLower(string(p)))
}

// isGlobalKeyword checks for keywords valid for every property.
func isGlobalKeyword(p Property) bool {
	return p.IsInherit() || p.IsInitial() || p == "default"
}

func single(check func(p Property) bool) checker {
	return func(v Value) (Property, bool) {
		p, ok := v.Single()
		if !ok {
			return NullStyle, false
		}
		p = Property(strings.ToLower(string(p)))
		if isGlobalKeyword(p) || check(p) {
			return p, true
		}
		return NullStyle, false
	}
}

func oneOf(keywords ...string) checker {
	return single(func(p Property) bool {
		return isKeyword(p, keywords...)
	})
}

func isKeyword(p Property, keywords ...string) bool {
	for _, k := range keywords {
		if string(p) == k {
			return true
		}
	}
	return false
}

func length(keywords ...string) checker {
	return single(func(p Property) bool {
		return IsLength(p) || isKeyword(p, keywords...)
	})
}

var colorCheck = single(func(p Property) bool {
	_, err := ParseColor(string(p))
	return err == nil
})

var borderStyles = []string{"none", "hidden", "dotted", "dashed", "solid", "double",
	"groove", "ridge", "inset", "outset"}

var borderWidthKeywords = []string{"thin", "medium", "thick"}

// FontSizes maps font-size keywords to point sizes.
var FontSizes = map[string]float64{
	"xx-small": 7,
	"x-small":  7.5,
	"small":    10,
	"medium":   12,
	"large":    13.5,
	"x-large":  18,
	"xx-large": 24,
	"larger":   14,
	"smaller":  10,
}

func isFontSize(p Property) bool {
	_, ok := FontSizes[string(p)]
	return ok || IsLength(p)
}

func isFontWeight(p Property) bool {
	if isKeyword(p, "normal", "bold", "bolder", "lighter") {
		return true
	}
	n, err := strconv.Atoi(string(p))
	return err == nil && n >= 100 && n <= 900 && n%100 == 0
}

var fontStyles = []string{"normal", "italic", "oblique"}
var fontVariants = []string{"normal", "small-caps"}
var fontStretches = []string{"normal", "ultra-condensed", "extra-condensed", "condensed",
	"semi-condensed", "semi-expanded", "expanded", "extra-expanded", "ultra-expanded"}

// family names keep their case and may consist of more than one word.
func familyCheck(v Value) (Property, bool) {
	if len(v) == 0 {
		return NullStyle, false
	}
	if p, ok := v.Single(); ok && isGlobalKeyword(Property(strings.ToLower(string(p)))) {
		return Property(strings.ToLower(string(p))), true
	}
	return Property(v.String()), true
}

func isImage(p Property) bool {
	s := string(p)
	return s == "none" || (strings.HasPrefix(s, "url(") && strings.HasSuffix(s, ")"))
}

// image references keep their case.
func imageCheck(v Value) (Property, bool) {
	p, ok := v.Single()
	if !ok {
		return NullStyle, false
	}
	if lp := Property(strings.ToLower(string(p))); isGlobalKeyword(lp) || lp == "none" {
		return lp, true
	}
	if isImage(p) {
		return p, true
	}
	return NullStyle, false
}

var bgPositions = []string{"left", "right", "top", "bottom", "center"}
var bgRepeats = []string{"repeat", "repeat-x", "repeat-y", "no-repeat", "space", "round"}
var bgBoxes = []string{"border-box", "padding-box", "content-box"}

// pair accepts one or two tokens, each accepted by check.
func pair(check func(p Property) bool, singles ...string) checker {
	return func(v Value) (Property, bool) {
		if len(v) == 0 || len(v) > 2 {
			return NullStyle, false
		}
		w := make(Value, len(v))
		for i, p := range v {
			w[i] = Property(strings.ToLower(string(p)))
		}
		if len(w) == 1 && (isGlobalKeyword(w[0]) || isKeyword(w[0], singles...)) {
			return w[0], true
		}
		for _, p := range w {
			if !check(p) {
				return NullStyle, false
			}
		}
		return Property(w.String()), true
	}
}

var bgPositionCheck = pair(func(p Property) bool {
	return IsLength(p) || isKeyword(p, bgPositions...)
})

var bgSizeCheck = pair(func(p Property) bool {
	return IsLength(p) || p.IsAuto()
}, "cover", "contain")
