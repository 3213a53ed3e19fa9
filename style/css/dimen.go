package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// PX is the size of a pixel on the GUI's canvas.
const PX = dimen.PT

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	flags uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
*/

// Auto creates a dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Pixels creates a CSS dimension with a fixed value of n pixels.
func Pixels(n int) DimenT {
	return JustDimen(dimen.DU(n) * PX)
}

// ParseDimen interprets a property as a dimension. It will never return an
// error, even with illegal input, but instead will then return an unset
// dimension.
func ParseDimen(p style.Property) DimenT {
	s := strings.ToLower(string(p))
	switch s {
	case "":
		return DimenT{}
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	}
	unit := PX
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s, unit = strings.TrimSuffix(s, "pt"), dimen.PT
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		tracer().Debugf("not a dimension: %q", p)
		return DimenT{}
	}
	return JustDimen(dimen.DU(math.Round(f * float64(unit))))
}

// IsUnset returns true if d is unset, i.e. has not been set from a valid
// property value.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// IsAuto returns true if d is `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsAbsolute returns true if d has a fixed value.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// Unwrap returns the fixed value of d, or 0 for all other kinds.
func (d DimenT) Unwrap() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

// Px returns the fixed value of d in whole pixels, or 0 for all other kinds.
func (d DimenT) Px() int {
	return ToPixels(d.Unwrap())
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAbsolute:
		return fmt.Sprintf("%dpx", d.Px())
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	return "unset"
}

// ToPixels converts a length to whole pixels, rounding to the nearest pixel.
func ToPixels(x dimen.DU) int {
	return int(math.Round(float64(x) / float64(PX)))
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns lists the results of an expression match on DimenT.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts an expression match on d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is part of pattern matching for DimenT types and intended to be
// instantiated using `DimenPattern()` only.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern result for the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// --- Border widths ---------------------------------------------------------

// BorderWidth interprets a border width property, including the keywords
// thin, medium and thick. A border style of none or hidden suppresses the
// border only when painting, it does not change the width.
func BorderWidth(p style.Property) DimenT {
	switch strings.ToLower(string(p)) {
	case "thin":
		return Pixels(1)
	case "medium":
		return Pixels(3)
	case "thick":
		return Pixels(5)
	}
	return ParseDimen(p)
}
