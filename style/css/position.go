package css

import (
	"strings"

	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
)

// PositionT is an option type for CSS positions. Positions carry offsets
// for left and top, which default to 0.
type PositionT struct {
	left, top dimen.DU
	kind      position
}

/*
type PositionT
	= Unset
	| Static
	| Relative left top
	| Absolute left top
	| Fixed left top
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given offsets
// relative to the node's position in flow.
func Relative(left, top dimen.DU) PositionT {
	return PositionT{kind: positionRelative, left: left, top: top}
}

// Absolute creates a CSS position of value `absolute`, given offsets
// relative to the content box of the parent.
func Absolute(left, top dimen.DU) PositionT {
	return PositionT{kind: positionAbsolute, left: left, top: top}
}

// Fixed creates a CSS position of value `fixed`, given offsets relative to
// the screen.
func Fixed(left, top dimen.DU) PositionT {
	return PositionT{kind: positionFixed, left: left, top: top}
}

var positionMap = map[position]string{
	positionUnset:    "unset",
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
}

// Position returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position. Offsets are 0.
func Position(p style.Property) PositionT {
	switch strings.ToLower(string(p)) {
	case "static":
		return Static()
	case "relative":
		return Relative(0, 0)
	case "absolute":
		return Absolute(0, 0)
	case "fixed":
		return Fixed(0, 0)
	}
	return PositionT{}
}

// PositionOf extracts the position of a resolved style, including the
// offsets from properties left and top. Offsets of `auto` count as 0.
func PositionOf(s *style.Style) PositionT {
	pos := Position(s.Position())
	if pos.kind == positionUnset {
		pos = Static()
	}
	pos.left = ParseDimen(s.MustLeaf("left")).Unwrap()
	pos.top = ParseDimen(s.MustLeaf("top")).Unwrap()
	return pos
}

// Offsets returns the left and top offsets of a position.
func (p PositionT) Offsets() (left, top dimen.DU) {
	return p.left, p.top
}

// Place applies a position to a location (x, y) in flow, where (ox, oy) is
// the origin of the content box of the parent. It returns the location of
// the node after positioning (in pixels):
//
//     static:    (x, y)
//     relative:  (x+left, y+top)
//     absolute:  (ox+left, oy+top)
//     fixed:     (left, top)
//
func (p PositionT) Place(x, y, ox, oy int) (int, int) {
	l, t := ToPixels(p.left), ToPixels(p.top)
	switch p.kind {
	case positionRelative:
		return x + l, y + t
	case positionAbsolute:
		return ox + l, oy + t
	case positionFixed:
		return l, t
	}
	return x, y
}

func (p PositionT) String() string {
	return positionMap[p.kind]
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns lists the results of an expression match on PositionT.
type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Default  T
}

// PositionPattern starts an expression match on p.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using `PositionPattern()` only.
type PMatchExpr[T any] struct {
	pos PositionT
}

// OneOf selects the pattern result for the kind of the position.
func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	}
	return patterns.Default
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsStatic returns true if p is static.
func (p PositionT) IsStatic() bool {
	return p.kind == positionStatic
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}

// IsOutOfFlow returns true for absolute and fixed positions.
func (p PositionT) IsOutOfFlow() bool {
	return p.kind == positionAbsolute || p.kind == positionFixed
}
