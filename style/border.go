package style

import (
	"fmt"
	"strings"
)

// BorderSide holds the properties of one side of a border.
type BorderSide struct {
	name                          string
	bwidth, bstyle, bcolor, bradi Property
}

// sub-properties of a border side, which also serve as border modifiers
var borderModifiers = []string{"width", "style", "color", "radius"}

var borderSideSchema = &schema[BorderSide]{
	names: borderModifiers,
	fields: map[string]field[BorderSide]{
		"width":  {ref: func(b *BorderSide) *Property { return &b.bwidth }, def: "0", check: length(borderWidthKeywords...)},
		"style":  {ref: func(b *BorderSide) *Property { return &b.bstyle }, def: "none", check: oneOf(borderStyles...)},
		"color":  {ref: func(b *BorderSide) *Property { return &b.bcolor }, def: "transparent", check: colorCheck},
		"radius": {ref: func(b *BorderSide) *Property { return &b.bradi }, def: "0", check: length()},
	},
}

func newBorderSide(name string) *BorderSide {
	return &BorderSide{name: name}
}

// Name returns the side of the border, e.g. "left".
func (bs *BorderSide) Name() string {
	return bs.name
}

// Width returns the effective border width.
func (bs *BorderSide) Width() Property { return borderSideSchema.get(bs, "width") }

// Style returns the effective border style.
func (bs *BorderSide) Style() Property { return borderSideSchema.get(bs, "style") }

// Color returns the effective border color.
func (bs *BorderSide) Color() Property { return borderSideSchema.get(bs, "color") }

// Radius returns the effective border radius.
func (bs *BorderSide) Radius() Property { return borderSideSchema.get(bs, "radius") }

// Value returns the composite value "width style color".
func (bs *BorderSide) Value() Value {
	return Value{bs.Width(), bs.Style(), bs.Color()}
}

// SetValue sets a border side from a shorthand of up to three tokens, in
// any order. Tokens are classified as width, style or color. Omitted parts
// are reset to their defaults.
func (bs *BorderSide) SetValue(v Value) error {
	path := fromWords("border", bs.name)
	if len(v) == 0 || len(v) > 3 {
		return invalidValue(path, v)
	}
	if p, ok := v.Single(); ok && isGlobalKeyword(Property(strings.ToLower(string(p)))) {
		for _, m := range borderModifiers[:3] {
			_ = borderSideSchema.set(bs, path, m, v)
		}
		return nil
	}
	tmp := BorderSide{name: bs.name, bwidth: "0", bstyle: "none", bcolor: "transparent", bradi: bs.bradi}
	var seen [3]bool
	for _, p := range v {
		lp := Property(strings.ToLower(string(p)))
		var slot int
		switch {
		case IsLength(lp) || isKeyword(lp, borderWidthKeywords...):
			slot, tmp.bwidth = 0, lp
		case isKeyword(lp, borderStyles...):
			slot, tmp.bstyle = 1, lp
		default:
			if _, err := ParseColor(string(lp)); err != nil {
				return invalidValue(path, v)
			}
			slot, tmp.bcolor = 2, lp
		}
		if seen[slot] {
			return invalidValue(path, v)
		}
		seen[slot] = true
	}
	*bs = tmp
	return nil
}

func (bs *BorderSide) getPath(words []string) (Value, error) {
	switch len(words) {
	case 0:
		return bs.Value(), nil
	case 1:
		if _, ok := borderSideSchema.leaf(words[0]); ok {
			return Value{borderSideSchema.get(bs, words[0])}, nil
		}
	}
	return nil, unknownProperty(append([]string{"border", bs.name}, words...)...)
}

func (bs *BorderSide) setPath(words []string, v Value) error {
	switch len(words) {
	case 0:
		return bs.SetValue(v)
	case 1:
		return borderSideSchema.set(bs, fromWords("border", bs.name, words[0]), words[0], v)
	}
	return unknownProperty(append([]string{"border", bs.name}, words...)...)
}

func (bs *BorderSide) walk(fn LeafFunc) {
	borderSideSchema.leaves(bs, func(name string, p *Property, def Property) {
		fn(fromWords("border", bs.name, name), p, def)
	})
}

// ---------------------------------------------------------------------------

// Border is the container for the four sides of a border. Sides are
// created lazily.
//
// Besides addressing single sides ("border-left-color"), modifiers address
// a sub-property on all four sides: "border-color" reads as a single color
// if all sides agree, and as a 4-tuple (top, right, bottom, left) otherwise.
type Border struct {
	sides [4]*BorderSide
}

// NewBorder creates an empty border container.
func NewBorder() *Border {
	return &Border{}
}

// Prefix returns "border".
func (b *Border) Prefix() string {
	return "border"
}

// Subnames returns the sub-property names in canonical order.
func (b *Border) Subnames() []string {
	return fourDirs[:]
}

// Side returns one of the four sides, creating it if necessary.
func (b *Border) Side(i int) *BorderSide {
	if b.sides[i] == nil {
		b.sides[i] = newBorderSide(fourDirs[i])
	}
	return b.sides[i]
}

// Top returns the top border side.
func (b *Border) Top() *BorderSide { return b.Side(Top) }

// Right returns the right border side.
func (b *Border) Right() *BorderSide { return b.Side(Right) }

// Bottom returns the bottom border side.
func (b *Border) Bottom() *BorderSide { return b.Side(Bottom) }

// Left returns the left border side.
func (b *Border) Left() *BorderSide { return b.Side(Left) }

// Get reads a property by path, e.g. "border-left-width" or "border-color".
func (b *Border) Get(path string) (Value, error) {
	words, err := stripPrefix("border", path)
	if err != nil {
		return nil, err
	}
	return b.getPath(words)
}

// Set assigns a textual value to a property given by path.
func (b *Border) Set(path string, value string) error {
	return b.Assign(path, ParseValue(value))
}

// Assign assigns a value to a property given by path.
func (b *Border) Assign(path string, v Value) error {
	words, err := stripPrefix("border", path)
	if err != nil {
		return err
	}
	return b.setPath(words, v)
}

// Value returns the composite "width style color" of the border. If the
// sides differ, ErrAmbiguousSidedValue is returned.
func (b *Border) Value() (Value, error) {
	v := b.Side(Top).Value()
	for i := Right; i <= Left; i++ {
		if !b.Side(i).Value().Equal(v) {
			return nil, fmt.Errorf("%w: sides of border differ", ErrAmbiguousSidedValue)
		}
	}
	return v, nil
}

// SetValue sets all four sides from a "width style color" shorthand.
func (b *Border) SetValue(v Value) error {
	var sides [4]*BorderSide
	for i := range sides {
		sides[i] = b.Side(i).clone()
		if err := sides[i].SetValue(v); err != nil {
			return err
		}
	}
	b.sides = sides
	return nil
}

// Modifier returns the values of a modifier (width, style, color, radius)
// for the four sides.
func (b *Border) Modifier(m string) ([4]Property, error) {
	var r [4]Property
	if _, ok := borderSideSchema.leaf(m); !ok {
		return r, unknownProperty("border", m)
	}
	for i := range r {
		r[i] = borderSideSchema.get(b.Side(i), m)
	}
	return r, nil
}

func (b *Border) getPath(words []string) (Value, error) {
	if len(words) == 0 {
		return b.Value()
	}
	if i := sideIndex(words[0]); i >= 0 {
		return b.Side(i).getPath(words[1:])
	}
	if len(words) == 1 {
		if r, err := b.Modifier(words[0]); err == nil {
			if r[Top] == r[Right] && r[Top] == r[Bottom] && r[Top] == r[Left] {
				return Value{r[Top]}, nil
			}
			return Value(r[:]), nil
		}
	}
	return nil, unknownProperty(append([]string{"border"}, words...)...)
}

func (b *Border) setPath(words []string, v Value) error {
	if len(words) == 0 {
		return b.SetValue(v)
	}
	if i := sideIndex(words[0]); i >= 0 {
		return b.Side(i).setPath(words[1:], v)
	}
	if len(words) > 1 {
		return unknownProperty(append([]string{"border"}, words...)...)
	}
	m := words[0]
	if _, ok := borderSideSchema.leaf(m); !ok {
		return unknownProperty("border", m)
	}
	vals, err := ExpandSided(v)
	if err != nil {
		return fmt.Errorf("border-%s: %w", m, err)
	}
	var sides [4]*BorderSide
	for i := range sides {
		sides[i] = b.Side(i).clone()
		if err := borderSideSchema.set(sides[i], fromWords("border", fourDirs[i], m), m, Value{vals[i]}); err != nil {
			return err
		}
	}
	b.sides = sides
	return nil
}

func (bs *BorderSide) clone() *BorderSide {
	c := *bs
	return &c
}

func (b *Border) merge(other *Border) {
	for i, s := range other.sides {
		if s != nil {
			borderSideSchema.merge(b.Side(i), s)
		}
	}
}

func (b *Border) clone() *Border {
	c := &Border{}
	for i, s := range b.sides {
		if s != nil {
			c.sides[i] = s.clone()
		}
	}
	return c
}

func (b *Border) walk(all bool, fn LeafFunc) {
	for i, s := range b.sides {
		if s == nil && all {
			s = b.Side(i)
		}
		if s != nil {
			s.walk(fn)
		}
	}
}
