package style

import "strings"

// Font holds the font properties of a node. All font properties are
// inherited by default (see UserAgentDefaults).
type Font struct {
	fstyle, variant, fweight, stretch, fsize, ffamily Property
}

var fontSchema = &schema[Font]{
	names: []string{"style", "variant", "weight", "stretch", "size", "family"},
	fields: map[string]field[Font]{
		"style":   {ref: func(f *Font) *Property { return &f.fstyle }, def: "normal", check: oneOf(fontStyles...)},
		"variant": {ref: func(f *Font) *Property { return &f.variant }, def: "normal", check: oneOf(fontVariants...)},
		"weight":  {ref: func(f *Font) *Property { return &f.fweight }, def: "normal", check: single(isFontWeight)},
		"stretch": {ref: func(f *Font) *Property { return &f.stretch }, def: "normal", check: oneOf(fontStretches...)},
		"size":    {ref: func(f *Font) *Property { return &f.fsize }, def: "medium", check: single(isFontSize)},
		"family":  {ref: func(f *Font) *Property { return &f.ffamily }, def: "", check: familyCheck},
	},
}

// NewFont creates an empty font container.
func NewFont() *Font {
	return &Font{}
}

// Prefix returns "font".
func (f *Font) Prefix() string {
	return "font"
}

// Subnames returns the sub-property names in canonical order.
func (f *Font) Subnames() []string {
	return fontSchema.names
}

// Size returns the effective font size.
func (f *Font) Size() Property { return fontSchema.get(f, "size") }

// Weight returns the effective font weight.
func (f *Font) Weight() Property { return fontSchema.get(f, "weight") }

// Style returns the effective font style.
func (f *Font) Style() Property { return fontSchema.get(f, "style") }

// Family returns the effective font family.
func (f *Font) Family() Property { return fontSchema.get(f, "family") }

// Get reads a property by path, e.g. "font-size".
func (f *Font) Get(path string) (Value, error) {
	words, err := stripPrefix("font", path)
	if err != nil {
		return nil, err
	}
	return f.getPath(words)
}

// Set assigns a textual value to a property given by path.
func (f *Font) Set(path string, value string) error {
	return f.Assign(path, ParseValue(value))
}

// Assign assigns a value to a property given by path.
func (f *Font) Assign(path string, v Value) error {
	words, err := stripPrefix("font", path)
	if err != nil {
		return err
	}
	return f.setPath(words, v)
}

// Value returns the composite value "style variant weight size family",
// omitting an empty family.
func (f *Font) Value() Value {
	v := Value{f.Style(), fontSchema.get(f, "variant"), f.Weight(), f.Size()}
	if fam := f.Family(); !fam.IsEmpty() {
		v = append(v, ParseValue(string(fam))...)
	}
	return v
}

// SetValue sets the font from a CSS font shorthand:
//
//     [style] [variant] [weight] size [family…]
//
// Tokens preceding the size are classified by keyword. Omitted parts are
// reset to their defaults.
func (f *Font) SetValue(v Value) error {
	if len(v) == 0 {
		return invalidValue("font", v)
	}
	if p, ok := v.Single(); ok && isGlobalKeyword(Property(strings.ToLower(string(p)))) {
		for _, name := range fontSchema.names {
			_ = fontSchema.set(f, "font", name, v)
		}
		return nil
	}
	var tmp Font
	i := 0
	for ; i < len(v); i++ {
		lp := Property(strings.ToLower(string(v[i])))
		if isFontSize(lp) && !isFontWeight(lp) {
			tmp.fsize = lp
			break
		}
		switch {
		case lp == "normal":
		case isKeyword(lp, fontStyles...) && tmp.fstyle.IsEmpty():
			tmp.fstyle = lp
		case isKeyword(lp, fontVariants...) && tmp.variant.IsEmpty():
			tmp.variant = lp
		case isFontWeight(lp) && tmp.fweight.IsEmpty():
			tmp.fweight = lp
		case isKeyword(lp, fontStretches...) && tmp.stretch.IsEmpty():
			tmp.stretch = lp
		default:
			return invalidValue("font", v)
		}
	}
	if tmp.fsize.IsEmpty() {
		return invalidValue("font", v)
	}
	if i+1 < len(v) {
		tmp.ffamily = Property(v[i+1:].String())
	}
	fontSchema.leaves(&tmp, func(_ string, p *Property, def Property) {
		if p.IsEmpty() {
			*p = def
		}
	})
	*f = tmp
	return nil
}

func (f *Font) getPath(words []string) (Value, error) {
	switch len(words) {
	case 0:
		return f.Value(), nil
	case 1:
		if _, ok := fontSchema.leaf(words[0]); ok {
			return Value{fontSchema.get(f, words[0])}, nil
		}
	}
	return nil, unknownProperty(append([]string{"font"}, words...)...)
}

func (f *Font) setPath(words []string, v Value) error {
	switch len(words) {
	case 0:
		return f.SetValue(v)
	case 1:
		return fontSchema.set(f, fromWords("font", words[0]), words[0], v)
	}
	return unknownProperty(append([]string{"font"}, words...)...)
}

func (f *Font) merge(other *Font) {
	fontSchema.merge(f, other)
}

func (f *Font) clone() *Font {
	c := *f
	return &c
}

func (f *Font) walk(fn LeafFunc) {
	fontSchema.leaves(f, func(name string, p *Property, def Property) {
		fn(fromWords("font", name), p, def)
	})
}
