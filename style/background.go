package style

import "strings"

// Background holds the background properties of a node.
type Background struct {
	col, pos, size, repeat, origin, clip, img Property
}

var backgroundSchema = &schema[Background]{
	names: []string{"color", "position", "size", "repeat", "origin", "clip", "image"},
	fields: map[string]field[Background]{
		"color":    {ref: func(b *Background) *Property { return &b.col }, def: "transparent", check: colorCheck},
		"position": {ref: func(b *Background) *Property { return &b.pos }, def: "0 0", check: bgPositionCheck},
		"size":     {ref: func(b *Background) *Property { return &b.size }, def: "auto", check: bgSizeCheck},
		"repeat":   {ref: func(b *Background) *Property { return &b.repeat }, def: "repeat", check: oneOf(bgRepeats...)},
		"origin":   {ref: func(b *Background) *Property { return &b.origin }, def: "padding-box", check: oneOf(bgBoxes...)},
		"clip":     {ref: func(b *Background) *Property { return &b.clip }, def: "border-box", check: oneOf(bgBoxes...)},
		"image":    {ref: func(b *Background) *Property { return &b.img }, def: "none", check: imageCheck},
	},
}

// NewBackground creates an empty background container.
func NewBackground() *Background {
	return &Background{}
}

// Prefix returns "background".
func (bg *Background) Prefix() string {
	return "background"
}

// Subnames returns the sub-property names in canonical order.
func (bg *Background) Subnames() []string {
	return backgroundSchema.names
}

// Color returns the effective background color.
func (bg *Background) Color() Property { return backgroundSchema.get(bg, "color") }

// Image returns the effective background image.
func (bg *Background) Image() Property { return backgroundSchema.get(bg, "image") }

// Get reads a property by path, e.g. "background-color".
func (bg *Background) Get(path string) (Value, error) {
	words, err := stripPrefix("background", path)
	if err != nil {
		return nil, err
	}
	return bg.getPath(words)
}

// Set assigns a textual value to a property given by path.
func (bg *Background) Set(path string, value string) error {
	return bg.Assign(path, ParseValue(value))
}

// Assign assigns a value to a property given by path.
func (bg *Background) Assign(path string, v Value) error {
	words, err := stripPrefix("background", path)
	if err != nil {
		return err
	}
	return bg.setPath(words, v)
}

// Value returns the composite value "color image repeat".
func (bg *Background) Value() Value {
	return Value{bg.Color(), bg.Image(), backgroundSchema.get(bg, "repeat")}
}

// SetValue sets the background from a shorthand. Tokens denote a color, an
// image, a repeat mode or box keywords (first one for origin, second one for
// clip). Omitted parts are reset to their defaults.
func (bg *Background) SetValue(v Value) error {
	if len(v) == 0 {
		return invalidValue("background", v)
	}
	if p, ok := v.Single(); ok && isGlobalKeyword(Property(strings.ToLower(string(p)))) {
		for _, name := range backgroundSchema.names {
			_ = backgroundSchema.set(bg, "background", name, v)
		}
		return nil
	}
	var tmp Background
	boxes := 0
	for _, p := range v {
		lp := Property(strings.ToLower(string(p)))
		switch {
		case isImage(p) || lp == "none":
			if !tmp.img.IsEmpty() {
				return invalidValue("background", v)
			}
			if lp == "none" {
				tmp.img = lp
			} else {
				tmp.img = p
			}
		case isKeyword(lp, bgRepeats...):
			if !tmp.repeat.IsEmpty() {
				return invalidValue("background", v)
			}
			tmp.repeat = lp
		case isKeyword(lp, bgBoxes...):
			if boxes == 0 {
				tmp.origin, tmp.clip = lp, lp
			} else if boxes == 1 {
				tmp.clip = lp
			} else {
				return invalidValue("background", v)
			}
			boxes++
		default:
			if _, err := ParseColor(string(lp)); err != nil || !tmp.col.IsEmpty() {
				return invalidValue("background", v)
			}
			tmp.col = lp
		}
	}
	backgroundSchema.leaves(&tmp, func(_ string, p *Property, def Property) {
		if p.IsEmpty() {
			*p = def
		}
	})
	*bg = tmp
	return nil
}

func (bg *Background) getPath(words []string) (Value, error) {
	switch len(words) {
	case 0:
		return bg.Value(), nil
	case 1:
		if _, ok := backgroundSchema.leaf(words[0]); ok {
			return ParseValue(string(backgroundSchema.get(bg, words[0]))), nil
		}
	}
	return nil, unknownProperty(append([]string{"background"}, words...)...)
}

func (bg *Background) setPath(words []string, v Value) error {
	switch len(words) {
	case 0:
		return bg.SetValue(v)
	case 1:
		return backgroundSchema.set(bg, fromWords("background", words[0]), words[0], v)
	}
	return unknownProperty(append([]string{"background"}, words...)...)
}

func (bg *Background) merge(other *Background) {
	backgroundSchema.merge(bg, other)
}

func (bg *Background) clone() *Background {
	c := *bg
	return &c
}

func (bg *Background) walk(fn LeafFunc) {
	backgroundSchema.leaves(bg, func(name string, p *Property, def Property) {
		fn(fromWords("background", name), p, def)
	})
}
