package style

import (
	"fmt"
	"sort"
	"strings"
)

// Style is the root container of style properties for a node. It holds
// the root-level properties (display, position, offsets, size, color) and
// nested containers for margin, padding, border, background and font.
// Nested containers are created on first access.
//
// A Style is used for authoring style fragments (e.g., rules of a style
// registry) as well as for holding the resolved style of a node.
type Style struct {
	disp, pos, left, top, width, height, col Property
	margin, padding                          *Indent
	border                                   *Border
	background                               *Background
	font                                     *Font
}

var rootSchema = &schema[Style]{
	names: []string{"display", "position", "left", "top", "width", "height", "color"},
	fields: map[string]field[Style]{
		"display":  {ref: func(s *Style) *Property { return &s.disp }, def: "block", check: oneOf(displayModes...)},
		"position": {ref: func(s *Style) *Property { return &s.pos }, def: "static", check: oneOf(positions...)},
		"left":     {ref: func(s *Style) *Property { return &s.left }, def: "auto", check: length("auto")},
		"top":      {ref: func(s *Style) *Property { return &s.top }, def: "auto", check: length("auto")},
		"width":    {ref: func(s *Style) *Property { return &s.width }, def: "auto", check: length("auto")},
		"height":   {ref: func(s *Style) *Property { return &s.height }, def: "auto", check: length("auto")},
		"color":    {ref: func(s *Style) *Property { return &s.col }, def: "black", check: colorCheck},
	},
}

var displayModes = []string{"block", "inline", "inline-block", "flex", "grid", "none"}
var positions = []string{"static", "relative", "absolute", "fixed"}

// subnames of the root style, in canonical order
var styleSubnames = []string{"display", "position", "left", "top", "width", "height",
	"margin", "padding", "border", "background", "font", "color"}

// New creates an empty style.
func New() *Style {
	return &Style{}
}

// Subnames returns the sub-property names of a style in canonical order.
func (s *Style) Subnames() []string {
	return styleSubnames
}

// Margin returns the margin container, creating it if necessary.
func (s *Style) Margin() *Indent {
	if s.margin == nil {
		s.margin = NewMargin()
	}
	return s.margin
}

// Padding returns the padding container, creating it if necessary.
func (s *Style) Padding() *Indent {
	if s.padding == nil {
		s.padding = NewPadding()
	}
	return s.padding
}

// Border returns the border container, creating it if necessary.
func (s *Style) Border() *Border {
	if s.border == nil {
		s.border = NewBorder()
	}
	return s.border
}

// Background returns the background container, creating it if necessary.
func (s *Style) Background() *Background {
	if s.background == nil {
		s.background = NewBackground()
	}
	return s.background
}

// Font returns the font container, creating it if necessary.
func (s *Style) Font() *Font {
	if s.font == nil {
		s.font = NewFont()
	}
	return s.font
}

// Display returns the effective display property.
func (s *Style) Display() Property { return rootSchema.get(s, "display") }

// Position returns the effective position property.
func (s *Style) Position() Property { return rootSchema.get(s, "position") }

// Color returns the effective foreground color property.
func (s *Style) Color() Property { return rootSchema.get(s, "color") }

// Get reads a property by its dashed path, e.g. "border-left-width". Unset
// properties yield their default values.
func (s *Style) Get(path string) (Value, error) {
	words := toWords(path)
	if len(words) == 0 {
		return nil, unknownProperty(path)
	}
	if len(words) == 1 {
		if _, ok := rootSchema.leaf(words[0]); ok {
			return Value{rootSchema.get(s, words[0])}, nil
		}
	}
	switch words[0] {
	case "margin":
		return s.Margin().getPath(words[1:])
	case "padding":
		return s.Padding().getPath(words[1:])
	case "border":
		return s.Border().getPath(words[1:])
	case "background":
		return s.Background().getPath(words[1:])
	case "font":
		return s.Font().getPath(words[1:])
	}
	return nil, unknownProperty(words...)
}

// Leaf returns the effective value of a leaf property as a single Property.
// Paths of composite properties (e.g., "border") are rejected.
func (s *Style) Leaf(path string) (Property, error) {
	if !IsLeaf(path) {
		return NullStyle, unknownProperty(path)
	}
	v, err := s.Get(path)
	if err != nil {
		return NullStyle, err
	}
	return Property(v.String()), nil
}

// MustLeaf is like Leaf, but panics for paths which are not leaf paths.
func (s *Style) MustLeaf(path string) Property {
	p, err := s.Leaf(path)
	if err != nil {
		panic(err)
	}
	return p
}

// Set assigns a textual value to a property given by path. Shorthands are
// expanded, e.g.
//
//     s.Set("padding", "2 4")
//
// will set padding-top and padding-bottom to 2, and padding-left and
// padding-right to 4.
func (s *Style) Set(path string, value string) error {
	return s.Assign(path, ParseValue(value))
}

// Assign assigns a value to a property given by path.
func (s *Style) Assign(path string, v Value) error {
	words := toWords(path)
	if len(words) == 0 {
		return unknownProperty(path)
	}
	if len(words) == 1 {
		if _, ok := rootSchema.leaf(words[0]); ok {
			return rootSchema.set(s, words[0], words[0], v)
		}
	}
	switch words[0] {
	case "margin":
		return s.Margin().setPath(words[1:], v)
	case "padding":
		return s.Padding().setPath(words[1:], v)
	case "border":
		return s.Border().setPath(words[1:], v)
	case "background":
		return s.Background().setPath(words[1:], v)
	case "font":
		return s.Font().setPath(words[1:], v)
	}
	return unknownProperty(words...)
}

// Merge merges other into s. Nested containers are merged field by field,
// leaf properties set in other overwrite those of s. Unset leaves of other
// never overwrite anything.
func (s *Style) Merge(other *Style) *Style {
	if other == nil {
		return s
	}
	rootSchema.merge(s, other)
	if other.margin != nil {
		s.Margin().merge(other.margin)
	}
	if other.padding != nil {
		s.Padding().merge(other.padding)
	}
	if other.border != nil {
		s.Border().merge(other.border)
	}
	if other.background != nil {
		s.Background().merge(other.background)
	}
	if other.font != nil {
		s.Font().merge(other.font)
	}
	return s
}

// Clone creates a deep copy of a style.
func (s *Style) Clone() *Style {
	c := *s
	if s.margin != nil {
		c.margin = s.margin.clone()
	}
	if s.padding != nil {
		c.padding = s.padding.clone()
	}
	if s.border != nil {
		c.border = s.border.clone()
	}
	if s.background != nil {
		c.background = s.background.clone()
	}
	if s.font != nil {
		c.font = s.font.clone()
	}
	return &c
}

// Equal compares the effective values of all leaf properties of two styles.
func (s *Style) Equal(other *Style) bool {
	if s == nil || other == nil {
		return s == other
	}
	for _, path := range Paths() {
		if s.MustLeaf(path) != other.MustLeaf(path) {
			return false
		}
	}
	return true
}

// IsEmpty is true if no property of s is set.
func (s *Style) IsEmpty() bool {
	empty := true
	s.walk(false, func(_ string, p *Property, _ Property) {
		if !p.IsEmpty() {
			empty = false
		}
	})
	return empty
}

// String renders the set properties of a style, sorted by path, as
//
//     border-top-width: 2; color: red;
//
func (s *Style) String() string {
	var props []string
	s.walk(false, func(path string, p *Property, _ Property) {
		if !p.IsEmpty() {
			props = append(props, fmt.Sprintf("%s: %s;", path, *p))
		}
	})
	sort.Strings(props)
	return strings.Join(props, " ")
}

// Walk calls fn for every leaf property of s, including unset ones.
func (s *Style) Walk(fn LeafFunc) {
	s.walk(true, fn)
}

// walk calls fn for all leaves of s. If all is false, leaves of nested
// containers which have not been created yet are skipped.
func (s *Style) walk(all bool, fn LeafFunc) {
	rootSchema.leaves(s, func(name string, p *Property, def Property) {
		fn(name, p, def)
	})
	if all || s.margin != nil {
		s.Margin().walk(fn)
	}
	if all || s.padding != nil {
		s.Padding().walk(fn)
	}
	if all || s.border != nil {
		s.Border().walk(all, fn)
	}
	if all || s.background != nil {
		s.Background().walk(fn)
	}
	if all || s.font != nil {
		s.Font().walk(fn)
	}
}

// ResolveInherited substitutes leaf values 'inherit' with the effective
// value of the same property of parent, and leaf values 'initial' or
// 'default' with the property's default. If parent is nil, 'inherit' resolves to the default
// as well. parent has to be a resolved style, i.e. be free of 'inherit'
// values.
func (s *Style) ResolveInherited(parent *Style) {
	s.walk(false, func(path string, p *Property, def Property) {
		switch {
		case p.IsInherit():
			if parent == nil {
				*p = def
				return
			}
			*p = parent.MustLeaf(path)
		case p.IsInitial(), *p == "default":
			*p = def
		}
	})
}

// --- Leaf paths ------------------------------------------------------------

var leafPaths = func() map[string]bool {
	m := make(map[string]bool)
	New().walk(true, func(path string, _ *Property, _ Property) {
		m[path] = true
	})
	return m
}()

// IsLeaf checks if a path denotes a leaf property, e.g. "border-left-width",
// as opposed to a composite one, e.g. "border-left".
func IsLeaf(path string) bool {
	return leafPaths[strings.ToLower(path)]
}

// IsInheritable checks if a property is inherited by default: color and
// the font properties.
func IsInheritable(path string) bool {
	return path == "color" || strings.HasPrefix(path, "font-")
}

// UserAgentDefaults returns the style of the universal user-agent rule:
// every inheritable property is set to 'inherit'.
func UserAgentDefaults() *Style {
	ua := New()
	ua.Walk(func(path string, p *Property, _ Property) {
		if IsInheritable(path) {
			*p = "inherit"
		}
	})
	return ua
}
