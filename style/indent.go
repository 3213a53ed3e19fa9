package style

import "fmt"

// Indent is the sided container for margins and padding. Both have
// sub-properties top, right, bottom and left, each defaulting to 0.
type Indent struct {
	prefix string
	sides  [4]Property
}

var indentSchema = func() *schema[Indent] {
	sc := &schema[Indent]{names: fourDirs[:], fields: map[string]field[Indent]{}}
	for i, d := range fourDirs {
		i := i
		sc.fields[d] = field[Indent]{
			ref:   func(in *Indent) *Property { return &in.sides[i] },
			def:   "0",
			check: length(),
		}
	}
	return sc
}()

// NewMargin creates an empty margin container.
func NewMargin() *Indent {
	return &Indent{prefix: "margin"}
}

// NewPadding creates an empty padding container.
func NewPadding() *Indent {
	return &Indent{prefix: "padding"}
}

// Prefix returns "margin" or "padding".
func (in *Indent) Prefix() string {
	return in.prefix
}

// Subnames returns the sub-property names in canonical order.
func (in *Indent) Subnames() []string {
	return fourDirs[:]
}

// Get reads a property by path, e.g. "margin-left".
func (in *Indent) Get(path string) (Value, error) {
	words, err := stripPrefix(in.prefix, path)
	if err != nil {
		return nil, err
	}
	return in.getPath(words)
}

// Set assigns a textual value to a property given by path.
func (in *Indent) Set(path string, value string) error {
	return in.Assign(path, ParseValue(value))
}

// Assign assigns a value to a property given by path.
func (in *Indent) Assign(path string, v Value) error {
	words, err := stripPrefix(in.prefix, path)
	if err != nil {
		return err
	}
	return in.setPath(words, v)
}

// Value returns the cumulative value of all four sides. If the sides
// differ, ErrAmbiguousSidedValue is returned.
func (in *Indent) Value() (Value, error) {
	e := in.Edges()
	if e[Top] != e[Right] || e[Top] != e[Bottom] || e[Top] != e[Left] {
		return CollapseSided(e), fmt.Errorf("%w: %s is %q", ErrAmbiguousSidedValue,
			in.prefix, CollapseSided(e).String())
	}
	return Value{e[Top]}, nil
}

// SetValue sets all four sides from a 1…4 token value, CSS style.
func (in *Indent) SetValue(v Value) error {
	sides, err := ExpandSided(v)
	if err != nil {
		return fmt.Errorf("%s: %w", in.prefix, err)
	}
	var tmp Indent
	for i, d := range fourDirs {
		if err := indentSchema.set(&tmp, fromWords(in.prefix, d), d, Value{sides[i]}); err != nil {
			return err
		}
	}
	in.sides = tmp.sides
	return nil
}

// Edges returns the effective values of the four sides (top, right,
// bottom, left).
func (in *Indent) Edges() [4]Property {
	var e [4]Property
	for i, d := range fourDirs {
		e[i] = indentSchema.get(in, d)
	}
	return e
}

func (in *Indent) getPath(words []string) (Value, error) {
	switch len(words) {
	case 0:
		return in.Value()
	case 1:
		if _, ok := indentSchema.leaf(words[0]); ok {
			return Value{indentSchema.get(in, words[0])}, nil
		}
	}
	return nil, unknownProperty(append([]string{in.prefix}, words...)...)
}

func (in *Indent) setPath(words []string, v Value) error {
	switch len(words) {
	case 0:
		return in.SetValue(v)
	case 1:
		return indentSchema.set(in, fromWords(in.prefix, words[0]), words[0], v)
	}
	return unknownProperty(append([]string{in.prefix}, words...)...)
}

func (in *Indent) merge(other *Indent) {
	indentSchema.merge(in, other)
}

func (in *Indent) clone() *Indent {
	c := *in
	return &c
}

func (in *Indent) walk(fn LeafFunc) {
	indentSchema.leaves(in, func(name string, p *Property, def Property) {
		fn(fromWords(in.prefix, name), p, def)
	})
}

// stripPrefix splits a path into words and checks for a leading prefix.
func stripPrefix(prefix, path string) ([]string, error) {
	words := toWords(path)
	if len(words) == 0 || words[0] != prefix {
		return nil, unknownProperty(words...)
	}
	return words[1:], nil
}
