package style

import "sort"

// field describes a leaf sub-property of a container of type C.
type field[C any] struct {
	ref   func(c *C) *Property // access to the storage of the field
	def   Property             // schema default
	check checker
}

// schema is the lookup table of a container kind: sub-property names in
// canonical order, and a field description for every leaf. Nested containers
// are handled by the containers themselves.
type schema[C any] struct {
	names  []string
	fields map[string]field[C]
}

func (sc *schema[C]) leaf(name string) (field[C], bool) {
	f, ok := sc.fields[name]
	return f, ok
}

// get returns the effective value of a leaf, i.e. its default if unset.
func (sc *schema[C]) get(c *C, name string) Property {
	f := sc.fields[name]
	if p := *f.ref(c); !p.IsEmpty() {
		return p
	}
	return f.def
}

func (sc *schema[C]) set(c *C, path, name string, v Value) error {
	f, ok := sc.fields[name]
	if !ok {
		return unknownProperty(path)
	}
	p, ok := f.check(v)
	if !ok {
		tracer().Errorf("rejecting value %q for %s", v.String(), path)
		return invalidValue(path, v)
	}
	*f.ref(c) = p
	return nil
}

// merge copies every leaf set in src to dst.
func (sc *schema[C]) merge(dst, src *C) {
	for _, f := range sc.fields {
		if p := *f.ref(src); !p.IsEmpty() {
			*f.ref(dst) = p
		}
	}
}

func (sc *schema[C]) isSet(c *C) bool {
	for _, f := range sc.fields {
		if !f.ref(c).IsEmpty() {
			return true
		}
	}
	return false
}

// leaves calls fn for every leaf in canonical order, with a pointer to its
// storage and its default.
func (sc *schema[C]) leaves(c *C, fn func(name string, p *Property, def Property)) {
	for _, name := range sc.names {
		if f, ok := sc.fields[name]; ok {
			fn(name, f.ref(c), f.def)
		}
	}
}

// --- Leaf walking ----------------------------------------------------------

// LeafFunc is called for leaves of a style, with the full dashed path of the
// leaf, a pointer to its storage and its schema default.
type LeafFunc func(path string, p *Property, def Property)

// Paths returns the dashed paths of all leaf properties of a style,
// sorted alphabetically.
func Paths() []string {
	var paths []string
	New().walk(true, func(path string, _ *Property, _ Property) {
		paths = append(paths, path)
	})
	sort.Strings(paths)
	return paths
}
