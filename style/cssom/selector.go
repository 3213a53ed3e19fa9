package cssom

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidSelector flags a selector which is not supported by a registry.
var ErrInvalidSelector = errors.New("invalid selector")

// SelectorKind is the kind of a simple selector.
type SelectorKind uint8

// Selector kinds, in order of increasing specificity.
const (
	UniversalSelector SelectorKind = iota // *
	TypeSelector                          // .Type
	IDSelector                            // #id
)

// Selector is a simple selector, optionally restricted to a pseudo-state.
// Selectors are comparable and used as keys of a registry.
type Selector struct {
	Kind  SelectorKind
	Name  string // type name or id, empty for the universal selector
	State string // pseudo-state, may be empty
}

// Universal returns the universal selector '*'.
func Universal() Selector {
	return Selector{Kind: UniversalSelector}
}

// Type returns the selector for a type, e.g. '.Button'.
func Type(name string) Selector {
	return Selector{Kind: TypeSelector, Name: name}
}

// ID returns the selector for a node id, e.g. '#okbutton'.
func ID(id string) Selector {
	return Selector{Kind: IDSelector, Name: id}
}

// WithState returns a copy of sel, restricted to a pseudo-state.
func (sel Selector) WithState(state string) Selector {
	sel.State = state
	return sel
}

func (sel Selector) String() string {
	var b strings.Builder
	switch sel.Kind {
	case UniversalSelector:
		b.WriteString("*")
	case TypeSelector:
		b.WriteString(".")
		b.WriteString(sel.Name)
	case IDSelector:
		b.WriteString("#")
		b.WriteString(sel.Name)
	}
	if sel.State != "" {
		b.WriteString(":")
		b.WriteString(sel.State)
	}
	return b.String()
}

var identifier = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ParseSelector parses a simple selector. Type selectors may be written
// with or without a leading dot:
//
//     *  *:hover  .Button  Button:focus  #ok  #ok:active
//
// Combinators, attribute selectors and lists are not supported.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	var sel Selector
	name := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		name, sel.State = s[:i], s[i+1:]
		if !identifier.MatchString(sel.State) {
			return sel, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
		}
	}
	switch {
	case name == "*":
		sel.Kind = UniversalSelector
		return sel, nil
	case strings.HasPrefix(name, "#"):
		sel.Kind, sel.Name = IDSelector, name[1:]
	case strings.HasPrefix(name, "."):
		sel.Kind, sel.Name = TypeSelector, name[1:]
	default:
		sel.Kind, sel.Name = TypeSelector, name
	}
	if !identifier.MatchString(sel.Name) {
		return sel, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}
	return sel, nil
}

// MustParseSelector is like ParseSelector, but panics on invalid input.
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}
