package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient predicates and other helpers.
type Property string

// NullStyle is an empty property value, i.e. an unset property.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsAuto checks wether a property has value "auto".
func (p Property) IsAuto() bool {
	return p == "auto"
}

// Value is a style value as seen by clients: a tuple of one or more
// property tokens. Composite values, e.g. a border shorthand, consist of
// more than one token:
//
//     2 solid red   =>  Value{"2", "solid", "red"}
//
type Value []Property

// ParseValue splits a textual style value into its tokens. Tokens are
// separated by white space, except within parentheses, so
//
//     ParseValue("rgb(255, 0, 0) solid")
//
// yields two tokens.
func ParseValue(s string) Value {
	var v Value
	var tok strings.Builder
	depth := 0
	flush := func() {
		if tok.Len() > 0 {
			v = append(v, Property(tok.String()))
			tok.Reset()
		}
	}
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
			continue
		}
		tok.WriteRune(r)
	}
	flush()
	return v
}

// V creates a value from a list of tokens.
func V(tokens ...string) Value {
	v := make(Value, len(tokens))
	for i, t := range tokens {
		v[i] = Property(t)
	}
	return v
}

func (v Value) String() string {
	s := make([]string, len(v))
	for i, p := range v {
		s[i] = string(p)
	}
	return strings.Join(s, " ")
}

// Single returns the only token of a single-token value.
func (v Value) Single() (Property, bool) {
	if len(v) != 1 {
		return NullStyle, false
	}
	return v[0], true
}

// Equal compares two values token by token.
func (v Value) Equal(w Value) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// --- Paths -----------------------------------------------------------------

// toWords splits a dashed property path into its words, e.g.
// "border-left-width" => [border left width].
func toWords(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(strings.ToLower(path), "-")
}

// fromWords joins words into a dashed property path, skipping empty words.
func fromWords(words ...string) string {
	w := make([]string, 0, len(words))
	for _, s := range words {
		if s != "" {
			w = append(w, s)
		}
	}
	return strings.Join(w, "-")
}

// --- Errors ----------------------------------------------------------------

// Errors of the style value model. Errors returned from functions of this
// package wrap one of these and may be checked with errors.Is.
var (
	// ErrUnknownProperty flags a path referencing an undeclared sub-property.
	ErrUnknownProperty = errors.New("unknown style property")
	// ErrInvalidStyleValue flags a value which cannot be used for a property.
	ErrInvalidStyleValue = errors.New("invalid style value")
	// ErrAmbiguousSidedValue flags a cumulative read of margins or padding
	// with sides of different values.
	ErrAmbiguousSidedValue = errors.New("ambiguous sided value")
)

func unknownProperty(words ...string) error {
	return fmt.Errorf("%w: %q", ErrUnknownProperty, fromWords(words...))
}

func invalidValue(path string, v Value) error {
	return fmt.Errorf("%w for %s: %q", ErrInvalidStyleValue, path, v.String())
}
