package cssom

import "github.com/npillmayer/boxstyle/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// style registry, we introduce an interface for CSS stylesheets.
// Clients will have to provide a concrete implementation of this
// interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool   // does this stylesheet contain any rules?
	Rules() []Rule // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Declarations() []Declaration // declarations in source order
}

// Declaration is a single property declaration of a rule, e.g.
// "margin-top: 15px". A key may be declared more than once in a rule;
// later declarations override earlier ones.
type Declaration struct {
	Key       string         // property key, e.g. "margin-top"
	Value     style.Property // property value, e.g. "15px"
	Important bool           // marked with "!important"
}
