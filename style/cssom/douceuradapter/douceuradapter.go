/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
based on the CSS parser github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/boxstyle/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("boxstyle.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// LoadStylesheet parses CSS text and applies its rules to a registry.
func LoadStylesheet(reg *cssom.Registry, text string) error {
	sheet, err := Parse(text)
	if err != nil {
		return err
	}
	return reg.ApplyStyleSheet(sheet)
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// Rules returns all the qualified rules of a stylesheet. At-rules are
// skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule %s", r.Name)
			continue
		}
		rules = append(rules, Rule{r})
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule *css.Rule
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.rule.Prelude
}

// Declarations returns the declarations of a rule in source order.
func (r Rule) Declarations() []cssom.Declaration {
	decl := make([]cssom.Declaration, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		decl = append(decl, cssom.Declaration{
			Key:       d.Property,
			Value:     style.Property(d.Value),
			Important: d.Important,
		})
	}
	return decl
}

var _ cssom.Rule = &Rule{}
