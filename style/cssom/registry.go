package cssom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/boxstyle/style"
)

// Registry maps selectors to style fragments. A registry belongs to one
// application instance. It is not safe for concurrent use.
type Registry struct {
	rules map[Selector]*style.Style
}

// NewRegistry creates a registry, containing the user-agent defaults as
// the universal rule.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset drops all rules, except for the user-agent defaults.
func (r *Registry) Reset() {
	r.rules = map[Selector]*style.Style{
		Universal(): style.UserAgentDefaults(),
	}
}

// Rule returns the style fragment for a selector, creating an empty one if
// none exists. Clients may author the fragment directly:
//
//     rule, _ := registry.Rule(".Button:hover")
//     rule.Set("background-color", "yellow")
//
func (r *Registry) Rule(selector string) (*style.Style, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	return r.rule(sel), nil
}

func (r *Registry) rule(sel Selector) *style.Style {
	s, ok := r.rules[sel]
	if !ok {
		s = style.New()
		r.rules[sel] = s
	}
	return s
}

// Set sets a property for a selector. Values are validated at once, errors
// wrap either ErrInvalidSelector or one of the errors of package style.
func (r *Registry) Set(selector, path, value string) error {
	rule, err := r.Rule(selector)
	if err != nil {
		return err
	}
	if err = rule.Set(path, value); err != nil {
		return fmt.Errorf("%s { %s }: %w", selector, path, err)
	}
	return nil
}

// Lookup returns the style fragment for a selector, or nil if there is none.
func (r *Registry) Lookup(sel Selector) *style.Style {
	return r.rules[sel]
}

// Forget removes all rules for a node id, including rules for the id
// combined with a pseudo-state. It returns the number of rules removed.
func (r *Registry) Forget(id string) int {
	n := 0
	for sel := range r.rules {
		if sel.Kind == IDSelector && sel.Name == id {
			delete(r.rules, sel)
			n++
		}
	}
	if n > 0 {
		tracer().Debugf("registry forgot %d rule(s) for #%s", n, id)
	}
	return n
}

// Selectors returns the selectors of all rules, sorted.
func (r *Registry) Selectors() []string {
	sels := make([]string, 0, len(r.rules))
	for sel := range r.rules {
		sels = append(sels, sel.String())
	}
	sort.Strings(sels)
	return sels
}

// ApplyStyleSheet adds the rules of a stylesheet to the registry. Preludes
// may list more than one selector, separated by commas. The stylesheet is
// applied as a whole or not at all: if any selector or declaration is
// invalid, an error is returned and the registry is unchanged.
func (r *Registry) ApplyStyleSheet(sheet StyleSheet) error {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	fragments := make(map[Selector]*style.Style)
	var order []Selector
	for _, rule := range sheet.Rules() {
		for _, s := range strings.Split(rule.Selector(), ",") {
			sel, err := ParseSelector(s)
			if err != nil {
				return err
			}
			frag, ok := fragments[sel]
			if !ok {
				frag = style.New()
				fragments[sel] = frag
				order = append(order, sel)
			}
			for _, d := range rule.Declarations() {
				if err := frag.Set(d.Key, string(d.Value)); err != nil {
					return fmt.Errorf("%s { %s }: %w", strings.TrimSpace(s), d.Key, err)
				}
			}
		}
	}
	for _, sel := range order {
		r.rule(sel).Merge(fragments[sel])
	}
	tracer().Infof("applied stylesheet with %d selector(s)", len(order))
	return nil
}
