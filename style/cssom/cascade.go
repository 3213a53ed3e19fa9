package cssom

import (
	"fmt"

	"github.com/npillmayer/boxstyle/style"
)

// Subject is the view of the cascade onto a node to be styled.
type Subject interface {
	ID() string          // id of the node, used for #id selectors
	TypeChain() []string // type names, from base type to most derived type
	States() []string    // active pseudo-states, in a stable order
}

// CascadeSelectors lists the selectors applicable to a subject, in cascade
// order:
//
//     *, *:state…, .T1, .T1:state…, …, .Tn, .Tn:state…, #id, #id:state…
//
func CascadeSelectors(subj Subject) []Selector {
	states := subj.States()
	chain := subj.TypeChain()
	sels := make([]Selector, 0, (len(chain)+2)*(len(states)+1))
	add := func(sel Selector) {
		sels = append(sels, sel)
		for _, state := range states {
			sels = append(sels, sel.WithState(state))
		}
	}
	add(Universal())
	for _, t := range chain {
		add(Type(t))
	}
	if id := subj.ID(); id != "" {
		add(ID(id))
	}
	return sels
}

// Resolve computes the style of a subject. It merges the fragments of all
// selectors applicable to subj, in cascade order, and then resolves
// properties set to 'inherit' from parent. parent must be the resolved style
// of subj's parent, or nil for the root of a tree.
//
// Resolve depends on subj's identity, type chain and states only, never on
// siblings. Resolving twice without changes yields equal styles.
func (r *Registry) Resolve(subj Subject, parent *style.Style) (*style.Style, error) {
	if subj == nil {
		return nil, fmt.Errorf("%w: cannot resolve style for nil subject", ErrInvalidSelector)
	}
	for _, t := range subj.TypeChain() {
		if !identifier.MatchString(t) {
			return nil, fmt.Errorf("%w: type name %q", ErrInvalidSelector, t)
		}
	}
	if id := subj.ID(); id != "" && !identifier.MatchString(id) {
		return nil, fmt.Errorf("%w: node id %q", ErrInvalidSelector, id)
	}
	resolved := style.New()
	for _, sel := range CascadeSelectors(subj) {
		if frag := r.rules[sel]; frag != nil {
			resolved.Merge(frag)
		}
	}
	resolved.ResolveInherited(parent)
	tracer().Debugf("resolved style for #%s: %s", subj.ID(), resolved)
	return resolved, nil
}
