package tree

import "errors"

// SkipChildren may be returned by an action of TopDown to prevent
// descending into the children of the current node. It is not reported
// as an error.
var SkipChildren = errors.New("skip children")

// Action is a function type to operate on tree nodes during a walk.
type Action func(h Handle) error

// TopDown walks the subtree starting at h in pre-order, i.e. parents
// are visited before their children and children in sequence.
// The walk stops at the first error returned by action, which is then
// returned to the caller.
//
// Actions must not remove siblings of the node under inspection.
func (t *Tree[T]) TopDown(h Handle, action Action) error {
	n := t.node(h)
	if n == nil {
		return nil
	}
	if err := action(h); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, ch := range t.Children(h) {
		if err := t.TopDown(ch, action); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp walks the subtree starting at h in post-order, i.e. children
// are visited before their parents.
func (t *Tree[T]) BottomUp(h Handle, action Action) error {
	if t.node(h) == nil {
		return nil
	}
	for _, ch := range t.Children(h) {
		if err := t.BottomUp(ch, action); err != nil {
			return err
		}
	}
	return action(h)
}
