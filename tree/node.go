package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

/*
We manage an arena of mutable nodes. Each node carries a payload of type parameter T.
Nodes are addressed by handles (indices into the arena); a node maintains a slice of
children handles and a non-owning back-reference to its parent.

Released handles are never handed out again, therefore a stale handle will never
alias a newer node.
*/

// Handle identifies a node within a tree.
type Handle int32

// Nil is the handle of no node at all, e.g. the parent of a root node.
const Nil Handle = -1

// IsNil is a predicate for the Nil handle.
func (h Handle) IsNil() bool {
	return h < 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "#nil"
	}
	return fmt.Sprintf("#%d", int32(h))
}

// Errors for structural violations of a tree.
var (
	ErrInvalidHandle   = errors.New("handle does not denote a node of this tree")
	ErrAlreadyParented = errors.New("node is already attached to a parent")
	ErrCycle           = errors.New("node cannot become a descendant of itself")
)

// Node is the base type our tree is built of.
type Node[T any] struct {
	parent   Handle   // parent node of this node
	children []Handle // owned children, ordered
	Payload  T        // nodes may carry a payload of arbitrary type
}

// Tree is an arena of nodes.
type Tree[T any] struct {
	nodes []*Node[T]
	count int
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// NewNode creates a new, unattached node with a given payload and returns
// its handle.
func (t *Tree[T]) NewNode(payload T) Handle {
	h := Handle(len(t.nodes))
	t.nodes = append(t.nodes, &Node[T]{parent: Nil, Payload: payload})
	t.count++
	return h
}

// Len returns the number of live nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Valid checks if h denotes a live node of this tree.
func (t *Tree[T]) Valid(h Handle) bool {
	return t.node(h) != nil
}

func (t *Tree[T]) node(h Handle) *Node[T] {
	if t == nil || h < 0 || int(h) >= len(t.nodes) {
		return nil
	}
	return t.nodes[h]
}

// Payload returns the payload of node h, together with an indicator
// wether h is a live node.
func (t *Tree[T]) Payload(h Handle) (T, bool) {
	n := t.node(h)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Payload, true
}

// Parent returns the parent of h or Nil (for root nodes and invalid handles).
func (t *Tree[T]) Parent(h Handle) Handle {
	n := t.node(h)
	if n == nil {
		return Nil
	}
	return n.parent
}

// AddChild appends child to the children of parent.
// Nodes may be attached to exactly one parent; adding a node which already
// has a parent is an error (ErrAlreadyParented), as is attaching a node to
// one of its own descendants (ErrCycle).
func (t *Tree[T]) AddChild(parent, child Handle) error {
	return t.InsertChildAt(parent, t.ChildCount(parent), child)
}

// InsertChildAt inserts child at position i of parent's children,
// shifting children at later positions.
// If i is beyond the end of the children slice, child is appended.
func (t *Tree[T]) InsertChildAt(parent Handle, i int, child Handle) error {
	p, ch := t.node(parent), t.node(child)
	if p == nil || ch == nil {
		return fmt.Errorf("cannot attach %s to %s: %w", child, parent, ErrInvalidHandle)
	}
	if !ch.parent.IsNil() {
		return fmt.Errorf("cannot attach %s to %s, is child of %s: %w", child, parent,
			ch.parent, ErrAlreadyParented)
	}
	for a := parent; !a.IsNil(); a = t.Parent(a) {
		if a == child {
			return fmt.Errorf("cannot attach %s to %s: %w", child, parent, ErrCycle)
		}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.children) {
		p.children = append(p.children, child)
	} else {
		p.children = append(p.children, Nil)   // make room for one child
		copy(p.children[i+1:], p.children[i:]) // shift i+1..n
		p.children[i] = child
	}
	ch.parent = parent
	return nil
}

// ChildCount returns the number of children-nodes for a node.
func (t *Tree[T]) ChildCount(h Handle) int {
	n := t.node(h)
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the n-th child of node h.
func (t *Tree[T]) Child(h Handle, n int) (Handle, bool) {
	node := t.node(h)
	if node == nil || n < 0 || n >= len(node.children) {
		return Nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node. The slice is a copy
// and may be modified by clients.
func (t *Tree[T]) Children(h Handle) []Handle {
	n := t.node(h)
	if n == nil || len(n.children) == 0 {
		return nil
	}
	children := make([]Handle, len(n.children))
	copy(children, n.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (t *Tree[T]) IndexOfChild(parent, ch Handle) int {
	if n := t.node(parent); n != nil {
		for i, child := range n.children {
			if ch == child {
				return i
			}
		}
	}
	return -1
}

// Isolate removes a node from its parent, keeping it (and its subtree)
// alive in the arena. Isolate returns the isolated node.
func (t *Tree[T]) Isolate(h Handle) Handle {
	n := t.node(h)
	if n == nil || n.parent.IsNil() {
		return h
	}
	p := t.node(n.parent)
	for i, ch := range p.children {
		if ch == h {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = Nil
	return h
}

// Remove isolates node h and releases it together with its subtree.
// It returns the released handles in pre-order. Handles of released nodes
// are invalid afterwards.
func (t *Tree[T]) Remove(h Handle) []Handle {
	if !t.Valid(h) {
		return nil
	}
	t.Isolate(h)
	var released []Handle
	_ = t.TopDown(h, func(x Handle) error {
		released = append(released, x)
		return nil
	})
	for _, x := range released {
		t.nodes[x] = nil
		t.count--
	}
	tracer().Debugf("released %d nodes starting at %s", len(released), h)
	return released
}

// Ancestors returns the chain of ancestors of h, starting with its parent
// and ending at the root.
func (t *Tree[T]) Ancestors(h Handle) []Handle {
	var anc []Handle
	for p := t.Parent(h); !p.IsNil(); p = t.Parent(p) {
		anc = append(anc, p)
	}
	return anc
}

// Root returns the root of the tree containing h.
func (t *Tree[T]) Root(h Handle) Handle {
	if !t.Valid(h) {
		return Nil
	}
	for p := t.Parent(h); !p.IsNil(); p = t.Parent(p) {
		h = p
	}
	return h
}
