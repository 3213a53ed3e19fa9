package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/boxstyle/event"
	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/boxstyle/tree"
)

// Errors of the scene tree.
var (
	ErrTooManyChildren = errors.New("node kind does not accept more children")
	ErrUnresolvedStyle = errors.New("style of node has not been resolved yet")
	ErrAlreadyParented = tree.ErrAlreadyParented
)

// Pseudo-states known to the cascade. Nodes may carry other states as well.
const (
	Hover      = "hover"
	Focus      = "focus"
	Active     = "active"
	FirstChild = "first-child"
	LastChild  = "last-child"
)

var stateRank = map[string]int{Hover: 1, Focus: 2, Active: 3, FirstChild: 4, LastChild: 5}

// Node is a node of a scene tree.
type Node struct {
	handle    tree.Handle
	id        string
	kind      *Kind
	states    []string
	style     *style.Style // resolved style, nil if invalid
	boxes     Boxes
	laidOut   bool
	content   Content
	listeners event.Listeners
	t         *Tree
}

// Handle returns the handle of n within its tree.
func (n *Node) Handle() tree.Handle {
	return n.handle
}

// ID returns the id of n, which is used for id selectors. It defaults to the
// handle of n in hex.
func (n *Node) ID() string {
	return n.id
}

// SetID changes the id of a node.
func (n *Node) SetID(id string) {
	if id != n.id {
		n.id = id
		n.Invalidate()
	}
}

// Kind returns the kind of n.
func (n *Node) Kind() *Kind {
	return n.kind
}

// TypeChain returns the type names of n, base kind first.
func (n *Node) TypeChain() []string {
	return n.kind.TypeChain()
}

// IsVisual is true if n takes part in styling, layout and hit-testing.
func (n *Node) IsVisual() bool {
	return n.kind.visual
}

// States returns the active pseudo-states of n, in canonical order: hover,
// focus, active, first-child, last-child, then other states sorted by name.
func (n *Node) States() []string {
	if len(n.states) == 0 {
		return nil
	}
	states := make([]string, len(n.states))
	copy(states, n.states)
	return states
}

// HasState checks if state is active for n.
func (n *Node) HasState(state string) bool {
	for _, s := range n.states {
		if s == state {
			return true
		}
	}
	return false
}

// AddState activates a pseudo-state. If the state has not been active before,
// the cached style of n is dropped. AddState returns true if the state set
// changed.
func (n *Node) AddState(state string) bool {
	if state == "" || n.HasState(state) {
		return false
	}
	n.states = append(n.states, state)
	sort.Slice(n.states, func(i, j int) bool {
		return stateLess(n.states[i], n.states[j])
	})
	tracer().Debugf("node %s: +%s", n, state)
	n.Invalidate()
	return true
}

// RemoveState deactivates a pseudo-state. Removing a state which is not
// active is a no-op. RemoveState returns true if the state set changed.
func (n *Node) RemoveState(state string) bool {
	for i, s := range n.states {
		if s == state {
			n.states = append(n.states[:i], n.states[i+1:]...)
			tracer().Debugf("node %s: -%s", n, state)
			n.Invalidate()
			return true
		}
	}
	return false
}

func stateLess(a, b string) bool {
	ra, rb := stateRank[a], stateRank[b]
	switch {
	case ra > 0 && rb > 0:
		return ra < rb
	case ra > 0:
		return true
	case rb > 0:
		return false
	}
	return a < b
}

// Style returns the resolved style of n. Before the style has been resolved,
// or after it has been invalidated, ErrUnresolvedStyle is returned.
func (n *Node) Style() (*style.Style, error) {
	if n.style == nil {
		return nil, fmt.Errorf("node %s: %w", n, ErrUnresolvedStyle)
	}
	return n.style, nil
}

// SetStyle caches the resolved style of n. It is called by the layout engine.
func (n *Node) SetStyle(s *style.Style) {
	n.style = s
}

// Invalidate drops the cached style of n and marks the tree for layout.
func (n *Node) Invalidate() {
	n.style = nil
	if n.t != nil {
		n.t.dirty = true
	}
}

// Boxes returns the boxes of n. They are valid only after a layout pass.
func (n *Node) Boxes() Boxes {
	return n.boxes
}

// SetBoxes sets the boxes of n and flags it as laid out. It is called by the
// layout engine.
func (n *Node) SetBoxes(b Boxes) {
	n.boxes = b
	n.laidOut = true
}

// IsLaidOut is true if n has been laid out.
func (n *Node) IsLaidOut() bool {
	return n.laidOut
}

// Place moves all boxes of n such that the margin box starts at (x, y).
func (n *Node) Place(x, y int) {
	n.boxes = n.boxes.Shift(x-n.boxes.Margin.X, y-n.boxes.Margin.Y)
}

// Content returns the content provider of n, which may be nil.
func (n *Node) Content() Content {
	return n.content
}

// SetContent sets the content provider of n and marks the tree for layout.
func (n *Node) SetContent(c Content) {
	n.content = c
	if n.t != nil {
		n.t.dirty = true
	}
}

// Listeners returns the event listeners of n.
func (n *Node) Listeners() *event.Listeners {
	return &n.listeners
}

// On registers an event listener with n.
func (n *Node) On(k event.Kind, fn event.Listener) event.ListenerHandle {
	return n.listeners.On(k, fn)
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%s", n.kind.name, n.id)
}

// --- Capabilities ----------------------------------------------------------

// Styleable is implemented by nodes which may be styled by the cascade.
type Styleable interface {
	ID() string
	TypeChain() []string
	States() []string
	Style() (*style.Style, error)
}

// HitTestable is implemented by nodes which may be found by hit-testing.
type HitTestable interface {
	IsVisual() bool
	IsLaidOut() bool
	Boxes() Boxes
}

// EventTarget is implemented by nodes which may receive events.
type EventTarget interface {
	Listeners() *event.Listeners
}

var _ Styleable = &Node{}
var _ HitTestable = &Node{}
var _ EventTarget = &Node{}
