package scene

import (
	"fmt"

	"github.com/npillmayer/boxstyle/style/css"
	"github.com/npillmayer/boxstyle/tree"
	"golang.org/x/image/font"
)

// DefaultSpacing is the default spacing between the children of stack
// layouts, in pixels.
const DefaultSpacing = 5

// Tree is a scene tree. It owns its nodes; nodes are addressed by handles.
type Tree struct {
	arena    *tree.Tree[*Node]
	root     tree.Handle
	dirty    bool
	faces    map[faceKey]font.Face
	viewport [2]int
	Spacing  int // spacing of stack layouts created for this tree
}

// Default size of the viewport of a scene tree.
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

// NewTree creates an empty scene tree.
func NewTree() *Tree {
	return &Tree{
		arena:    tree.New[*Node](),
		root:     tree.Nil,
		viewport: [2]int{DefaultViewportWidth, DefaultViewportHeight},
		Spacing:  DefaultSpacing,
	}
}

// NewNode creates a new node of kind k. The node is not attached to any
// parent yet.
func (t *Tree) NewNode(k *Kind) *Node {
	if k == nil {
		k = KindNode
	}
	n := &Node{kind: k, t: t}
	n.handle = t.arena.NewNode(n)
	n.id = fmt.Sprintf("%x", int32(n.handle))
	if k.content != nil {
		n.content = k.content(t)
	}
	for _, ev := range k.swallow {
		n.listeners.On(ev, swallow)
	}
	t.dirty = true
	return n
}

// Node returns the node for a handle.
func (t *Tree) Node(h tree.Handle) (*Node, bool) {
	return t.arena.Payload(h)
}

// Len returns the number of nodes of t.
func (t *Tree) Len() int {
	return t.arena.Len()
}

// SetRoot makes node h the root of the scene. The root must not have a
// parent.
func (t *Tree) SetRoot(h tree.Handle) error {
	if !t.arena.Valid(h) {
		return fmt.Errorf("cannot make %s root: %w", h, tree.ErrInvalidHandle)
	}
	if p := t.arena.Parent(h); !p.IsNil() {
		return fmt.Errorf("cannot make %s root, is child of %s: %w", h, p, ErrAlreadyParented)
	}
	t.root = h
	t.dirty = true
	return nil
}

// Root returns the root of the scene, or tree.Nil.
func (t *Tree) Root() tree.Handle {
	if !t.arena.Valid(t.root) {
		return tree.Nil
	}
	return t.root
}

// Add appends child to the children of parent. It fails with
// ErrTooManyChildren if the kind of parent does not accept another child,
// and with ErrAlreadyParented if child already has a parent.
func (t *Tree) Add(parent, child tree.Handle) error {
	return t.insert(parent, t.arena.ChildCount(parent), child)
}

// InsertBefore inserts child into the children of the parent of sibling,
// in front of sibling. Errors are those of Add.
func (t *Tree) InsertBefore(sibling, child tree.Handle) error {
	parent := t.arena.Parent(sibling)
	if parent.IsNil() {
		return fmt.Errorf("cannot insert %s before %s, which has no parent: %w", child, sibling,
			tree.ErrInvalidHandle)
	}
	return t.insert(parent, t.arena.IndexOfChild(parent, sibling), child)
}

func (t *Tree) insert(parent tree.Handle, i int, child tree.Handle) error {
	p, ok := t.Node(parent)
	if !ok {
		return fmt.Errorf("cannot add %s to %s: %w", child, parent, tree.ErrInvalidHandle)
	}
	if capa := p.kind.capacity; capa > 0 && t.arena.ChildCount(parent) >= capa {
		return fmt.Errorf("node %s accepts %d child(ren): %w", p, capa, ErrTooManyChildren)
	}
	if child == t.root {
		return fmt.Errorf("cannot add root %s to %s: %w", child, parent, tree.ErrCycle)
	}
	if err := t.arena.InsertChildAt(parent, i, child); err != nil {
		return err
	}
	t.dirty = true
	t.updatePositionStates(parent)
	return nil
}

// Detach removes node h from its parent, keeping h and its subtree alive.
// A detached node may be added to another parent.
func (t *Tree) Detach(h tree.Handle) {
	parent := t.arena.Parent(h)
	if parent.IsNil() {
		return
	}
	t.arena.Isolate(h)
	if n, ok := t.Node(h); ok {
		setState(n, FirstChild, false)
		setState(n, LastChild, false)
	}
	t.dirty = true
	t.updatePositionStates(parent)
}

// Remove detaches node h from its parent and releases h together with its
// subtree. It returns the released nodes, in pre-order.
func (t *Tree) Remove(h tree.Handle) []*Node {
	if !t.arena.Valid(h) {
		return nil
	}
	var nodes []*Node
	_ = t.arena.TopDown(h, func(x tree.Handle) error {
		n, _ := t.Node(x)
		nodes = append(nodes, n)
		return nil
	})
	parent := t.arena.Parent(h)
	t.arena.Remove(h)
	for _, n := range nodes {
		n.t = nil
	}
	if h == t.root {
		t.root = tree.Nil
	}
	t.dirty = true
	if !parent.IsNil() {
		t.updatePositionStates(parent)
	}
	tracer().Debugf("removed %d node(s) starting at %s", len(nodes), h)
	return nodes
}

// Parent returns the parent of h, or tree.Nil.
func (t *Tree) Parent(h tree.Handle) tree.Handle {
	return t.arena.Parent(h)
}

// ChildCount returns the number of children of h, including non-visual ones.
func (t *Tree) ChildCount(h tree.Handle) int {
	return t.arena.ChildCount(h)
}

// Children returns all children of h, including non-visual ones.
func (t *Tree) Children(h tree.Handle) []tree.Handle {
	return t.arena.Children(h)
}

// Nodes returns the children of h which take part in styling and layout,
// i.e. all children except non-visual attachments.
func (t *Tree) Nodes(h tree.Handle) []tree.Handle {
	var visual []tree.Handle
	for _, ch := range t.arena.Children(h) {
		if n, ok := t.Node(ch); ok && n.IsVisual() {
			visual = append(visual, ch)
		}
	}
	return visual
}

// InFlow returns the visual children of h which take part in the flow of
// their parent, i.e. children which are displayed, positioned statically
// or relatively, and not attached to the viewport. Children are required to
// have a resolved style.
func (t *Tree) InFlow(h tree.Handle) []tree.Handle {
	var flow []tree.Handle
	for _, ch := range t.Nodes(h) {
		n, _ := t.Node(ch)
		if n.style == nil || isHidden(n) || n.isAttached() || css.PositionOf(n.style).IsOutOfFlow() {
			continue
		}
		flow = append(flow, ch)
	}
	return flow
}

// Ancestors returns the ancestors of h, starting with its parent.
func (t *Tree) Ancestors(h tree.Handle) []tree.Handle {
	return t.arena.Ancestors(h)
}

// TopDown walks the subtree of h in pre-order.
func (t *Tree) TopDown(h tree.Handle, action tree.Action) error {
	return t.arena.TopDown(h, action)
}

// BottomUp walks the subtree of h in post-order.
func (t *Tree) BottomUp(h tree.Handle, action tree.Action) error {
	return t.arena.BottomUp(h, action)
}

// NeedsLayout is true if the tree changed since the last layout pass.
func (t *Tree) NeedsLayout() bool {
	return t.dirty
}

// LayoutDone marks the tree as laid out. It is called by the layout engine.
func (t *Tree) LayoutDone() {
	t.dirty = false
}

// Place positions node h and moves its subtree along. (x, y) is the
// location of h in the flow of its parent, (ox, oy) the origin of the
// content box of the parent. The position property of h's style is applied
// (see css.PositionT.Place).
func (t *Tree) Place(h tree.Handle, x, y, ox, oy int) {
	n, ok := t.Node(h)
	if !ok {
		return
	}
	if n.style != nil {
		x, y = css.PositionOf(n.style).Place(x, y, ox, oy)
	}
	dx, dy := x-n.boxes.Margin.X, y-n.boxes.Margin.Y
	if dx == 0 && dy == 0 {
		return
	}
	_ = t.arena.TopDown(h, func(x tree.Handle) error {
		d, _ := t.Node(x)
		d.boxes = d.boxes.Shift(dx, dy)
		return nil
	})
}

// updatePositionStates toggles states first-child and last-child of the
// children of layout containers.
func (t *Tree) updatePositionStates(parent tree.Handle) {
	p, ok := t.Node(parent)
	if !ok || !p.kind.IsA(KindLayout) {
		return
	}
	children := t.Nodes(parent)
	for i, ch := range children {
		n, _ := t.Node(ch)
		setState(n, FirstChild, i == 0)
		setState(n, LastChild, i == len(children)-1)
	}
}

func setState(n *Node, state string, on bool) {
	if on {
		n.AddState(state)
	} else {
		n.RemoveState(state)
	}
}

func isHidden(n *Node) bool {
	if n.style == nil {
		return false
	}
	d, err := css.ParseDisplay(n.style.Display())
	return err == nil && d.IsNone()
}

// IsHidden is true if the resolved style of n has display 'none'.
func (n *Node) IsHidden() bool {
	return isHidden(n)
}
