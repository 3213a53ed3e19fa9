package input

import (
	"github.com/npillmayer/boxstyle/event"
	"github.com/npillmayer/boxstyle/scene"
	"github.com/npillmayer/boxstyle/tree"
)

// Dispatcher delivers input events to the nodes of a scene tree. It keeps
// track of hovered, focused and active nodes. A Dispatcher is bound to one
// tree; it is not safe for concurrent use.
type Dispatcher struct {
	t       *scene.Tree
	hovered []tree.Handle // last hit list, topmost first
	focused tree.Handle
	active  []tree.Handle
	pointer *[2]int // last pointer position, if any
}

// NewDispatcher creates a dispatcher for a scene tree.
func NewDispatcher(t *scene.Tree) *Dispatcher {
	return &Dispatcher{t: t, focused: tree.Nil}
}

// Hovered returns the nodes under the pointer, as of the last pointer motion,
// topmost first.
func (d *Dispatcher) Hovered() []tree.Handle {
	d.prune()
	return append([]tree.Handle(nil), d.hovered...)
}

// Focused returns the focused node, or tree.Nil.
func (d *Dispatcher) Focused() tree.Handle {
	d.prune()
	return d.focused
}

// PointerMotion handles a pointer motion to (x, y) by (dx, dy). It updates
// the hover states and bubbles a mouse_motion event.
func (d *Dispatcher) PointerMotion(x, y, dx, dy int) event.Result {
	d.pointer = &[2]int{x, y}
	hits := d.hover(x, y)
	return d.bubbleHits(hits, event.Motion{X: x, Y: y, DX: dx, DY: dy})
}

// PointerDrag handles a pointer motion with a button held down. It updates
// the hover states and bubbles a mouse_drag event.
func (d *Dispatcher) PointerDrag(x, y, dx, dy int, button event.Button, mods event.Modifiers) event.Result {
	d.pointer = &[2]int{x, y}
	hits := d.hover(x, y)
	return d.bubbleHits(hits, event.Motion{X: x, Y: y, DX: dx, DY: dy, Drag: true,
		Button: button, Mods: mods})
}

// PointerPress handles a button press at (x, y). The topmost node at (x, y)
// receives the focus, the nodes at (x, y) become active, and a mouse_press
// event bubbles.
func (d *Dispatcher) PointerPress(x, y int, button event.Button, mods event.Modifiers) event.Result {
	d.pointer = &[2]int{x, y}
	d.prune()
	hits := HitTest(d.t, x, y)
	target := tree.Nil
	if len(hits) > 0 {
		target = hits[0]
	}
	d.SetFocus(target)
	for _, h := range hits {
		if n, ok := d.t.Node(h); ok && n.AddState(scene.Active) {
			d.active = append(d.active, h)
		}
	}
	return d.bubbleHits(hits, event.Press{X: x, Y: y, Button: button, Mods: mods})
}

// PointerRelease handles a button release at (x, y). All nodes made active
// by a press are deactivated, and a mouse_release event bubbles from the
// topmost node at (x, y).
func (d *Dispatcher) PointerRelease(x, y int, button event.Button, mods event.Modifiers) event.Result {
	d.pointer = &[2]int{x, y}
	d.prune()
	for _, h := range d.active {
		if n, ok := d.t.Node(h); ok {
			n.RemoveState(scene.Active)
		}
	}
	d.active = d.active[:0]
	hits := HitTest(d.t, x, y)
	return d.bubbleHits(hits, event.Press{X: x, Y: y, Button: button, Mods: mods, Release: true})
}

// Refresh re-computes the hover states at the last known pointer position.
// It is called after a layout pass, as nodes may have moved away from or
// under a pointer which did not move. Refresh does nothing before the first
// pointer event.
func (d *Dispatcher) Refresh() {
	if d.pointer == nil {
		return
	}
	d.hover(d.pointer[0], d.pointer[1])
}

// KeyPress delivers a key_press event to the focused node.
func (d *Dispatcher) KeyPress(code event.KeyCode, mods event.Modifiers) event.Result {
	return d.key(event.Key{Code: code, Mods: mods})
}

// KeyRelease delivers a key_release event to the focused node.
func (d *Dispatcher) KeyRelease(code event.KeyCode, mods event.Modifiers) event.Result {
	return d.key(event.Key{Code: code, Mods: mods, Release: true})
}

func (d *Dispatcher) key(ev event.Key) event.Result {
	d.prune()
	if d.focused.IsNil() {
		tracer().Debugf("%s without focused node", ev.Kind())
		return event.Continue
	}
	return d.Forward(d.focused, ev)
}

// Forward delivers an event to the listeners of node h only, without
// bubbling. Key listeners use it to pass keys on to another node.
func (d *Dispatcher) Forward(h tree.Handle, ev event.Event) event.Result {
	n, ok := d.t.Node(h)
	if !ok {
		return event.Continue
	}
	return n.Listeners().Notify(ev, h)
}

// Emit bubbles an event from node h up to the root, until a listener
// returns event.Handled. Widgets use it for events of their own, e.g.
// selection changes.
func (d *Dispatcher) Emit(h tree.Handle, ev event.Event) event.Result {
	if _, ok := d.t.Node(h); !ok {
		return event.Continue
	}
	for _, x := range append([]tree.Handle{h}, d.t.Ancestors(h)...) {
		if d.Forward(x, ev) == event.Handled {
			tracer().Debugf("%s handled by %s", ev.Kind(), x)
			return event.Handled
		}
	}
	return event.Continue
}

func (d *Dispatcher) bubbleHits(hits []tree.Handle, ev event.Event) event.Result {
	if len(hits) == 0 {
		return event.Continue
	}
	return d.Emit(hits[0], ev)
}

// SetFocus moves the focus to node h, which may be tree.Nil. If the focus
// changes, the node losing it is blurred before h is focused.
func (d *Dispatcher) SetFocus(h tree.Handle) {
	d.prune()
	if h == d.focused {
		return
	}
	if old, ok := d.t.Node(d.focused); ok {
		old.RemoveState(scene.Focus)
		d.Forward(d.focused, event.Notification{K: event.Blur})
	}
	d.focused = tree.Nil
	if n, ok := d.t.Node(h); ok {
		d.focused = h
		n.AddState(scene.Focus)
		d.Forward(h, event.Notification{K: event.Focus})
	}
}

// hover recomputes the hit list for (x, y) and fires mouse_out and
// mouse_enter for the nodes leaving and entering it.
func (d *Dispatcher) hover(x, y int) []tree.Handle {
	d.prune()
	hits := HitTest(d.t, x, y)
	for _, h := range d.hovered {
		if !contains(hits, h) {
			n, _ := d.t.Node(h)
			n.RemoveState(scene.Hover)
			d.Forward(h, event.Notification{K: event.MouseOut})
		}
	}
	for _, h := range hits {
		if !contains(d.hovered, h) {
			n, _ := d.t.Node(h)
			n.AddState(scene.Hover)
			d.Forward(h, event.Notification{K: event.MouseEnter})
		}
	}
	d.hovered = hits
	return hits
}

// prune drops nodes which have been removed from the tree.
func (d *Dispatcher) prune() {
	valid := func(h tree.Handle) bool {
		_, ok := d.t.Node(h)
		return ok
	}
	d.hovered = filter(d.hovered, valid)
	d.active = filter(d.active, valid)
	if !valid(d.focused) {
		d.focused = tree.Nil
	}
}

func filter(hs []tree.Handle, keep func(tree.Handle) bool) []tree.Handle {
	r := hs[:0]
	for _, h := range hs {
		if keep(h) {
			r = append(r, h)
		}
	}
	return r
}

func contains(hs []tree.Handle, h tree.Handle) bool {
	for _, x := range hs {
		if x == h {
			return true
		}
	}
	return false
}
