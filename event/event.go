package event

import "fmt"

// Kind is the kind of an event.
type Kind uint8

// Event kinds
const (
	Focus Kind = iota
	Blur
	MouseEnter
	MouseOut
	MouseMotion
	MouseDrag
	MousePress
	MouseRelease
	KeyPress
	KeyRelease
	SelectionChange
	kindCount
)

var kindNames = [kindCount]string{
	"focus", "blur", "mouse_enter", "mouse_out", "mouse_motion", "mouse_drag",
	"mouse_press", "mouse_release", "key_press", "key_release", "selection_change",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Result is returned by listeners to control propagation of an event.
type Result uint8

// Continue lets an event bubble on to the ancestors of a node, Handled stops
// propagation.
const (
	Continue Result = iota
	Handled
)

func (r Result) String() string {
	if r == Handled {
		return "Handled"
	}
	return "Continue"
}

// Button identifies a mouse button.
type Button uint8

// Mouse buttons
const (
	NoButton Button = iota
	LeftButton
	MiddleButton
	RightButton
)

// Modifiers is a set of modifier keys.
type Modifiers uint16

// Modifier keys
const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has checks if mods contains all modifiers of m.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// KeyCode is a code of a keyboard key, as delivered by the windowing system.
type KeyCode int

// Event is an input event. Events are created by package input, or by
// widgets for widget-specific events, and delivered to listeners.
type Event interface {
	Kind() Kind
	event()
}

// Notification is the event type for state transitions (focus, blur,
// mouse enter and mouse out) which carry no further payload.
type Notification struct {
	K Kind
}

// Kind is part of interface Event.
func (n Notification) Kind() Kind { return n.K }
func (n Notification) event()     {}

// Motion is the event type for mouse motion and mouse drag.
type Motion struct {
	X, Y   int // pointer location
	DX, DY int // pointer delta
	Drag   bool
	Button Button // for drags
	Mods   Modifiers
}

// Kind is part of interface Event.
func (m Motion) Kind() Kind {
	if m.Drag {
		return MouseDrag
	}
	return MouseMotion
}
func (m Motion) event() {}

// Press is the event type for mouse button press and release.
type Press struct {
	X, Y    int
	Button  Button
	Mods    Modifiers
	Release bool
}

// Kind is part of interface Event.
func (p Press) Kind() Kind {
	if p.Release {
		return MouseRelease
	}
	return MousePress
}
func (p Press) event() {}

// Key is the event type for key press and release.
type Key struct {
	Code    KeyCode
	Mods    Modifiers
	Release bool
}

// Kind is part of interface Event.
func (k Key) Kind() Kind {
	if k.Release {
		return KeyRelease
	}
	return KeyPress
}
func (k Key) event() {}

// Selection is the event type for selection changes of widgets.
type Selection struct {
	Start, End int
}

// Kind is part of interface Event.
func (s Selection) Kind() Kind { return SelectionChange }
func (s Selection) event()     {}
