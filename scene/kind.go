package scene

import (
	"github.com/npillmayer/boxstyle/event"
	"github.com/npillmayer/boxstyle/tree"
)

// Kind is the type of a scene node. Kinds form a chain of base kinds. A kind
// determines the type selectors of a node, the number of children a node
// may have, wether the node takes part in styling and layout, and the
// default content provider of a node.
type Kind struct {
	name     string
	base     *Kind
	capacity int // maximum number of children, 0 for unlimited
	visual   bool
	content  func(*Tree) Content
	swallow  []event.Kind // events stopped by nodes of this kind
}

// Built-in kinds.
var (
	KindNode             = &Kind{name: "GUINode", visual: true}
	KindWindow           = &Kind{name: "Window", base: KindNode, capacity: 1, visual: true, content: window(nil)}
	KindLayout           = &Kind{name: "Layout", base: KindNode, visual: true}
	KindVerticalLayout   = &Kind{name: "VerticalLayout", base: KindLayout, visual: true, content: stack(Vertical)}
	KindHorizontalLayout = &Kind{name: "HorizontalLayout", base: KindLayout, visual: true, content: stack(Horizontal)}
	KindImage            = &Kind{name: "Image", base: KindNode, visual: true}
	KindLabel            = &Kind{name: "Label", base: KindNode, visual: true, content: label}
	KindAttachment       = &Kind{name: "Attachment"}
	// A modal window is centered in the viewport and keeps pointer events
	// from reaching the nodes it is contained in.
	KindModalWindow = NewKind("ModalWindow", KindWindow,
		WithContent(window(&Attachment{Mode: Centered, X: Percent(50), Y: Percent(50)})),
		Swallows(event.MouseMotion, event.MouseDrag, event.MousePress, event.MouseRelease))
)

func window(a *Attachment) func(*Tree) Content {
	return func(*Tree) Content {
		wc := &WindowContent{}
		if a != nil {
			attach := *a
			wc.Attach = &attach
		}
		return wc
	}
}

func label(*Tree) Content { return &TextContent{} }

func stack(axis Axis) func(*Tree) Content {
	return func(t *Tree) Content {
		return &StackLayout{Axis: axis, Spacing: t.Spacing}
	}
}

// KindOption configures a kind created by NewKind.
type KindOption func(*Kind)

// Capacity limits the number of children of nodes of a kind.
func Capacity(n int) KindOption {
	return func(k *Kind) {
		k.capacity = n
	}
}

// NonVisual excludes nodes of a kind from styling, layout and hit-testing.
func NonVisual() KindOption {
	return func(k *Kind) {
		k.visual = false
	}
}

// WithContent sets the default content provider of nodes of a kind.
func WithContent(c func(*Tree) Content) KindOption {
	return func(k *Kind) {
		k.content = c
	}
}

// Swallows makes nodes of a kind stop the propagation of events of the given
// kinds. Nodes of the kind will have a listener returning event.Handled
// for each of them.
func Swallows(kinds ...event.Kind) KindOption {
	return func(k *Kind) {
		k.swallow = append(k.swallow, kinds...)
	}
}

func swallow(event.Event, tree.Handle) event.Result {
	return event.Handled
}

// NewKind derives a new kind from base. Capacity, visibility, default
// content and swallowed events are inherited from base unless overridden by options. A nil base
// creates a new root kind, which is visual.
//
//     button := scene.NewKind("Button", scene.KindNode)
//
func NewKind(name string, base *Kind, opts ...KindOption) *Kind {
	k := &Kind{name: name, base: base, visual: true}
	if base != nil {
		k.capacity, k.visual, k.content = base.capacity, base.visual, base.content
		k.swallow = append([]event.Kind(nil), base.swallow...)
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Name returns the name of a kind, which is used for type selectors.
func (k *Kind) Name() string {
	return k.name
}

// Base returns the base kind of k, or nil.
func (k *Kind) Base() *Kind {
	return k.base
}

// Capacity returns the maximum number of children, 0 meaning unlimited.
func (k *Kind) Capacity() int {
	return k.capacity
}

// IsVisual is true for kinds taking part in styling, layout and hit-testing.
func (k *Kind) IsVisual() bool {
	return k.visual
}

// IsA checks if k is other or derived from it.
func (k *Kind) IsA(other *Kind) bool {
	for x := k; x != nil; x = x.base {
		if x == other {
			return true
		}
	}
	return false
}

// TypeChain returns the names of k and its base kinds, from the root kind
// to k.
func (k *Kind) TypeChain() []string {
	var chain []string
	for x := k; x != nil; x = x.base {
		chain = append(chain, x.name)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func (k *Kind) String() string {
	return k.name
}
