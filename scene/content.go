package scene

import (
	"github.com/npillmayer/boxstyle/style"
	"golang.org/x/image/font"
)

// Content computes the intrinsic size of the content of a node, in pixels.
// It is the only per-kind extension point of the layout engine.
type Content interface {
	ContentSize(t *Tree, n *Node) (w, h int)
}

// Arranger is implemented by content providers which position the children
// of a node. Arrange is called after the boxes of n and of all of its
// children have been computed.
type Arranger interface {
	Arrange(t *Tree, n *Node)
}

// ImageContent is the content of an image node, sized by the dimensions of
// the image.
type ImageContent struct {
	W, H int
}

// ContentSize is part of interface Content.
func (img ImageContent) ContentSize(*Tree, *Node) (int, int) {
	return img.W, img.H
}

// TextContent is the content of a label. Lines are separated by newlines.
// Text is measured with Face or, if Face is nil, with the face selected by
// the font properties of the label's resolved style (see Tree.Face).
type TextContent struct {
	Text string
	Face font.Face
}

// ContentSize is part of interface Content.
func (txt *TextContent) ContentSize(t *Tree, n *Node) (int, int) {
	face := txt.Face
	if face == nil {
		var st *style.Style
		if n != nil {
			st = n.style
		}
		face = t.Face(st)
	}
	return MeasureText(face, txt.Text)
}

// SingleChild is the content of a node wrapping its child. Its size is the
// size of the margin box of the child. If there is more than one child in
// flow, children are stacked on top of each other and the size is the
// maximum of their sizes.
type SingleChild struct{}

// ContentSize is part of interface Content.
func (SingleChild) ContentSize(t *Tree, n *Node) (w, h int) {
	for _, ch := range t.InFlow(n.handle) {
		c, _ := t.Node(ch)
		w = max(w, c.boxes.Margin.W)
		h = max(h, c.boxes.Margin.H)
	}
	return
}

// Arrange is part of interface Arranger.
func (SingleChild) Arrange(t *Tree, n *Node) {
	ox, oy := n.boxes.Content.X, n.boxes.Content.Y
	for _, ch := range t.InFlow(n.handle) {
		t.Place(ch, ox, oy, ox, oy)
	}
}

// Axis is the direction of a stack layout.
type Axis uint8

// Axes of stack layouts
const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// StackLayout is the content of a layout container which stacks its
// children along an axis, separated by Spacing pixels.
type StackLayout struct {
	Axis    Axis
	Spacing int
}

// ContentSize is part of interface Content. Along the axis, the sizes of the
// margin boxes of the children sum up, plus spacing between each pair of
// children; across the axis, the maximum size counts.
func (stack *StackLayout) ContentSize(t *Tree, n *Node) (w, h int) {
	children := t.InFlow(n.handle)
	if len(children) == 0 {
		return 0, 0
	}
	along, across := 0, 0
	for _, ch := range children {
		c, _ := t.Node(ch)
		a, x := stack.split(c.boxes.Margin)
		along += a
		across = max(across, x)
	}
	along += stack.Spacing * (len(children) - 1)
	if stack.Axis == Horizontal {
		return along, across
	}
	return across, along
}

// Arrange is part of interface Arranger. Children are placed one after the
// other, starting at the origin of the content box of n.
func (stack *StackLayout) Arrange(t *Tree, n *Node) {
	ox, oy := n.boxes.Content.X, n.boxes.Content.Y
	offset := 0
	for _, ch := range t.InFlow(n.handle) {
		c, _ := t.Node(ch)
		if stack.Axis == Horizontal {
			t.Place(ch, ox+offset, oy, ox, oy)
		} else {
			t.Place(ch, ox, oy+offset, ox, oy)
		}
		a, _ := stack.split(c.boxes.Margin)
		offset += a + stack.Spacing
	}
}

// split returns the size of r along and across the axis.
func (stack *StackLayout) split(r Rect) (along, across int) {
	if stack.Axis == Horizontal {
		return r.W, r.H
	}
	return r.H, r.W
}
