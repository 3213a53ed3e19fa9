package layout

import (
	"fmt"

	"github.com/npillmayer/boxstyle/scene"
	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/boxstyle/style/css"
	"github.com/npillmayer/boxstyle/style/cssom"
	"github.com/npillmayer/boxstyle/tree"
)

// Layout resolves the styles of the nodes of t and computes their boxes.
// The root of t is placed at (0, 0), subject to its position property.
//
// Styles cached at nodes are re-used, unless they have been invalidated or
// the style of the parent has been re-resolved. Layout returns an error only
// if a style cannot be resolved; computed geometry is never rejected.
func Layout(t *scene.Tree, reg *cssom.Registry) error {
	root := t.Root()
	if root.IsNil() {
		t.LayoutDone()
		return nil
	}
	if err := layoutNode(t, reg, root, nil, false); err != nil {
		return err
	}
	t.Place(root, 0, 0, 0, 0)
	placeOnScreen(t, root)
	t.LayoutDone()
	tracer().Debugf("layout of %d node(s) done", t.Len())
	return nil
}

func layoutNode(t *scene.Tree, reg *cssom.Registry, h tree.Handle, parent *style.Style,
	parentResolved bool) error {
	//
	n, _ := t.Node(h)
	st, err := n.Style()
	resolved := false
	if err != nil || parentResolved {
		if st, err = reg.Resolve(n, parent); err != nil {
			return fmt.Errorf("layout of node %s: %w", n, err)
		}
		n.SetStyle(st)
		resolved = true
	}
	if n.IsHidden() {
		n.SetBoxes(scene.Boxes{})
		return nil
	}
	for _, ch := range t.Nodes(h) {
		if err := layoutNode(t, reg, ch, st, resolved); err != nil {
			return err
		}
	}
	content := n.Content()
	if content == nil {
		content = scene.SingleChild{}
	}
	w, ht := content.ContentSize(t, n)
	n.SetBoxes(ComputeBoxes(st, w, ht))
	tracer().Debugf("boxes of %s: %s", n, n.Boxes())
	if a, ok := content.(scene.Arranger); ok {
		a.Arrange(t, n)
	}
	placeAbsolute(t, n)
	return nil
}

// ComputeBoxes computes the four boxes of a node with resolved style st and
// content size (w, h). The margin box of the result starts at (0, 0).
func ComputeBoxes(st *style.Style, w, h int) scene.Boxes {
	var b scene.Boxes
	b.Content = scene.Rect{W: w, H: h}
	b.Padding = b.Content.Expand(Edges(st.Padding().Edges(), css.ParseDimen))
	widths, _ := st.Border().Modifier("width")
	b.Border = b.Padding.Expand(Edges(widths, css.BorderWidth))
	b.Margin = b.Border.Expand(Edges(st.Margin().Edges(), css.ParseDimen))
	b = b.Shift(-b.Margin.X, -b.Margin.Y)
	return b.Resize(delta(st.MustLeaf("width"), b.Margin.W), delta(st.MustLeaf("height"), b.Margin.H))
}

// delta returns the difference between an explicit size and the computed
// size. Sizes of 'auto' yield 0.
func delta(p style.Property, computed int) int {
	d := css.ParseDimen(p)
	return css.DimenPattern[int](d).OneOf(css.DimenPatterns[int]{
		Just: d.Px() - computed,
	})
}

// placement tells where a node is placed after its parent has been sized.
type placement uint8

const (
	inFlow   placement = iota // placed by the content of the parent
	inParent                  // relative to the content box of the parent
	onScreen                  // relative to the scene
)

func placementOf(n *scene.Node) placement {
	st, err := n.Style()
	if err != nil || n.IsHidden() {
		return inFlow
	}
	if _, ok := n.Attachment(); ok {
		return onScreen
	}
	return css.PositionPattern[placement](css.PositionOf(st)).OneOf(css.PositionPatterns[placement]{
		Absolute: inParent,
		Fixed:    onScreen,
	})
}

// Edges converts the four sides of an edge property (margin, padding, border
// width) to pixels.
func Edges(sides [4]style.Property, dimen func(style.Property) css.DimenT) [4]int {
	var e [4]int
	for i, p := range sides {
		e[i] = dimen(p).Px()
	}
	return e
}

// placeAbsolute places the absolutely positioned children of n relative to
// the content box of n.
func placeAbsolute(t *scene.Tree, n *scene.Node) {
	ox, oy := n.Boxes().Content.X, n.Boxes().Content.Y
	for _, ch := range t.Nodes(n.Handle()) {
		if c, _ := t.Node(ch); placementOf(c) == inParent {
			t.Place(ch, ox, oy, ox, oy)
		}
	}
}

// placeOnScreen places nodes with position 'fixed' relative to the origin
// of the scene, and windows attached to the viewport according to their
// anchors. It has to run after the root has been placed.
func placeOnScreen(t *scene.Tree, root tree.Handle) {
	_ = t.TopDown(root, func(h tree.Handle) error {
		n, _ := t.Node(h)
		if !n.IsVisual() || n.IsHidden() {
			return tree.SkipChildren
		}
		if placementOf(n) != onScreen {
			return nil
		}
		x, y := 0, 0
		if a, ok := n.Attachment(); ok {
			vw, vh := t.Viewport()
			m := n.Boxes().Margin
			x, y = a.Position(vw, vh, m.W, m.H)
			tracer().Debugf("attaching %s at (%d,%d)", n, x, y)
		}
		t.Place(h, x, y, 0, 0)
		return nil
	})
}
