/*
Package scenedbg provides debugging aids for scene trees: a textual dump of
the tree and a rendering of the boxes of laid out nodes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scenedbg

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/npillmayer/boxstyle/scene"
	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/boxstyle/style/css"
	"github.com/npillmayer/boxstyle/tree"
	"github.com/xlab/treeprint"
)

// Dump renders the scene tree t as text, one line per node, giving kind, id,
// display mode, states and border box of every node:
//
//     Window#0 ▩ (0,0,30,30)
//     └── VerticalLayout#1 ▩ (3,3,24,24)
//         ├── Image#2 ▩ [first-child] (5,3,12,12)
//         └── Image#3 ∅ [last-child] (hidden)
//
func Dump(t *scene.Tree) string {
	root := t.Root()
	n, ok := t.Node(root)
	if !ok {
		return "<empty scene>\n"
	}
	p := treeprint.NewWithRoot(label(n))
	dumpChildren(t, p, root)
	return p.String()
}

func dumpChildren(t *scene.Tree, p treeprint.Tree, h tree.Handle) {
	for _, ch := range t.Children(h) {
		n, _ := t.Node(ch)
		if t.ChildCount(ch) == 0 {
			p.AddNode(label(n))
			continue
		}
		dumpChildren(t, p.AddBranch(label(n)), ch)
	}
}

func label(n *scene.Node) string {
	var b strings.Builder
	b.WriteString(n.String())
	if st, err := n.Style(); err == nil && n.IsVisual() {
		d, _ := css.ParseDisplay(st.Display())
		b.WriteString(" " + d.Symbol())
	}
	if states := n.States(); len(states) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(states, ","))
	}
	switch {
	case !n.IsVisual():
		b.WriteString(" (attachment)")
	case n.IsHidden():
		b.WriteString(" (hidden)")
	case n.IsLaidOut():
		fmt.Fprintf(&b, " %v", n.Boxes().Border)
	default:
		b.WriteString(" (not laid out)")
	}
	return b.String()
}

// Colors of box outlines.
var (
	MarginColor  = color.NRGBA{R: 0xf9, G: 0xcc, B: 0x9d, A: 0xff}
	PaddingColor = color.NRGBA{R: 0x93, G: 0xc4, B: 0x7d, A: 0xff}
	ContentColor = color.NRGBA{R: 0x6f, G: 0xa8, B: 0xdc, A: 0xff}
)

// Render draws the outlines of the boxes of all laid out nodes of t onto a
// white image. Margin, padding and content boxes are drawn in fixed colors,
// border boxes in the top border color of a node's style (black if the
// border is transparent).
func Render(t *scene.Tree) image.Image {
	w, h := 1, 1
	if root, ok := t.Node(t.Root()); ok && root.IsLaidOut() {
		m := root.Boxes().Margin
		w, h = max(w, m.X+m.W+1), max(h, m.Y+m.H+1)
	}
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(1)
	_ = t.TopDown(t.Root(), func(x tree.Handle) error {
		n, _ := t.Node(x)
		if !n.IsVisual() || n.IsHidden() {
			return tree.SkipChildren
		}
		if n.IsLaidOut() {
			outline(dc, n.Boxes().Margin, MarginColor)
			outline(dc, n.Boxes().Border, borderColor(n))
			outline(dc, n.Boxes().Padding, PaddingColor)
			outline(dc, n.Boxes().Content, ContentColor)
		}
		return nil
	})
	return dc.Image()
}

// WritePNG renders t (see Render) and encodes the image as PNG.
func WritePNG(t *scene.Tree, w io.Writer) error {
	dc := gg.NewContextForImage(Render(t))
	return dc.EncodePNG(w)
}

func outline(dc *gg.Context, r scene.Rect, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	dc.SetColor(c)
	dc.DrawRectangle(float64(r.X)+0.5, float64(r.Y)+0.5, float64(r.W-1), float64(r.H-1))
	dc.Stroke()
}

func borderColor(n *scene.Node) color.Color {
	st, err := n.Style()
	if err != nil {
		return color.Black
	}
	c := st.Border().Top().Color().Color()
	if c == style.Transparent {
		return color.Black
	}
	return c
}
