package scene

import "fmt"

// Sides of a box edge, in CSS order.
const (
	Top = iota
	Right
	Bottom
	Left
)

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains checks if point (x, y) is inside r. The top and left edges are
// inside, the bottom and right edges are not.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Expand grows r by edge widths (top, right, bottom, left).
func (r Rect) Expand(e [4]int) Rect {
	return Rect{
		X: r.X - e[Left],
		Y: r.Y - e[Top],
		W: r.W + e[Left] + e[Right],
		H: r.H + e[Top] + e[Bottom],
	}
}

// Shift moves r by (dx, dy).
func (r Rect) Shift(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Resize changes width and height of r by (dw, dh).
func (r Rect) Resize(dw, dh int) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W + dw, H: r.H + dh}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.X, r.Y, r.W, r.H)
}

// Boxes are the four nested boxes of the CSS box model.
type Boxes struct {
	Margin, Border, Padding, Content Rect
}

// Shift moves all four boxes by (dx, dy).
func (b Boxes) Shift(dx, dy int) Boxes {
	return Boxes{
		Margin:  b.Margin.Shift(dx, dy),
		Border:  b.Border.Shift(dx, dy),
		Padding: b.Padding.Shift(dx, dy),
		Content: b.Content.Shift(dx, dy),
	}
}

// Resize changes the size of all four boxes by (dw, dh).
func (b Boxes) Resize(dw, dh int) Boxes {
	return Boxes{
		Margin:  b.Margin.Resize(dw, dh),
		Border:  b.Border.Resize(dw, dh),
		Padding: b.Padding.Resize(dw, dh),
		Content: b.Content.Resize(dw, dh),
	}
}

func (b Boxes) String() string {
	return fmt.Sprintf("m%v b%v p%v c%v", b.Margin, b.Border, b.Padding, b.Content)
}
