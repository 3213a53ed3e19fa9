package scene

import (
	"errors"
	"fmt"
)

// ErrNotAWindow is returned when attaching a node which is not a window.
var ErrNotAWindow = errors.New("node is not a window")

// Anchoring tells how the anchors of an attached window are interpreted.
type Anchoring uint8

// Anchorings of windows
const (
	// Anchors give the position of the top left corner of the window.
	Attached Anchoring = iota
	// Percentage anchors give the position of the center of the window.
	Centered
)

// Anchor is one coordinate of the position of a window within the viewport,
// either in pixels or in percent of the size of the viewport. Negative
// anchors are measured from the far edge of the viewport, i.e. from the
// right or the bottom, to the far edge of the window.
type Anchor struct {
	value   float64
	percent bool
}

// Px creates an anchor of n pixels.
func Px(n int) Anchor {
	return Anchor{value: float64(n)}
}

// Percent creates an anchor of p percent of the viewport size.
func Percent(p float64) Anchor {
	return Anchor{value: p, percent: true}
}

// resolve returns the position of a window of size self within a viewport
// of size view.
func (a Anchor) resolve(mode Anchoring, view, self int) int {
	v := a.value
	if v < 0 {
		v = -v
	}
	r := int(v)
	if a.percent {
		r = int(float64(view) * v / 100)
		if mode == Centered {
			r -= self / 2
		}
	}
	if a.value < 0 {
		r = view - r - self
	}
	return r
}

func (a Anchor) String() string {
	if a.percent {
		return fmt.Sprintf("%g%%", a.value)
	}
	return fmt.Sprintf("%gpx", a.value)
}

// Attachment places a window relative to the viewport of the scene, e.g.
//
//     Attachment{Mode: Attached, X: Px(-10), Y: Px(10)}   // 10px from the top right corner
//     Attachment{Mode: Centered, X: Percent(50), Y: Percent(50)}
//
type Attachment struct {
	Mode Anchoring
	X, Y Anchor
}

// Position returns the location of the top left corner of a window of size
// (w, h) within a viewport of size (vw, vh).
func (a Attachment) Position(vw, vh, w, h int) (x, y int) {
	return a.X.resolve(a.Mode, vw, w), a.Y.resolve(a.Mode, vh, h)
}

// WindowContent is the content of a window: a single child, and an optional
// attachment to the viewport. Attached windows are placed in scene
// coordinates and do not take part in the flow of their parent.
type WindowContent struct {
	SingleChild
	Attach *Attachment
}

// Attach attaches window n to the viewport.
func (n *Node) Attach(a Attachment) error {
	wc, ok := n.content.(*WindowContent)
	if !ok {
		return fmt.Errorf("cannot attach %s: %w", n, ErrNotAWindow)
	}
	wc.Attach = &a
	if n.t != nil {
		n.t.dirty = true
	}
	return nil
}

// Attachment returns the attachment of window n, if any.
func (n *Node) Attachment() (Attachment, bool) {
	if wc, ok := n.content.(*WindowContent); ok && wc.Attach != nil {
		return *wc.Attach, true
	}
	return Attachment{}, false
}

// isAttached is true for windows attached to the viewport.
func (n *Node) isAttached() bool {
	_, ok := n.Attachment()
	return ok
}

// SetViewport sets the size of the viewport windows are attached to.
func (t *Tree) SetViewport(w, h int) {
	if t.viewport != [2]int{w, h} {
		t.viewport = [2]int{w, h}
		t.dirty = true
	}
}

// Viewport returns the size of the viewport.
func (t *Tree) Viewport() (w, h int) {
	return t.viewport[0], t.viewport[1]
}
