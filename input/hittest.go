package input

import (
	"github.com/npillmayer/boxstyle/scene"
	"github.com/npillmayer/boxstyle/tree"
)

// HitTest returns the nodes of t whose border box contains (x, y), topmost
// node first. Nodes are painted in pre-order, i.e. children above their
// parent and later siblings above earlier ones. Nodes which have not been
// laid out, are hidden or are not visual are never hit.
func HitTest(t *scene.Tree, x, y int) []tree.Handle {
	var hits []tree.Handle
	_ = t.TopDown(t.Root(), func(h tree.Handle) error {
		n, _ := t.Node(h)
		if !n.IsVisual() || n.IsHidden() {
			return tree.SkipChildren
		}
		if n.IsLaidOut() && n.Boxes().Border.Contains(x, y) {
			hits = append(hits, h)
		}
		return nil
	})
	for i, j := 0, len(hits)-1; i < j; i, j = i+1, j-1 {
		hits[i], hits[j] = hits[j], hits[i]
	}
	return hits
}
