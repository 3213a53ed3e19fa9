package input

import (
	"testing"

	"github.com/npillmayer/boxstyle/event"
	"github.com/npillmayer/boxstyle/scene"
	"github.com/npillmayer/boxstyle/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripes builds a root 100×10 with three overlapping children
//
//     A: x in [0,50)   B: x in [25,75)   C: x in [50,100)
//
func stripes(t *testing.T) (*scene.Tree, *scene.Node, [3]*scene.Node) {
	sc := scene.NewTree()
	root := sc.NewNode(scene.KindNode)
	require.NoError(t, sc.SetRoot(root.Handle()))
	root.SetBoxes(boxes(0, 100))
	var abc [3]*scene.Node
	for i := range abc {
		abc[i] = sc.NewNode(scene.KindNode)
		abc[i].SetBoxes(boxes(i*25, 50))
		require.NoError(t, sc.Add(root.Handle(), abc[i].Handle()))
	}
	return sc, root, abc
}

func boxes(x, w int) scene.Boxes {
	r := scene.Rect{X: x, Y: 0, W: w, H: 10}
	return scene.Boxes{Margin: r, Border: r, Padding: r, Content: r}
}

// recorder records events as "kind@id".
type recorder struct {
	log []string
}

func (r *recorder) listen(n *scene.Node, kinds ...event.Kind) {
	for _, k := range kinds {
		n.On(k, func(ev event.Event, target tree.Handle) event.Result {
			r.log = append(r.log, ev.Kind().String()+"@"+n.ID())
			return event.Continue
		})
	}
}

var transitions = []event.Kind{event.MouseEnter, event.MouseOut, event.Focus, event.Blur}

func TestHitTestOrder(t *testing.T) {
	sc, root, abc := stripes(t)
	hits := HitTest(sc, 30, 5)
	assert.Equal(t, []tree.Handle{abc[1].Handle(), abc[0].Handle(), root.Handle()}, hits)
	assert.Len(t, HitTest(sc, 100, 5), 0, "right edge is exclusive")
	assert.Equal(t, []tree.Handle{abc[0].Handle(), root.Handle()}, HitTest(sc, 0, 0))
	//
	unplaced := sc.NewNode(scene.KindNode)
	require.NoError(t, sc.Add(root.Handle(), unplaced.Handle()))
	assert.Len(t, HitTest(sc, 1, 1), 2, "nodes are not hit before layout")
}

func TestHoverTransitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.input")
	defer teardown()
	//
	sc, root, abc := stripes(t)
	rec := &recorder{}
	for _, n := range append([]*scene.Node{root}, abc[:]...) {
		rec.listen(n, transitions...)
	}
	d := NewDispatcher(sc)
	d.PointerMotion(30, 5, 0, 0) // [B, A, root]
	rec.log = nil
	d.PointerMotion(60, 5, 30, 0) // [C, B, root]
	assert.ElementsMatch(t, []string{"mouse_out@" + abc[0].ID(), "mouse_enter@" + abc[2].ID()}, rec.log)
	assert.False(t, abc[0].HasState(scene.Hover))
	assert.True(t, abc[1].HasState(scene.Hover))
	assert.True(t, abc[2].HasState(scene.Hover))
	rec.log = nil
	d.PointerMotion(61, 5, 1, 0)
	assert.Len(t, rec.log, 0, "no transitions while the hit list is unchanged")
}

func TestFocusOrdering(t *testing.T) {
	sc, root, abc := stripes(t)
	rec := &recorder{}
	for _, n := range append([]*scene.Node{root}, abc[:]...) {
		rec.listen(n, transitions...)
	}
	d := NewDispatcher(sc)
	d.PointerPress(10, 5, event.LeftButton, 0)
	assert.Equal(t, []string{"focus@" + abc[0].ID()}, rec.log)
	d.PointerRelease(10, 5, event.LeftButton, 0)
	rec.log = nil
	d.PointerPress(90, 5, event.LeftButton, 0)
	assert.Equal(t, []string{"blur@" + abc[0].ID(), "focus@" + abc[2].ID()}, rec.log)
	assert.True(t, abc[2].HasState(scene.Focus))
	assert.False(t, abc[0].HasState(scene.Focus))
	rec.log = nil
	d.PointerPress(95, 5, event.LeftButton, 0)
	assert.Len(t, rec.log, 0, "pressing the focused node again changes nothing")
	assert.Equal(t, abc[2].Handle(), d.Focused())
}

func TestActiveState(t *testing.T) {
	sc, root, abc := stripes(t)
	d := NewDispatcher(sc)
	d.PointerPress(30, 5, event.LeftButton, 0)
	for _, n := range []*scene.Node{root, abc[0], abc[1]} {
		assert.True(t, n.HasState(scene.Active), n.ID())
	}
	assert.False(t, abc[2].HasState(scene.Active))
	d.PointerRelease(90, 5, event.LeftButton, 0) // released elsewhere
	for _, n := range []*scene.Node{root, abc[0], abc[1]} {
		assert.False(t, n.HasState(scene.Active), n.ID())
	}
	assert.True(t, abc[1].HasState(scene.Focus), "release does not touch the focus")
}

func TestBubblingStopsWhenHandled(t *testing.T) {
	sc, root, abc := stripes(t)
	var got []string
	abc[0].On(event.MousePress, func(ev event.Event, target tree.Handle) event.Result {
		got = append(got, "A")
		return event.Handled
	})
	abc[0].On(event.MousePress, func(ev event.Event, target tree.Handle) event.Result {
		got = append(got, "A'")
		return event.Continue
	})
	root.On(event.MousePress, func(ev event.Event, target tree.Handle) event.Result {
		got = append(got, "root")
		return event.Continue
	})
	root.On(event.MouseRelease, func(ev event.Event, target tree.Handle) event.Result {
		got = append(got, "root-release")
		return event.Continue
	})
	d := NewDispatcher(sc)
	assert.Equal(t, event.Handled, d.PointerPress(10, 5, event.LeftButton, 0))
	assert.Equal(t, []string{"A", "A'"}, got, "all listeners of the node run, its parent is skipped")
	assert.Equal(t, event.Continue, d.PointerRelease(10, 5, event.LeftButton, 0))
	assert.Equal(t, []string{"A", "A'", "root-release"}, got)
}

func TestKeysGoToFocusedNode(t *testing.T) {
	sc, root, abc := stripes(t)
	var got []event.KeyCode
	rootKeys := 0
	abc[2].On(event.KeyPress, func(ev event.Event, target tree.Handle) event.Result {
		got = append(got, ev.(event.Key).Code)
		return event.Continue
	})
	root.On(event.KeyPress, func(ev event.Event, target tree.Handle) event.Result {
		rootKeys++
		return event.Handled
	})
	d := NewDispatcher(sc)
	assert.Equal(t, event.Continue, d.KeyPress(1, 0), "no focused node")
	d.PointerPress(80, 5, event.LeftButton, 0)
	d.KeyPress(65, event.ModShift)
	d.KeyRelease(65, event.ModShift)
	assert.Equal(t, []event.KeyCode{65}, got)
	assert.Equal(t, 0, rootKeys, "keys do not propagate")
	assert.Equal(t, event.Handled, d.Forward(root.Handle(), event.Key{Code: 66}))
	assert.Equal(t, 1, rootKeys)
}

func TestEmitSelectionChange(t *testing.T) {
	sc, root, abc := stripes(t)
	var sel event.Selection
	root.On(event.SelectionChange, func(ev event.Event, target tree.Handle) event.Result {
		sel = ev.(event.Selection)
		return event.Handled
	})
	d := NewDispatcher(sc)
	r := d.Emit(abc[1].Handle(), event.Selection{Start: 2, End: 4})
	assert.Equal(t, event.Handled, r)
	assert.Equal(t, 4, sel.End)
}

func TestRemovedNodesAreForgotten(t *testing.T) {
	sc, root, abc := stripes(t)
	d := NewDispatcher(sc)
	d.PointerMotion(30, 5, 0, 0)
	d.PointerPress(30, 5, event.LeftButton, 0)
	require.Equal(t, abc[1].Handle(), d.Focused())
	sc.Remove(abc[1].Handle())
	assert.True(t, d.Focused().IsNil())
	assert.Equal(t, []tree.Handle{abc[0].Handle(), root.Handle()}, d.Hovered())
	// must not touch the released node
	d.PointerRelease(30, 5, event.LeftButton, 0)
	d.PointerMotion(90, 5, 60, 0)
	assert.False(t, abc[0].HasState(scene.Hover))
}

func TestRefreshAfterRelayout(t *testing.T) {
	sc, root, abc := stripes(t)
	rec := &recorder{}
	rec.listen(abc[0], transitions...)
	d := NewDispatcher(sc)
	d.Refresh()
	assert.Len(t, d.Hovered(), 0, "no pointer position yet")
	d.PointerMotion(10, 5, 0, 0)
	require.True(t, abc[0].HasState(scene.Hover))
	rec.log = nil
	abc[0].SetBoxes(boxes(60, 10)) // A moves away from the resting pointer
	d.Refresh()
	assert.False(t, abc[0].HasState(scene.Hover))
	assert.Equal(t, []string{"mouse_out@" + abc[0].ID()}, rec.log)
	assert.Equal(t, []tree.Handle{root.Handle()}, d.Hovered())
	abc[0].SetBoxes(boxes(0, 50))
	d.Refresh()
	assert.True(t, abc[0].HasState(scene.Hover))
}
