package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/boxstyle/scene"
	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/boxstyle/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds  window → vertical layout → children
func fixture(t *testing.T, sizes ...[2]int) (*scene.Tree, *scene.Node, []*scene.Node) {
	sc := scene.NewTree()
	win := sc.NewNode(scene.KindWindow)
	require.NoError(t, sc.SetRoot(win.Handle()))
	v := sc.NewNode(scene.KindVerticalLayout)
	require.NoError(t, sc.Add(win.Handle(), v.Handle()))
	var children []*scene.Node
	for _, sz := range sizes {
		img := sc.NewNode(scene.KindImage)
		img.SetContent(scene.ImageContent{W: sz[0], H: sz[1]})
		require.NoError(t, sc.Add(v.Handle(), img.Handle()))
		children = append(children, img)
	}
	return sc, v, children
}

func rect(x, y, w, h int) scene.Rect {
	return scene.Rect{X: x, Y: y, W: w, H: h}
}

func TestBoxNesting(t *testing.T) {
	st := style.New()
	require.NoError(t, st.Set("border-width", "2"))
	require.NoError(t, st.Set("padding", "4"))
	got := ComputeBoxes(st, 10, 10)
	want := scene.Boxes{
		Margin:  rect(0, 0, 22, 22),
		Border:  rect(0, 0, 22, 22),
		Padding: rect(2, 2, 18, 18),
		Content: rect(6, 6, 10, 10),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxNestingAsymmetric(t *testing.T) {
	st := style.New()
	require.NoError(t, st.Set("margin", "1 2 3 4"))
	require.NoError(t, st.Set("border-left", "thin solid red"))
	require.NoError(t, st.Set("padding-top", "5px"))
	got := ComputeBoxes(st, 10, 10)
	want := scene.Boxes{
		Margin:  rect(0, 0, 17, 19),
		Border:  rect(4, 1, 11, 15),
		Padding: rect(5, 1, 10, 15),
		Content: rect(5, 6, 10, 10),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestExplicitSizeResizesAllBoxes(t *testing.T) {
	st := style.New()
	require.NoError(t, st.Set("border-width", "2"))
	require.NoError(t, st.Set("padding", "4"))
	require.NoError(t, st.Set("width", "30"))
	got := ComputeBoxes(st, 10, 10)
	assert.Equal(t, rect(0, 0, 30, 22), got.Margin)
	assert.Equal(t, rect(0, 0, 30, 22), got.Border)
	assert.Equal(t, rect(2, 2, 26, 18), got.Padding)
	assert.Equal(t, rect(6, 6, 18, 10), got.Content)
	//
	require.NoError(t, st.Set("width", "5"))
	require.NoError(t, st.Set("height", "12px"))
	got = ComputeBoxes(st, 10, 10)
	assert.Equal(t, 5, got.Margin.W)
	assert.Equal(t, -7, got.Content.W, "negative content sizes are kept")
	assert.Equal(t, 0, got.Content.H)
}

func TestVerticalLayoutAggregation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.layout")
	defer teardown()
	//
	sc, v, children := fixture(t, [2]int{10, 10}, [2]int{20, 5})
	reg := cssom.NewRegistry()
	require.NoError(t, Layout(sc, reg))
	assert.Equal(t, rect(0, 0, 20, 20), v.Boxes().Content, "10 + spacing 5 + 5")
	assert.Equal(t, rect(0, 0, 10, 10), children[0].Boxes().Margin)
	assert.Equal(t, rect(0, 15, 20, 5), children[1].Boxes().Margin)
	assert.False(t, sc.NeedsLayout())
}

func TestLayoutPlacesSubtrees(t *testing.T) {
	sc, v, children := fixture(t, [2]int{10, 10}, [2]int{20, 5})
	reg := cssom.NewRegistry()
	require.NoError(t, reg.Set(".Window", "padding", "3"))
	require.NoError(t, reg.Set(".VerticalLayout", "margin-left", "2"))
	require.NoError(t, reg.Set(".Image", "border-width", "1"))
	require.NoError(t, Layout(sc, reg))
	win, _ := sc.Node(sc.Root())
	assert.Equal(t, rect(0, 0, 30, 30), win.Boxes().Margin)
	assert.Equal(t, rect(3, 3, 24, 24), v.Boxes().Margin)
	assert.Equal(t, rect(5, 3, 22, 24), v.Boxes().Content)
	assert.Equal(t, rect(6, 4, 10, 10), children[0].Boxes().Content)
	assert.Equal(t, rect(5, 20, 22, 7), children[1].Boxes().Border)
}

func TestPositioning(t *testing.T) {
	sc, v, children := fixture(t, [2]int{10, 10}, [2]int{20, 5}, [2]int{4, 4})
	children[0].SetID("rel")
	children[1].SetID("abs")
	children[2].SetID("fix")
	reg := cssom.NewRegistry()
	require.NoError(t, reg.Set(".VerticalLayout", "padding", "10"))
	require.NoError(t, reg.Set("#rel", "position", "relative"))
	require.NoError(t, reg.Set("#rel", "left", "3"))
	require.NoError(t, reg.Set("#rel", "top", "4"))
	require.NoError(t, reg.Set("#abs", "position", "absolute"))
	require.NoError(t, reg.Set("#abs", "left", "5"))
	require.NoError(t, reg.Set("#fix", "position", "fixed"))
	require.NoError(t, reg.Set("#fix", "left", "1"))
	require.NoError(t, reg.Set("#fix", "top", "2"))
	require.NoError(t, Layout(sc, reg))
	// only #rel takes part in the flow
	assert.Equal(t, rect(10, 10, 10, 10), v.Boxes().Content)
	assert.Equal(t, rect(13, 14, 10, 10), children[0].Boxes().Margin)
	assert.Equal(t, rect(15, 10, 20, 5), children[1].Boxes().Margin)
	assert.Equal(t, rect(1, 2, 4, 4), children[2].Boxes().Margin)
}

func TestDisplayNoneIsSkipped(t *testing.T) {
	sc, v, children := fixture(t, [2]int{10, 10}, [2]int{20, 5})
	children[1].SetID("gone")
	reg := cssom.NewRegistry()
	require.NoError(t, reg.Set("#gone", "display", "none"))
	require.NoError(t, Layout(sc, reg))
	assert.Equal(t, rect(0, 0, 10, 10), v.Boxes().Content)
	assert.True(t, children[1].IsHidden())
}

func TestStyleInheritanceAndCaching(t *testing.T) {
	sc, v, children := fixture(t, [2]int{10, 10}, [2]int{20, 5})
	reg := cssom.NewRegistry()
	require.NoError(t, reg.Set(".VerticalLayout", "color", "red"))
	require.NoError(t, reg.Set(".Image:hover", "color", "blue"))
	require.NoError(t, reg.Set(".Image:first-child", "margin-top", "7"))
	require.NoError(t, Layout(sc, reg))
	st0, err := children[0].Style()
	require.NoError(t, err)
	assert.Equal(t, style.Property("red"), st0.Color(), "color is inherited")
	assert.Equal(t, style.Property("7"), st0.MustLeaf("margin-top"))
	st1, _ := children[1].Style()
	assert.Equal(t, style.Property("0"), st1.MustLeaf("margin-top"))
	//
	stv, _ := v.Style()
	require.NoError(t, Layout(sc, reg))
	again, _ := v.Style()
	assert.Same(t, stv, again, "unchanged nodes keep their cached style")
	//
	children[1].AddState(scene.Hover)
	assert.True(t, sc.NeedsLayout())
	require.NoError(t, Layout(sc, reg))
	st1, _ = children[1].Style()
	assert.Equal(t, style.Property("blue"), st1.Color())
	again, _ = v.Style()
	assert.Same(t, stv, again)
}

func TestLayoutReportsUnresolvableStyles(t *testing.T) {
	sc, _, children := fixture(t, [2]int{1, 1})
	children[0].SetID("not an id")
	err := Layout(sc, cssom.NewRegistry())
	assert.True(t, errors.Is(err, cssom.ErrInvalidSelector))
}

func TestLayoutOfEmptyTree(t *testing.T) {
	assert.NoError(t, Layout(scene.NewTree(), cssom.NewRegistry()))
}
