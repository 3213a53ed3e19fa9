package scenedbg

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/npillmayer/boxstyle/layout"
	"github.com/npillmayer/boxstyle/scene"
	"github.com/npillmayer/boxstyle/style/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallScene(t *testing.T) *scene.Tree {
	sc := scene.NewTree()
	win := sc.NewNode(scene.KindWindow)
	require.NoError(t, sc.SetRoot(win.Handle()))
	v := sc.NewNode(scene.KindVerticalLayout)
	require.NoError(t, sc.Add(win.Handle(), v.Handle()))
	for _, w := range []int{10, 20} {
		img := sc.NewNode(scene.KindImage)
		img.SetContent(scene.ImageContent{W: w, H: 10})
		require.NoError(t, sc.Add(v.Handle(), img.Handle()))
	}
	gone := sc.NewNode(scene.KindImage)
	gone.SetID("gone")
	require.NoError(t, sc.Add(v.Handle(), gone.Handle()))
	att := sc.NewNode(scene.KindAttachment)
	require.NoError(t, sc.Add(v.Handle(), att.Handle()))
	reg := cssom.NewRegistry()
	require.NoError(t, reg.Set(".Image", "border", "1 solid red"))
	require.NoError(t, reg.Set("#gone", "display", "none"))
	require.NoError(t, layout.Layout(sc, reg))
	return sc
}

func TestDump(t *testing.T) {
	sc := smallScene(t)
	out := Dump(sc)
	t.Logf("\n%s", out)
	assert.True(t, strings.HasPrefix(out, "Window#0 ▩ (0,0,22,29)"), out)
	assert.Contains(t, out, "Image#2 ▩ [first-child] (0,0,12,12)")
	assert.Contains(t, out, "Image#gone ∅ [last-child] (hidden)")
	assert.Contains(t, out, "Attachment#5 (attachment)")
	assert.Equal(t, "<empty scene>\n", Dump(scene.NewTree()))
}

func TestRenderPNG(t *testing.T) {
	sc := smallScene(t)
	img := Render(sc)
	assert.Equal(t, 23, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
	var buf bytes.Buffer
	require.NoError(t, WritePNG(sc, &buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
