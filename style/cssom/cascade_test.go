package cssom

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxstyle/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subject struct {
	id     string
	chain  []string
	states []string
}

func (s subject) ID() string          { return s.id }
func (s subject) TypeChain() []string { return s.chain }
func (s subject) States() []string    { return s.states }

func button(states ...string) subject {
	return subject{id: "ok", chain: []string{"GUINode", "Button"}, states: states}
}

func TestParseSelector(t *testing.T) {
	for input, want := range map[string]Selector{
		"*":                 Universal(),
		"*:hover":           Universal().WithState("hover"),
		".Button":           Type("Button"),
		"Button:focus":      Type("Button").WithState("focus"),
		"#ok":               ID("ok"),
		" #ok:active ":      ID("ok").WithState("active"),
		"#1f":               ID("1f"),
		".Label:last-child": Type("Label").WithState("last-child"),
	} {
		sel, err := ParseSelector(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, sel, input)
	}
	for _, input := range []string{"", "#", "div p", ".a.b", "#ok:", "a > b", "[x=1]"} {
		_, err := ParseSelector(input)
		assert.True(t, errors.Is(err, ErrInvalidSelector), "expected %q to be rejected", input)
	}
	assert.Equal(t, ".Button:hover", Type("Button").WithState("hover").String())
}

func TestCascadeSelectorOrder(t *testing.T) {
	sels := CascadeSelectors(button("hover"))
	var have []string
	for _, sel := range sels {
		have = append(have, sel.String())
	}
	assert.Equal(t, []string{"*", "*:hover", ".GUINode", ".GUINode:hover",
		".Button", ".Button:hover", "#ok", "#ok:hover"}, have)
}

func TestCascadeOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxstyle.cssom")
	defer teardown()
	//
	reg := NewRegistry()
	require.NoError(t, reg.Set("*", "color", "red"))
	require.NoError(t, reg.Set(".Button", "color", "green"))
	require.NoError(t, reg.Set(".GUINode", "color", "yellow"))
	s, err := reg.Resolve(button(), nil)
	require.NoError(t, err)
	assert.Equal(t, style.Property("green"), s.Color(), "derived type wins over base type")
	//
	require.NoError(t, reg.Set("#ok", "color", "blue"))
	require.NoError(t, reg.Set("#ok:hover", "color", "white"))
	s, _ = reg.Resolve(button(), nil)
	assert.Equal(t, style.Property("blue"), s.Color(), "#id is most specific")
	s, _ = reg.Resolve(button("hover"), nil)
	assert.Equal(t, style.Property("white"), s.Color(), "#id:state wins while state is active")
	s, _ = reg.Resolve(button("focus"), nil)
	assert.Equal(t, style.Property("blue"), s.Color())
}

func TestResolveIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Set(".Button", "border", "2 solid red"))
	require.NoError(t, reg.Set(".Button:hover", "border-left-color", "blue"))
	require.NoError(t, reg.Set("#ok", "padding", "4"))
	s1, err := reg.Resolve(button("hover"), nil)
	require.NoError(t, err)
	s2, err := reg.Resolve(button("hover"), nil)
	require.NoError(t, err)
	assert.True(t, s1.Equal(s2))
	assert.Equal(t, s1.String(), s2.String())
	assert.Equal(t, style.Property("blue"), s1.MustLeaf("border-left-color"))
	assert.Equal(t, style.Property("red"), s1.MustLeaf("border-top-color"), "deep merge keeps other sides")
}

func TestResolveInheritsFromParent(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Set("#win", "color", "navy"))
	require.NoError(t, reg.Set("#win", "font-size", "20"))
	require.NoError(t, reg.Set("#win", "margin", "3"))
	win := subject{id: "win", chain: []string{"GUINode", "Window"}}
	ws, err := reg.Resolve(win, nil)
	require.NoError(t, err)
	bs, err := reg.Resolve(button(), ws)
	require.NoError(t, err)
	assert.Equal(t, style.Property("navy"), bs.Color())
	assert.Equal(t, style.Property("20"), bs.MustLeaf("font-size"))
	assert.Equal(t, style.Property("0"), bs.MustLeaf("margin-top"), "margins are not inherited")
	//
	require.NoError(t, reg.Set(".Button", "margin-top", "inherit"))
	bs, _ = reg.Resolve(button(), ws)
	assert.Equal(t, style.Property("3"), bs.MustLeaf("margin-top"), "explicit inherit")
	//
	root, _ := reg.Resolve(button(), nil)
	assert.Equal(t, style.Property("black"), root.Color(), "inherit at root falls back to default")
}

func TestForgetAndReset(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Set("#ok", "color", "blue"))
	require.NoError(t, reg.Set("#ok:hover", "color", "white"))
	require.NoError(t, reg.Set("#other", "color", "white"))
	assert.Equal(t, 2, reg.Forget("ok"))
	assert.Nil(t, reg.Lookup(ID("ok")))
	assert.NotNil(t, reg.Lookup(ID("other")))
	assert.Equal(t, []string{"#other", "*"}, reg.Selectors())
	reg.Reset()
	assert.Equal(t, []string{"*"}, reg.Selectors())
	assert.Equal(t, style.Property("inherit"), reg.Lookup(Universal()).MustLeaf("color"))
}

func TestRegistryRejectsInvalidInput(t *testing.T) {
	reg := NewRegistry()
	err := reg.Set("div > p", "color", "red")
	assert.True(t, errors.Is(err, ErrInvalidSelector))
	err = reg.Set(".Button", "colour", "red")
	assert.True(t, errors.Is(err, style.ErrUnknownProperty))
	err = reg.Set(".Button", "color", "reddish")
	assert.True(t, errors.Is(err, style.ErrInvalidStyleValue))
	_, err = reg.Resolve(subject{id: "has space", chain: []string{"GUINode"}}, nil)
	assert.True(t, errors.Is(err, ErrInvalidSelector))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	require.NoError(t, a.Set(".Button", "color", "red"))
	s, _ := b.Resolve(button(), nil)
	assert.Equal(t, style.Property("black"), s.Color())
}
