package event

import (
	"testing"

	"github.com/npillmayer/boxstyle/tree"
	"github.com/stretchr/testify/assert"
)

func TestEventKinds(t *testing.T) {
	assert.Equal(t, MouseDrag, Motion{Drag: true}.Kind())
	assert.Equal(t, MouseMotion, Motion{}.Kind())
	assert.Equal(t, MouseRelease, Press{Release: true}.Kind())
	assert.Equal(t, KeyPress, Key{Code: 65}.Kind())
	assert.Equal(t, Blur, Notification{K: Blur}.Kind())
	assert.Equal(t, "selection_change", Selection{}.Kind().String())
	assert.True(t, (ModShift | ModCtrl).Has(ModCtrl))
	assert.False(t, ModShift.Has(ModShift|ModAlt))
}

func TestListenersNotifyAll(t *testing.T) {
	var ls Listeners
	var calls []string
	ls.On(MousePress, func(ev Event, target tree.Handle) Result {
		calls = append(calls, "first")
		return Handled
	})
	ls.On(MousePress, func(ev Event, target tree.Handle) Result {
		calls = append(calls, "second")
		return Continue
	})
	ls.On(KeyPress, func(ev Event, target tree.Handle) Result {
		calls = append(calls, "key")
		return Continue
	})
	r := ls.Notify(Press{X: 1, Y: 2}, tree.Handle(3))
	assert.Equal(t, Handled, r)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, Continue, ls.Notify(Notification{K: Focus}, tree.Handle(3)))
}

func TestListenerRemove(t *testing.T) {
	var ls Listeners
	n := 0
	h := ls.On(Focus, func(ev Event, target tree.Handle) Result {
		n++
		return Continue
	})
	ls.Notify(Notification{K: Focus}, 0)
	h.Remove()
	h.Remove()
	ls.Notify(Notification{K: Focus}, 0)
	assert.Equal(t, 1, n)
	assert.False(t, ls.Has(Focus))
	ListenerHandle{}.Remove() // zero handle is harmless
}

func TestRemoveWhileNotifying(t *testing.T) {
	var ls Listeners
	n := 0
	var h ListenerHandle
	h = ls.On(MouseOut, func(ev Event, target tree.Handle) Result {
		n++
		h.Remove()
		return Continue
	})
	ls.On(MouseOut, func(ev Event, target tree.Handle) Result {
		n++
		return Continue
	})
	ls.Notify(Notification{K: MouseOut}, 0)
	ls.Notify(Notification{K: MouseOut}, 0)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, ls.Count(MouseOut))
}
