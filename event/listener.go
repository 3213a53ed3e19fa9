package event

import "github.com/npillmayer/boxstyle/tree"

// Listener is a function receiving events for a node. target is the node
// the listener is registered with.
type Listener func(ev Event, target tree.Handle) Result

type entry struct {
	id int
	fn Listener
}

// Listeners holds the listeners of a node, by event kind. The zero value is
// an empty set of listeners, ready to use.
type Listeners struct {
	lists  [kindCount][]entry
	nextID int
}

// ListenerHandle refers to a registered listener.
type ListenerHandle struct {
	ls   *Listeners
	kind Kind
	id   int
}

// On registers a listener for events of kind k. Listeners are called in
// order of registration.
func (ls *Listeners) On(k Kind, fn Listener) ListenerHandle {
	if k >= kindCount || fn == nil {
		return ListenerHandle{}
	}
	ls.nextID++
	ls.lists[k] = append(ls.lists[k], entry{id: ls.nextID, fn: fn})
	return ListenerHandle{ls: ls, kind: k, id: ls.nextID}
}

// Remove unregisters the listener. Removing a listener twice is a no-op.
func (h ListenerHandle) Remove() {
	if h.ls == nil {
		return
	}
	list := h.ls.lists[h.kind]
	for i, e := range list {
		if e.id == h.id {
			h.ls.lists[h.kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Has checks if there is any listener for events of kind k.
func (ls *Listeners) Has(k Kind) bool {
	return k < kindCount && len(ls.lists[k]) > 0
}

// Count returns the number of listeners for events of kind k.
func (ls *Listeners) Count(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return len(ls.lists[k])
}

// Notify calls all listeners for the kind of ev. All listeners are called,
// even if one of them returns Handled; the result is Handled if at least one
// of them did. Listeners may register or remove listeners while being
// notified, changes take effect for the next event.
func (ls *Listeners) Notify(ev Event, target tree.Handle) Result {
	k := ev.Kind()
	if !ls.Has(k) {
		return Continue
	}
	list := make([]entry, len(ls.lists[k]))
	copy(list, ls.lists[k])
	result := Continue
	for _, e := range list {
		if e.fn(ev, target) == Handled {
			result = Handled
		}
	}
	tracer().Debugf("%s delivered to %d listener(s) of %s: %s", k, len(list), target, result)
	return result
}
