/*
Package input routes input events to the nodes of a scene tree.

HitTest finds the nodes under a pointer location, topmost first. A Dispatcher
tracks the hovered, focused and active nodes of a scene and delivers events
to their listeners:

■ Pointer motion updates the hover state. Nodes the pointer leaves receive
mouse_out, nodes the pointer enters receive mouse_enter, exactly once per
transition.

■ Pointer press moves the focus to the topmost node under the pointer. The
node losing the focus is blurred before the new node is focused.

■ Pointer events bubble from the topmost node under the pointer up to the
root, until a listener returns event.Handled. There is no capture phase.

■ Key events go to the focused node only. Listeners may forward them
explicitly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package input

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.input'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.input")
}
