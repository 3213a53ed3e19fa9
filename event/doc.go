/*
Package event defines the input events of a scene and listeners for them.

Event kinds form a closed set. Every event carries a typed payload:

    Notification   focus, blur, mouse enter, mouse out
    Motion         mouse motion, mouse drag
    Press          mouse press, mouse release
    Key            key press, key release
    Selection      selection change (widget specific)

Listeners are registered per node and per event kind and return a Result.
Returning Handled stops propagation of an event to ancestors of the node;
returning Continue lets the event bubble on. Routing of events (hit-testing,
bubbling, focus tracking) is done by package input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package event

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.event'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.event")
}
