/*
Package boxstyle styles, lays out and routes input for scene-graph GUIs.

A Screen ties together the parts of the engine for one window: a style
registry (package style/cssom), a scene tree (package scene), the layout
engine (package layout) and an input dispatcher (package input).

    scr, _ := boxstyle.NewScreen(nil)
    _ = scr.LoadStylesheet(`.Label:hover { color: red }`)
    v := scr.VerticalLayout()
    _ = scr.Add(scr.Window(), v)
    _ = scr.Add(v, scr.Label("Hello"))
    _ = scr.Update()   // resolve styles and compute boxes

Input is fed to the dispatcher of the screen. State changes caused by input
(hover, focus, active) are picked up by the next call to Update.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxstyle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.screen'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.screen")
}
