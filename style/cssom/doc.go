/*
Package cssom implements the style registry and the style cascade.

Overview

A Registry maps selectors to style fragments. Selectors are simple: there
is the universal selector, type selectors and id selectors, each of which may
be combined with a pseudo-state:

    *               every node
    .Button         nodes of kind Button, or of a kind derived from Button
    .Button:hover   … while in state hover
    #okbutton       the node with id "okbutton"
    #okbutton:focus … while in state focus

Resolving the style of a node (a Subject) merges all fragments applicable to
it, in the following order (later fragments override earlier ones):

    *  →  .T1  →  .T1:s…  →  .T2  →  .T2:s…  →  …  →  #id  →  #id:s…

where T1…Tn is the type chain of the node, from base type to most derived
type, and s… are the active states of the node. Properties with value
'inherit' are then taken from the parent's resolved style. The universal
rule of every registry is pre-populated with user-agent defaults, making
color and font properties inherit.

Registries are not global. Each application instance (window, screen) owns
its own registry. Rules for nodes which are gone may be removed with Forget.

Stylesheets may be loaded from CSS text, see package douceuradapter.
Declarations flagged !important are treated like any other declaration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.cssom")
}
