/*
Package scene implements the scene tree of a GUI: nodes of different kinds,
arranged in a tree, carrying pseudo-states, a cached resolved style, boxes
and event listeners.

Nodes live in an arena (see package tree) and are addressed by handles.
Every node has a kind. Kinds form a single-inheritance chain, e.g.

    GUINode ← Layout ← VerticalLayout

The chain, from base to derived, is what the style cascade uses for type
selectors. Applications derive kinds of their own with NewKind.

A node's style is resolved by the layout engine and cached at the node.
Changing the pseudo-states of a node (hover, focus, …) drops the cached style
and marks the tree as in need of layout.

Content providers compute the intrinsic size of a node's content: images,
text, a single wrapped child or a stack of children.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.scene'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.scene")
}
