/*
Package tree implements an arena of tree nodes, addressed by stable handles.

Styling and layout operate on a tree of nodes. Instead of linking nodes by
pointers in both directions, nodes live in an arena and refer to each other by
handle: a node owns its (ordered) children, the link to its parent is a plain
back-reference. Clients which have to remember nodes across frames (hit lists,
focus tracking) store handles, which will never alias another node after the
original node has been released.

Trees are not safe for concurrent mutation. All operations are synchronous.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.tree'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.tree")
}
