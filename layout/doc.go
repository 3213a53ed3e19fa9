/*
Package layout computes the boxes of the nodes of a scene tree.

Layout is a two-phase traversal per subtree. Styles are resolved top-down,
as a node's 'inherit' properties need the resolved style of its parent.
Boxes are computed bottom-up, as the content size of a node may depend on
the sizes of its children.

For every node, the four boxes of the CSS box model nest outwards:

    content → +padding → +border → +margin

If a style declares an explicit width or height, the margin box is forced
to that size and the difference is applied to all four boxes alike. Content
boxes may therefore become negative in size; this is not an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.layout")
}
