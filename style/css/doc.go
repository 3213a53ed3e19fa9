/*
Package css provides typed interpretations of style properties.

Style properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
properties resulting from their textual nature. Clients will get option types
for dimensions (DimenT), positions (PositionT) and display modes. Dimensions
and positions may be matched by kind with an expression:

    d := css.ParseDimen(s.MustLeaf("width"))
    w := css.DimenPattern[int](d).OneOf(css.DimenPatterns[int]{
        Just: d.Px(),   // fixed width
        Auto: contentW, // width computed from content
    })

Lengths are stored as dimen.DU. The GUI's canvas has a resolution of
72 dpi, i.e. one pixel is one point.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxstyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.style")
}
