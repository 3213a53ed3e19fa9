/*
Package style implements the style value model: typed containers for CSS-like
style properties.

Overview

Styles are authored with dash-delimited property paths, as known from CSS:

    s := style.New()
    s.Set("border", "2 solid red")          // fans out to all four sides
    s.Set("border-left-color", "#0000ff")   // a single sub-property
    s.Set("margin", "4 8")                  // CSS 1..4 value syntax
    v, err := s.Get("border-color")         // "#0000ff red red red" (sides differ)

Every container kind (Style, Indent for margins and padding, Border,
BorderSide, Background, Font) has a fixed schema of sub-properties. Each
sub-property has a default value; reading an unset sub-property yields its
default, reading an unknown one is an error (ErrUnknownProperty). Values are
checked at assignment time, malformed input is rejected with
ErrInvalidStyleValue.

Style values are not interpreted beyond validation. Clients needing typed
values (lengths, positions, display modes) will use package style/css.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxstyle.style'
func tracer() tracing.Trace {
	return tracing.Select("boxstyle.style")
}
