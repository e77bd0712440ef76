/*
Package frame deals with the layout descriptors of UI elements.

Layout may be understood as the process of placing boxes within larger
boxes. Every element of a UI tree is a box, described by its requested
width and height, its margins, its alignment within the parent and its
desired corner radius. A parent box additionally carries a flow, which
determines how its children are lined up: in rows or columns, forward or
backward, optionally wrapping onto new lines.

Sizes are either absolute lengths, given in device-independent pixels, or
proportions of the parent's content area. All values in this package are
independent of the output device; they will be multiplied by a scale factor
(device pixel ratio) during layout.

The layout algorithm itself lives in sub-package layout.
______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.frame'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.frame")
}
