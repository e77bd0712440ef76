/*
Package layout implements the flow layout solver.

Overview

The solver places the children of a parent element, one at a time, within
the parent's content area. Children are visited in order; a FlowCursor
carries the insertion point from one sibling to the next:

    cursor := layout.NewFlowCursor(parent.Flow, contentArea)
    for _, child := range children {
        r := layout.Relayout(child, parent, contentArea, &cursor, scale)
        …
    }

Depending on the parent's flow, children are lined up in rows or columns,
forward or in reverse, and optionally wrap onto new lines when they would
overflow the content area. With direction None every child is placed by its
alignment only.

Sizes are resolved from absolute lengths (multiplied by the scale factor)
or proportions of the content area. After an element's rectangle is known,
its desired corner radius is reduced so that adjacent radii never overlap,
following the CSS rule for border-radius.

Layout never fails. Overflowing elements are a valid result and degenerate
input yields zero-sized rectangles. Within a parent the cursor imposes a
strict sequence; distinct parents share no state and may be laid out
concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.layout'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.layout")
}
