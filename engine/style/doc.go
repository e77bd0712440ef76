/*
Package style reads the layout properties of UI elements from text.

Properties use a subset of CSS syntax:

    width: 120px;                   // absolute length, device-independent
    height: 50%;                    // proportion of the parent's content area
    margin: 4px 8px;                // CSS shorthand, top/bottom and left/right
    padding: 2px;
    border-radius: 6px 0px;         // top-left & bottom-right, top-right & bottom-left
    flow: row-reverse wrap;         // direction and optional wrap mode
    horizontal-alignment: left;     // left | center | right
    vertical-alignment: bottom;     // top | center | bottom

A style sheet assigns declarations to element IDs, optionally qualified by
a pseudo-state:

    #toolbar        { flow: row; height: 32px; }
    #toolbar:hover  { margin: 1px; }
    #toolbar:active { margin: 2px; }

Declarations are parsed by github.com/aymerick/douceur. Properties not set
by a declaration remain unset, so styles for pseudo-states may be merged
onto a base style.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.style'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.style")
}
