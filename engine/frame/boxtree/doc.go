/*
Package boxtree lays out a tree of UI elements.

A box tree is built from Nodes, each carrying the layout info of an element,
the padding and flow it imposes on its children, and optional style overlays
for pseudo-states (hover, active). Layout visits the tree top-down: the root
is placed within the viewport, then every node's children are placed within
the node's content area, in order, threading a flow cursor from sibling to
sibling.

Sibling order within a parent is strict. Different parents share no layout
state, therefore sub-trees may be laid out concurrently (see Config).

Results are stored in the nodes and may be queried with Walk, Find and
HitTest.
______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.boxtree'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.boxtree")
}
