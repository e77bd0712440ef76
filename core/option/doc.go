/*
Package option implements optional values.

Style declarations set only some of an element's layout properties; the
remaining ones are inherited from a base. Optional values make "not set"
explicit without resorting to in-band null values or pointers.

	w := option.Some(12.0)
	h := option.None[float64]()
	h.Or(w.Unwrap())       // 12.0

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowbox.core'.
func tracer() tracing.Trace {
	return tracing.Select("flowbox.core")
}
