/*
Package render abstracts the vector-graphics backend that the font layer
queries for metrics.

The quasimode overlay draws its text with a custom layout pass, so the font
layer does not hand strings to a toolkit. Instead it selects a face into an
offscreen rendering context and asks the context for font extents and for
per-character extents. This package defines that context seam and provides
an implementation on top of golang.org/x/image.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2008 Humanized, Inc. Copyright © 2008–2010 the Enso community.
*/
package render

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'enso.render'.
func tracer() tracing.Trace {
	return tracing.Select("enso.render")
}
