/*
Package font provides a high-level interface for resolving and caching
fonts, their font-wide metrics, and per-character glyph metrics.

A Cache is a flyweight pool: Get returns one shared *Font per distinct
(name, size, italic) triple, constructed lazily and kept for the process
lifetime. The number of distinct fonts in practice is small and bounded
by the UI styles in use, so nothing is ever evicted. Each Font memoizes
the glyph metrics it has been asked for.

Resolving a font never fails for the caller: a configured font that
cannot be found degrades through a fallback chain down to an
always-available system default, with a diagnostic traced once per
process. Only a graphics backend that cannot produce a rendering context
at all surfaces an error.

This package requires no initialization or shutdown.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2008 Humanized, Inc. Copyright © 2008–2010 the Enso community.
*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'enso.font'.
func tracer() tracing.Trace {
	return tracing.Select("enso.font")
}
