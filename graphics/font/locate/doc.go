/*
Package locate resolves logical font identifiers to platform font
locations.

Operating systems differ in how a configured font name maps to something
the graphics backend can load. Windows keeps a registry of installed font
files, so a name has to be turned into a file path up front. Systems with
a fontconfig-style service accept the name itself as the usable
identifier. Callers pick a FontLocator once at startup (NewLocator) and
inject it into the font cache; resolution code never branches on the
operating system.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2008 Humanized, Inc. Copyright © 2008–2010 the Enso community.
*/
package locate

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'enso.font.locate'.
func tracer() tracing.Trace {
	return tracing.Select("enso.font.locate")
}
