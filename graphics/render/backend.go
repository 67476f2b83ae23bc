package render

import (
	xfont "golang.org/x/image/font"
)

// FaceRequest describes the face a context shall select for subsequent
// metric queries. Path points to a font file; if it is empty, Family is a
// logical font name which the backend resolves as well as it can.
type FaceRequest struct {
	Path   string
	Family string
	Slant  xfont.Style
	Weight xfont.Weight
}

// FontExtents are font-wide vertical metrics, in points.
type FontExtents struct {
	Ascent      float64
	Descent     float64
	Height      float64
	MaxXAdvance float64
	MaxYAdvance float64
}

// CharExtents are per-character metrics, in points, in the backend's
// native convention: origin on the baseline, y-axis growing downwards.
// A glyph reaching above the baseline therefore has a negative YBearing.
type CharExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
	YAdvance float64
}

// Context is an offscreen rendering context. A context holds a currently
// selected face and size, which all metric queries refer to.
//
// Contexts are not safe for concurrent use; callers serialize access
// (the font cache confines all queries to one shared, mutex-guarded
// context).
type Context interface {
	// SelectFace makes the requested face the context's current one.
	SelectFace(req FaceRequest) error
	// SetSize sets the current font size in points.
	SetSize(points float64)
	// FontExtents returns font-wide metrics for the current face and size.
	FontExtents() (FontExtents, error)
	// CharExtents returns metrics for a single character. Characters the
	// current face cannot map yield all-zero extents and no error.
	CharExtents(char rune) (CharExtents, error)
}

// Backend creates offscreen rendering contexts. A backend that cannot
// produce a context at all is broken beyond repair; this is the only
// error in the font layer that propagates to callers.
type Backend interface {
	NewContext() (Context, error)
}
