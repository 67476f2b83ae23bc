package font

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Glyph encapsulates the metrics of one character under a specific Font.
//
// Metrics are in points, with the glyph origin on the baseline and the
// y-axis growing upwards: YMax is the glyph's topmost extent (towards the
// ascent), YMin its bottommost (negative for descenders), and
// YMin <= YMax always holds. This is the glyph-box convention of the
// FreeType glyph metrics diagram, with the y-axis flipped relative to the
// backend's native y-down convention.
//
// A character the backend cannot map yields a glyph with all-zero
// metrics rather than an error; rendering such a glyph draws nothing.
type Glyph struct {
	Char    rune
	XMin    float64
	XMax    float64
	YMin    float64
	YMax    float64
	Advance float64

	font *Font // back-reference for re-deriving rendering state
}

// Font returns the font this glyph was derived from.
func (g *Glyph) Font() *Font { return g.font }

// Glyph returns the glyph of the font corresponding to the given Unicode
// character. The character is NFC-normalized first, so canonical
// variants of a code-point share one cache entry. Glyphs are memoized
// per font: repeated calls with the same character return the identical
// object.
func (f *Font) Glyph(char rune) *Glyph {
	char = canonical(char)
	fc := f.cache
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if g, ok := f.glyphs[char]; ok {
		return g
	}
	g := &Glyph{Char: char, font: f}
	if err := f.loadInto(fc.ctx); err != nil {
		tracer().Errorf("glyph query cannot select face: %v", err.Error())
		f.glyphs[char] = g
		return g
	}
	ext, err := fc.ctx.CharExtents(char)
	if err != nil {
		tracer().Errorf("glyph query failed for %q: %v", char, err.Error())
		f.glyphs[char] = g
		return g
	}
	g.XMin = ext.XBearing
	g.XMax = ext.XBearing + ext.Width
	g.YMax = -ext.YBearing
	g.YMin = -ext.YBearing - ext.Height
	g.Advance = ext.XAdvance
	f.glyphs[char] = g
	return g
}

// canonical maps a character to its composed canonical form, so that
// singleton variants such as U+212B ANGSTROM SIGN share a cache entry
// with U+00C5.
func canonical(char rune) rune {
	s := string(char)
	if norm.NFC.IsNormalString(s) {
		return char
	}
	r, _ := utf8.DecodeRuneInString(norm.NFC.String(s))
	if r == utf8.RuneError {
		return char
	}
	return r
}
