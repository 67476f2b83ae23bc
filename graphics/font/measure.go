package font

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/unicode/norm"
)

// Measure returns the width in points of s when set in this font: the
// sum of glyph advances plus the kerning distance between neighbors
// (currently always 0; see KerningDistance).
//
// The string is NFC-normalized and split into grapheme clusters; each
// cluster is measured by its first code-point, which is what the glyph
// layer works with.
func (f *Font) Measure(s string) float64 {
	if s == "" {
		return 0
	}
	s = norm.NFC.String(s)
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	grapheme.SetupGraphemeClasses()
	splitter.Init(strings.NewReader(s))
	var width float64
	var prev rune
	first := true
	for splitter.Next() {
		char, _ := utf8.DecodeRune(splitter.Bytes())
		if char == utf8.RuneError {
			continue
		}
		if !first {
			width += f.KerningDistance(prev, char)
		}
		width += f.Glyph(char).Advance
		prev = char
		first = false
	}
	return width
}
