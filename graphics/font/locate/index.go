package locate

import (
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/flopp/go-findfont"
)

// fontIndex is a lazily built index of the font files installed on the
// system. Building walks the platform font directories once per process;
// the result is frozen afterwards (font configuration is not expected to
// change mid-session).
type fontIndex struct {
	build sync.Once
	keys  *trie.Trie // normalized basename -> file path
}

func (ix *fontIndex) lookup(fontID string) (string, bool) {
	// Direct probes handle identifiers that name a file, with or
	// without the extension spelled out.
	for _, probe := range []string{fontID, fontID + ".ttf", fontID + ".otf", fontID + ".ttc"} {
		if fpath, err := findfont.Find(probe); err == nil && fpath != "" {
			return fpath, true
		}
	}
	ix.build.Do(ix.scan)
	key := normalizeFontID(fontID)
	if key == "" {
		return "", false
	}
	if node, ok := ix.keys.Find(key); ok {
		return node.Meta().(string), true
	}
	// Loose match: an identifier like "Square 721 Condensed BT" should
	// still find "square721condensedbt-roman.ttf".
	matches := ix.keys.PrefixSearch(key)
	if len(matches) == 0 {
		return "", false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if len(m) < len(best) {
			best = m
		}
	}
	node, ok := ix.keys.Find(best)
	if !ok {
		return "", false
	}
	return node.Meta().(string), true
}

func (ix *fontIndex) scan() {
	ix.keys = trie.New()
	count := 0
	for _, fpath := range findfont.List() {
		key := normalizeFontID(fpath)
		if key == "" {
			continue
		}
		ix.keys.Add(key, fpath)
		count++
	}
	tracer().Infof("indexed %d platform font files", count)
}

// normalizeFontID canonicalizes a font identifier or file name for index
// lookup: basename without extension, lower case, separators removed.
// Registry paths use backslashes, so both path flavors are split here.
func normalizeFontID(fontID string) string {
	fontID = strings.TrimSpace(fontID)
	if i := strings.LastIndexAny(fontID, `/\`); i >= 0 {
		fontID = fontID[i+1:]
	}
	if dot := strings.LastIndex(fontID, "."); dot > 0 {
		fontID = fontID[:dot]
	}
	fontID = strings.ToLower(fontID)
	fontID = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, fontID)
	return fontID
}
