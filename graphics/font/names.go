package font

import (
	"github.com/npillmayer/schuko"
)

// Names is the optional font-name mapping from the application settings:
// the logical identifiers to use for normal and for italic text. A nil
// *Names means no mapping is configured, which is valid and triggers the
// platform fallback.
type Names struct {
	Normal string
	Italic string
}

// NamesFromConfiguration reads the font-name mapping from an application
// configuration (keys 'font.normal' and 'font.italic'). It returns nil
// if the configuration carries no mapping.
func NamesFromConfiguration(conf schuko.Configuration) *Names {
	if conf == nil {
		return nil
	}
	n := Names{
		Normal: conf.GetString("font.normal"),
		Italic: conf.GetString("font.italic"),
	}
	if n.Normal == "" && n.Italic == "" {
		return nil
	}
	return &n
}
