package font

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
)

// LogFontList is a helper to dump the cached fonts, sorted by key, to
// the trace (log-level Info).
func (fc *Cache) LogFontList() {
	m := treemap.NewWithStringComparator()
	fc.mu.Lock()
	for key, f := range fc.fonts {
		style := "normal"
		if key.italic {
			style = "italic"
		}
		k := fmt.Sprintf("%s-%.2f-%s", key.name, key.size, style)
		m.Put(k, f.resolved.ID)
	}
	fc.mu.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- cached fonts ---")
	it := m.Iterator()
	for it.Next() {
		tracer().Infof("font [%s] = %v", it.Key(), it.Value())
	}
	tracer().Infof("--------------------")
	tracer().SetTraceLevel(level)
}
