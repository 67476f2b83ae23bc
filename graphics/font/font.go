package font

import (
	"sync"

	"github.com/humanized/enso/core"
	"github.com/humanized/enso/graphics/font/locate"
	"github.com/humanized/enso/graphics/render"
	xfont "golang.org/x/image/font"
)

// fontKey is the flyweight identity of a font: two Get calls with equal
// keys yield the identical *Font.
type fontKey struct {
	name   string
	size   float64
	italic bool
}

// Cache is a flyweight pool of Font objects. It owns every Font it hands
// out, the shared offscreen rendering context all metric queries go
// through, and the per-process diagnostic limiter.
//
// A Cache is safe for concurrent use; all access to the flyweight table,
// the shared context and the per-font glyph caches is serialized by one
// mutex.
type Cache struct {
	mu      sync.Mutex
	fonts   map[fontKey]*Font
	backend render.Backend
	ctx     render.Context
	locator locate.FontLocator
	names   *Names
	notices *notices
}

// Option configures a Cache.
type Option func(*Cache)

// WithBackend sets the graphics backend for metric queries.
func WithBackend(b render.Backend) Option {
	return func(fc *Cache) { fc.backend = b }
}

// WithLocator sets the platform font locator.
func WithLocator(l locate.FontLocator) Option {
	return func(fc *Cache) { fc.locator = l }
}

// WithNames sets the configured font-name mapping. nil is valid and
// means "not configured".
func WithNames(n *Names) Option {
	return func(fc *Cache) { fc.names = n }
}

// NewCache creates a font cache. Without options it uses the OpenType
// metrics backend and the locator for the current operating system, and
// has no font names configured.
func NewCache(opts ...Option) *Cache {
	fc := &Cache{
		fonts:   make(map[fontKey]*Font),
		notices: newNotices(),
	}
	for _, opt := range opts {
		opt(fc)
	}
	if fc.backend == nil {
		fc.backend = render.NewBackend()
	}
	if fc.locator == nil {
		fc.locator = locate.NewLocator()
	}
	return fc
}

var globalCache *Cache
var globalCacheCreation sync.Once

// GlobalCache is an application-wide singleton font cache.
func GlobalCache() *Cache {
	globalCacheCreation.Do(func() {
		globalCache = NewCache()
	})
	return globalCache
}

// ResetNotices clears the once-per-process diagnostic limiter, so that
// suppressed resolution warnings are traced again. Intended for tests.
func (fc *Cache) ResetNotices() {
	fc.notices.reset()
}

// Get retrieves the Font with the given properties. The first request
// for a key resolves the font's platform location, selects it into the
// shared rendering context and queries its metrics; every later request
// returns the identical cached object.
//
// Get never fails over a missing or misconfigured font. The only error
// it returns is a broken graphics backend, in which case no rendering is
// possible at all.
func (fc *Cache) Get(name string, size float64, isItalic bool) (*Font, error) {
	key := fontKey{name: name, size: size, italic: isItalic}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if f, ok := fc.fonts[key]; ok {
		return f, nil
	}
	if fc.ctx == nil {
		ctx, err := fc.backend.NewContext()
		if err != nil {
			return nil, core.WrapError(err, core.EINTERNAL, "cannot create rendering context")
		}
		fc.ctx = ctx
	}
	f := &Font{
		name:   name,
		size:   size,
		italic: isItalic,
		slant:  xfont.StyleNormal,
		cache:  fc,
		glyphs: make(map[rune]*Glyph),
	}
	if isItalic {
		f.slant = xfont.StyleItalic
	}
	f.resolved = fc.resolve(isItalic)
	if fc.notices.first("font-used:" + f.resolved.ID) {
		if f.resolved.Path != "" {
			tracer().Infof("font used: %q (%s)", render.Family(f.resolved.Path), f.resolved.Path)
		} else {
			tracer().Infof("font used: %q", f.resolved.ID)
		}
	}
	if err := f.loadInto(fc.ctx); err != nil {
		return nil, err
	}
	ext, err := fc.ctx.FontExtents()
	if err != nil {
		return nil, err
	}
	f.ascent = ext.Ascent
	f.descent = ext.Descent
	f.height = ext.Height
	f.maxXAdvance = ext.MaxXAdvance
	f.maxYAdvance = ext.MaxYAdvance
	fc.fonts[key] = f
	return f, nil
}

// resolve walks the fallback chain for a font request: the configured
// italic entry (if requested and present), then the configured normal
// entry, then the locator's terminal default. The chain always produces
// a usable resolution; failures along the way are traced once per
// process.
func (fc *Cache) resolve(isItalic bool) locate.Resolution {
	if fc.names == nil {
		if fc.notices.first("names-missing") {
			tracer().Errorf("there is no font-name setting in the configuration")
		}
		return fc.locator.Fallback()
	}
	if isItalic && fc.names.Italic != "" {
		if res, ok := fc.locator.Locate(fc.names.Italic); ok {
			return res
		}
		if fc.notices.first("miss:" + fc.names.Italic) {
			tracer().Errorf("specified font was not found in the system: %q", fc.names.Italic)
		}
	}
	if fc.names.Normal != "" {
		if res, ok := fc.locator.Locate(fc.names.Normal); ok {
			return res
		}
		if fc.notices.first("miss:" + fc.names.Normal) {
			tracer().Errorf("specified font was not found in the system: %q", fc.names.Normal)
		}
	}
	if fc.notices.first("names-fallback") {
		tracer().Errorf("using platform default font")
	}
	return fc.locator.Fallback()
}

// --- Font ------------------------------------------------------------------

// Font encapsulates a font face: a typeface resolved to a platform
// location, in a style and size. Fonts are created by a Cache and
// immutable afterwards; callers share read-only references.
type Font struct {
	name        string
	size        float64
	italic      bool
	slant       xfont.Style
	resolved    locate.Resolution
	ascent      float64
	descent     float64
	height      float64
	maxXAdvance float64
	maxYAdvance float64
	cache       *Cache
	glyphs      map[rune]*Glyph
}

// Name returns the requested family name (which resolution may have
// substituted; see Resolved).
func (f *Font) Name() string { return f.name }

// Size returns the font size in points.
func (f *Font) Size() float64 { return f.size }

// IsItalic returns whether an italic face was requested.
func (f *Font) IsItalic() bool { return f.italic }

// Slant returns the style axis derived from the italic flag.
func (f *Font) Slant() xfont.Style { return f.slant }

// Resolved returns the platform resolution this font was loaded from.
// The resolution is computed once and frozen for the font's lifetime.
func (f *Font) Resolved() locate.Resolution { return f.resolved }

// Ascent returns the distance from baseline to the top of a line, in points.
func (f *Font) Ascent() float64 { return f.ascent }

// Descent returns the distance from baseline to the bottom of a line, in points.
func (f *Font) Descent() float64 { return f.descent }

// Height returns the line height in points.
func (f *Font) Height() float64 { return f.height }

// MaxXAdvance returns the widest horizontal glyph advance, in points.
func (f *Font) MaxXAdvance() float64 { return f.maxXAdvance }

// MaxYAdvance returns the largest vertical glyph advance, in points.
// It is 0 for horizontal setting.
func (f *Font) MaxYAdvance() float64 { return f.maxYAdvance }

// KerningDistance returns the kerning distance in points between two
// characters for this font face.
//
// Kerning is not implemented and the result is always 0.0; callers must
// treat that as a valid "no kerning" answer.
func (f *Font) KerningDistance(charLeft, charRight rune) float64 {
	return 0.0
}

// loadInto selects this font into a rendering context.
func (f *Font) loadInto(ctx render.Context) error {
	req := render.FaceRequest{
		Path:   f.resolved.Path,
		Family: f.resolved.ID,
		Slant:  f.slant,
		Weight: xfont.WeightNormal,
	}
	if err := ctx.SelectFace(req); err != nil {
		return err
	}
	ctx.SetSize(f.size)
	return nil
}
