package render

import (
	"io/ioutil"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/humanized/enso/core"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OpenTypeBackend is a Backend reading OpenType/TrueType font files with
// golang.org/x/image. Parsed fonts are cached per file path and shared by
// all contexts the backend creates.
type OpenTypeBackend struct {
	mu     sync.Mutex
	parsed map[string]*parsedFont
}

// NewBackend creates an OpenType metrics backend.
func NewBackend() *OpenTypeBackend {
	return &OpenTypeBackend{
		parsed: make(map[string]*parsedFont),
	}
}

// NewContext creates an offscreen context for metric queries.
func (b *OpenTypeBackend) NewContext() (Context, error) {
	if b == nil {
		return nil, core.Error(core.EINTERNAL, "no graphics backend present")
	}
	return &otContext{backend: b}, nil
}

var _ Backend = &OpenTypeBackend{}

// parsedFont is a font-file container, plus quantities derived once from
// the font and reused by every context.
type parsedFont struct {
	otf        *sfnt.Font
	upem       sfnt.Units
	maxAdvance sfnt.Units // widest horizontal advance, in font units
}

// load parses the font file at path, memoized per backend.
func (b *OpenTypeBackend) load(path string) (*parsedFont, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.parsed[path]; ok {
		return p, nil
	}
	bytez, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font file cannot be read: %s", path)
	}
	p, err := parseFont(bytez)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font file cannot be parsed: %s", path)
	}
	b.parsed[path] = p
	return p, nil
}

// loadNamed resolves a logical family name without a known file location.
// There is no fontconfig equivalent in the Go runtime, so we probe the
// platform font folders for a matching file and otherwise degrade to the
// embedded Go fonts, which are always available.
func (b *OpenTypeBackend) loadNamed(family string, slant xfont.Style) (*parsedFont, error) {
	if family != "" {
		if fpath, err := findfont.Find(family); err == nil && fpath != "" {
			tracer().Debugf("%s is a system font: %s", family, fpath)
			if p, err := b.load(fpath); err == nil {
				return p, nil
			}
		}
	}
	return embeddedFont(slant)
}

func parseFont(bytez []byte) (*parsedFont, error) {
	otf, err := sfnt.Parse(bytez)
	if err != nil {
		return nil, err
	}
	p := &parsedFont{
		otf:  otf,
		upem: sfnt.Units(otf.UnitsPerEm()),
	}
	p.maxAdvance = scanMaxAdvance(otf)
	return p, nil
}

// scanMaxAdvance finds the widest glyph advance of a font, in font units.
// sfnt does not surface the hhea advanceWidthMax field, so we scan the
// advances once per parsed font. Querying at a ppem of upem/64 makes the
// 26.6 fixed-point results numerically equal to font units.
func scanMaxAdvance(otf *sfnt.Font) sfnt.Units {
	var buf sfnt.Buffer
	var max fixed.Int26_6
	ppem := fixed.Int26_6(otf.UnitsPerEm())
	for gid := 0; gid < otf.NumGlyphs(); gid++ {
		adv, err := otf.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), ppem, xfont.HintingNone)
		if err != nil {
			continue
		}
		if adv > max {
			max = adv
		}
	}
	return sfnt.Units(max)
}

// --- Embedded terminal-fallback fonts --------------------------------------

var embeddedRegularLoading sync.Once
var embeddedItalicLoading sync.Once
var embeddedRegular *parsedFont
var embeddedItalic *parsedFont

// embeddedFont returns a font that is used if everything else failed.
// Currently we use the Go fonts.
func embeddedFont(slant xfont.Style) (*parsedFont, error) {
	var p *parsedFont
	var err error
	switch slant {
	case xfont.StyleItalic, xfont.StyleOblique:
		embeddedItalicLoading.Do(func() {
			embeddedItalic, err = parseFont(goitalic.TTF)
		})
		p = embeddedItalic
	default:
		embeddedRegularLoading.Do(func() {
			embeddedRegular, err = parseFont(goregular.TTF)
		})
		p = embeddedRegular
	}
	if p == nil {
		return nil, core.WrapError(err, core.EINTERNAL, "embedded fallback font is broken")
	}
	return p, nil
}

// --- Context ---------------------------------------------------------------

// otContext implements Context. fontDPI of 72 makes one pixel equal one
// point, so all fixed-point results are in points already.
const fontDPI = 72

type otContext struct {
	backend *OpenTypeBackend
	cur     *parsedFont
	size    float64
	face    xfont.Face
	faceFor *parsedFont // face is built for this font …
	faceAt  float64     // … at this size
}

func (ctx *otContext) SelectFace(req FaceRequest) error {
	var p *parsedFont
	var err error
	if req.Path != "" {
		p, err = ctx.backend.load(req.Path)
		if err != nil {
			tracer().Errorf(err.Error())
			p, err = embeddedFont(req.Slant)
		}
	} else {
		p, err = ctx.backend.loadNamed(req.Family, req.Slant)
	}
	if err != nil {
		return err
	}
	ctx.cur = p
	return nil
}

func (ctx *otContext) SetSize(points float64) {
	if points <= 0 {
		tracer().Errorf("font size must be positive, is %g (set to 10pt)", points)
		points = 10.0
	}
	ctx.size = points
}

// ensureFace builds an xfont.Face for the current selection. Faces are
// rebuilt only when the selection changed since the last query.
func (ctx *otContext) ensureFace() error {
	if ctx.cur == nil {
		return core.Error(core.EINVALID, "no face selected into rendering context")
	}
	if ctx.size == 0 {
		ctx.size = 10.0
	}
	if ctx.face != nil && ctx.faceFor == ctx.cur && ctx.faceAt == ctx.size {
		return nil
	}
	face, err := opentype.NewFace(ctx.cur.otf, &opentype.FaceOptions{
		Size:    ctx.size,
		DPI:     fontDPI,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create face for metric queries")
	}
	ctx.face = face
	ctx.faceFor = ctx.cur
	ctx.faceAt = ctx.size
	return nil
}

func (ctx *otContext) FontExtents() (FontExtents, error) {
	if err := ctx.ensureFace(); err != nil {
		return FontExtents{}, err
	}
	m := ctx.face.Metrics()
	ext := FontExtents{
		Ascent:      points(m.Ascent),
		Descent:     points(m.Descent),
		Height:      points(m.Height),
		MaxXAdvance: float64(ctx.cur.maxAdvance) * ctx.size / float64(ctx.cur.upem),
		MaxYAdvance: 0, // horizontal setting only
	}
	return ext, nil
}

func (ctx *otContext) CharExtents(char rune) (CharExtents, error) {
	if err := ctx.ensureFace(); err != nil {
		return CharExtents{}, err
	}
	bounds, advance, ok := ctx.face.GlyphBounds(char)
	if !ok {
		// unmapped character: degenerate extents, not an error
		tracer().Debugf("face cannot map %q, returning empty extents", char)
		return CharExtents{}, nil
	}
	ext := CharExtents{
		XBearing: points(bounds.Min.X),
		YBearing: points(bounds.Min.Y),
		Width:    points(bounds.Max.X - bounds.Min.X),
		Height:   points(bounds.Max.Y - bounds.Min.Y),
		XAdvance: points(advance),
		YAdvance: 0,
	}
	return ext, nil
}

var _ Context = &otContext{}

// points converts a 26.6 fixed-point value at 72 dpi to float points.
func points(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// Family guesses a display name for a font file, used in diagnostics.
func Family(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	if dot := strings.LastIndexByte(path, '.'); dot > 0 {
		path = path[:dot]
	}
	return path
}
