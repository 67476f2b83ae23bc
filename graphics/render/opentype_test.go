package render

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
)

// a family no system resolves, so queries hit the embedded Go fonts
const unknownFace = "EnsoReferenceFaceXterest"

func newTestContext(t *testing.T) Context {
	ctx, err := NewBackend().NewContext()
	require.NoError(t, err)
	require.NoError(t, ctx.SelectFace(FaceRequest{
		Family: unknownFace,
		Slant:  xfont.StyleNormal,
		Weight: xfont.WeightNormal,
	}))
	return ctx
}

func TestFontExtents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.render")
	defer teardown()
	//
	ctx := newTestContext(t)
	ctx.SetSize(12.0)
	ext, err := ctx.FontExtents()
	require.NoError(t, err)
	if ext.Ascent <= 0 || ext.Descent <= 0 || ext.Height <= 0 {
		t.Errorf("expected positive font extents, have %+v", ext)
	}
	if ext.MaxXAdvance <= 0 {
		t.Errorf("expected positive max x-advance, have %.2f", ext.MaxXAdvance)
	}
	if ext.MaxYAdvance != 0 {
		t.Errorf("expected zero max y-advance for horizontal setting, have %.2f", ext.MaxYAdvance)
	}
	if ext.Height < ext.Ascent {
		t.Errorf("expected line height to cover the ascent, have %+v", ext)
	}
}

func TestFontExtentsScaleWithSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.render")
	defer teardown()
	//
	ctx := newTestContext(t)
	ctx.SetSize(10.0)
	at10, err := ctx.FontExtents()
	require.NoError(t, err)
	ctx.SetSize(20.0)
	at20, err := ctx.FontExtents()
	require.NoError(t, err)
	ratio := at20.MaxXAdvance / at10.MaxXAdvance
	if math.Abs(ratio-2.0) > 0.1 {
		t.Errorf("expected max advance to scale with size, ratio is %.3f", ratio)
	}
	if at20.Ascent <= at10.Ascent {
		t.Errorf("expected ascent to grow with size: %.2f vs %.2f", at10.Ascent, at20.Ascent)
	}
}

func TestCharExtents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.render")
	defer teardown()
	//
	ctx := newTestContext(t)
	ctx.SetSize(24.0)
	ext, err := ctx.CharExtents('A')
	require.NoError(t, err)
	if ext.Width <= 0 || ext.Height <= 0 || ext.XAdvance <= 0 {
		t.Errorf("expected positive extents for 'A', have %+v", ext)
	}
	// backend convention is y-down: reaching above the baseline means a
	// negative y-bearing
	if ext.YBearing >= 0 {
		t.Errorf("expected negative y-bearing for 'A', have %.2f", ext.YBearing)
	}
	if ext.YAdvance != 0 {
		t.Errorf("expected zero y-advance for horizontal setting, have %.2f", ext.YAdvance)
	}
}

func TestCharExtentsUnmapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.render")
	defer teardown()
	//
	ctx := newTestContext(t)
	ctx.SetSize(12.0)
	ext, err := ctx.CharExtents('世') // no CJK coverage in the Go fonts
	require.NoError(t, err)
	if ext != (CharExtents{}) {
		t.Errorf("expected all-zero extents for unmapped character, have %+v", ext)
	}
}

func TestSelectFaceDegradesToEmbedded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.render")
	defer teardown()
	//
	ctx, err := NewBackend().NewContext()
	require.NoError(t, err)
	err = ctx.SelectFace(FaceRequest{
		Path:  "/no/such/file.ttf",
		Slant: xfont.StyleItalic,
	})
	require.NoError(t, err)
	ctx.SetSize(12.0)
	ext, err := ctx.FontExtents()
	require.NoError(t, err)
	if ext.Ascent <= 0 {
		t.Errorf("expected usable metrics from the embedded fallback, have %+v", ext)
	}
}

func TestInvalidSizeIsCorrected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.render")
	defer teardown()
	//
	ctx := newTestContext(t)
	ctx.SetSize(-3.0)
	ext, err := ctx.FontExtents()
	require.NoError(t, err)
	if ext.Ascent <= 0 {
		t.Errorf("expected metrics at the substitute size, have %+v", ext)
	}
}

func TestNoFaceSelected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.render")
	defer teardown()
	//
	ctx, err := NewBackend().NewContext()
	require.NoError(t, err)
	if _, err := ctx.FontExtents(); err == nil {
		t.Errorf("expected an error for metric queries without a selected face")
	}
}

func TestFamily(t *testing.T) {
	for input, expected := range map[string]string{
		"/fonts/Arial.ttf": "Arial",
		"GoRegular":        "GoRegular",
		"a/b/c.otf":        "c",
	} {
		if f := Family(input); f != expected {
			t.Errorf("Family(%q): expected %q, have %q", input, expected, f)
		}
	}
}
