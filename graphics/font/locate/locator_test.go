package locate

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIdentityLocator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.font.locate")
	defer teardown()
	//
	l := IdentityLocator{}
	res, ok := l.Locate("Square 721 Condensed BT")
	if !ok {
		t.Fatalf("expected identity resolution to always succeed")
	}
	if res.ID != "Square 721 Condensed BT" || res.Path != "" {
		t.Errorf("expected name-only identity resolution, have %+v", res)
	}
	fb := l.Fallback()
	if fb.ID != "Helvetica" || fb.Path != "" {
		t.Errorf("expected Helvetica fallback, have %+v", fb)
	}
}

func TestRegistryFallbackAlwaysUsable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.font.locate")
	defer teardown()
	//
	l := &RegistryLocator{}
	fb := l.Fallback()
	if fb.ID == "" {
		t.Errorf("expected a non-empty fallback identifier, have %+v", fb)
	}
}

func TestRegistryLocatorUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "enso.font.locate")
	defer teardown()
	//
	l := &RegistryLocator{}
	if res, ok := l.Locate("NoSuchFaceAnywhere-Xj9"); ok {
		t.Errorf("expected resolution miss for unknown font, have %+v", res)
	}
	if _, ok := l.Locate(""); ok {
		t.Errorf("expected resolution miss for empty identifier")
	}
}

func TestNewLocator(t *testing.T) {
	if NewLocator() == nil {
		t.Errorf("expected a locator for the current platform")
	}
}

func TestNormalizeFontID(t *testing.T) {
	for input, expected := range map[string]string{
		"Arial.ttf":                    "arial",
		"arial":                        "arial",
		"Square 721 Condensed BT":      "square721condensedbt",
		"fonts/Clarendon-bold.ttf":     "clarendonbold",
		"Gill Sans MT Bold Italic.otf": "gillsansmtbolditalic",
		"  Consolas  ":                 "consolas",
		// registry paths come with backslashes
		`C:\Windows\Fonts\Arial.ttf`:           "arial",
		`C:\Windows\Fonts\Square 721 BT.ttf`:   "square721bt",
		`C:\Users\eh\Fonts\consola-italic.ttf`: "consolaitalic",
		`\\fileserver\fonts\GillSans.otf`:      "gillsans",
	} {
		if n := normalizeFontID(input); n != expected {
			t.Errorf("normalize(%q): expected %q, have %q", input, expected, n)
		}
	}
}
