package locate

import (
	"runtime"
)

// Resolution is the outcome of resolving a logical font identifier.
// Path is the location of a font file; an empty Path means the identifier
// itself is usable by the graphics backend ("name-only" resolution).
type Resolution struct {
	ID   string
	Path string
}

// A FontLocator resolves logical font identifiers for one platform
// flavor. Locate reports whether the identifier could be resolved;
// Fallback returns a terminal default which is always usable.
type FontLocator interface {
	Locate(fontID string) (Resolution, bool)
	Fallback() Resolution
}

// NewLocator returns the font locator for the current operating system:
// registry-backed on Windows, identity-passthrough everywhere else.
func NewLocator() FontLocator {
	if runtime.GOOS == "windows" {
		return &RegistryLocator{}
	}
	return IdentityLocator{}
}

// --- Identity locator ------------------------------------------------------

// IdentityLocator treats every font identifier as already usable. It is
// the locator for platforms where the backend resolves family names
// itself.
type IdentityLocator struct{}

// Locate returns the identifier unchanged; it always succeeds.
func (IdentityLocator) Locate(fontID string) (Resolution, bool) {
	return Resolution{ID: fontID}, true
}

// Fallback returns the system default family name.
func (IdentityLocator) Fallback() Resolution {
	return Resolution{ID: "Helvetica"}
}

var _ FontLocator = IdentityLocator{}

// --- Registry locator ------------------------------------------------------

// RegistryLocator resolves font identifiers against the platform's
// installed font files. Resolution means finding a concrete file path;
// identifiers without a matching file fail to resolve.
type RegistryLocator struct {
	index fontIndex
}

// Locate queries the platform font registry for fontID.
func (l *RegistryLocator) Locate(fontID string) (Resolution, bool) {
	if fontID == "" {
		return Resolution{}, false
	}
	path, ok := l.index.lookup(fontID)
	if !ok {
		tracer().Infof("platform registry has no entry for font %q", fontID)
		return Resolution{}, false
	}
	tracer().Debugf("font %q resolved to %s", fontID, path)
	return Resolution{ID: fontID, Path: path}, true
}

// Fallback returns the bundled platform default, Arial, located through
// the system font directories. If even that is missing, the identifier
// degrades to name-only and the backend substitutes its embedded font.
func (l *RegistryLocator) Fallback() Resolution {
	if path, ok := l.index.lookup("arial.ttf"); ok {
		return Resolution{ID: "Arial", Path: path}
	}
	tracer().Infof("platform default font file not found, degrading to name-only")
	return Resolution{ID: "Arial"}
}

var _ FontLocator = &RegistryLocator{}
