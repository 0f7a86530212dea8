package font

import (
	"errors"
	"fmt"

	"github.com/gogpu/texatlas"
)

// Sentinel errors for font package.
var (
	// ErrFontInit is returned when a Font cannot be constructed.
	ErrFontInit = errors.New("font: initialization failed")

	// ErrAtlasFull is returned when a glyph does not fit in the atlas.
	ErrAtlasFull = texatlas.ErrAtlasFull

	// ErrGlyphNotLoaded is returned when a glyph is still missing after loading.
	ErrGlyphNotLoaded = errors.New("font: glyph not loaded")

	// ErrInvalidSize is returned for a non-positive or non-finite point size.
	ErrInvalidSize = errors.New("font: invalid size")

	// ErrNilAtlas is returned when a Font is created without an atlas.
	ErrNilAtlas = errors.New("font: nil atlas")

	// ErrNoRasterizer is returned when no rasterizer is configured or registered.
	ErrNoRasterizer = errors.New("font: no rasterizer")

	// ErrInvalidRune is returned for codepoints outside the Unicode range.
	ErrInvalidRune = errors.New("font: invalid rune")

	// ErrBadBitmap is returned when a rasterizer produces a bitmap whose
	// buffer does not match its declared size.
	ErrBadBitmap = errors.New("font: malformed bitmap")
)

// GlyphError reports a failure to load one glyph.
type GlyphError struct {
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("font: glyph %U: %v", e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
