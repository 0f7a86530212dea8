package sfntraster

import "errors"

// Sentinel errors for sfntraster package.
var (
	// ErrEmptyFontData is returned when a source holds no bytes.
	ErrEmptyFontData = errors.New("sfntraster: empty font data")

	// ErrNoCharmap is returned when the font has no usable character map.
	ErrNoCharmap = errors.New("sfntraster: no usable charmap")

	// ErrUnsupportedSource is returned for unknown font.Source implementations.
	ErrUnsupportedSource = errors.New("sfntraster: unsupported source")

	// ErrUnsupportedDepth is returned for render depths other than 1, 3 and 4.
	ErrUnsupportedDepth = errors.New("sfntraster: unsupported depth")

	// ErrGlyphRender is returned when a glyph cannot be rendered.
	ErrGlyphRender = errors.New("sfntraster: glyph render failed")

	// ErrClosed is returned when a closed session is used.
	ErrClosed = errors.New("sfntraster: session closed")
)
