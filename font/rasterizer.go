package font

import (
	"sync"

	"golang.org/x/image/font/sfnt"
)

// Rasterizer opens font sources for glyph rendering.
type Rasterizer interface {
	// Open parses src at size points (one point per pixel).
	Open(src Source, size float64) (Session, error)
}

// Session renders glyphs of one font at one size.
// A Session is used by one goroutine and closed after each batch.
type Session interface {
	// Metrics returns the face metrics.
	Metrics() FaceMetrics

	// Bitmap renders the filled glyph for r. Rows of the result hold
	// Width*opts.Depth bytes.
	Bitmap(r rune, opts RenderOptions) (Bitmap, error)

	// Outline returns the glyph outline for r in pixels relative to the
	// pen position, with Y growing downwards.
	Outline(r rune, opts RenderOptions) (sfnt.Segments, error)

	// Advance returns the unhinted advance of r in pixels.
	Advance(r rune) (x, y float32, err error)

	// Kerning returns the horizontal adjustment between left and right.
	Kerning(left, right rune) (float32, error)

	// Close releases the session.
	Close() error
}

// RenderOptions control glyph rendering.
type RenderOptions struct {
	// Depth is the atlas depth: 1, 3 (subpixel) or 4.
	Depth int

	// Hinting enables grid fitting.
	Hinting bool

	// LCDFilter applies LCDWeights to subpixel output.
	LCDFilter  bool
	LCDWeights [5]byte
}

// Bitmap is a rendered glyph.
type Bitmap struct {
	// Pix holds Height rows of Width*Depth bytes, Stride bytes apart.
	Pix    []byte
	Stride int

	Width  int
	Height int

	// Left is the distance from the pen position to the leftmost column;
	// Top is the distance from the baseline up to the topmost row.
	Left int
	Top  int
}

// valid reports whether the buffer can hold the declared rows.
func (b Bitmap) valid(depth int) bool {
	if b.Width < 0 || b.Height < 0 {
		return false
	}
	if b.Width == 0 || b.Height == 0 {
		return true
	}
	row := b.Width * depth
	return b.Stride >= 0 && len(b.Pix) >= (b.Height-1)*b.Stride+row
}

// defaultRasterizerName is the registry key used when no rasterizer is set.
const defaultRasterizerName = "sfnt"

var (
	rasterizersMu sync.RWMutex
	rasterizers   = map[string]Rasterizer{}
)

// RegisterRasterizer makes a rasterizer available by name.
// Package sfntraster registers itself as "sfnt", the default.
func RegisterRasterizer(name string, r Rasterizer) {
	rasterizersMu.Lock()
	defer rasterizersMu.Unlock()
	if r == nil {
		delete(rasterizers, name)
		return
	}
	rasterizers[name] = r
}

func lookupRasterizer(name string) Rasterizer {
	rasterizersMu.RLock()
	defer rasterizersMu.RUnlock()
	return rasterizers[name]
}
