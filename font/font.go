package font

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gogpu/texatlas"
	"github.com/gogpu/texatlas/internal/cache"
)

// State is the lifecycle state of a Font.
type State uint8

const (
	// StateUninitialized is the state of a zero Font.
	StateUninitialized State = iota

	// StateInitializing is the state while New reads the font source.
	StateInitializing

	// StateReady means the Font can serve lookups.
	StateReady

	// StateFailed means the special glyph could not be placed after a
	// Reset; it is retried on the next lookup of NoCodepoint.
	StateFailed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitializing:
		return "Initializing"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return unknownStr
	}
}

// Stats are cache counters of a Font.
type Stats struct {
	// Hits counts lookups served from the cache.
	Hits uint64
	// Misses counts lookups that had to load a glyph.
	Misses uint64
	// Rasterized counts glyphs rendered and stored.
	Rasterized uint64
	// Missed counts glyphs that could not be stored.
	Missed uint64
}

// fontIDs numbers Fonts so a Handle is only accepted by its issuer.
var fontIDs atomic.Uint32

// Font caches the glyphs of one font source at one size in an atlas.
type Font struct {
	atlas *texatlas.Atlas
	src   Source
	size  float64
	cfg   config

	rasterizer Rasterizer
	metrics    Metrics
	state      State

	id     uint32
	glyphs []Glyph
	index  map[glyphKey]int32
	gen    uint32

	// pairs memoises kerning values by (left, right) codepoint.
	pairs *cache.LRU[[2]rune, float32]

	stats Stats
}

// New creates a Font for src at size points, packing glyphs into atlas.
//
// The font source is opened once to read its metrics and the special
// NoCodepoint glyph is placed in the atlas. Any failure returns an error
// wrapping ErrFontInit and no Font.
func New(atlas *texatlas.Atlas, src Source, size float64, opts ...Option) (*Font, error) {
	if atlas == nil {
		return nil, fmt.Errorf("%w: %w", ErrFontInit, ErrNilAtlas)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrFontInit)
	}
	if size <= 0 || math.IsInf(size, 0) || math.IsNaN(size) {
		return nil, fmt.Errorf("%w: %w: %v", ErrFontInit, ErrInvalidSize, size)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := cfg.rasterizer
	if r == nil {
		r = lookupRasterizer(cfg.rasterizerName)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %w %q", ErrFontInit, ErrNoRasterizer, cfg.rasterizerName)
	}

	f := &Font{
		atlas:      atlas,
		src:        src,
		size:       size,
		cfg:        cfg,
		rasterizer: r,
		state:      StateInitializing,
		id:         fontIDs.Add(1),
		index:      make(map[glyphKey]int32),
		gen:        1,
		pairs:      cache.NewLRU[[2]rune, float32](cfg.kerningCache),
	}

	sess, err := r.Open(src, size)
	if err != nil {
		texatlas.Logger().Warn("font open failed", "source", src.String(), "err", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrFontInit, src, err)
	}
	f.metrics = newMetrics(size, sess.Metrics())
	if err := sess.Close(); err != nil {
		return nil, fmt.Errorf("%w: %s: close: %w", ErrFontInit, src, err)
	}

	if _, err := f.loadSentinel(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontInit, err)
	}
	f.state = StateReady

	texatlas.Logger().Debug("font ready",
		"source", src.String(), "size", size,
		"ascender", f.metrics.Ascender, "descender", f.metrics.Descender)
	return f, nil
}

// NewFromFile creates a Font reading the font file at path.
func NewFromFile(atlas *texatlas.Atlas, path string, size float64, opts ...Option) (*Font, error) {
	return New(atlas, FileSource{Path: path}, size, opts...)
}

// NewFromMemory creates a Font from in-memory font data.
// The data is used in place and must not change while the Font exists.
func NewFromMemory(atlas *texatlas.Atlas, data []byte, size float64, opts ...Option) (*Font, error) {
	return New(atlas, MemorySource{Data: data}, size, opts...)
}

func (f *Font) mustInit() {
	if f == nil || f.atlas == nil {
		panic("font: use of uninitialized Font")
	}
}

// Atlas returns the atlas the Font packs glyphs into.
func (f *Font) Atlas() *texatlas.Atlas { return f.atlas }

// Source returns the font source.
func (f *Font) Source() Source { return f.src }

// Size returns the point size.
func (f *Font) Size() float64 { return f.size }

// Metrics returns the line metrics.
func (f *Font) Metrics() Metrics { return f.metrics }

// State returns the lifecycle state.
func (f *Font) State() State {
	if f == nil {
		return StateUninitialized
	}
	return f.state
}

// Stats returns the cache counters.
func (f *Font) Stats() Stats { return f.stats }

// Len returns the number of cached glyph records, the special glyph included.
func (f *Font) Len() int { return len(f.glyphs) }

// Outline returns the current outline style.
func (f *Font) Outline() Outline { return f.cfg.outline }

// SetOutline changes the outline style. Glyphs cached with another style
// stay cached but no longer match lookups.
func (f *Font) SetOutline(o Outline) { f.cfg.outline = o.normalize() }

// Hinting reports whether hinting is enabled.
func (f *Font) Hinting() bool { return f.cfg.hinting }

// SetHinting enables or disables hinting for glyphs loaded afterwards.
func (f *Font) SetHinting(enabled bool) { f.cfg.hinting = enabled }

// KerningEnabled reports whether kerning tables are generated.
func (f *Font) KerningEnabled() bool { return f.cfg.kerning }

// SetKerning enables or disables kerning; it takes effect at the next batch.
func (f *Font) SetKerning(enabled bool) { f.cfg.kerning = enabled }

// LCDFilter reports whether the custom subpixel filter is enabled.
func (f *Font) LCDFilter() bool { return f.cfg.lcdFilter }

// SetLCDFilter enables or disables the custom subpixel filter.
func (f *Font) SetLCDFilter(enabled bool) { f.cfg.lcdFilter = enabled }

// LCDWeights returns the subpixel filter weights.
func (f *Font) LCDWeights() [5]byte { return f.cfg.lcdWeights }

// SetLCDWeights sets the subpixel filter weights.
func (f *Font) SetLCDWeights(w [5]byte) { f.cfg.lcdWeights = w }

// Glyph returns a copy of the record h refers to.
// It returns false for a zero or stale handle, or one issued by another Font.
func (f *Font) Glyph(h Handle) (Glyph, bool) {
	if h.font != f.id || h.gen != f.gen || h.index < 0 || int(h.index) >= len(f.glyphs) {
		return Glyph{}, false
	}
	return f.glyphs[h.index].clone(), true
}

// MustGlyph is like Glyph but panics on a zero or stale handle.
func (f *Font) MustGlyph(h Handle) Glyph {
	g, ok := f.Glyph(h)
	if !ok {
		panic("font: stale glyph handle")
	}
	return g
}

// Find returns the cached glyph for r in the current outline style without
// loading it.
func (f *Font) Find(r rune) (Handle, bool) {
	i, ok := f.index[keyFor(r, f.cfg.outline)]
	if !ok {
		return Handle{}, false
	}
	return Handle{font: f.id, index: i, gen: f.gen}, true
}

// Kerning returns the adjustment between prev and cur in the current
// outline style. It is zero when cur is not cached.
func (f *Font) Kerning(prev, cur rune) float32 {
	i, ok := f.index[keyFor(cur, f.cfg.outline)]
	if !ok {
		return 0
	}
	return f.glyphs[i].Kerning(prev)
}

// Reset drops every cached glyph and invalidates all handles, then places
// the special glyph again. Callers clear the atlas first; Reset on a full
// atlas leaves the Font in StateFailed.
func (f *Font) Reset() error {
	f.mustInit()
	f.glyphs = f.glyphs[:0]
	clear(f.index)
	f.gen++
	if f.gen == 0 {
		f.gen = 1
	}

	if _, err := f.loadSentinel(); err != nil {
		f.state = StateFailed
		return err
	}
	f.state = StateReady
	return nil
}

func (f *Font) add(g Glyph) Handle {
	i := int32(len(f.glyphs))
	f.glyphs = append(f.glyphs, g)
	f.index[keyFor(g.Codepoint, g.Outline)] = i
	return Handle{font: f.id, index: i, gen: f.gen}
}

// String returns a short description of the font.
func (f *Font) String() string {
	return fmt.Sprintf("Font(%s %gpt %s glyphs=%d)", f.src, f.size, f.cfg.outline, len(f.glyphs))
}
