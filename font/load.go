package font

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/texatlas"
	"github.com/gogpu/texatlas/internal/mask"
	"github.com/gogpu/texatlas/internal/stroke"
)

// Sizes of the special glyph: a 4x4 opaque block inside a 5x5 region.
const (
	sentinelRegion = 5
	sentinelBlock  = 4
)

// Lookup returns the glyph for r in the current outline style, loading it
// on a cache miss.
//
// Looking up NoCodepoint returns the special solid glyph. A glyph that
// cannot be stored yields ErrAtlasFull or the rasterizer error wrapped in
// a *GlyphError.
func (f *Font) Lookup(r rune) (Handle, error) {
	f.mustInit()
	if h, ok := f.Find(r); ok {
		f.stats.Hits++
		return h, nil
	}
	f.stats.Misses++

	if r == NoCodepoint {
		return f.loadSentinel()
	}

	missed, err := f.LoadGlyphs([]rune{r})
	if h, ok := f.Find(r); ok {
		return h, nil
	}
	switch {
	case err != nil:
		return Handle{}, err
	case missed > 0:
		return Handle{}, fmt.Errorf("font: glyph %U: %w", r, ErrAtlasFull)
	default:
		return Handle{}, fmt.Errorf("font: glyph %U: %w", r, ErrGlyphNotLoaded)
	}
}

// LoadText loads every rune of s after NFC normalization.
// See LoadGlyphs for the results.
func (f *Font) LoadText(s string) (missed int, err error) {
	s = norm.NFC.String(s)
	runes := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		runes = append(runes, r)
	}
	return f.LoadGlyphs(runes)
}

// LoadGlyphs rasterizes and caches every rune of runes that is not cached
// yet in the current outline style.
//
// It returns the number of runes that could not be cached. Atlas
// exhaustion only increments the count; rasterizer failures are also
// returned, joined, as *GlyphError values. The batch always continues
// past a failed glyph. Kerning tables are regenerated once at the end.
func (f *Font) LoadGlyphs(runes []rune) (missed int, err error) {
	f.mustInit()

	pending := f.pending(runes)
	if len(pending) == 0 {
		return 0, nil
	}

	var errs []error
	if pending[0] == NoCodepoint {
		pending = pending[1:]
		if _, err := f.loadSentinel(); err != nil {
			missed++
			if !errors.Is(err, ErrAtlasFull) {
				errs = append(errs, err)
			}
		}
		if len(pending) == 0 {
			return missed, errors.Join(errs...)
		}
	}

	sess, err := f.rasterizer.Open(f.src, f.size)
	if err != nil {
		missed += len(pending)
		f.stats.Missed += uint64(len(pending))
		texatlas.Logger().Warn("font session failed",
			"source", f.src.String(), "glyphs", len(pending), "err", err)
		errs = append(errs, fmt.Errorf("font: open %s: %w", f.src, err))
		return missed, errors.Join(errs...)
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("font: close %s: %w", f.src, cerr))
		}
	}()

	loaded := 0
	for _, r := range pending {
		if r < 0 || r > utf8.MaxRune {
			missed++
			f.stats.Missed++
			errs = append(errs, &GlyphError{Rune: r, Err: ErrInvalidRune})
			continue
		}
		if gerr := f.loadGlyph(sess, r); gerr != nil {
			missed++
			f.stats.Missed++
			if !errors.Is(gerr, ErrAtlasFull) {
				errs = append(errs, &GlyphError{Rune: r, Err: gerr})
				texatlas.Logger().Warn("glyph failed", "rune", string(r), "err", gerr)
			}
			continue
		}
		loaded++
	}

	f.generateKerning(sess)

	texatlas.Logger().Debug("glyph batch loaded",
		"requested", len(runes), "loaded", loaded, "missed", missed,
		"outline", f.cfg.outline.String())
	return missed, errors.Join(errs...)
}

// pending returns the distinct runes of runes that are not cached,
// keeping their order; NoCodepoint, when present, is moved first.
func (f *Font) pending(runes []rune) []rune {
	seen := make(map[rune]struct{}, len(runes))
	out := make([]rune, 0, len(runes))
	sentinel := false
	for _, r := range runes {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if _, ok := f.Find(r); ok {
			continue
		}
		if r == NoCodepoint {
			sentinel = true
			continue
		}
		out = append(out, r)
	}
	if sentinel {
		out = append([]rune{NoCodepoint}, out...)
	}
	return out
}

// loadGlyph renders r, stores it in the atlas and records it.
func (f *Font) loadGlyph(sess Session, r rune) error {
	depth := f.atlas.Depth()
	bm, err := f.render(sess, r, depth)
	if err != nil {
		return err
	}
	if !bm.valid(depth) {
		return ErrBadBitmap
	}

	ax, ay, err := sess.Advance(r)
	if err != nil {
		return err
	}

	// One spare column and row keep neighbouring glyphs from bleeding.
	w, h := bm.Width, bm.Height
	region := f.atlas.Allocate(w+1, h+1)
	if !region.IsValid() {
		texatlas.Logger().Warn("glyph skipped, atlas full",
			"rune", string(r), "width", w, "height", h)
		return ErrAtlasFull
	}
	f.atlas.Write(region.X, region.Y, w, h, bm.Pix, bm.Stride)

	aw, ah := float32(f.atlas.Width()), float32(f.atlas.Height())
	f.add(Glyph{
		Codepoint: r,
		Outline:   f.cfg.outline,
		Width:     w,
		Height:    h,
		OffsetX:   bm.Left,
		OffsetY:   bm.Top,
		AdvanceX:  ax,
		AdvanceY:  ay,
		S0:        float32(region.X) / aw,
		T0:        float32(region.Y) / ah,
		S1:        float32(region.X+w) / aw,
		T1:        float32(region.Y+h) / ah,
	})
	f.stats.Rasterized++
	return nil
}

func (f *Font) renderOptions(depth int) RenderOptions {
	return RenderOptions{
		Depth:      depth,
		Hinting:    f.cfg.hinting,
		LCDFilter:  f.cfg.lcdFilter,
		LCDWeights: f.cfg.lcdWeights,
	}
}

// render produces the bitmap of r in the current outline style.
func (f *Font) render(sess Session, r rune, depth int) (Bitmap, error) {
	opts := f.renderOptions(depth)
	o := f.cfg.outline
	if o.Kind == OutlineNone {
		return sess.Bitmap(r, opts)
	}

	segs, err := sess.Outline(r, opts)
	if err != nil {
		return Bitmap{}, err
	}
	cov := mask.Render(segs, mask.Options{
		Mode:      maskMode(o.Kind),
		Stroke:    stroke.GlyphStyle(float64(o.Thickness)),
		Tolerance: f.cfg.strokeTolerance,
		Subpixel:  depth == 3,
		Filter:    f.cfg.lcdFilter,
		Weights:   f.cfg.lcdWeights,
	}).Expand(depth)
	return Bitmap{
		Pix:    cov.Pix,
		Stride: cov.Stride,
		Width:  cov.Width,
		Height: cov.Height,
		Left:   cov.Left,
		Top:    cov.Top,
	}, nil
}

func maskMode(k OutlineKind) mask.Mode {
	switch k {
	case OutlineLine:
		return mask.ModeStroke
	case OutlineInner:
		return mask.ModeInner
	case OutlineOuter:
		return mask.ModeOuter
	default:
		return mask.ModeFill
	}
}

// loadSentinel places the special solid glyph.
func (f *Font) loadSentinel() (Handle, error) {
	if h, ok := f.Find(NoCodepoint); ok {
		return h, nil
	}
	region := f.atlas.Allocate(sentinelRegion, sentinelRegion)
	if !region.IsValid() {
		texatlas.Logger().Warn("special glyph skipped, atlas full")
		f.stats.Missed++
		return Handle{}, fmt.Errorf("font: special glyph: %w", ErrAtlasFull)
	}

	row := make([]byte, sentinelBlock*f.atlas.Depth())
	for i := range row {
		row[i] = 0xff
	}
	f.atlas.Write(region.X, region.Y, sentinelBlock, sentinelBlock, row, 0)

	aw, ah := float32(f.atlas.Width()), float32(f.atlas.Height())
	h := f.add(Glyph{
		Codepoint: NoCodepoint,
		S0:        float32(region.X+2) / aw,
		T0:        float32(region.Y+2) / ah,
		S1:        float32(region.X+3) / aw,
		T1:        float32(region.Y+3) / ah,
	})
	if f.state == StateFailed {
		f.state = StateReady
	}
	return h, nil
}
