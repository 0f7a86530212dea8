package sfntraster

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/texatlas/font"
	"github.com/gogpu/texatlas/internal/mask"
)

var _ font.Session = (*session)(nil)

// session renders glyphs of one parsed font at one size.
type session struct {
	data []byte
	font *sfnt.Font
	buf  sfnt.Buffer
	size float64
	ppem fixed.Int26_6

	metrics font.FaceMetrics

	// Faces by hinting, created on first use.
	hinted   xfont.Face
	unhinted xfont.Face

	// Shaping state for GPOS kerning, created on first use.
	shaper  *shaping.HarfbuzzShaper
	shape   shapeState
	singles map[rune]fixed.Int26_6

	closed bool
}

func (s *session) Metrics() font.FaceMetrics { return s.metrics }

func (s *session) Bitmap(r rune, opts font.RenderOptions) (font.Bitmap, error) {
	if s.closed {
		return font.Bitmap{}, ErrClosed
	}
	switch opts.Depth {
	case 1, 4:
	case 3:
		return s.subpixel(r, opts)
	default:
		return font.Bitmap{}, fmt.Errorf("%w: %d", ErrUnsupportedDepth, opts.Depth)
	}

	face, err := s.face(opts.Hinting)
	if err != nil {
		return font.Bitmap{}, err
	}
	dr, m, mp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return font.Bitmap{}, fmt.Errorf("%w: %U", ErrGlyphRender, r)
	}
	if dr.Empty() {
		return font.Bitmap{Left: dr.Min.X, Top: -dr.Min.Y}, nil
	}

	alpha, isAlpha := m.(*image.Alpha)
	if !isAlpha {
		alpha = image.NewAlpha(image.Rectangle{Min: mp, Max: mp.Add(dr.Size())})
		draw.Draw(alpha, alpha.Bounds(), m, mp, draw.Src)
	}
	cov := mask.FromAlpha(alpha, image.Rectangle{Min: mp, Max: mp.Add(dr.Size())}, dr)
	return toBitmap(cov.Expand(opts.Depth)), nil
}

// subpixel renders r at three samples per pixel for an RGB atlas.
func (s *session) subpixel(r rune, opts font.RenderOptions) (font.Bitmap, error) {
	segs, err := s.Outline(r, opts)
	if err != nil {
		return font.Bitmap{}, err
	}
	cov := mask.Render(segs, mask.Options{
		Mode:     mask.ModeFill,
		Subpixel: true,
		Filter:   opts.LCDFilter,
		Weights:  opts.LCDWeights,
	})
	return toBitmap(cov), nil
}

func (s *session) Outline(r rune, _ font.RenderOptions) (sfnt.Segments, error) {
	if s.closed {
		return nil, ErrClosed
	}
	idx, err := s.glyphIndex(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %U: %w", ErrGlyphRender, r, err)
	}
	segs, err := s.font.LoadGlyph(&s.buf, idx, s.ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %U: %w", ErrGlyphRender, r, err)
	}
	// segs aliases s.buf and is overwritten by the next call.
	return append(sfnt.Segments(nil), segs...), nil
}

func (s *session) Advance(r rune) (x, y float32, err error) {
	if s.closed {
		return 0, 0, ErrClosed
	}
	idx, err := s.glyphIndex(r)
	if err != nil {
		return 0, 0, err
	}
	adv, err := s.font.GlyphAdvance(&s.buf, idx, s.ppem, xfont.HintingNone)
	if err != nil {
		return 0, 0, err
	}
	return fixedToFloat(adv), 0, nil
}

func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var err error
	for _, f := range []xfont.Face{s.hinted, s.unhinted} {
		if f != nil {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}
	s.hinted, s.unhinted = nil, nil
	return err
}

// face returns the opentype face for the hinting mode.
func (s *session) face(hinting bool) (xfont.Face, error) {
	slot, mode := &s.unhinted, xfont.HintingNone
	if hinting {
		slot, mode = &s.hinted, xfont.HintingFull
	}
	if *slot != nil {
		return *slot, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    s.size,
		DPI:     72,
		Hinting: mode,
	})
	if err != nil {
		return nil, fmt.Errorf("sfntraster: face: %w", err)
	}
	*slot = f
	return f, nil
}

func toBitmap(c mask.Coverage) font.Bitmap {
	return font.Bitmap{
		Pix:    c.Pix,
		Stride: c.Stride,
		Width:  c.Width,
		Height: c.Height,
		Left:   c.Left,
		Top:    c.Top,
	}
}
