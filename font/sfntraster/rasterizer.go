package sfntraster

import (
	"fmt"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/texatlas/font"
)

// Name is the registry name of the rasterizer.
const Name = "sfnt"

func init() {
	font.RegisterRasterizer(Name, New())
}

var _ font.Rasterizer = (*Rasterizer)(nil)

// Rasterizer opens sfnt sessions. The zero value is ready to use.
type Rasterizer struct{}

// New returns a Rasterizer.
func New() *Rasterizer {
	return &Rasterizer{}
}

// Open parses src and prepares faces at size pixels per em.
func (r *Rasterizer) Open(src font.Source, size float64) (font.Session, error) {
	data, err := readSource(src)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sfntraster: parse %s: %w", src, err)
	}

	s := &session{
		data: data,
		font: f,
		size: size,
		ppem: fixed.Int26_6(size * 64),
	}
	if _, err := f.GlyphIndex(&s.buf, 'A'); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoCharmap, err)
	}

	m, err := f.Metrics(&s.buf, s.ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("sfntraster: metrics: %w", err)
	}
	s.metrics = font.FaceMetrics{
		Ascender:  fixedToFloat(m.Ascent),
		Descender: -fixedToFloat(m.Descent),
		Height:    fixedToFloat(m.Height),
	}
	if post := f.PostTable(); post != nil {
		scale := size / float64(f.UnitsPerEm())
		s.metrics.UnderlinePosition = float32(float64(post.UnderlinePosition) * scale)
		s.metrics.UnderlineThickness = float32(float64(post.UnderlineThickness) * scale)
	}
	return s, nil
}

// readSource returns the font bytes of src.
func readSource(src font.Source) ([]byte, error) {
	var data []byte
	switch s := src.(type) {
	case font.FileSource:
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("sfntraster: %w", err)
		}
		data = b
	case font.MemorySource:
		data = s.Data
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return data, nil
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// glyphIndex maps r to a glyph; unmapped runes fall back to .notdef.
func (s *session) glyphIndex(r rune) (sfnt.GlyphIndex, error) {
	return s.font.GlyphIndex(&s.buf, r)
}
