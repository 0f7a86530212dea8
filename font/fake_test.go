package font

import (
	"errors"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var errBoom = errors.New("boom")

// fakeRasterizer renders every glyph as a solid block whose pixels hold the
// low byte of the codepoint.
type fakeRasterizer struct {
	metrics   FaceMetrics
	sizes     map[rune][2]int
	fail      map[rune]error
	shortPix  map[rune]bool
	kern      map[[2]rune]float32
	openErr   error
	opens     int
	closes    int
	bitmaps   int
	outlines  int
	kernCalls [][2]rune
	lastOpts  RenderOptions
}

func newFake() *fakeRasterizer {
	return &fakeRasterizer{
		metrics: FaceMetrics{
			Ascender:           12,
			Descender:          -4,
			Height:             18,
			UnderlinePosition:  -3.4,
			UnderlineThickness: 1.6,
		},
		sizes:    map[rune][2]int{},
		fail:     map[rune]error{},
		shortPix: map[rune]bool{},
		kern:     map[[2]rune]float32{},
	}
}

func (r *fakeRasterizer) Open(Source, float64) (Session, error) {
	r.opens++
	if r.openErr != nil {
		return nil, r.openErr
	}
	return &fakeSession{r: r}, nil
}

func (r *fakeRasterizer) size(c rune) (int, int) {
	if s, ok := r.sizes[c]; ok {
		return s[0], s[1]
	}
	return 4, 6
}

type fakeSession struct {
	r *fakeRasterizer
}

func (s *fakeSession) Metrics() FaceMetrics { return s.r.metrics }

func (s *fakeSession) Bitmap(c rune, opts RenderOptions) (Bitmap, error) {
	s.r.bitmaps++
	s.r.lastOpts = opts
	if err := s.r.fail[c]; err != nil {
		return Bitmap{}, err
	}
	w, h := s.r.size(c)
	pix := make([]byte, w*h*opts.Depth)
	for i := range pix {
		pix[i] = byte(c)
	}
	if s.r.shortPix[c] {
		pix = pix[:len(pix)/2]
	}
	return Bitmap{Pix: pix, Stride: w * opts.Depth, Width: w, Height: h, Left: 1, Top: h}, nil
}

func (s *fakeSession) Outline(c rune, opts RenderOptions) (sfnt.Segments, error) {
	s.r.outlines++
	s.r.lastOpts = opts
	if err := s.r.fail[c]; err != nil {
		return nil, err
	}
	w, h := s.r.size(c)
	p := func(x, y int) fixed.Point26_6 { return fixed.P(x, y) }
	corners := []fixed.Point26_6{p(0, -h), p(w, -h), p(w, 0), p(0, 0), p(0, -h)}
	segs := make(sfnt.Segments, len(corners))
	for i, pt := range corners {
		segs[i].Op = sfnt.SegmentOpLineTo
		segs[i].Args[0] = pt
	}
	segs[0].Op = sfnt.SegmentOpMoveTo
	return segs, nil
}

func (s *fakeSession) Advance(c rune) (float32, float32, error) {
	w, _ := s.r.size(c)
	return float32(w + 2), 0, nil
}

func (s *fakeSession) Kerning(left, right rune) (float32, error) {
	s.r.kernCalls = append(s.r.kernCalls, [2]rune{left, right})
	return s.r.kern[[2]rune{left, right}], nil
}

func (s *fakeSession) Close() error {
	s.r.closes++
	return nil
}
