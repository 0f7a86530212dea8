package sfntraster

import (
	"bytes"
	"errors"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/texatlas"
)

// shapeState holds the go-text face used for GPOS kerning.
type shapeState struct {
	face  *gtfont.Face
	err   error
	tried bool
}

// Kerning returns the horizontal adjustment in pixels when left precedes
// right. The kern table answers first; a zero there is confirmed by
// shaping the pair, which applies GPOS kerning.
func (s *session) Kerning(left, right rune) (float32, error) {
	if s.closed {
		return 0, ErrClosed
	}
	li, err := s.glyphIndex(left)
	if err != nil {
		return 0, err
	}
	ri, err := s.glyphIndex(right)
	if err != nil {
		return 0, err
	}
	if li == 0 || ri == 0 {
		return 0, nil
	}

	k, err := s.font.Kern(&s.buf, li, ri, s.ppem, xfont.HintingNone)
	if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
		return 0, err
	}
	if k != 0 {
		return fixedToFloat(k), nil
	}
	return s.shapedKerning(left, right), nil
}

// shapedKerning measures the pair adjustment as the change in the left
// glyph's advance when it is shaped next to right.
func (s *session) shapedKerning(left, right rune) float32 {
	face := s.shapingFace()
	if face == nil {
		return 0
	}
	pair := s.shapeRunes(face, []rune{left, right})
	if len(pair) != 2 {
		// Ligature or reordering: no simple pair adjustment.
		return 0
	}

	if s.singles == nil {
		s.singles = make(map[rune]fixed.Int26_6)
	}
	single, ok := s.singles[left]
	if !ok {
		out := s.shapeRunes(face, []rune{left})
		if len(out) != 1 {
			return 0
		}
		single = out[0].Advance
		s.singles[left] = single
	}
	return fixedToFloat(pair[0].Advance - single)
}

// shapingFace parses the font for go-text once per session.
func (s *session) shapingFace() *gtfont.Face {
	if !s.shape.tried {
		s.shape.tried = true
		face, err := gtfont.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.shape.err = err
			texatlas.Logger().Debug("gpos kerning unavailable", "err", err)
		} else {
			s.shape.face = face
		}
	}
	return s.shape.face
}

func (s *session) shapeRunes(face *gtfont.Face, runes []rune) []shaping.Glyph {
	if s.shaper == nil {
		s.shaper = &shaping.HarfbuzzShaper{}
	}
	out := s.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      s.ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	return out.Glyphs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
