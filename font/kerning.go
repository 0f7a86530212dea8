package font

import "github.com/gogpu/texatlas"

// generateKerning rebuilds the kerning list of every cached glyph against
// every other cached codepoint. Only non-zero adjustments are kept.
func (f *Font) generateKerning(sess Session) {
	if !f.cfg.kerning {
		for i := range f.glyphs {
			f.glyphs[i].Kernings = nil
		}
		return
	}

	codepoints := f.codepoints()
	for i := range f.glyphs {
		g := &f.glyphs[i]
		if g.Codepoint == NoCodepoint {
			continue
		}
		g.Kernings = g.Kernings[:0]
		for _, prev := range codepoints {
			if prev == g.Codepoint {
				continue
			}
			if v := f.pairKerning(sess, prev, g.Codepoint); v != 0 {
				g.Kernings = append(g.Kernings, Kerning{Codepoint: prev, Value: v})
			}
		}
	}
}

// codepoints returns the distinct cached codepoints, the special glyph excluded.
func (f *Font) codepoints() []rune {
	seen := make(map[rune]struct{}, len(f.glyphs))
	out := make([]rune, 0, len(f.glyphs))
	for i := range f.glyphs {
		r := f.glyphs[i].Codepoint
		if r == NoCodepoint {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func (f *Font) pairKerning(sess Session, left, right rune) float32 {
	key := [2]rune{left, right}
	if v, ok := f.pairs.Get(key); ok {
		return v
	}
	v, err := sess.Kerning(left, right)
	if err != nil {
		texatlas.Logger().Debug("kerning lookup failed",
			"left", string(left), "right", string(right), "err", err)
		return 0
	}
	f.pairs.Put(key, v)
	return v
}
