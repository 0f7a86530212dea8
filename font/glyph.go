package font

import "fmt"

// NoCodepoint is the codepoint of the special solid glyph.
const NoCodepoint rune = -1

// Kerning is the horizontal adjustment applied when Codepoint precedes the
// glyph holding it.
type Kerning struct {
	Codepoint rune
	Value     float32
}

// Glyph is a cached glyph record.
type Glyph struct {
	// Codepoint is the Unicode codepoint, or NoCodepoint.
	Codepoint rune

	// Outline is the style the glyph was rendered with.
	Outline Outline

	// Width and Height are the bitmap size in pixels.
	Width  int
	Height int

	// OffsetX is the distance from the pen position to the left edge of
	// the bitmap; OffsetY is the distance from the baseline up to its top.
	OffsetX int
	OffsetY int

	// AdvanceX and AdvanceY move the pen to the next glyph, in pixels.
	AdvanceX float32
	AdvanceY float32

	// S0, T0, S1, T1 are the normalized texture coordinates of the
	// bitmap's top-left and bottom-right corners in the atlas.
	S0, T0, S1, T1 float32

	// Kernings lists non-zero adjustments against preceding codepoints.
	Kernings []Kerning
}

// Kerning returns the adjustment to apply when prev precedes g.
// It is zero when no adjustment is recorded.
func (g Glyph) Kerning(prev rune) float32 {
	for _, k := range g.Kernings {
		if k.Codepoint == prev {
			return k.Value
		}
	}
	return 0
}

// String returns a short description of the glyph.
func (g Glyph) String() string {
	return fmt.Sprintf("Glyph(%U %s %dx%d)", g.Codepoint, g.Outline, g.Width, g.Height)
}

func (g Glyph) clone() Glyph {
	c := g
	if g.Kernings != nil {
		c.Kernings = append([]Kerning(nil), g.Kernings...)
	}
	return c
}

// Handle refers to a glyph record of the Font that issued it.
// The zero Handle is invalid.
type Handle struct {
	font  uint32
	index int32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// glyphKey identifies a glyph record.
type glyphKey struct {
	r         rune
	kind      OutlineKind
	thickness float32
}

func keyFor(r rune, o Outline) glyphKey {
	if r == NoCodepoint {
		return glyphKey{r: r}
	}
	return glyphKey{r: r, kind: o.Kind, thickness: o.Thickness}
}
