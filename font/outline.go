package font

import (
	"fmt"
	"math"
)

// OutlineKind selects how a glyph is drawn.
type OutlineKind uint8

const (
	// OutlineNone draws the filled glyph.
	OutlineNone OutlineKind = iota

	// OutlineLine draws a line along the glyph outline.
	OutlineLine

	// OutlineInner draws the glyph shrunk by the outline thickness.
	OutlineInner

	// OutlineOuter draws the glyph grown by the outline thickness.
	OutlineOuter
)

// String returns the string representation of the outline kind.
func (k OutlineKind) String() string {
	switch k {
	case OutlineNone:
		return "None"
	case OutlineLine:
		return "Line"
	case OutlineInner:
		return "Inner"
	case OutlineOuter:
		return "Outer"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// Outline is the outline style used when rasterizing glyphs.
// Thickness is in pixels and is always zero for OutlineNone.
type Outline struct {
	Kind      OutlineKind
	Thickness float32
}

// NoOutline returns the style for plain filled glyphs.
func NoOutline() Outline { return Outline{} }

// LineOutline returns a style drawing only the outline, thickness pixels
// on each side of it.
func LineOutline(thickness float32) Outline {
	return Outline{Kind: OutlineLine, Thickness: thickness}.normalize()
}

// InnerOutline returns a style drawing the glyph eroded by thickness.
func InnerOutline(thickness float32) Outline {
	return Outline{Kind: OutlineInner, Thickness: thickness}.normalize()
}

// OuterOutline returns a style drawing the glyph dilated by thickness.
func OuterOutline(thickness float32) Outline {
	return Outline{Kind: OutlineOuter, Thickness: thickness}.normalize()
}

// normalize clears the thickness of OutlineNone and clamps negative or
// non-finite values to zero. NaN would otherwise never match a cache key.
func (o Outline) normalize() Outline {
	t := float64(o.Thickness)
	if o.Kind == OutlineNone || o.Thickness < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		o.Thickness = 0
	}
	return o
}

// String returns a string representation of the outline.
func (o Outline) String() string {
	if o.Kind == OutlineNone {
		return o.Kind.String()
	}
	return fmt.Sprintf("%s(%g)", o.Kind, o.Thickness)
}
