// Package mask renders glyph outlines into coverage bitmaps.
//
// Outlines arrive as sfnt.Segments in pixel units (26.6 fixed point) with
// Y growing downwards, exactly as produced by sfnt.Font.LoadGlyph.
// Coverage is computed with golang.org/x/image/vector.
//
// Four modes are supported:
//   - ModeFill: the glyph itself
//   - ModeStroke: a line following the glyph outline
//   - ModeInner: the glyph eroded by the stroke
//   - ModeOuter: the glyph dilated by the stroke
//
// Subpixel rendering samples three times per pixel horizontally and runs
// the 5-tap LCD filter over the samples; each output pixel then carries
// one coverage byte per colour channel.
package mask
