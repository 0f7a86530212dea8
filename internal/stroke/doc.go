// Package stroke expands glyph outlines into filled stroke polygons.
//
// A stroke is built as a union of simple convex pieces:
//   - one quadrilateral per flattened segment (the segment body)
//   - one join piece per interior vertex
//   - one cap piece per open end
//
// Every piece is emitted with positive orientation, so a coverage
// rasterizer that accumulates signed area and clamps to [0, 1] renders
// their union without any polygon clipping.
//
// # Line Caps
//
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: Sharp corner (limited by miter limit)
//   - LineJoinRound: Circular arc at corners
//   - LineJoinBevel: Straight line across the corner
//
// # Usage
//
//	e := stroke.NewExpander(stroke.GlyphStyle(1.5))
//	e.SetTolerance(0.1)
//	polys := e.ExpandSegments(outline) // outline is sfnt.Segments
package stroke
