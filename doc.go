// Package texatlas packs small rectangular bitmaps into a single fixed-size
// pixel buffer (a texture atlas) so a renderer can draw many glyphs with one
// texture bind.
//
// # Overview
//
// An [Atlas] owns a width × height × depth byte surface and a skyline profile
// of the regions placed so far. [Atlas.Allocate] finds the lowest, then
// tightest, position for a new rectangle using the skyline bottom-left
// heuristic; [Atlas.Write] copies pixels into a granted region; [Atlas.Clear]
// drops every allocation at once. Individual regions are never freed.
//
// A permanent 1-pixel transparent border surrounds all allocations so that
// bilinear sampling never bleeds between the surface edge and a glyph.
//
// # Quick Start
//
//	atlas := texatlas.MustNew(512, 512, 1)
//
//	r := atlas.Allocate(20, 20)
//	if !r.IsValid() {
//	    // atlas exhausted: Clear and retry, or use a larger atlas
//	}
//	atlas.Write(r.X, r.Y, r.Width, r.Height, pixels, stride)
//
//	if atlas.Dirty() {
//	    upload(atlas.Pix())
//	    atlas.MarkClean()
//	}
//
// Glyph caching on top of the atlas lives in package font; GPU upload
// helpers live in package integration/atlasgpu.
//
// # Concurrency
//
// Atlas is not safe for concurrent use. Allocation and write calls must be
// serialized by the caller; sampling an uploaded texture can be shared.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel of the surface, X increases right and
// Y increases down. Rows are stored top to bottom, Width*Depth bytes each.
package texatlas
