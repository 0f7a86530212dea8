// Package sfntraster is the default glyph rasterizer for package font.
//
// It parses TrueType and OpenType fonts with golang.org/x/image/font/sfnt,
// renders grayscale glyphs through golang.org/x/image/font/opentype and
// subpixel glyphs through the module's coverage renderer. Kerning comes
// from the legacy kern table; pairs it does not cover are measured by
// shaping them with github.com/go-text/typesetting, which applies GPOS
// pair adjustments.
//
// Importing the package registers its Rasterizer as the default:
//
//	import _ "github.com/gogpu/texatlas/font/sfntraster"
package sfntraster
