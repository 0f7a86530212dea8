// Package font caches rasterized glyphs inside a texatlas.Atlas.
//
// A [Font] binds one font source at one size to an atlas. Looking up a
// codepoint either returns the cached glyph record or rasterizes the glyph,
// packs its bitmap into the atlas and records its metrics and normalized
// texture coordinates. Glyph records are keyed by codepoint and outline
// style, so the same codepoint can be cached once per outline.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/texatlas"
//	    "github.com/gogpu/texatlas/font"
//	    _ "github.com/gogpu/texatlas/font/sfntraster" // default rasterizer
//	)
//
//	atlas := texatlas.MustNew(512, 512, 1)
//	f, err := font.NewFromFile(atlas, "Roboto-Regular.ttf", 16)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	missed, err := f.LoadText("Hello, World!")
//
//	h, err := f.Lookup('H')
//	g, _ := f.Glyph(h)
//	// g.S0, g.T0, g.S1, g.T1 locate the glyph in the atlas texture.
//
// # Handles
//
// Lookup returns a [Handle] rather than a pointer. A handle stays valid
// until the next [Font.Reset]; afterwards [Font.Glyph] reports it as stale.
//
// # Special Glyph
//
// The codepoint [NoCodepoint] maps to a small opaque square used to draw
// solid quads such as underlines and backgrounds. It is created when the
// Font is constructed and after every Reset.
//
// # Concurrency
//
// Font is not safe for concurrent use. It shares its atlas with any other
// Font bound to it, so all of them must be used from one goroutine.
package font
