// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package atlasgpu uploads a texatlas.Atlas to a gogpu GPU texture.
//
// The data flow is:
//
//	font.Font (load glyphs) -> texatlas.Atlas (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	tex := atlasgpu.New(atlas)
//	defer tex.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    f.LoadText(label)
//	    tex.RenderTo(dc.AsTextureDrawer(), 0, 0)
//	})
//
// Uploads happen only when the atlas is dirty. The first upload creates the
// texture; later uploads update it in place when the texture supports
// gpucontext.TextureUpdater and recreate it otherwise.
//
// Atlas pixels are expanded to premultiplied RGBA: a depth 1 atlas becomes
// white with coverage alpha, a depth 3 atlas keeps its subpixel channels
// with the strongest one as alpha.
//
// # Thread Safety
//
// Texture is NOT safe for concurrent use, like the atlas it publishes.
package atlasgpu
