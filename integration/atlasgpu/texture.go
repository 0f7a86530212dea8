// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package atlasgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/texatlas"
)

// Errors returned by Texture.
var (
	// ErrClosed is returned when a closed Texture is used.
	ErrClosed = errors.New("atlasgpu: texture is closed")

	// ErrNilCreator is returned when no texture creator is available.
	ErrNilCreator = errors.New("atlasgpu: nil TextureCreator")

	// ErrNotDrawable is returned when the created texture does not
	// implement gpucontext.Texture.
	ErrNotDrawable = errors.New("atlasgpu: texture does not implement gpucontext.Texture")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// createFunc creates a texture from premultiplied RGBA pixels.
type createFunc func(width, height int, data []byte) (any, error)

// Texture mirrors an atlas in a GPU texture.
type Texture struct {
	atlas      *texatlas.Atlas
	texture    any
	oldTexture any
	rgba       []byte
	uploads    int
	closed     bool
}

// New returns a Texture publishing atlas. No GPU work happens until the
// first Flush or RenderTo.
func New(atlas *texatlas.Atlas) *Texture {
	return &Texture{atlas: atlas}
}

// Atlas returns the published atlas.
func (t *Texture) Atlas() *texatlas.Atlas { return t.atlas }

// Texture returns the current GPU texture, or nil before the first upload.
func (t *Texture) Texture() any { return t.texture }

// Uploads returns how many times pixels were sent to the GPU.
func (t *Texture) Uploads() int { return t.uploads }

// Flush uploads the atlas if it changed since the last upload and returns
// the GPU texture.
func (t *Texture) Flush(creator gpucontext.TextureCreator) (any, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	return t.flush(func(width, height int, data []byte) (any, error) {
		return creator.NewTextureFromRGBA(width, height, data)
	})
}

func (t *Texture) flush(create createFunc) (any, error) {
	if t.closed {
		return nil, ErrClosed
	}
	if !t.atlas.Dirty() && t.texture != nil {
		return t.texture, nil
	}

	t.rgba = RGBA(t.atlas, t.rgba)

	if t.texture != nil {
		if updater, ok := t.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(t.rgba); err != nil {
				return nil, fmt.Errorf("atlasgpu: texture update failed: %w", err)
			}
			t.uploaded()
			return t.texture, nil
		}
		// No in-place update: recreate and destroy the old texture after
		// the new one exists.
		t.oldTexture = t.texture
		t.texture = nil
	}

	tex, err := create(t.atlas.Width(), t.atlas.Height(), t.rgba)
	if err != nil {
		return nil, fmt.Errorf("atlasgpu: NewTextureFromRGBA failed: %w", err)
	}
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	t.texture = tex
	t.destroyOld()
	t.uploaded()
	return tex, nil
}

func (t *Texture) uploaded() {
	t.uploads++
	t.atlas.MarkClean()
	texatlas.Logger().Debug("atlas uploaded",
		"width", t.atlas.Width(), "height", t.atlas.Height(),
		"depth", t.atlas.Depth(), "uploads", t.uploads)
}

func (t *Texture) destroyOld() {
	if t.oldTexture == nil {
		return
	}
	if destroyer, ok := t.oldTexture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	t.oldTexture = nil
}

// RenderTo uploads the atlas when needed and draws it at (x, y).
// It is mostly useful to inspect the atlas on screen.
func (t *Texture) RenderTo(dc gpucontext.TextureDrawer, x, y float32) error {
	if t.closed {
		return ErrClosed
	}
	tex, err := t.Flush(dc.TextureCreator())
	if err != nil {
		return err
	}
	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrNotDrawable
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// Close destroys the GPU texture. Close is idempotent.
func (t *Texture) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.destroyOld()
	if destroyer, ok := t.texture.(textureDestroyer); ok {
		destroyer.Destroy()
	}
	t.texture = nil
	t.rgba = nil
	return nil
}

// Format returns the texture format matching an atlas depth when the
// pixels are uploaded without expansion.
func Format(depth int) gputypes.TextureFormat {
	if depth == 1 {
		return gputypes.TextureFormatR8Unorm
	}
	return gputypes.TextureFormatRGBA8Unorm
}

// Usage returns the texture usage an atlas texture needs: sampled by
// shaders and updated by copies.
func Usage() gputypes.TextureUsage {
	return gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
}

// RGBA expands the atlas pixels to premultiplied RGBA, reusing dst when it
// is large enough.
func RGBA(a *texatlas.Atlas, dst []byte) []byte {
	n := a.Width() * a.Height()
	if cap(dst) < n*4 {
		dst = make([]byte, n*4)
	}
	dst = dst[:n*4]
	src := a.Pix()

	switch a.Depth() {
	case 1:
		for i, v := range src {
			dst[i*4+0] = v
			dst[i*4+1] = v
			dst[i*4+2] = v
			dst[i*4+3] = v
		}
	case 3:
		for i := 0; i < n; i++ {
			r, g, b := src[i*3], src[i*3+1], src[i*3+2]
			dst[i*4+0] = r
			dst[i*4+1] = g
			dst[i*4+2] = b
			dst[i*4+3] = max(r, g, b)
		}
	default:
		copy(dst, src)
	}
	return dst
}
