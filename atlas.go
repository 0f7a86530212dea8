package texatlas

import (
	"fmt"
	"image"
)

// Atlas is a fixed-size pixel surface with a skyline allocator.
//
// Regions handed out by Allocate never overlap and always lie strictly
// inside a 1-pixel border. They stay valid until Clear.
//
// Atlas is not safe for concurrent use.
type Atlas struct {
	width  int
	height int
	depth  int

	// pix holds width*height*depth bytes, rows top to bottom.
	pix []byte

	// nodes is the skyline: sorted by X, contiguous, covering [1, width-1).
	nodes []Node

	// used is the sum of allocated region areas.
	used int

	dirty bool
}

// New creates an atlas from the configuration.
func New(cfg Config) (*Atlas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Atlas{
		width:  cfg.Width,
		height: cfg.Height,
		depth:  cfg.Depth,
		pix:    make([]byte, cfg.Width*cfg.Height*cfg.Depth),
		nodes:  make([]Node, 0, 16),
	}
	a.reset()
	Logger().Debug("atlas created",
		"width", a.width, "height", a.height, "depth", a.depth)
	return a, nil
}

// MustNew is like New but panics on error.
func MustNew(width, height, depth int) *Atlas {
	a, err := New(Config{Width: width, Height: height, Depth: depth})
	if err != nil {
		panic(err)
	}
	return a
}

// reset seeds the skyline and marks the surface dirty. Pixels are not touched.
func (a *Atlas) reset() {
	a.nodes = append(a.nodes[:0], Node{X: 1, Y: 1, Width: a.width - 2})
	a.used = 0
	a.dirty = true
}

// Allocate reserves a width × height rectangle and returns its position.
//
// The rectangle is placed at the lowest available bottom edge; ties go to
// the narrowest starting span. NoRegion is returned when nothing fits or
// the size is not positive. Exhaustion is recoverable: Clear and retry.
func (a *Atlas) Allocate(width, height int) Region {
	if width <= 0 || height <= 0 {
		return NoRegion
	}

	best := -1
	bestBottom := int(^uint(0) >> 1)
	bestWidth := bestBottom
	region := Region{X: -1, Y: -1, Width: width, Height: height}

	for i := range a.nodes {
		y, ok := a.fit(i, width, height)
		if !ok {
			continue
		}
		n := a.nodes[i]
		if y+height < bestBottom || (y+height == bestBottom && n.Width < bestWidth) {
			best = i
			bestBottom = y + height
			bestWidth = n.Width
			region.X = n.X
			region.Y = y
		}
	}

	if best == -1 {
		Logger().Warn("atlas full",
			"width", width, "height", height,
			"atlas_width", a.width, "atlas_height", a.height,
			"used", a.used)
		return NoRegion
	}

	a.insert(best, Node{X: region.X, Y: region.Y + height, Width: width})
	a.merge()

	a.used += width * height
	a.dirty = true
	return region
}

// Write copies a width × height block of pixels into the surface at (x, y).
//
// pixels holds height rows of width*Depth bytes, each row starting stride
// bytes after the previous one. The target rectangle must lie inside the
// border; writing outside it or from a short buffer panics.
func (a *Atlas) Write(x, y, width, height int, pixels []byte, stride int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("texatlas: negative write size %dx%d", width, height))
	}
	if x <= 0 || y <= 0 || x+width > a.width-1 || y+height > a.height-1 {
		panic(fmt.Sprintf("texatlas: write %dx%d at (%d,%d) outside atlas interior %v",
			width, height, x, y, a.Bounds()))
	}
	if width == 0 || height == 0 {
		a.dirty = true
		return
	}
	if stride < 0 {
		panic(fmt.Sprintf("texatlas: negative stride %d", stride))
	}
	rowBytes := width * a.depth
	if need := (height-1)*stride + rowBytes; len(pixels) < need {
		panic(fmt.Sprintf("texatlas: write source has %d bytes, need %d", len(pixels), need))
	}

	dstStride := a.width * a.depth
	for row := 0; row < height; row++ {
		dst := (y+row)*dstStride + x*a.depth
		src := row * stride
		copy(a.pix[dst:dst+rowBytes], pixels[src:src+rowBytes])
	}
	a.dirty = true
}

// Clear drops every allocation and zeroes the surface.
// Regions returned before Clear must not be used afterwards.
func (a *Atlas) Clear() {
	a.reset()
	clear(a.pix)
	Logger().Debug("atlas cleared", "width", a.width, "height", a.height)
}

// Width returns the surface width in pixels.
func (a *Atlas) Width() int { return a.width }

// Height returns the surface height in pixels.
func (a *Atlas) Height() int { return a.height }

// Depth returns the number of bytes per pixel.
func (a *Atlas) Depth() int { return a.depth }

// Pix returns the live pixel buffer. Callers must not modify it.
func (a *Atlas) Pix() []byte { return a.pix }

// Stride returns the number of bytes per surface row.
func (a *Atlas) Stride() int { return a.width * a.depth }

// Used returns the total area of allocated regions in pixels.
func (a *Atlas) Used() int { return a.used }

// Utilization returns the fraction of the interior covered by allocations.
func (a *Atlas) Utilization() float64 {
	interior := (a.width - 2) * (a.height - 2)
	return float64(a.used) / float64(interior)
}

// Nodes returns a copy of the current skyline.
func (a *Atlas) Nodes() []Node {
	out := make([]Node, len(a.nodes))
	copy(out, a.nodes)
	return out
}

// Dirty reports whether the surface changed since the last MarkClean.
func (a *Atlas) Dirty() bool { return a.dirty }

// MarkClean clears the dirty flag, typically after an upload.
func (a *Atlas) MarkClean() { a.dirty = false }

// Bounds returns the interior rectangle available to allocations.
func (a *Atlas) Bounds() image.Rectangle {
	return image.Rect(1, 1, a.width-1, a.height-1)
}

// Image returns a copy of the surface as an image.
//
// Depth 1 yields *image.Gray, depth 4 yields *image.RGBA and depth 3 is
// expanded to an opaque *image.RGBA.
func (a *Atlas) Image() image.Image {
	rect := image.Rect(0, 0, a.width, a.height)
	switch a.depth {
	case 1:
		img := image.NewGray(rect)
		copy(img.Pix, a.pix)
		return img
	case 4:
		img := image.NewRGBA(rect)
		copy(img.Pix, a.pix)
		return img
	default:
		img := image.NewRGBA(rect)
		for i, j := 0, 0; i+2 < len(a.pix); i, j = i+3, j+4 {
			img.Pix[j+0] = a.pix[i+0]
			img.Pix[j+1] = a.pix[i+1]
			img.Pix[j+2] = a.pix[i+2]
			img.Pix[j+3] = 0xff
		}
		return img
	}
}

// String returns a short description of the atlas.
func (a *Atlas) String() string {
	return fmt.Sprintf("Atlas(%dx%dx%d, used=%d, nodes=%d)",
		a.width, a.height, a.depth, a.used, len(a.nodes))
}
