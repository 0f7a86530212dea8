package mask

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/texatlas/internal/stroke"
)

// Mode selects what part of an outline is covered.
type Mode int

const (
	// ModeFill covers the inside of the outline.
	ModeFill Mode = iota
	// ModeStroke covers a band of the stroke width centred on the outline.
	ModeStroke
	// ModeInner covers the inside of the outline minus the stroke band.
	ModeInner
	// ModeOuter covers the inside of the outline plus the stroke band.
	ModeOuter
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFill:
		return "Fill"
	case ModeStroke:
		return "Stroke"
	case ModeInner:
		return "Inner"
	case ModeOuter:
		return "Outer"
	default:
		return "Unknown"
	}
}

// LCD filter weights. Each set sums to 0x100.
var (
	DefaultLCDWeights = [5]byte{0x10, 0x40, 0x70, 0x40, 0x10}
	LightLCDWeights   = [5]byte{0x00, 0x55, 0x56, 0x55, 0x00}
)

// Options configures Render.
type Options struct {
	Mode Mode

	// Stroke is used by every mode except ModeFill.
	Stroke stroke.Style

	// Tolerance is the curve flattening tolerance for stroking, in pixels.
	Tolerance float64

	// Subpixel renders three horizontal samples per pixel.
	Subpixel bool

	// Filter applies Weights to subpixel samples. When false the light
	// filter is used, so colour fringes stay bounded.
	Filter  bool
	Weights [5]byte
}

// Coverage is a rendered glyph bitmap.
type Coverage struct {
	// Pix holds Height rows of Width*Channels bytes, Stride bytes apart.
	Pix    []byte
	Stride int

	Width    int
	Height   int
	Channels int

	// Left is the distance from the pen position to the leftmost column.
	// Top is the distance from the baseline up to the topmost row.
	Left int
	Top  int
}

// Empty reports whether the coverage has no pixels.
func (c Coverage) Empty() bool {
	return c.Width == 0 || c.Height == 0
}

// Render rasterizes segs according to opts.
// Outlines without any drawing segment produce an empty Coverage.
func Render(segs sfnt.Segments, opts Options) Coverage {
	channels := 1
	scale := 1
	if opts.Subpixel {
		channels = 3
		scale = 3
	}
	if !hasInk(segs) {
		return Coverage{Channels: channels}
	}

	fb := segs.Bounds()
	minX, minY := float64(fb.Min.X)/64, float64(fb.Min.Y)/64
	maxX, maxY := float64(fb.Max.X)/64, float64(fb.Max.Y)/64

	pad := 0.0
	if opts.Mode == ModeStroke || opts.Mode == ModeOuter {
		pad = strokePad(opts.Stroke)
	}
	padX := pad
	if opts.Subpixel {
		padX++
	}

	x0 := int(math.Floor(minX - padX))
	y0 := int(math.Floor(minY - pad))
	x1 := int(math.Ceil(maxX + padX))
	y1 := int(math.Ceil(maxY + pad))
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return Coverage{Channels: channels}
	}

	t := transform{dx: float64(-x0), dy: float64(-y0), sx: float64(scale)}
	rw := w * scale

	var z vector.Rasterizer
	var pix []byte
	switch opts.Mode {
	case ModeStroke:
		pix = fillPolygons(&z, rw, h, t, expand(segs, opts))
	case ModeInner:
		fill := fillSegments(&z, rw, h, t, segs)
		band := fillPolygons(&z, rw, h, t, expand(segs, opts))
		for i := range fill {
			fill[i] = byte(int(fill[i]) * (255 - int(band[i])) / 255)
		}
		pix = fill
	case ModeOuter:
		fill := fillSegments(&z, rw, h, t, segs)
		band := fillPolygons(&z, rw, h, t, expand(segs, opts))
		for i := range fill {
			fill[i] = max(fill[i], band[i])
		}
		pix = fill
	default:
		pix = fillSegments(&z, rw, h, t, segs)
	}

	if opts.Subpixel {
		weights := LightLCDWeights
		if opts.Filter {
			weights = opts.Weights
		}
		pix = filterLCD(pix, rw, h, weights)
	}

	return Coverage{
		Pix:      pix,
		Stride:   rw,
		Width:    w,
		Height:   h,
		Channels: channels,
		Left:     x0,
		Top:      -y0,
	}
}

// FromAlpha copies the r rectangle of an alpha mask into a Coverage whose
// top-left pixel sits at dr.Min relative to the pen position.
func FromAlpha(src *image.Alpha, r image.Rectangle, dr image.Rectangle) Coverage {
	w, h := r.Dx(), r.Dy()
	c := Coverage{
		Pix:      make([]byte, w*h),
		Stride:   w,
		Width:    w,
		Height:   h,
		Channels: 1,
		Left:     dr.Min.X,
		Top:      -dr.Min.Y,
	}
	for y := 0; y < h; y++ {
		off := src.PixOffset(r.Min.X, r.Min.Y+y)
		copy(c.Pix[y*w:(y+1)*w], src.Pix[off:off+w])
	}
	return c
}

func hasInk(segs sfnt.Segments) bool {
	for _, s := range segs {
		if s.Op != sfnt.SegmentOpMoveTo {
			return true
		}
	}
	return false
}

// strokePad is how far a stroke can reach beyond the outline.
func strokePad(s stroke.Style) float64 {
	hw := s.Width / 2
	if s.Join == stroke.LineJoinMiter && s.MiterLimit > math.Sqrt2 {
		return hw * s.MiterLimit
	}
	return hw * math.Sqrt2
}

func expand(segs sfnt.Segments, opts Options) []stroke.Polygon {
	e := stroke.NewExpander(opts.Stroke)
	if opts.Tolerance > 0 {
		e.SetTolerance(opts.Tolerance)
	}
	return e.ExpandSegments(segs)
}

// transform maps outline pixels into rasterizer space.
type transform struct {
	dx, dy float64
	sx     float64
}

func (t transform) apply(x, y float64) (float32, float32) {
	return float32((x + t.dx) * t.sx), float32(y + t.dy)
}

func (t transform) point(p fixed.Point26_6) (float32, float32) {
	return t.apply(float64(p.X)/64, float64(p.Y)/64)
}

func fillSegments(z *vector.Rasterizer, w, h int, t transform, segs sfnt.Segments) []byte {
	return rasterize(z, w, h, func() {
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				z.ClosePath()
				z.MoveTo(t.point(s.Args[0]))
			case sfnt.SegmentOpLineTo:
				z.LineTo(t.point(s.Args[0]))
			case sfnt.SegmentOpQuadTo:
				cx, cy := t.point(s.Args[0])
				x, y := t.point(s.Args[1])
				z.QuadTo(cx, cy, x, y)
			case sfnt.SegmentOpCubeTo:
				c1x, c1y := t.point(s.Args[0])
				c2x, c2y := t.point(s.Args[1])
				x, y := t.point(s.Args[2])
				z.CubeTo(c1x, c1y, c2x, c2y, x, y)
			}
		}
		z.ClosePath()
	})
}

func fillPolygons(z *vector.Rasterizer, w, h int, t transform, polys []stroke.Polygon) []byte {
	return rasterize(z, w, h, func() {
		for _, poly := range polys {
			if len(poly) < 3 {
				continue
			}
			z.MoveTo(t.apply(poly[0].X, poly[0].Y))
			for _, p := range poly[1:] {
				z.LineTo(t.apply(p.X, p.Y))
			}
			z.ClosePath()
		}
	})
}

func rasterize(z *vector.Rasterizer, w, h int, trace func()) []byte {
	z.Reset(w, h)
	z.DrawOp = draw.Src
	trace()
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst.Pix
}

// filterLCD runs the 5-tap FIR filter over each row of subpixel samples.
func filterLCD(pix []byte, w, h int, weights [5]byte) []byte {
	out := make([]byte, len(pix))
	for y := 0; y < h; y++ {
		row := pix[y*w : (y+1)*w]
		dst := out[y*w : (y+1)*w]
		for x := range row {
			sum := 0
			for k, wt := range weights {
				sx := x + k - 2
				if sx < 0 || sx >= w {
					continue
				}
				sum += int(wt) * int(row[sx])
			}
			dst[x] = byte(min(sum>>8, 255))
		}
	}
	return out
}
