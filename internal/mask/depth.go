package mask

import "fmt"

// Expand converts the coverage to depth bytes per pixel.
//
// Single-channel coverage is replicated across colour channels; for depth 4
// it becomes premultiplied white. Subpixel coverage keeps its channels, takes
// the mean for depth 1 and the channel maximum as alpha for depth 4.
func (c Coverage) Expand(depth int) Coverage {
	if depth != 1 && depth != 3 && depth != 4 {
		panic(fmt.Sprintf("mask: unsupported depth %d", depth))
	}
	if c.Channels == depth {
		return c
	}
	out := Coverage{
		Pix:      make([]byte, c.Width*c.Height*depth),
		Stride:   c.Width * depth,
		Width:    c.Width,
		Height:   c.Height,
		Channels: depth,
		Left:     c.Left,
		Top:      c.Top,
	}
	for y := 0; y < c.Height; y++ {
		src := c.Pix[y*c.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < c.Width; x++ {
			var r, g, b byte
			if c.Channels == 3 {
				r, g, b = src[x*3], src[x*3+1], src[x*3+2]
			} else {
				r = src[x]
				g, b = r, r
			}
			switch depth {
			case 1:
				dst[x] = byte((int(r) + int(g) + int(b)) / 3)
			case 3:
				dst[x*3], dst[x*3+1], dst[x*3+2] = r, g, b
			case 4:
				dst[x*4], dst[x*4+1], dst[x*4+2] = r, g, b
				dst[x*4+3] = max(r, g, b)
			}
		}
	}
	return out
}
