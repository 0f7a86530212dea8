package font

import "github.com/gogpu/texatlas/internal/mask"

// DefaultLCDWeights are the subpixel filter weights used by default.
var DefaultLCDWeights = mask.DefaultLCDWeights

// defaultKerningCache is the default number of memoised kerning pairs.
const defaultKerningCache = 1 << 16

// Option configures Font creation.
type Option func(*config)

// config holds the style context of a Font.
type config struct {
	outline         Outline
	hinting         bool
	kerning         bool
	lcdFilter       bool
	lcdWeights      [5]byte
	strokeTolerance float64
	kerningCache    int
	rasterizer      Rasterizer
	rasterizerName  string
}

// defaultConfig returns the default font configuration.
func defaultConfig() config {
	return config{
		outline:         NoOutline(),
		hinting:         true,
		kerning:         true,
		lcdFilter:       true,
		lcdWeights:      DefaultLCDWeights,
		strokeTolerance: 0.1,
		kerningCache:    defaultKerningCache,
		rasterizerName:  defaultRasterizerName,
	}
}

// WithOutline sets the initial outline style.
func WithOutline(o Outline) Option {
	return func(c *config) {
		c.outline = o.normalize()
	}
}

// WithHinting enables or disables hinting.
func WithHinting(enabled bool) Option {
	return func(c *config) {
		c.hinting = enabled
	}
}

// WithKerning enables or disables kerning table generation.
func WithKerning(enabled bool) Option {
	return func(c *config) {
		c.kerning = enabled
	}
}

// WithLCDFilter enables or disables the custom subpixel filter.
// Only atlases of depth 3 use it.
func WithLCDFilter(enabled bool) Option {
	return func(c *config) {
		c.lcdFilter = enabled
	}
}

// WithLCDWeights sets the subpixel filter weights.
func WithLCDWeights(w [5]byte) Option {
	return func(c *config) {
		c.lcdWeights = w
	}
}

// WithStrokeTolerance sets the curve flattening tolerance, in pixels,
// used when stroking outlines.
func WithStrokeTolerance(tolerance float64) Option {
	return func(c *config) {
		if tolerance > 0 {
			c.strokeTolerance = tolerance
		}
	}
}

// WithKerningCache bounds how many kerning pairs are remembered between
// batches. Zero means unlimited.
func WithKerningCache(pairs int) Option {
	return func(c *config) {
		if pairs >= 0 {
			c.kerningCache = pairs
		}
	}
}

// WithRasterizer sets the rasterizer used to render glyphs.
func WithRasterizer(r Rasterizer) Option {
	return func(c *config) {
		c.rasterizer = r
	}
}

// WithRasterizerName selects a registered rasterizer.
func WithRasterizerName(name string) Option {
	return func(c *config) {
		c.rasterizerName = name
	}
}
