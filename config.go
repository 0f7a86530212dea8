package texatlas

// Size limits for an atlas surface.
const (
	// MinSize is the smallest width or height that still leaves a 1x1
	// interior inside the border.
	MinSize = 3

	// MaxSize is the largest supported width or height.
	MaxSize = 16384
)

// Config holds atlas configuration.
type Config struct {
	// Width is the surface width in pixels, border included.
	Width int

	// Height is the surface height in pixels, border included.
	Height int

	// Depth is the number of bytes per pixel:
	// 1 (alpha), 3 (RGB, LCD subpixel) or 4 (RGBA).
	Depth int
}

// DefaultConfig returns a 512x512 single-channel atlas configuration.
func DefaultConfig() Config {
	return Config{
		Width:  512,
		Height: 512,
		Depth:  1,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < MinSize {
		return &ConfigError{Field: "Width", Reason: "must be at least 3"}
	}
	if c.Width > MaxSize {
		return &ConfigError{Field: "Width", Reason: "must be at most 16384"}
	}
	if c.Height < MinSize {
		return &ConfigError{Field: "Height", Reason: "must be at least 3"}
	}
	if c.Height > MaxSize {
		return &ConfigError{Field: "Height", Reason: "must be at most 16384"}
	}
	if !ValidDepth(c.Depth) {
		return &ConfigError{Field: "Depth", Reason: "must be 1, 3 or 4"}
	}
	return nil
}

// ValidDepth reports whether depth is a supported bytes-per-pixel value.
func ValidDepth(depth int) bool {
	return depth == 1 || depth == 3 || depth == 4
}
