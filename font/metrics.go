package font

import "math"

// FaceMetrics are the raw face metrics reported by a rasterizer session,
// in pixels with Y growing upwards (descender and underline position are
// negative below the baseline).
type FaceMetrics struct {
	Ascender           float32
	Descender          float32
	Height             float32
	UnderlinePosition  float32
	UnderlineThickness float32
}

// Metrics are the line metrics of a Font.
type Metrics struct {
	// Size is the point size; one point is one pixel.
	Size float32

	// Ascender is the distance from the baseline to the top of the line.
	Ascender float32

	// Descender is the distance from the baseline to the bottom of the
	// line; it is usually negative.
	Descender float32

	// Height is the baseline-to-baseline distance.
	Height float32

	// LineGap is Height - Ascender + Descender.
	LineGap float32

	// UnderlinePosition is rounded and never above -2.
	UnderlinePosition float32

	// UnderlineThickness is rounded and never below 1.
	UnderlineThickness float32
}

func newMetrics(size float64, fm FaceMetrics) Metrics {
	m := Metrics{
		Size:               float32(size),
		Ascender:           fm.Ascender,
		Descender:          fm.Descender,
		Height:             fm.Height,
		UnderlinePosition:  float32(math.Round(float64(fm.UnderlinePosition))),
		UnderlineThickness: float32(math.Round(float64(fm.UnderlineThickness))),
	}
	m.LineGap = m.Height - m.Ascender + m.Descender
	if m.UnderlinePosition > -2 {
		m.UnderlinePosition = -2
	}
	if m.UnderlineThickness < 1 {
		m.UnderlineThickness = 1
	}
	return m
}
