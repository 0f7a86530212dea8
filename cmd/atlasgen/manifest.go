package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/texatlas/font"
)

// manifest describes a generated atlas.
type manifest struct {
	Font    string       `yaml:"font"`
	Size    float64      `yaml:"size"`
	Image   string       `yaml:"image"`
	Text    string       `yaml:"text"`
	Missed  int          `yaml:"missed"`
	Atlas   atlasInfo    `yaml:"atlas"`
	Metrics font.Metrics `yaml:"metrics"`
	Glyphs  []glyphEntry `yaml:"glyphs"`
}

type atlasInfo struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Depth       int     `yaml:"depth"`
	Utilization float64 `yaml:"utilization"`
}

type glyphEntry struct {
	Codepoint string      `yaml:"codepoint"`
	Char      string      `yaml:"char,omitempty"`
	Outline   string      `yaml:"outline"`
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	OffsetX   int         `yaml:"offset_x"`
	OffsetY   int         `yaml:"offset_y"`
	AdvanceX  float32     `yaml:"advance_x"`
	AdvanceY  float32     `yaml:"advance_y"`
	TexCoords [4]float32  `yaml:"tex_coords,flow"`
	Kernings  []kernEntry `yaml:"kernings,omitempty"`
}

type kernEntry struct {
	Prev  string  `yaml:"prev"`
	Value float32 `yaml:"value"`
}

func buildManifest(f *font.Font, image, text string, missed int) manifest {
	a := f.Atlas()
	m := manifest{
		Font:   f.Source().String(),
		Size:   f.Size(),
		Image:  image,
		Text:   text,
		Missed: missed,
		Atlas: atlasInfo{
			Width:       a.Width(),
			Height:      a.Height(),
			Depth:       a.Depth(),
			Utilization: a.Utilization(),
		},
		Metrics: f.Metrics(),
	}

	if h, err := f.Lookup(font.NoCodepoint); err == nil {
		m.Glyphs = append(m.Glyphs, entryFor(f.MustGlyph(h)))
	}
	seen := make(map[rune]bool)
	for _, r := range text {
		if seen[r] {
			continue
		}
		seen[r] = true
		if h, ok := f.Find(r); ok {
			m.Glyphs = append(m.Glyphs, entryFor(f.MustGlyph(h)))
		}
	}
	return m
}

func entryFor(g font.Glyph) glyphEntry {
	e := glyphEntry{
		Codepoint: "none",
		Outline:   g.Outline.String(),
		Width:     g.Width,
		Height:    g.Height,
		OffsetX:   g.OffsetX,
		OffsetY:   g.OffsetY,
		AdvanceX:  g.AdvanceX,
		AdvanceY:  g.AdvanceY,
		TexCoords: [4]float32{g.S0, g.T0, g.S1, g.T1},
	}
	if g.Codepoint != font.NoCodepoint {
		e.Codepoint = fmt.Sprintf("%U", g.Codepoint)
		e.Char = string(g.Codepoint)
	}
	for _, k := range g.Kernings {
		e.Kernings = append(e.Kernings, kernEntry{Prev: string(k.Codepoint), Value: k.Value})
	}
	return e
}

func (m manifest) encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&m); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return enc.Close()
}
