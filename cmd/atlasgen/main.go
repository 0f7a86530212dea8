// Command atlasgen packs the glyphs of a text into a texture atlas and
// writes the atlas as a PNG image plus a YAML manifest of glyph records.
//
// Usage:
//
//	atlasgen [flags] [text]
//
// Without a font path the Go Regular font is used. Without text the
// printable ASCII range is packed.
package main

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/texatlas"
	"github.com/gogpu/texatlas/font"
	_ "github.com/gogpu/texatlas/font/sfntraster"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	fontPath  string
	size      float64
	width     int
	height    int
	depth     int
	outline   string
	thickness float32
	output    string
	manifest  string
	noKerning bool
	noHinting bool
	verbose   bool
	help      bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := pflag.NewFlagSet("atlasgen", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&o.fontPath, "font", "f", "", "Path to a TrueType/OpenType font (default: Go Regular)")
	fs.Float64VarP(&o.size, "size", "s", 24, "Font size in pixels")
	fs.IntVarP(&o.width, "width", "W", 512, "Atlas width in pixels")
	fs.IntVarP(&o.height, "height", "H", 512, "Atlas height in pixels")
	fs.IntVarP(&o.depth, "depth", "d", 1, "Atlas depth: 1 (gray), 3 (subpixel) or 4 (RGBA)")
	fs.StringVar(&o.outline, "outline", "none", "Outline style: none, line, inner or outer")
	fs.Float32Var(&o.thickness, "thickness", 1, "Outline thickness in pixels")
	fs.StringVarP(&o.output, "output", "o", "atlas.png", "PNG output path")
	fs.StringVarP(&o.manifest, "manifest", "m", "", "YAML manifest output path (default: stdout)")
	fs.BoolVar(&o.noKerning, "no-kerning", false, "Disable kerning tables")
	fs.BoolVar(&o.noHinting, "no-hinting", false, "Disable hinting")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log atlas and glyph events to stderr")
	fs.BoolVarP(&o.help, "help", "h", false, "Show help message")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if o.help {
		fmt.Fprintln(stdout, "atlasgen - pack glyphs into a texture atlas")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Usage:")
		fmt.Fprintln(stdout, "  atlasgen [flags] [text]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Flags:")
		fmt.Fprint(stdout, fs.FlagUsages())
		return 0
	}

	if o.verbose {
		texatlas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer texatlas.SetLogger(nil)
	}

	text := strings.Join(fs.Args(), " ")
	if text == "" {
		text = asciiText()
	}

	if err := generate(o, text, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func generate(o options, text string, stdout io.Writer) error {
	outline, err := parseOutline(o.outline, o.thickness)
	if err != nil {
		return err
	}

	atlas, err := texatlas.New(texatlas.Config{Width: o.width, Height: o.height, Depth: o.depth})
	if err != nil {
		return err
	}

	opts := []font.Option{
		font.WithOutline(outline),
		font.WithKerning(!o.noKerning),
		font.WithHinting(!o.noHinting),
	}
	var f *font.Font
	if o.fontPath == "" {
		f, err = font.NewFromMemory(atlas, goregular.TTF, o.size, opts...)
	} else {
		f, err = font.NewFromFile(atlas, o.fontPath, o.size, opts...)
	}
	if err != nil {
		return err
	}

	missed, err := f.LoadText(text)
	if err != nil {
		return fmt.Errorf("loading glyphs: %w", err)
	}

	if err := writePNG(o.output, atlas); err != nil {
		return err
	}

	m := buildManifest(f, o.output, text, missed)
	if o.manifest == "" {
		return m.encode(stdout)
	}
	out, err := os.Create(o.manifest)
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}
	if err := m.encode(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writePNG(path string, atlas *texatlas.Atlas) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image: %w", err)
	}
	if err := png.Encode(out, atlas.Image()); err != nil {
		out.Close()
		return fmt.Errorf("encoding image: %w", err)
	}
	return out.Close()
}

func parseOutline(kind string, thickness float32) (font.Outline, error) {
	switch strings.ToLower(kind) {
	case "", "none":
		return font.NoOutline(), nil
	case "line":
		return font.LineOutline(thickness), nil
	case "inner":
		return font.InnerOutline(thickness), nil
	case "outer":
		return font.OuterOutline(thickness), nil
	default:
		return font.Outline{}, fmt.Errorf("unknown outline style %q", kind)
	}
}

// asciiText returns the printable ASCII characters.
func asciiText() string {
	var b strings.Builder
	for r := rune(0x20); r < 0x7f; r++ {
		b.WriteRune(r)
	}
	return b.String()
}
