package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/texatlas/font"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "atlas.png")
	man := filepath.Join(dir, "atlas.yaml")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-s", "18", "-W", "128", "-H", "64", "--outline", "outer", "-o", img, "-m", man, "AVA"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	f, err := os.Open(img)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 128 || b.Dy() != 64 {
		t.Errorf("image bounds = %v, want 128x64", b)
	}

	data, err := os.ReadFile(man)
	if err != nil {
		t.Fatal(err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if m.Atlas.Width != 128 || m.Atlas.Height != 64 || m.Atlas.Depth != 1 {
		t.Errorf("atlas = %+v", m.Atlas)
	}
	if m.Missed != 0 || m.Text != "AVA" || m.Size != 18 {
		t.Errorf("manifest header = missed %d, text %q, size %v", m.Missed, m.Text, m.Size)
	}
	// Special glyph, then A and V once each.
	if len(m.Glyphs) != 3 {
		t.Fatalf("len(Glyphs) = %d, want 3", len(m.Glyphs))
	}
	if m.Glyphs[0].Codepoint != "none" || m.Glyphs[1].Codepoint != "U+0041" || m.Glyphs[2].Char != "V" {
		t.Errorf("glyph order = %s, %s, %s", m.Glyphs[0].Codepoint, m.Glyphs[1].Codepoint, m.Glyphs[2].Codepoint)
	}
	if m.Glyphs[1].Outline != "Outer(1)" {
		t.Errorf("Outline = %q, want Outer(1)", m.Glyphs[1].Outline)
	}
	if tc := m.Glyphs[1].TexCoords; tc[0] >= tc[2] || tc[1] >= tc[3] {
		t.Errorf("TexCoords = %v", tc)
	}
}

func TestRunManifestToStdout(t *testing.T) {
	img := filepath.Join(t.TempDir(), "a.png")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", img, "--depth", "4", "x"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "codepoint: U+0078") {
		t.Errorf("stdout manifest missing glyph:\n%s", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		args    []string
		want    int
		message string
	}{
		{"bad flag", []string{"--nope"}, 2, "nope"},
		{"bad depth", []string{"-d", "2", "-o", filepath.Join(dir, "a.png")}, 1, "Depth"},
		{"bad outline", []string{"--outline", "dotted", "-o", filepath.Join(dir, "b.png")}, 1, "dotted"},
		{"missing font", []string{"-f", filepath.Join(dir, "none.ttf"), "-o", filepath.Join(dir, "c.png")}, 1, "none.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(tt.args, &stdout, &stderr); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
			if !strings.Contains(stderr.String(), tt.message) {
				t.Errorf("stderr = %q, want it to mention %q", stderr.String(), tt.message)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(--help) = %d", code)
	}
	if !strings.Contains(stdout.String(), "--outline") {
		t.Errorf("help output missing flags:\n%s", stdout.String())
	}
}

func TestParseOutline(t *testing.T) {
	tests := []struct {
		in      string
		want    font.Outline
		wantErr bool
	}{
		{"none", font.NoOutline(), false},
		{"", font.NoOutline(), false},
		{"Line", font.LineOutline(2), false},
		{"inner", font.InnerOutline(2), false},
		{"OUTER", font.OuterOutline(2), false},
		{"dashed", font.Outline{}, true},
	}
	for _, tt := range tests {
		got, err := parseOutline(tt.in, 2)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseOutline(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseOutline(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestASCIIText(t *testing.T) {
	s := asciiText()
	if len(s) != 95 || s[0] != ' ' || s[len(s)-1] != '~' {
		t.Errorf("asciiText() = %q", s)
	}
}
