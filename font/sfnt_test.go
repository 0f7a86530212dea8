package font_test

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/texatlas"
	"github.com/gogpu/texatlas/font"
	_ "github.com/gogpu/texatlas/font/sfntraster"
)

func TestGoRegular(t *testing.T) {
	atlas := texatlas.MustNew(256, 256, 1)
	f, err := font.NewFromMemory(atlas, goregular.TTF, 24)
	if err != nil {
		t.Fatalf("NewFromMemory() error = %v", err)
	}

	m := f.Metrics()
	if m.Ascender <= 0 || m.Descender >= 0 || m.Height < m.Ascender-m.Descender {
		t.Errorf("Metrics() = %+v", m)
	}
	if m.UnderlinePosition > -2 || m.UnderlineThickness < 1 {
		t.Errorf("underline = %v, %v", m.UnderlinePosition, m.UnderlineThickness)
	}

	missed, err := f.LoadText("Hello, World")
	if missed != 0 || err != nil {
		t.Fatalf("LoadText() = %d, %v", missed, err)
	}

	h, err := f.Lookup('H')
	if err != nil {
		t.Fatal(err)
	}
	g := f.MustGlyph(h)
	if g.Width == 0 || g.Height == 0 || g.OffsetY <= 0 || g.AdvanceX <= 0 {
		t.Errorf("Glyph('H') = %+v", g)
	}
	if g.S0 >= g.S1 || g.T0 >= g.T1 {
		t.Errorf("tex coords = (%v,%v)-(%v,%v)", g.S0, g.T0, g.S1, g.T1)
	}

	hs, err := f.Lookup(' ')
	if err != nil {
		t.Fatalf("Lookup(' ') error = %v", err)
	}
	if sp := f.MustGlyph(hs); sp.AdvanceX <= 0 {
		t.Errorf("space advance = %v", sp.AdvanceX)
	}

	if !atlas.Dirty() {
		t.Error("atlas not dirty after loading glyphs")
	}
}

func TestGoRegularOutlines(t *testing.T) {
	for _, depth := range []int{1, 3, 4} {
		atlas := texatlas.MustNew(256, 256, depth)
		f, err := font.NewFromMemory(atlas, goregular.TTF, 20)
		if err != nil {
			t.Fatalf("depth %d: NewFromMemory() error = %v", depth, err)
		}

		sizes := map[font.OutlineKind][2]int{}
		for _, o := range []font.Outline{
			font.NoOutline(), font.LineOutline(1), font.InnerOutline(1), font.OuterOutline(2),
		} {
			f.SetOutline(o)
			h, err := f.Lookup('O')
			if err != nil {
				t.Fatalf("depth %d %s: Lookup('O') error = %v", depth, o, err)
			}
			g := f.MustGlyph(h)
			sizes[o.Kind] = [2]int{g.Width, g.Height}
		}
		if sizes[font.OutlineOuter][0] <= sizes[font.OutlineNone][0] {
			t.Errorf("depth %d: outer width %d <= plain width %d",
				depth, sizes[font.OutlineOuter][0], sizes[font.OutlineNone][0])
		}
		if f.Len() != 5 {
			t.Errorf("depth %d: Len() = %d, want 5", depth, f.Len())
		}
	}
}

func TestGoRegularKerning(t *testing.T) {
	f, err := font.NewFromMemory(texatlas.MustNew(256, 256, 1), goregular.TTF, 32)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.LoadText("AVAT"); err != nil {
		t.Fatal(err)
	}
	if k := f.Kerning('A', 'V'); k > 0 {
		t.Errorf("Kerning('A', 'V') = %v, want <= 0", k)
	}
}

func TestNewFromFileMissing(t *testing.T) {
	_, err := font.NewFromFile(texatlas.MustNew(64, 64, 1), "testdata/missing.ttf", 12)
	if !errors.Is(err, font.ErrFontInit) {
		t.Errorf("NewFromFile() error = %v, want ErrFontInit", err)
	}
}

func TestAtlasExhaustionRecovery(t *testing.T) {
	atlas := texatlas.MustNew(32, 32, 1)
	f, err := font.NewFromMemory(atlas, goregular.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}

	missed, err := f.LoadText("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err != nil {
		t.Fatalf("LoadText() error = %v", err)
	}
	if missed == 0 {
		t.Fatal("LoadText() missed = 0, want exhaustion on a 32x32 atlas")
	}

	atlas.Clear()
	if err := f.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := f.Lookup('Z'); err != nil {
		t.Errorf("Lookup('Z') after Clear and Reset error = %v", err)
	}
}
