package stroke

import (
	"math"
	"testing"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func seg(op sfnt.SegmentOp, pts ...fixed.Point26_6) sfnt.Segment {
	s := sfnt.Segment{Op: op}
	copy(s.Args[:], pts)
	return s
}

func squareOutline(x, y, size float64) sfnt.Segments {
	return sfnt.Segments{
		seg(sfnt.SegmentOpMoveTo, pt(x, y)),
		seg(sfnt.SegmentOpLineTo, pt(x+size, y)),
		seg(sfnt.SegmentOpLineTo, pt(x+size, y+size)),
		seg(sfnt.SegmentOpLineTo, pt(x, y+size)),
		seg(sfnt.SegmentOpLineTo, pt(x, y)),
	}
}

func assertPositive(t *testing.T, polys []Polygon) {
	t.Helper()
	for i, p := range polys {
		if p.Area() <= 0 {
			t.Errorf("polygon %d area = %v, want positive", i, p.Area())
		}
	}
}

func TestFlattenLines(t *testing.T) {
	contours := Flatten(squareOutline(1, 2, 4), 0.25, true)
	if len(contours) != 1 {
		t.Fatalf("len(Flatten()) = %d, want 1", len(contours))
	}
	c := contours[0]
	if !c.Closed {
		t.Error("contour should be closed")
	}
	if len(c.Points) != 5 {
		t.Fatalf("len(Points) = %d, want 5", len(c.Points))
	}
	if c.Points[0] != (Point{X: 1, Y: 2}) || c.Points[2] != (Point{X: 5, Y: 6}) {
		t.Errorf("Points = %v, unexpected coordinates", c.Points)
	}
}

func TestFlattenCurves(t *testing.T) {
	segs := sfnt.Segments{
		seg(sfnt.SegmentOpMoveTo, pt(0, 0)),
		seg(sfnt.SegmentOpQuadTo, pt(10, 20), pt(20, 0)),
		seg(sfnt.SegmentOpCubeTo, pt(25, -10), pt(35, -10), pt(40, 0)),
		seg(sfnt.SegmentOpMoveTo, pt(50, 50)),
		seg(sfnt.SegmentOpLineTo, pt(60, 50)),
	}
	contours := Flatten(segs, 0.1, false)
	if len(contours) != 2 {
		t.Fatalf("len(Flatten()) = %d, want 2", len(contours))
	}
	pts := contours[0].Points
	if len(pts) < 8 {
		t.Errorf("curves flattened to %d points, want subdivision", len(pts))
	}
	if last := pts[len(pts)-1]; last != (Point{X: 40, Y: 0}) {
		t.Errorf("last point = %v, want (40,0)", last)
	}
	for _, p := range pts {
		if p.X < 0 || p.X > 40 {
			t.Errorf("flattened point %v escapes the curve hull", p)
		}
	}
	if contours[1].Closed {
		t.Error("contour should be open when closeAll is false")
	}
}

func TestExpandButtLine(t *testing.T) {
	e := NewExpander(Style{Width: 2, Cap: LineCapButt, Join: LineJoinBevel})
	polys := e.Expand([]Contour{{Points: []Point{{0, 0}, {10, 0}}}})
	if len(polys) != 1 {
		t.Fatalf("len(Expand()) = %d, want 1", len(polys))
	}
	if got := polys[0].Area(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Area() = %v, want 20", got)
	}
	lo, hi := polys[0].Bounds()
	if lo != (Point{0, -1}) || hi != (Point{10, 1}) {
		t.Errorf("Bounds() = %v %v, want (0,-1) (10,1)", lo, hi)
	}
}

func TestExpandCaps(t *testing.T) {
	tests := []struct {
		cap       LineCap
		wantPolys int
		minX      float64
	}{
		{LineCapButt, 1, 0},
		{LineCapRound, 3, -1},
		{LineCapSquare, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.cap.String(), func(t *testing.T) {
			e := NewExpander(Style{Width: 2, Cap: tt.cap, Join: LineJoinMiter, MiterLimit: 4})
			polys := e.Expand([]Contour{{Points: []Point{{0, 0}, {10, 0}}}})
			if len(polys) != tt.wantPolys {
				t.Fatalf("len(Expand()) = %d, want %d", len(polys), tt.wantPolys)
			}
			assertPositive(t, polys)
			minX := math.Inf(1)
			for _, p := range polys {
				lo, _ := p.Bounds()
				minX = math.Min(minX, lo.X)
			}
			if math.Abs(minX-tt.minX) > 1e-9 {
				t.Errorf("min X = %v, want %v", minX, tt.minX)
			}
		})
	}
}

func TestExpandMiterJoin(t *testing.T) {
	e := NewExpander(Style{Width: 2, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4})
	polys := e.Expand([]Contour{{Points: []Point{{0, 0}, {10, 0}, {10, 10}}}})
	if len(polys) != 3 {
		t.Fatalf("len(Expand()) = %d, want 3", len(polys))
	}
	join := polys[2]
	if len(join) != 4 {
		t.Fatalf("join has %d points, want 4 (miter)", len(join))
	}
	if got := join.Area(); math.Abs(got-1) > 1e-9 {
		t.Errorf("miter Area() = %v, want 1", got)
	}
	_, hi := join.Bounds()
	if math.Abs(hi.X-11) > 1e-9 {
		t.Errorf("miter tip X = %v, want 11", hi.X)
	}
}

func TestExpandMiterLimitFallsBackToBevel(t *testing.T) {
	e := NewExpander(Style{Width: 2, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 1.5})
	// 30 degree turn back: miter ratio far above the limit.
	polys := e.Expand([]Contour{{Points: []Point{{0, 0}, {10, 0}, {0, 3}}}})
	if len(polys) != 3 {
		t.Fatalf("len(Expand()) = %d, want 3", len(polys))
	}
	if len(polys[2]) != 3 {
		t.Errorf("join has %d points, want 3 (bevel)", len(polys[2]))
	}
}

func TestExpandClosedRound(t *testing.T) {
	e := NewExpander(GlyphStyle(1))
	polys := e.ExpandSegments(squareOutline(0, 0, 10))
	// Four bodies and four round joins; the closing duplicate is dropped.
	if len(polys) != 8 {
		t.Fatalf("len(ExpandSegments()) = %d, want 8", len(polys))
	}
	assertPositive(t, polys)

	lo, hi := Point{X: math.Inf(1), Y: math.Inf(1)}, Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range polys {
		l, h := p.Bounds()
		lo.X, lo.Y = math.Min(lo.X, l.X), math.Min(lo.Y, l.Y)
		hi.X, hi.Y = math.Max(hi.X, h.X), math.Max(hi.Y, h.Y)
	}
	if math.Abs(lo.X+1) > 1e-9 || math.Abs(hi.X-11) > 1e-9 ||
		math.Abs(lo.Y+1) > 1e-9 || math.Abs(hi.Y-11) > 1e-9 {
		t.Errorf("stroke bounds = %v %v, want (-1,-1) (11,11)", lo, hi)
	}
}

func TestExpandDegenerate(t *testing.T) {
	e := NewExpander(GlyphStyle(2))
	e.SetTolerance(0.01)
	if polys := e.Expand(nil); len(polys) != 0 {
		t.Errorf("Expand(nil) = %d polygons, want 0", len(polys))
	}

	polys := e.Expand([]Contour{{Points: []Point{{5, 5}, {5, 5}}}})
	if len(polys) != 1 {
		t.Fatalf("single point with round cap = %d polygons, want 1", len(polys))
	}
	if got, want := polys[0].Area(), math.Pi*4; math.Abs(got-want) > 0.2 {
		t.Errorf("dot Area() = %v, want about %v", got, want)
	}

	zero := NewExpander(Style{Width: 0})
	if polys := zero.Expand([]Contour{{Points: []Point{{0, 0}, {1, 1}}}}); polys != nil {
		t.Errorf("zero width Expand() = %v, want nil", polys)
	}
}

func TestSetTolerance(t *testing.T) {
	coarse := NewExpander(GlyphStyle(8))
	fine := NewExpander(GlyphStyle(8))
	fine.SetTolerance(0.01)
	fine.SetTolerance(-1) // ignored

	c := coarse.circle(Point{}, 8)
	f := fine.circle(Point{}, 8)
	if len(f) <= len(c) {
		t.Errorf("fine circle has %d points, coarse %d; want more with lower tolerance", len(f), len(c))
	}
	if len(c) < minCircleSegments || len(f) > maxCircleSegments {
		t.Errorf("circle segments out of range: %d, %d", len(c), len(f))
	}
}

func TestStyleStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{LineCapButt.String(), "Butt"},
		{LineCapRound.String(), "Round"},
		{LineCapSquare.String(), "Square"},
		{LineCap(9).String(), "Unknown"},
		{LineJoinMiter.String(), "Miter"},
		{LineJoinRound.String(), "Round"},
		{LineJoinBevel.String(), "Bevel"},
		{LineJoin(-1).String(), "Unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}

	s := GlyphStyle(1.5)
	if s.Width != 3 || s.Cap != LineCapRound || s.Join != LineJoinRound {
		t.Errorf("GlyphStyle(1.5) = %+v, want width 3 round/round", s)
	}
	if d := DefaultStyle(); d.Width != 1 || d.MiterLimit != 4 {
		t.Errorf("DefaultStyle() = %+v", d)
	}
}
