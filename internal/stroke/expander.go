package stroke

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultTolerance is the maximum distance between a curve and its
	// flattened approximation, in pixels.
	defaultTolerance = 0.25

	// maxFlattenDepth bounds curve subdivision.
	maxFlattenDepth = 16

	minCircleSegments = 8
	maxCircleSegments = 128
)

// Contour is a flattened polyline.
type Contour struct {
	Points []Point
	Closed bool
}

// Expander converts outlines into stroke polygons.
type Expander struct {
	style     Style
	tolerance float64
	out       []Polygon
}

// NewExpander creates a new stroke expander with the given style.
func NewExpander(style Style) *Expander {
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}
	return &Expander{
		style:     style,
		tolerance: defaultTolerance,
	}
}

// Style returns the expander's style.
func (e *Expander) Style() Style { return e.style }

// SetTolerance sets the curve flattening tolerance.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// ExpandSegments strokes a glyph outline. Every contour of the outline is
// treated as closed.
func (e *Expander) ExpandSegments(segs sfnt.Segments) []Polygon {
	return e.Expand(Flatten(segs, e.tolerance, true))
}

// Expand strokes the given contours.
// A zero or negative width yields no polygons.
func (e *Expander) Expand(contours []Contour) []Polygon {
	e.out = nil
	if e.style.Width <= 0 {
		return nil
	}
	for _, c := range contours {
		e.expandContour(c)
	}
	out := e.out
	e.out = nil
	return out
}

func (e *Expander) expandContour(c Contour) {
	pts := dedupe(c.Points, c.Closed)
	hw := e.style.Width / 2

	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		// A lone point only shows with round or square caps.
		switch e.style.Cap {
		case LineCapRound:
			e.emit(e.circle(pts[0], hw))
		case LineCapSquare:
			p := pts[0]
			e.emit(Polygon{
				{p.X - hw, p.Y - hw}, {p.X + hw, p.Y - hw},
				{p.X + hw, p.Y + hw}, {p.X - hw, p.Y + hw},
			})
		}
		return
	}

	n := len(pts)
	segCount := n - 1
	if c.Closed {
		segCount = n
	}
	for i := 0; i < segCount; i++ {
		e.segment(pts[i], pts[(i+1)%n], hw)
	}

	if c.Closed {
		for i := 0; i < n; i++ {
			prev := pts[(i+n-1)%n]
			next := pts[(i+1)%n]
			e.join(pts[i], pts[i].Sub(prev), next.Sub(pts[i]), hw)
		}
		return
	}

	for i := 1; i < n-1; i++ {
		e.join(pts[i], pts[i].Sub(pts[i-1]), pts[i+1].Sub(pts[i]), hw)
	}
	e.cap(pts[0], pts[0].Sub(pts[1]), hw)
	e.cap(pts[n-1], pts[n-1].Sub(pts[n-2]), hw)
}

// segment emits the body of one straight segment.
func (e *Expander) segment(p0, p1 Point, hw float64) {
	norm := p1.Sub(p0).Normalize().Perp().Scale(hw)
	e.emit(Polygon{
		p0.Add(norm.Neg()),
		p1.Add(norm.Neg()),
		p1.Add(norm),
		p0.Add(norm),
	})
}

// join emits the piece filling the outer wedge at p between the incoming
// tangent t0 and the outgoing tangent t1.
func (e *Expander) join(p Point, t0, t1 Vec2, hw float64) {
	u0 := t0.Normalize()
	u1 := t1.Normalize()
	cross := u0.Cross(u1)
	dot := u0.Dot(u1)

	if e.style.Join == LineJoinRound {
		e.emit(e.circle(p, hw))
		return
	}
	if dot > 0 && math.Abs(cross) < 1e-6 {
		return
	}

	side := 1.0
	if cross > 0 {
		side = -1.0
	}
	n0 := u0.Perp().Scale(side)
	n1 := u1.Perp().Scale(side)
	a := p.Add(n0.Scale(hw))
	b := p.Add(n1.Scale(hw))

	if e.style.Join == LineJoinMiter {
		bisector := n0.Add(n1).Normalize()
		cosHalf := bisector.Dot(n0)
		if cosHalf > 1e-6 && 1/cosHalf <= e.style.MiterLimit {
			tip := p.Add(bisector.Scale(hw / cosHalf))
			e.emit(Polygon{p, a, tip, b})
			return
		}
	}
	e.emit(Polygon{p, a, b})
}

// cap emits the end piece at p; dir points away from the stroke.
func (e *Expander) cap(p Point, dir Vec2, hw float64) {
	switch e.style.Cap {
	case LineCapRound:
		e.emit(e.circle(p, hw))
	case LineCapSquare:
		u := dir.Normalize()
		norm := u.Perp().Scale(hw)
		ext := u.Scale(hw)
		e.emit(Polygon{
			p.Add(norm.Neg()),
			p.Add(ext).Add(norm.Neg()),
			p.Add(ext).Add(norm),
			p.Add(norm),
		})
	}
}

// circle approximates a disc with a regular polygon whose sagitta stays
// below the tolerance.
func (e *Expander) circle(center Point, radius float64) Polygon {
	n := minCircleSegments
	if radius > e.tolerance {
		n = int(math.Ceil(math.Pi / math.Acos(1-e.tolerance/radius)))
	}
	n = max(minCircleSegments, min(n, maxCircleSegments))

	poly := make(Polygon, n)
	step := 2 * math.Pi / float64(n)
	for i := range poly {
		s, c := math.Sincos(float64(i) * step)
		poly[i] = Point{X: center.X + radius*c, Y: center.Y + radius*s}
	}
	return poly
}

// emit appends poly with positive orientation, dropping degenerate pieces.
func (e *Expander) emit(poly Polygon) {
	area := poly.Area()
	if math.Abs(area) < 1e-9 {
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	e.out = append(e.out, poly)
}

// dedupe drops consecutive duplicate points, and the closing duplicate of
// a closed contour.
func dedupe(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Distance(p) < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].Distance(out[len(out)-1]) < 1e-9 {
		out = out[:len(out)-1]
	}
	return out
}

// Flatten converts sfnt segments (26.6 fixed point) into polylines.
// With closeAll set, every contour is marked closed.
func Flatten(segs sfnt.Segments, tolerance float64, closeAll bool) []Contour {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	var contours []Contour
	var cur []Point
	var last Point

	flush := func() {
		if len(cur) > 0 {
			contours = append(contours, Contour{Points: cur, Closed: closeAll})
		}
		cur = nil
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			last = toPoint(seg.Args[0])
			cur = append(cur, last)
		case sfnt.SegmentOpLineTo:
			last = toPoint(seg.Args[0])
			cur = append(cur, last)
		case sfnt.SegmentOpQuadTo:
			ctrl, end := toPoint(seg.Args[0]), toPoint(seg.Args[1])
			flattenQuad(last, ctrl, end, tolerance, 0, &cur)
			last = end
		case sfnt.SegmentOpCubeTo:
			c1, c2, end := toPoint(seg.Args[0]), toPoint(seg.Args[1]), toPoint(seg.Args[2])
			flattenCubic(last, c1, c2, end, tolerance, 0, &cur)
			last = end
		}
	}
	flush()
	return contours
}

func toPoint(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

func flattenQuad(p0, p1, p2 Point, tol float64, depth int, points *[]Point) {
	if depth >= maxFlattenDepth || distanceToLine(p1, p0, p2) < tol {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuad(p0, q0, q2, tol, depth+1, points)
	flattenQuad(q2, q1, p2, tol, depth+1, points)
}

func flattenCubic(p0, p1, p2, p3 Point, tol float64, depth int, points *[]Point) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxFlattenDepth || dist < tol {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tol, depth+1, points)
	flattenCubic(s, r1, q2, p3, tol, depth+1, points)
}
