package geom

import (
	"math"
	"slices"
)

// maxSubdivision bounds the recursion depth of arc length and flattening.
const maxSubdivision = 16

// CubicBez is a cubic Bézier from P0 to P3 with control points P1 and P2.
// Every curved seam of a pattern part is one.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (c CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// Eval returns the point at parameter t, found by repeated interpolation.
func (c CubicBez) Eval(t float64) Point {
	a, b, d := c.P0.Lerp(c.P1, t), c.P1.Lerp(c.P2, t), c.P2.Lerp(c.P3, t)
	ab, bd := a.Lerp(b, t), b.Lerp(d, t)
	return ab.Lerp(bd, t)
}

// Subdivide splits c at t = 0.5.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	a, b, d := c.P0.Midpoint(c.P1), c.P1.Midpoint(c.P2), c.P2.Midpoint(c.P3)
	ab, bd := a.Midpoint(b), b.Midpoint(d)
	mid := ab.Midpoint(bd)
	return CubicBez{c.P0, a, ab, mid}, CubicBez{mid, bd, d, c.P3}
}

// Arclen returns the length of the curve. Halves are measured recursively
// until the control polygon is no more than accuracy longer than the chord,
// and each piece then counts as the weighted mean of the two.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	chord := c.P0.Distance(c.P3)
	hull := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
	if hull-chord <= accuracy || depth >= maxSubdivision {
		return (chord + hull) / 2
	}
	l, r := c.Subdivide()
	return l.arclen(accuracy/2, depth+1) + r.arclen(accuracy/2, depth+1)
}

// Extrema returns, in increasing order, the parameters strictly between 0
// and 1 where the tangent is horizontal or vertical.
func (c CubicBez) Extrema() ([4]float64, int) {
	var out [4]float64
	n := 0
	// The derivative over 3 is d0·(1−t)² + 2·d1·t·(1−t) + d2·t².
	axis := func(d0, d1, d2 float64) {
		roots, m := solveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
		for _, t := range roots[:m] {
			if t > 0 && t < 1 {
				out[n] = t
				n++
			}
		}
	}
	d0, d1, d2 := c.P1.Sub(c.P0), c.P2.Sub(c.P1), c.P3.Sub(c.P2)
	axis(d0.X, d1.X, d2.X)
	axis(d0.Y, d1.Y, d2.Y)
	slices.Sort(out[:n])
	return out, n
}

// BoundingBox returns the tight bounds of the curve, which may be smaller
// than the box around its control points.
func (c CubicBez) BoundingBox() Rect {
	box := NewRectFromPoints(c.P0, c.P3)
	ts, n := c.Extrema()
	for _, t := range ts[:n] {
		box = box.UnionPoint(c.Eval(t))
	}
	return box
}

// SignedArea returns the area swept between the curve and the origin, using
// the same sign as [Line.SignedArea]. Summed over a closed path it gives the
// enclosed area.
func (c CubicBez) SignedArea() float64 {
	p0, p1, p2, p3 := c.P0, c.P1, c.P2, c.P3
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*(p1.X*(-2*p0.Y+p2.Y+p3.Y)-p2.X*(p0.Y+p1.Y-2*p3.Y)) -
		p3.X*(p0.Y+3*p1.Y+6*p2.Y)) / 20
}

// flat reports whether both control points lie within tolerance of the
// chord.
func (c CubicBez) flat(tolerance float64) bool {
	chord := Line{c.P0, c.P3}
	return chord.DistanceToPoint(c.P1) <= tolerance && chord.DistanceToPoint(c.P2) <= tolerance
}

// flatten yields the end points of lines approximating c, excluding c.P0.
func (c CubicBez) flatten(tolerance float64, depth int, yield func(Point) bool) bool {
	if depth >= maxSubdivision || c.flat(tolerance) {
		return yield(c.P3)
	}
	l, r := c.Subdivide()
	return l.flatten(tolerance, depth+1, yield) && r.flatten(tolerance, depth+1, yield)
}

// solveQuadratic returns the real roots of c0 + c1·x + c2·x² in increasing
// order. Without a quadratic term it solves the linear equation, and an
// equation with no terms at all reports the single root 0.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	if c2 == 0 {
		switch {
		case c1 != 0:
			return [2]float64{-c0 / c1}, 1
		case c0 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}
	disc := c1*c1 - 4*c2*c0
	switch {
	case disc < 0:
		return [2]float64{}, 0
	case disc == 0:
		return [2]float64{-c1 / (2 * c2)}, 1
	}
	// Avoid cancellation by computing the larger magnitude root first.
	q := -0.5 * (c1 + math.Copysign(math.Sqrt(disc), c1))
	r0, r1 := q/c2, c0/q
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return [2]float64{r0, r1}, 2
}
