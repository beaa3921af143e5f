package geom

import "fmt"

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1).
// Pattern parts report their extents as rectangles, which tells how much
// fabric width and length a part needs.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle with opposite corners p0 and p1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%s, %s}", Pt(r.X0, r.Y0), Pt(r.X1, r.Y1))
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.X0, o.X0), min(r.Y0, o.Y0), max(r.X1, o.X1), max(r.Y1, o.Y1)}
}

// UnionPoint returns the smallest rectangle enclosing r and pt. Starting from
// a zero-size rectangle at the first point, repeated calls yield the bounds of
// a set of points.
func (r Rect) UnionPoint(pt Point) Rect {
	return r.Union(Rect{pt.X, pt.Y, pt.X, pt.Y})
}
