package geom

import (
	"errors"
	"math"
)

var (
	// ErrParallel is returned when two lines that are expected to cross run
	// parallel to each other.
	ErrParallel = errors.New("geom: lines are parallel")
	// ErrDegenerate is returned for shapes that lack the vertices needed to
	// enclose an area.
	ErrDegenerate = errors.New("geom: degenerate polygon")
)

// Line is the straight segment from P0 to P1. Some operations treat it as
// the infinite line through both points; they say so.
type Line struct {
	P0, P1 Point
}

func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint returns where the infinite lines through l and o meet. The
// crossing may lie outside both segments. It reports false for parallel
// lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Offset returns the line moved by d along its normal. Positive distances move
// the line to the right of its direction of travel as seen on screen.
func (l Line) Offset(d float64) Line {
	n := l.P1.Sub(l.P0).Normalize().Perp().Mul(d)
	return l.Translate(n)
}

// DistanceToPoint returns the perpendicular distance from pt to the infinite
// line through l.
func (l Line) DistanceToPoint(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	if d.Hypot2() == 0 {
		return pt.Distance(l.P0)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / d.Hypot()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
