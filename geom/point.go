package geom

import (
	"fmt"
	"math"
)

// Point is a position on the drafting plane, in millimetres.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

func (pt Point) Midpoint(o Point) Point {
	return pt.Lerp(o, 0.5)
}

func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DeltaX returns o.X − pt.X.
func (pt Point) DeltaX(o Point) float64 {
	return o.X - pt.X
}

// DeltaY returns o.Y − pt.Y, which is positive when o lies below pt.
func (pt Point) DeltaY(o Point) float64 {
	return o.Y - pt.Y
}

// Shift moves pt by distance in the direction of angle degrees. A negative
// distance moves it the opposite way.
func (pt Point) Shift(angle, distance float64) Point {
	return pt.Translate(VecFromDegrees(angle).Mul(distance))
}

// ShiftTowards moves pt by distance along the ray towards o. Coincident
// points leave pt unchanged.
func (pt Point) ShiftTowards(o Point, distance float64) Point {
	d := o.Sub(pt)
	l := d.Hypot()
	if l == 0 {
		return pt
	}
	return pt.Translate(d.Mul(distance / l))
}

// Angle returns the direction from pt to o in degrees, in [0, 360). Coincident
// points have an angle of 0.
func (pt Point) Angle(o Point) float64 {
	if pt == o {
		return 0
	}
	// y is negated so the angle turns counter-clockwise on screen.
	return NormalizeDegrees(Degrees(math.Atan2(pt.Y-o.Y, o.X-pt.X)))
}

// FlipX mirrors pt about the vertical line x = anchor.
func (pt Point) FlipX(anchor float64) Point {
	return pt.Transform(MirrorX(anchor))
}

// Round rounds both coordinates to whole millimetres.
func (pt Point) Round() Point {
	return Point{X: math.Round(pt.X), Y: math.Round(pt.Y)}
}
