package geom

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane, as opposed to a [Point], which is a
// position.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2             { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2             { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2          { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Negate() Vec2                { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64          { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64        { return v.X*o.Y - v.Y*o.X }
func (v Vec2) Hypot() float64              { return math.Hypot(v.X, v.Y) }
func (v Vec2) Hypot2() float64             { return v.Dot(v) }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Mul(t)) }

// VecFromDegrees returns the unit vector pointing in the drafting direction
// angle. 0° is ⟨1, 0⟩ and 90° is ⟨0, −1⟩, which points up on screen.
func VecFromDegrees(angle float64) Vec2 {
	sin, cos := math.Sincos(Radians(angle))
	return Vec2{X: cos, Y: -sin}
}

// Normalize scales v to length 1. The zero vector becomes NaN.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1 / v.Hypot())
}

// Perp returns v turned a quarter turn to ⟨−y, x⟩, which is clockwise on
// screen.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}
