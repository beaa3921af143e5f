package geom

import "math"

// Affine is a 2D affine transform. With coefficients (a, b, c, d, e, f) it
// maps (x, y) to (a·x + c·y + e, b·x + d·y + f), so the last two
// coefficients hold the translation.
//
// Transforms compose like matrices: p.Transform(A.Mul(B)) equals
// p.Transform(B).Transform(A).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves every point where it is.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale stretches x by sx and y by sy about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Translate moves every point by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate turns about the origin by th radians, from +x towards +y. In the
// y-down plane that is clockwise on screen; [RotateDegrees] turns the other
// way.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateDegrees turns about center by angle degrees, counter-clockwise on
// screen.
func RotateDegrees(angle float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(-Radians(angle)).ThenTranslate(c)
}

// MirrorX reflects about the vertical line x = anchor.
func MirrorX(anchor float64) Affine {
	return Affine{-1, 0, 0, 1, 2 * anchor, 0}
}

// Mul returns the transform that applies o first and then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
