package geom

import "math"

// Radians converts an angle from degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts an angle from radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees maps an angle in degrees to the range [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360.
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
