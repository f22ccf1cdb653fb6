package gamemath

import "math"

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can return 360 - epsilon + 360 rounding to exactly 360
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// PointAt returns the point offset units away from (x, y) along angleDeg.
func PointAt(x, y, angleDeg, offset float64) (float64, float64) {
	rad := DegToRad(angleDeg)
	return x + offset*math.Cos(rad), y + offset*math.Sin(rad)
}
