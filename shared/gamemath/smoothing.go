package gamemath

import "math"

// SmoothingFactor returns the fraction of the remaining distance covered in one
// step of exponential smoothing at rate over dt. Clamped to [0, 1] so a step
// never overshoots its target.
func SmoothingFactor(rate, dt float64) float64 {
	f := rate * dt
	if f < 0 {
		return 0
	}
	return math.Min(1, f)
}

// Smooth moves current toward target by SmoothingFactor(rate, dt).
func Smooth(current, target, rate, dt float64) float64 {
	return current + (target-current)*SmoothingFactor(rate, dt)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// AxisStep returns -1, 0 or 1 depending on which side of the detection band
// [current-band, current+band] the target lies on.
func AxisStep(current, target, band float64) float64 {
	if current+band < target {
		return 1
	}
	if current-band > target {
		return -1
	}
	return 0
}
