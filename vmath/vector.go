package vmath

import "math"

// Normalize2D returns a unit vector, zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// ClampMagnitude limits vector to maxMag while preserving direction
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := Magnitude(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// FromAngle returns the vector of length mag pointing at angle
func FromAngle(angle, mag float64) (x, y float64) {
	return math.Cos(angle) * mag, math.Sin(angle) * mag
}

// RandomDirection returns a unit vector with uniformly random heading
func RandomDirection(rng *FastRand) (x, y float64) {
	return FromAngle(rng.Float64()*2*math.Pi, 1)
}
