package element

import "math"

// NarrowestFloatTypeName implements the §9 Open Question (b) rule:
// choose f32 whenever the magnitude is within both f32 and f64 range,
// else f64. math.MaxFloat32 is the f32 boundary.
func NarrowestFloatTypeName(v float64) string {
	if math.Abs(v) <= math.MaxFloat32 {
		return "f32"
	}
	return "f64"
}
