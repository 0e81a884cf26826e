package geocurve

import (
	"math"
)

// Vec2 is a displacement in degree space, X along longitude and Y along
// latitude.
type Vec2 struct {
	X float64
	Y float64
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Abs returns a vector with the absolute values of x and y.
func (v Vec2) Abs() Vec2 {
	return Vec2{
		X: math.Abs(v.X),
		Y: math.Abs(v.Y),
	}
}
