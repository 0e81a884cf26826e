package geocurve

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Rotation describes a 3×3 rotation matrix via coefficients, in row-major
// order:
//
//	| N0 N1 N2 |
//	| N3 N4 N5 |
//	| N6 N7 N8 |
//
// The idea is that (A * B) * v == A * (B * v).
type Rotation struct {
	// We represent Rotation as a struct instead of an array because structs
	// benefit from SROA and arrays don't.

	N0, N1, N2 float64
	N3, N4, N5 float64
	N6, N7, N8 float64
}

// IdentityRotation is the rotation by zero radians.
var IdentityRotation = Rotation{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// RotationAbout creates a rotation by th about axis. A positive angle rotates
// counterclockwise when looking down the axis towards the origin.
//
// The matrix is derived from the unit quaternion (a, b, c, d) with
// a = cos(th/2) and (b, c, d) = axis·sin(th/2), which is equivalent to
// Rodrigues' rotation formula. axis is normalized first; the zero axis
// yields [IdentityRotation].
func RotationAbout(axis r3.Vector, th s1.Angle) Rotation {
	n := axis.Norm()
	if n == 0 {
		return IdentityRotation
	}
	axis = axis.Mul(1 / n)

	s, a := math.Sincos(th.Radians() / 2)
	b, c, d := axis.X*s, axis.Y*s, axis.Z*s
	aa, bb, cc, dd := a*a, b*b, c*c, d*d
	bc, ad, ac, ab, bd, cd := b*c, a*d, a*c, a*b, b*d, c*d
	return Rotation{
		aa + bb - cc - dd, 2 * (bc - ad), 2 * (bd + ac),
		2 * (bc + ad), aa + cc - bb - dd, 2 * (cd - ab),
		2 * (bd - ac), 2 * (cd + ab), aa + dd - bb - cc,
	}
}

// Rotate rotates v by th about axis. See [RotationAbout] for the conventions.
func Rotate(v, axis r3.Vector, th s1.Angle) r3.Vector {
	return RotationAbout(axis, th).Apply(v)
}

// Coefficients returns the coefficients of the rotation in row-major order.
func (rot Rotation) Coefficients() [9]float64 {
	return [9]float64{
		rot.N0, rot.N1, rot.N2,
		rot.N3, rot.N4, rot.N5,
		rot.N6, rot.N7, rot.N8,
	}
}

// Apply returns rot * v.
func (rot Rotation) Apply(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rot.N0*v.X + rot.N1*v.Y + rot.N2*v.Z,
		Y: rot.N3*v.X + rot.N4*v.Y + rot.N5*v.Z,
		Z: rot.N6*v.X + rot.N7*v.Y + rot.N8*v.Z,
	}
}

// Mul returns rot * o, the rotation that first applies o and then rot.
func (rot Rotation) Mul(o Rotation) Rotation {
	return Rotation{
		rot.N0*o.N0 + rot.N1*o.N3 + rot.N2*o.N6,
		rot.N0*o.N1 + rot.N1*o.N4 + rot.N2*o.N7,
		rot.N0*o.N2 + rot.N1*o.N5 + rot.N2*o.N8,

		rot.N3*o.N0 + rot.N4*o.N3 + rot.N5*o.N6,
		rot.N3*o.N1 + rot.N4*o.N4 + rot.N5*o.N7,
		rot.N3*o.N2 + rot.N4*o.N5 + rot.N5*o.N8,

		rot.N6*o.N0 + rot.N7*o.N3 + rot.N8*o.N6,
		rot.N6*o.N1 + rot.N7*o.N4 + rot.N8*o.N7,
		rot.N6*o.N2 + rot.N7*o.N5 + rot.N8*o.N8,
	}
}

// Transpose returns the transposed matrix. For a rotation, this is its
// inverse.
func (rot Rotation) Transpose() Rotation {
	return Rotation{
		rot.N0, rot.N3, rot.N6,
		rot.N1, rot.N4, rot.N7,
		rot.N2, rot.N5, rot.N8,
	}
}

// Determinant returns the determinant of the matrix. It is 1 for proper
// rotations, up to rounding.
func (rot Rotation) Determinant() float64 {
	return rot.N0*(rot.N4*rot.N8-rot.N5*rot.N7) -
		rot.N1*(rot.N3*rot.N8-rot.N5*rot.N6) +
		rot.N2*(rot.N3*rot.N7-rot.N4*rot.N6)
}

// IsNaN reports whether at least one coefficient is NaN.
func (rot Rotation) IsNaN() bool {
	for _, n := range rot.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}
