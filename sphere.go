package geocurve

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// ToSphere maps a geographic point onto the unit sphere. The colatitude θ is
// measured from the positive z axis and the longitude φ from the positive x
// axis, giving (sinθ·cosφ, sinθ·sinφ, cosθ).
func ToSphere(pt GeoPoint) r3.Vector {
	phi := (s1.Angle(pt.Lon) * s1.Degree).Radians()
	theta := math.Pi/2 - (s1.Angle(pt.Lat) * s1.Degree).Radians()
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return r3.Vector{
		X: sinTheta * cosPhi,
		Y: sinTheta * sinPhi,
		Z: cosTheta,
	}
}

// ToPlane is the inverse of [ToSphere]. v need not be normalized.
//
// At the poles the longitude is undefined; ToPlane reports 0. A longitude of
// exactly -180° is reported as 180°, so results lie in (-180, 180]. The zero
// vector maps to (0, 0).
func ToPlane(v r3.Vector) GeoPoint {
	r2 := math.Hypot(v.X, v.Y)
	if r2 == 0 && v.Z == 0 {
		return GeoPoint{}
	}
	// atan2(z, r₂) equals π/2 − arccos(z/‖v‖), and atan2(y, x) equals
	// sign(y)·arccos(x/r₂), but both keep full precision near ±1.
	lat := max(-90, min(90, s1.Angle(math.Atan2(v.Z, r2)).Degrees()))
	if r2 == 0 {
		return GeoPoint{Lon: 0, Lat: lat}
	}
	lon := s1.Angle(math.Atan2(v.Y, v.X)).Degrees()
	if lon <= -180 || lon > 180 {
		lon = 180
	}
	return GeoPoint{Lon: lon, Lat: lat}
}
