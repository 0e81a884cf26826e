package geocurve

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

var fallbackModes = []FallbackMode{FallbackLegacy, FallbackRadians}

func TestArcQuarter(t *testing.T) {
	const epsilon = 1e-9
	for _, mode := range fallbackModes {
		a := NewArc(ToSphere(LonLat(0, 0)), ToSphere(LonLat(90, 0)), mode)
		if d := math.Abs((a.Angle - 90*s1.Degree).Radians()); d > epsilon {
			t.Errorf("%s: got angle %v, want 90°", mode, a.Angle.Degrees())
		}
		assertNearVec(t, a.Axis, r3.Vector{Z: 1}, epsilon)
		assertNear(t, ToPlane(a.Eval(0.5)), LonLat(45, 0), epsilon)
		assertNear(t, ToPlane(a.To()), LonLat(90, 0), epsilon)
	}
}

func TestArcNormalizesInput(t *testing.T) {
	const epsilon = 1e-9
	a := NewArc(ToSphere(LonLat(10, 20)).Mul(3), ToSphere(LonLat(-30, 40)).Mul(0.5), FallbackLegacy)
	if !a.From.IsUnit() || !a.Axis.IsUnit() {
		t.Errorf("arc %+v isn't normalized", a)
	}
	assertNear(t, ToPlane(a.To()), LonLat(-30, 40), epsilon)
}

func TestArcDegenerate(t *testing.T) {
	const epsilon = 1e-9
	tests := []struct {
		name string
		from GeoPoint
		to   GeoPoint
		mid  GeoPoint
	}{
		{"coincident", LonLat(12, 34), LonLat(12, 34), LonLat(12, 34)},
		// The fallback axis u × ẑ takes the path over the north pole.
		{"antipodal", LonLat(0, 0), LonLat(180, 0), LonLat(0, 90)},
		// At the poles, the fallback axis is u × x̂.
		{"poles", LonLat(0, 90), LonLat(0, -90), LonLat(0, 0)},
	}
	for _, tt := range tests {
		for _, mode := range fallbackModes {
			a := NewArc(ToSphere(tt.from), ToSphere(tt.to), mode)
			if !a.Axis.IsUnit() {
				t.Errorf("%s, %s: axis %v isn't a unit vector", tt.name, mode, a.Axis)
			}
			for _, f := range []float64{0, 0.25, 0.5, 1} {
				if v := a.Eval(f); math.IsNaN(v.Norm()) {
					t.Errorf("%s, %s: Eval(%g) is NaN", tt.name, mode, f)
				}
			}
			assertNearVec(t, a.Eval(0.5), ToSphere(tt.mid), epsilon)
			assertNearVec(t, a.To(), ToSphere(tt.to), epsilon)
		}
	}
}

func TestArcFallbackThreshold(t *testing.T) {
	const epsilon = 1e-9
	from := ToSphere(LonLat(0, 0))
	to := ToSphere(LonLat(179.95, 0))

	// With the legacy threshold, the arc follows the equator.
	legacy := NewArc(from, to, FallbackLegacy)
	assertNear(t, ToPlane(legacy.Eval(0.5)), LonLat(89.975, 0), epsilon)
	assertNear(t, ToPlane(legacy.To()), LonLat(179.95, 0), epsilon)

	// Past 179.9°, the fallback axis is used and the arc passes the pole.
	radians := NewArc(from, to, FallbackRadians)
	if mid := ToPlane(radians.Eval(0.5)); mid.Lat < 89 {
		t.Errorf("got midpoint %s, want a point near the north pole", mid)
	}
	if legacy.Angle != radians.Angle {
		t.Errorf("angles differ: %v != %v", legacy.Angle, radians.Angle)
	}
	// The fallback arc ends at (180°, 0.05°), on the meridian plane rather
	// than at the target.
	assertNear(t, ToPlane(radians.To()), LonLat(180, 0.05), epsilon)
	if miss := radians.To().Angle(to).Degrees(); miss < 0.05 || miss > 0.1 {
		t.Errorf("fallback arc misses its end point by %v°, want about 0.07°", miss)
	}

	// Sampling still ends exactly at the end point.
	pl := SampleGeodesic(LonLat(0, 0), LonLat(179.95, 0), 4, 0, FallbackRadians)
	if end := pl.End(); end != LonLat(179.95, 0) {
		t.Errorf("got end point %s, want %s", end, LonLat(179.95, 0))
	}
}

func TestFallbackModeString(t *testing.T) {
	diff(t, "legacy", FallbackLegacy.String())
	diff(t, "radians", FallbackRadians.String())
	diff(t, "FallbackMode(invalid)", FallbackMode(7).String())
}
