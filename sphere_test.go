package geocurve

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestSphereRoundTrip(t *testing.T) {
	const epsilon = 1e-9
	lons := []float64{-179.999, -179.5, -170, -90, -45.25, -1e-7, 0, 1e-7, 0.5, 33.3, 90, 135, 170, 179.9, 180}
	lats := []float64{-89.999, -89.5, -60, -10, 0, 1e-9, 10, 45, 60, 89.5, 89.999}
	for _, lon := range lons {
		for _, lat := range lats {
			p := LonLat(lon, lat)
			v := ToSphere(p)
			if !v.IsUnit() {
				t.Errorf("ToSphere(%s) = %v isn't a unit vector", p, v)
			}
			assertNear(t, ToPlane(v), p, epsilon)
		}
	}
}

func TestToSphereAxes(t *testing.T) {
	const epsilon = 1e-12
	assertNearVec(t, ToSphere(LonLat(0, 0)), r3.Vector{X: 1}, epsilon)
	assertNearVec(t, ToSphere(LonLat(90, 0)), r3.Vector{Y: 1}, epsilon)
	assertNearVec(t, ToSphere(LonLat(180, 0)), r3.Vector{X: -1}, epsilon)
	assertNearVec(t, ToSphere(LonLat(-90, 0)), r3.Vector{Y: -1}, epsilon)
	assertNearVec(t, ToSphere(LonLat(0, 90)), r3.Vector{Z: 1}, epsilon)
	assertNearVec(t, ToSphere(LonLat(123, -90)), r3.Vector{Z: -1}, epsilon)
}

func TestToPlaneConventions(t *testing.T) {
	// Longitude is undefined at the poles.
	for _, v := range []r3.Vector{{Z: 1}, {Z: -3}} {
		p := ToPlane(v)
		if p.Lon != 0 {
			t.Errorf("got longitude %g at pole %v, want 0", p.Lon, v)
		}
		assertNear(t, p, LonLat(0, math.Copysign(90, v.Z)), 1e-12)
	}
	if p := ToPlane(ToSphere(LonLat(75, 90))); math.Abs(p.Lat-90) > 1e-12 || p.IsNaN() {
		t.Errorf("got %s at the north pole", p)
	}

	diff(t, GeoPoint{}, ToPlane(r3.Vector{}))

	// The result doesn't depend on the vector's magnitude.
	assertNear(t, ToPlane(r3.Vector{X: 2, Y: 2}), LonLat(45, 0), 1e-12)

	// -180° is folded onto 180°.
	for _, v := range []r3.Vector{{X: -1, Y: math.Copysign(0, -1)}, {X: -1}} {
		if p := ToPlane(v); p.Lon <= 179.999999 || p.Lon > 180 {
			t.Errorf("got longitude %g for %v, want 180", p.Lon, v)
		}
	}
}
