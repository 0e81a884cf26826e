package geocurve

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want GeoPoint, epsilon float64) {
	t.Helper()
	if math.Abs(got.Lon-want.Lon) > epsilon || math.Abs(got.Lat-want.Lat) > epsilon {
		t.Errorf("got %s, want %s", got, want)
	}
}

func assertNearVec(t *testing.T, got, want r3.Vector, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Norm(); d > epsilon || math.IsNaN(d) {
		t.Errorf("got %v, want %v", got, want)
	}
}
