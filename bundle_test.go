package geocurve

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestBundleOrder(t *testing.T) {
	opts := DefaultOptions()
	opts.StepSize = 0.5

	var want [][]Segment
	for _, c := range testCurves {
		want = append(want, SplitAntimeridian(c.Sample(opts.Resolution, opts.StepSize)))
	}
	for _, workers := range []int{0, 1, 3, 64} {
		opts.Workers = workers
		got, err := Bundle(context.Background(), testCurves, opts)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}
}

func TestBundleResolution(t *testing.T) {
	opts := Options{Resolution: 4, Workers: 2}
	got, err := Bundle(context.Background(), []SphericalBez{testCurves[0]}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0]) != 1 || len(got[0][0]) != 5 {
		t.Fatalf("got %v, want a single segment of 5 points", got)
	}
}

func TestBundleDegenerate(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	curves := []SphericalBez{nil, {LonLat(1, 2)}, testCurves[1]}
	got, err := Bundle(context.Background(), curves, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if got[0] != nil {
		t.Errorf("got %v for an empty curve, want no segments", got[0])
	}
	diff(t, []Segment{{LonLat(1, 2)}}, got[1])
	if len(got[2]) != 1 {
		t.Errorf("got %d segments, want 1", len(got[2]))
	}
	if n := strings.Count(buf.String(), "too few control points"); n != 2 {
		t.Errorf("got %d warnings, want 2:\n%s", n, buf.String())
	}
}

func TestBundleNonFinite(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	curves := []SphericalBez{
		{LonLat(0, 0), LonLat(math.NaN(), 10), LonLat(20, 0)},
		{LonLat(0, 0), LonLat(10, math.Inf(1))},
		testCurves[1],
	}
	got, err := Bundle(context.Background(), curves, Options{Resolution: 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if n := strings.Count(buf.String(), "non-finite control points"); n != 2 {
		t.Errorf("got %d warnings, want 2:\n%s", n, buf.String())
	}
	if !testCurves[1].Finite() {
		t.Errorf("%v should be finite", testCurves[1])
	}
}

func TestBundleStraight(t *testing.T) {
	edges := []GreatCircle{
		{LonLat(-170, 0), LonLat(170, 0)},
		{LonLat(2.35, 48.86), LonLat(2.35, 48.86)},
		{LonLat(-3.7, 40.4), LonLat(13.4, 52.5)},
	}
	opts := Options{Resolution: 10, Fallback: FallbackRadians, Workers: 2}
	got, err := BundleStraight(context.Background(), edges, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(got[0]) < 2 {
		t.Errorf("got %d segments across the antimeridian, want at least 2", len(got[0]))
	}
	diff(t, []Segment{{edges[1].P0}}, got[1])
	diff(t, SampleGeodesic(edges[2].P0, edges[2].P1, 10, 0, FallbackRadians), Join(got[2]))
}

func TestBundleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Bundle(ctx, testCurves, DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
	if _, err := BundleStraight(ctx, []GreatCircle{{LonLat(0, 0), LonLat(1, 1)}}, DefaultOptions()); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func TestBundleEmpty(t *testing.T) {
	got, err := Bundle(context.Background(), nil, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no results", got)
	}
}
