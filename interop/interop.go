// Package interop converts between geocurve values and the geometry types of
// github.com/twpayne/go-geom and github.com/paulmach/go.geojson, so that
// curves can be read from and handed to renderers and exporters built on
// those libraries.
package interop

import (
	"context"
	"maps"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"honnef.co/go/geocurve"
)

// Property keys read from input features and written to output features.
const (
	// PropStraight marks an input feature whose end points are to be
	// connected by a great circle, ignoring any intermediate coordinates.
	PropStraight = "straight"
	// PropKind is set on output features to KindBezier or KindStraight.
	PropKind = "kind"
	// PropSegments is set on output features to the number of segments.
	PropSegments = "segments"
)

const (
	KindBezier   = "bezier"
	KindStraight = "straight"
)

// Curve is a curve read from a feature, together with the feature's
// properties.
type Curve struct {
	Controls   geocurve.SphericalBez
	Straight   bool
	Properties map[string]interface{}
}

// ReadCurves parses a GeoJSON FeatureCollection. Every feature must have a
// LineString geometry whose coordinates are the curve's control points, in
// degrees.
//
// A feature is drawn as a great circle between its first and last
// coordinates if its "straight" property is true, or if straightTwoPoint is
// set and it has exactly two coordinates.
func ReadCurves(data []byte, straightTwoPoint bool) ([]Curve, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse feature collection")
	}

	curves := make([]Curve, 0, len(fc.Features))
	for i, f := range fc.Features {
		c, err := readCurve(f, straightTwoPoint)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
		curves = append(curves, c)
	}
	return curves, nil
}

func readCurve(f *geojson.Feature, straightTwoPoint bool) (Curve, error) {
	if f.Geometry == nil {
		return Curve{}, errors.New("missing geometry")
	}
	if !f.Geometry.IsLineString() {
		return Curve{}, errors.Errorf("unsupported geometry type %s", f.Geometry.Type)
	}

	controls := make(geocurve.SphericalBez, 0, len(f.Geometry.LineString))
	for j, pos := range f.Geometry.LineString {
		if len(pos) < 2 {
			return Curve{}, errors.Errorf("coordinate %d has %d dimensions", j, len(pos))
		}
		p := geocurve.LonLat(pos[0], pos[1])
		if !p.Valid() {
			return Curve{}, errors.Errorf("coordinate %d: %s is out of range", j, p)
		}
		controls = append(controls, p)
	}
	if len(controls) < 2 {
		return Curve{}, errors.Errorf("need at least 2 coordinates, got %d", len(controls))
	}

	straight := f.PropertyMustBool(PropStraight, false) ||
		(straightTwoPoint && len(controls) == 2)
	return Curve{
		Controls:   controls,
		Straight:   straight,
		Properties: maps.Clone(f.Properties),
	}, nil
}

// Render samples all curves and splits them at the antimeridian. Straight
// curves go through [geocurve.BundleStraight], all others through
// [geocurve.Bundle]. The result is in the order of curves.
func Render(ctx context.Context, curves []Curve, opts geocurve.Options) ([][]geocurve.Segment, error) {
	var (
		beziers    []geocurve.SphericalBez
		bezierIdx  []int
		straights  []geocurve.GreatCircle
		straightIx []int
	)
	for i, c := range curves {
		if c.Straight {
			straights = append(straights, geocurve.GreatCircle{P0: c.Controls.Start(), P1: c.Controls.End()})
			straightIx = append(straightIx, i)
		} else {
			beziers = append(beziers, c.Controls)
			bezierIdx = append(bezierIdx, i)
		}
	}

	bsegs, err := geocurve.Bundle(ctx, beziers, opts)
	if err != nil {
		return nil, errors.Wrap(err, "sample curves")
	}
	ssegs, err := geocurve.BundleStraight(ctx, straights, opts)
	if err != nil {
		return nil, errors.Wrap(err, "sample straight edges")
	}

	out := make([][]geocurve.Segment, len(curves))
	for j, i := range bezierIdx {
		out[i] = bsegs[j]
	}
	for j, i := range straightIx {
		out[i] = ssegs[j]
	}
	return out, nil
}

// MultiLineString converts segments to a go-geom MultiLineString with one
// XY line string per segment. Segments with fewer than two points cannot be
// drawn and are skipped.
func MultiLineString(segs []geocurve.Segment) (*geom.MultiLineString, error) {
	coords := make([][]geom.Coord, 0, len(segs))
	for _, s := range segs {
		if len(s) < 2 {
			continue
		}
		line := make([]geom.Coord, len(s))
		for i, p := range s {
			line[i] = geom.Coord{p.Lon, p.Lat}
		}
		coords = append(coords, line)
	}
	mls, err := geom.NewMultiLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, errors.Wrap(err, "build multi line string")
	}
	return mls, nil
}

// Feature returns a GeoJSON MultiLineString feature for segs. The properties
// are copied, and the segment count is added under "segments". The feature's
// bbox covers all segments; it is omitted if there are no points.
func Feature(segs []geocurve.Segment, props map[string]interface{}) (*geojson.Feature, error) {
	mls, err := MultiLineString(segs)
	if err != nil {
		return nil, err
	}
	lines := make([][][]float64, mls.NumLineStrings())
	for i := range lines {
		coords := mls.LineString(i).Coords()
		line := make([][]float64, len(coords))
		for j, c := range coords {
			line[j] = []float64{c.X(), c.Y()}
		}
		lines[i] = line
	}

	f := geojson.NewMultiLineStringFeature(lines...)
	if b := segmentBounds(segs); !b.IsEmpty() {
		f.BoundingBox = []float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat}
	}
	for k, v := range props {
		f.SetProperty(k, v)
	}
	f.SetProperty(PropSegments, len(lines))
	return f, nil
}

func segmentBounds(segs []geocurve.Segment) geocurve.Bounds {
	b := geocurve.EmptyBounds
	for _, s := range segs {
		b = b.Union(s.Bounds())
	}
	return b
}

// FeatureCollection builds the output collection for curves and their
// segments, as returned by [Render].
func FeatureCollection(curves []Curve, segs [][]geocurve.Segment) (*geojson.FeatureCollection, error) {
	if len(curves) != len(segs) {
		return nil, errors.Errorf("got %d curves but %d segment lists", len(curves), len(segs))
	}
	fc := geojson.NewFeatureCollection()
	for i, c := range curves {
		f, err := Feature(segs[i], c.Properties)
		if err != nil {
			return nil, errors.Wrapf(err, "feature %d", i)
		}
		kind := KindBezier
		if c.Straight {
			kind = KindStraight
		}
		f.SetProperty(PropKind, kind)
		fc.AddFeature(f)
	}
	return fc, nil
}
