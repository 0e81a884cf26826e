package geocurve

import (
	"math"
)

const (
	// CrossingLongitude is the magnitude both longitudes of a pair of
	// consecutive points must exceed for a sign change between them to count
	// as an antimeridian crossing, rather than a crossing of the prime
	// meridian.
	CrossingLongitude = 170.0
	// BoundaryLongitude is the magnitude of the longitude of the points
	// inserted on either side of an antimeridian crossing.
	BoundaryLongitude = 179.9
)

// Segment is a part of a [Polyline] that doesn't cross the antimeridian and
// can be drawn without wrapping around the map.
type Segment []GeoPoint

// Bounds returns the smallest bounds containing the segment.
func (s Segment) Bounds() Bounds {
	return BoundsOf(s)
}

// SplitAntimeridian splits pl wherever it crosses the antimeridian.
//
// Two consecutive points a and d cross the antimeridian if their longitudes
// have different signs and both exceed [CrossingLongitude] in magnitude. At
// every crossing, the current segment ends with a and a synthetic point at
// (sign(a.Lon)·[BoundaryLongitude], m), and the next segment begins with a
// synthetic point at (sign(d.Lon)·BoundaryLongitude, m) followed by d, where m
// is the mean of the latitudes of a and d.
//
// pl is not modified. The synthetic points are the only points that aren't
// in pl; [Join] removes them again.
func SplitAntimeridian(pl Polyline) []Segment {
	if len(pl) == 0 {
		return nil
	}

	var segs []Segment
	cur := Segment{pl[0]}
	for i := 1; i < len(pl); i++ {
		a, d := pl[i-1], pl[i]
		if crossesAntimeridian(a, d) {
			lat := 0.5 * (a.Lat + d.Lat)
			b := GeoPoint{Lon: math.Copysign(BoundaryLongitude, a.Lon), Lat: lat}
			c := GeoPoint{Lon: math.Copysign(BoundaryLongitude, d.Lon), Lat: lat}
			segs = append(segs, append(cur, b))
			cur = Segment{c}
		}
		cur = append(cur, d)
	}
	return append(segs, cur)
}

func crossesAntimeridian(a, d GeoPoint) bool {
	return math.Signbit(a.Lon) != math.Signbit(d.Lon) &&
		math.Abs(a.Lon) > CrossingLongitude &&
		math.Abs(d.Lon) > CrossingLongitude
}

// Join is the inverse of [SplitAntimeridian]. It concatenates segs, dropping
// the synthetic point at the end of every segment but the last and at the
// start of every segment but the first.
func Join(segs []Segment) Polyline {
	var out Polyline
	for i, s := range segs {
		if i > 0 {
			s = s[1:]
		}
		if i < len(segs)-1 {
			s = s[:len(s)-1]
		}
		out = append(out, s...)
	}
	return out
}
