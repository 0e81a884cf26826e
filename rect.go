package geocurve

import (
	"fmt"
	"math"
)

// Bounds is an axis-aligned box in longitude/latitude space. It does not wrap
// around the antimeridian; MinLon <= MaxLon for all non-empty bounds.
type Bounds struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// EmptyBounds contains no points. Its union with any point is that point.
var EmptyBounds = Bounds{
	MinLon: math.Inf(1),
	MinLat: math.Inf(1),
	MaxLon: math.Inf(-1),
	MaxLat: math.Inf(-1),
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g°, %g°]×[%g°, %g°]", b.MinLon, b.MaxLon, b.MinLat, b.MaxLat)
}

// IsEmpty reports whether the bounds contain no points.
func (b Bounds) IsEmpty() bool {
	return b.MinLon > b.MaxLon || b.MinLat > b.MaxLat
}

// Width returns the longitudinal extent in degrees, or 0 for empty bounds.
func (b Bounds) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxLon - b.MinLon
}

// Height returns the latitudinal extent in degrees, or 0 for empty bounds.
func (b Bounds) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxLat - b.MinLat
}

// UnionPoint returns the smallest bounds containing b and pt.
func (b Bounds) UnionPoint(pt GeoPoint) Bounds {
	return Bounds{
		MinLon: min(b.MinLon, pt.Lon),
		MinLat: min(b.MinLat, pt.Lat),
		MaxLon: max(b.MaxLon, pt.Lon),
		MaxLat: max(b.MaxLat, pt.Lat),
	}
}

// Union returns the smallest bounds containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinLon: min(b.MinLon, o.MinLon),
		MinLat: min(b.MinLat, o.MinLat),
		MaxLon: max(b.MaxLon, o.MaxLon),
		MaxLat: max(b.MaxLat, o.MaxLat),
	}
}

// BoundsOf returns the smallest bounds containing all of pts.
func BoundsOf(pts []GeoPoint) Bounds {
	b := EmptyBounds
	for _, pt := range pts {
		b = b.UnionPoint(pt)
	}
	return b
}
