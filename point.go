package geocurve

import (
	"fmt"
	"math"
)

// GeoPoint is a geographic position in degrees. Longitude is expected in
// [-180, 180] and latitude in [-90, 90].
type GeoPoint struct {
	Lon float64
	Lat float64
}

// LonLat returns the point (lon, lat).
func LonLat(lon, lat float64) GeoPoint {
	return GeoPoint{Lon: lon, Lat: lat}
}

func (pt GeoPoint) String() string {
	return fmt.Sprintf("(%g°, %g°)", pt.Lon, pt.Lat)
}

// Sub computes pt−o in degree space. No wrapping is applied to the
// longitude difference.
func (pt GeoPoint) Sub(o GeoPoint) Vec2 {
	return Vec2{
		X: pt.Lon - o.Lon,
		Y: pt.Lat - o.Lat,
	}
}

// Distance returns the euclidean distance between two points, measured in
// degrees. It is a cheap stand-in for the great-circle distance.
func (pt GeoPoint) Distance(o GeoPoint) float64 {
	return pt.Sub(o).Hypot()
}

// Valid reports whether the point lies within the usual longitude and
// latitude ranges.
func (pt GeoPoint) Valid() bool {
	return pt.Lon >= -180 && pt.Lon <= 180 && pt.Lat >= -90 && pt.Lat <= 90
}

// IsInf reports whether at least one of lon and lat is infinite.
func (pt GeoPoint) IsInf() bool {
	return math.IsInf(pt.Lon, 0) || math.IsInf(pt.Lat, 0)
}

// IsNaN reports whether at least one of lon and lat is NaN.
func (pt GeoPoint) IsNaN() bool {
	return math.IsNaN(pt.Lon) || math.IsNaN(pt.Lat)
}
