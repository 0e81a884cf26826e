package geocurve

// DefaultStepSize is the sample spacing, in degrees, used when a step size of
// zero is requested.
const DefaultStepSize = 1.0

// Curve describes a curve on the sphere, parametrized by t ∈ [0, 1] and
// evaluated in geographic coordinates.
type Curve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) GeoPoint
	// Start returns the curve's start point. It is equal to Eval(0).
	Start() GeoPoint
	// End returns the curve's end point. It is equal to Eval(1).
	End() GeoPoint
}

// Sampler describes curves that can be approximated by a [Polyline].
type Sampler interface {
	Curve
	// Sample approximates the curve with n+1 points, or with a number of
	// points derived from stepSize if n <= 0. See [Resolution].
	Sample(n int, stepSize float64) Polyline
}

var _ Sampler = SphericalBez(nil)
var _ Sampler = GreatCircle{}

// Polyline is a sequence of points sampled from a curve, in order.
type Polyline []GeoPoint

// Start returns the first point of the polyline. It panics if the polyline is
// empty.
func (pl Polyline) Start() GeoPoint { return pl[0] }

// End returns the last point of the polyline. It panics if the polyline is
// empty.
func (pl Polyline) End() GeoPoint { return pl[len(pl)-1] }

// Clone returns a copy of the polyline that shares no storage with pl.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	return append(Polyline(nil), pl...)
}
