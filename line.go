package geocurve

import (
	"github.com/golang/geo/s1"
)

// GreatCircle represents the minor great-circle arc between two points. It is
// both a [Curve] and a [Sampler].
type GreatCircle struct {
	// The arc's start point.
	P0 GeoPoint
	// The arc's end point.
	P1 GeoPoint
}

func (gc GreatCircle) arc(mode FallbackMode) Arc {
	return NewArc(ToSphere(gc.P0), ToSphere(gc.P1), mode)
}

// Length returns the central angle between the end points.
func (gc GreatCircle) Length() s1.Angle {
	return gc.arc(FallbackLegacy).Angle
}

func (gc GreatCircle) Start() GeoPoint { return gc.P0 }
func (gc GreatCircle) End() GeoPoint   { return gc.P1 }

// Eval returns the point at fraction t of the way from P0 to P1. Like
// [Evaluator.Eval], it returns P0 and P1 exactly for t = 0 and t = 1, and the
// zero GeoPoint for t outside [0, 1].
func (gc GreatCircle) Eval(t float64) GeoPoint {
	switch {
	case !(t >= 0 && t <= 1):
		return GeoPoint{}
	case t == 0:
		return gc.P0
	case t == 1:
		return gc.P1
	}
	return ToPlane(gc.arc(FallbackLegacy).Eval(t))
}

// Sample is equivalent to SampleGeodesic(gc.P0, gc.P1, n, stepSize, FallbackLegacy).
func (gc GreatCircle) Sample(n int, stepSize float64) Polyline {
	return SampleGeodesic(gc.P0, gc.P1, n, stepSize, FallbackLegacy)
}

// Subsegment returns the arc between the parameters start and end.
func (gc GreatCircle) Subsegment(start, end float64) GreatCircle {
	return GreatCircle{gc.Eval(start), gc.Eval(end)}
}

// SampleGeodesic samples the minor great-circle arc from start to end.
//
// The arc is divided into steps = Resolution({start, end}, n, stepSize)
// rotations of equal angle. The result starts with start and ends with end,
// both exactly, and has steps+1 points. If start equals end, the result is the
// single point.
//
// Because the minor arc is used, points on either side of the antimeridian,
// such as (-170°, 0°) and (170°, 0°), are connected across it. Pass the result
// to [SplitAntimeridian] before drawing it.
func SampleGeodesic(start, end GeoPoint, n int, stepSize float64, mode FallbackMode) Polyline {
	if start == end {
		return Polyline{start}
	}

	steps := Resolution([]GeoPoint{start, end}, n, stepSize)
	arc := NewArc(ToSphere(start), ToSphere(end), mode)
	out := make(Polyline, 0, steps+1)
	out = append(out, start)
	for i := 1; i < steps; i++ {
		out = append(out, ToPlane(Rotate(arc.From, arc.Axis, s1.Angle(i)*arc.Angle/s1.Angle(steps))))
	}
	return append(out, end)
}
