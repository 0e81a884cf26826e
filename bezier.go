package geocurve

import (
	"github.com/golang/geo/r3"
)

// SphericalBez is a Bézier curve on the sphere, defined by its control
// points. The first control point is the start, the last is the end.
//
// Instead of blending linearly between adjacent control points, evaluation
// rotates each point towards its successor along their great circle. With two
// control points, the curve is a [GreatCircle].
type SphericalBez []GeoPoint

// Valid reports whether the curve has at least two control points.
func (c SphericalBez) Valid() bool {
	return len(c) >= 2
}

// Finite reports whether no control point has a NaN or infinite coordinate.
func (c SphericalBez) Finite() bool {
	for _, pt := range c {
		if pt.IsNaN() || pt.IsInf() {
			return false
		}
	}
	return true
}

// Start returns the first control point. It panics if c is empty.
func (c SphericalBez) Start() GeoPoint { return c[0] }

// End returns the last control point. It panics if c is empty.
func (c SphericalBez) End() GeoPoint { return c[len(c)-1] }

// Eval evaluates the curve at t. See [Evaluator.Eval].
func (c SphericalBez) Eval(t float64) GeoPoint {
	var e Evaluator
	return e.Eval(c, t)
}

// Sample approximates the curve with Resolution(c, n, stepSize)+1 points.
// Samples are taken at i/steps for i ∈ [0, steps), and the last control
// point is appended exactly.
//
// Invalid curves return a copy of their control points.
func (c SphericalBez) Sample(n int, stepSize float64) Polyline {
	var e Evaluator
	return e.Sample(c, n, stepSize)
}

// Evaluator evaluates [SphericalBez] curves, reusing its scratch buffer
// between calls. The zero value is ready to use.
//
// An Evaluator must not be used concurrently. Use one per goroutine.
type Evaluator struct {
	// Fallback selects the axis fallback used for near-antipodal control
	// points.
	Fallback FallbackMode

	buf []r3.Vector
}

// Eval evaluates c at t using de Casteljau's algorithm, where every
// interpolation step is a rotation by a fraction t of the angle between two
// adjacent points.
//
// t = 0 and t = 1 return the first and last control points exactly. If c has
// fewer than two control points, or t is not in [0, 1], Eval returns the zero
// GeoPoint.
func (e *Evaluator) Eval(c SphericalBez, t float64) GeoPoint {
	if !c.Valid() || !(t >= 0 && t <= 1) {
		return GeoPoint{}
	}
	if t == 0 {
		return c[0]
	}
	if t == 1 {
		return c[len(c)-1]
	}

	pts := e.buf[:0]
	for _, p := range c {
		pts = append(pts, ToSphere(p))
	}
	e.buf = pts

	for n := len(pts); n > 1; n-- {
		for i := range n - 1 {
			pts[i] = NewArc(pts[i], pts[i+1], e.Fallback).Eval(t)
		}
	}
	return ToPlane(pts[0])
}

// Sample is like [SphericalBez.Sample] but reuses e's buffer.
func (e *Evaluator) Sample(c SphericalBez, n int, stepSize float64) Polyline {
	if !c.Valid() {
		return Polyline(c).Clone()
	}
	steps := Resolution(c, n, stepSize)
	out := make(Polyline, 0, steps+1)
	for i := range steps {
		out = append(out, e.Eval(c, float64(i)/float64(steps)))
	}
	return append(out, c[len(c)-1])
}
