// Package geocurve draws curved connector lines between points on the globe,
// as used by flow maps and edge-bundled migration maps. Curves are evaluated
// on the unit sphere and returned in longitude/latitude degrees, split into
// segments that can be drawn on a flat map without wrapping around it.
//
// # Coordinates
//
// Points are [GeoPoint] values holding a longitude and a latitude in degrees.
// For evaluation they are mapped onto the unit sphere with [ToSphere], using
// the vector type of [github.com/golang/geo/r3], and mapped back with
// [ToPlane]. Sphere vectors never leave a single evaluation.
//
// # Curves
//
// [SphericalBez] is a Bézier curve defined by an arbitrary number of control
// points. It is evaluated with de Casteljau's algorithm, except that the
// linear blend between two adjacent points is replaced by a rotation along
// their great circle (see [Arc] and [Rotation]). A curve with two control
// points is a [GreatCircle], which can also be sampled directly with
// [SampleGeodesic].
//
// Both evaluate exactly to their first and last control points at t = 0 and
// t = 1. Invalid requests, such as fewer than two control points or t outside
// of [0, 1], produce the zero GeoPoint instead of an error or a panic.
//
// # Sampling
//
// Curves are approximated by a [Polyline]. The number of samples is either
// given explicitly or derived from the length of the control polygon and a
// step size in degrees, see [Resolution].
//
// # The antimeridian
//
// A polyline that crosses the ±180° meridian would be drawn across the whole
// map. [SplitAntimeridian] breaks it into [Segment] values at every crossing,
// inserting a point on either side of the crossing. [Join] undoes this.
//
// # Batches
//
// [Bundle] and [BundleStraight] sample many curves concurrently and return
// their segments in input order. All other functions are pure and safe to call
// from multiple goroutines, with the exception of [Evaluator], which reuses a
// buffer and must be confined to one goroutine.
//
// # Rotation axis fallback
//
// When two adjacent points are coincident or antipodal, their cross product
// doesn't determine a rotation axis and a fixed fallback axis is used.
// Historically, the check for near-antipodal points compared an angle in
// radians against a threshold in degrees and never triggered. [FallbackLegacy]
// keeps that behavior so that renders stay comparable; [FallbackRadians]
// applies the threshold as intended.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Rodrigues' rotation formula]
//   - [Edge-Path Bundling] by Wallinger et al.
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Rodrigues' rotation formula]: https://en.wikipedia.org/wiki/Rodrigues%27_rotation_formula
// [Edge-Path Bundling]: https://arxiv.org/abs/2108.05467
package geocurve
