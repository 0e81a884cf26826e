package geocurve

import (
	"math"
)

// ApproxLength approximates the length of the control polygon through pts, in
// degrees. It sums the euclidean distances between consecutive points in
// degree space.
//
// A longitude difference larger than 180° is reduced by 180°, so that a jump
// across the antimeridian doesn't count as a trip around the world. This is a
// rough correction, not the true wrapped distance.
func ApproxLength(pts []GeoPoint) float64 {
	var length float64
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1]).Abs()
		if d.X > 180 {
			d.X -= 180
		}
		length += d.Hypot()
	}
	return length
}

// Resolution returns the number of sampling steps for the curve with control
// points pts.
//
// If n is positive, it is returned as is. Otherwise, the result is
// ⌈ApproxLength(pts) / |stepSize|⌉, but at least 1. A step size of zero or NaN
// is replaced by [DefaultStepSize]. Decreasing |stepSize| never decreases the
// result.
func Resolution(pts []GeoPoint, n int, stepSize float64) int {
	if n > 0 {
		return n
	}
	stepSize = math.Abs(stepSize)
	if stepSize == 0 || math.IsNaN(stepSize) {
		stepSize = DefaultStepSize
	}
	steps := math.Ceil(ApproxLength(pts) / stepSize)
	if !(steps >= 1) {
		return 1
	}
	if steps > maxResolution {
		return maxResolution
	}
	return int(steps)
}

// maxResolution caps derived resolutions so that degenerate step sizes can't
// request unbounded allocations.
const maxResolution = 1 << 20
