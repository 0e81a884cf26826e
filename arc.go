package geocurve

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// FallbackMode selects when [NewArc] abandons the cross product of its
// endpoints in favor of a fixed fallback axis.
type FallbackMode int

const (
	// FallbackLegacy compares the arc angle, in radians, against 179.9. The
	// comparison never succeeds, which keeps output identical to renders that
	// were produced with that threshold. Degenerate cross products still use
	// the fallback axis.
	FallbackLegacy FallbackMode = iota
	// FallbackRadians uses the fallback axis for arcs longer than 179.9°.
	FallbackRadians
)

func (mode FallbackMode) String() string {
	switch mode {
	case FallbackLegacy:
		return "legacy"
	case FallbackRadians:
		return "radians"
	default:
		return "FallbackMode(invalid)"
	}
}

// threshold returns the angle above which the fallback axis is used.
func (mode FallbackMode) threshold() s1.Angle {
	if mode == FallbackRadians {
		return 179.9 * s1.Degree
	}
	return 179.9
}

// degenerateAxis is the norm below which a cross product is considered to
// carry no direction.
const degenerateAxis = 1e-12

var (
	northPole = r3.Vector{X: 0, Y: 0, Z: 1}
	xAxis     = r3.Vector{X: 1, Y: 0, Z: 0}
)

// Arc is the minor great-circle arc from From towards the point that was
// passed to [NewArc]. Rotating From by Angle about Axis yields the end point,
// except when [NewArc] chose the fallback axis for a pair that is not exactly
// coincident or antipodal. Such an arc ends Angle away from From on a
// different great circle and can miss the end point by up to twice the
// difference between 180° and Angle, 0.2° with [FallbackRadians].
type Arc struct {
	From  r3.Vector
	Axis  r3.Vector
	Angle s1.Angle
}

// NewArc computes the rotation axis and angular separation of u1 and u2. Both
// vectors are normalized first.
//
// When u1 and u2 are coincident or antipodal, or the arc is longer than the
// mode's threshold, the cross product isn't used. The axis then becomes
// u1 × ẑ, or u1 × x̂ if u1 lies on the z axis, which is perpendicular to u1
// and so still rotates u1 along a great circle.
func NewArc(u1, u2 r3.Vector, mode FallbackMode) Arc {
	u1 = u1.Normalize()
	u2 = u2.Normalize()
	// Angle computes atan2(|u1×u2|, u1·u2), which equals arccos(u1·u2) but
	// stays accurate for nearly coincident and nearly antipodal vectors.
	alpha := u1.Angle(u2)

	var axis r3.Vector
	if alpha <= mode.threshold() {
		axis = u1.Cross(u2)
	}
	if axis.Norm() < degenerateAxis {
		axis = fallbackAxis(u1)
	}
	return Arc{
		From:  u1,
		Axis:  axis.Normalize(),
		Angle: alpha,
	}
}

func fallbackAxis(u r3.Vector) r3.Vector {
	if axis := u.Cross(northPole); axis.Norm() >= degenerateAxis {
		return axis
	}
	return u.Cross(xAxis)
}

// Eval returns the point reached after rotating by t·Angle.
func (a Arc) Eval(t float64) r3.Vector {
	return Rotate(a.From, a.Axis, s1.Angle(t)*a.Angle)
}

// To returns the end point of the arc.
func (a Arc) To() r3.Vector {
	return a.Eval(1)
}
