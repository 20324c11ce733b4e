package fmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

var (
	// ErrZeroLength is the panic value of Normalize on a zero-length vector.
	ErrZeroLength = errors.New("fmath: normalize of zero-length vector")
)

// Normalize returns the unit vector of v. A zero-length vector is a caller
// error and panics.
func Normalize(v mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		panic(errors.WithStack(ErrZeroLength))
	}

	return v.Mul(1.0 / l)
}

// NormalizeOr returns the unit vector of v, or fallback when v has no direction.
// Used where a degenerate direction is an expected physical configuration
// (coincident centers) rather than a programming error.
func NormalizeOr(v, fallback mgl64.Vec2) mgl64.Vec2 {
	l := v.Len()
	if l < 1e-12 || math.IsNaN(l) {
		return fallback
	}

	return v.Mul(1.0 / l)
}

// Abs returns v with both components made positive.
func Abs(v mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{math.Abs(v.X()), math.Abs(v.Y())}
}

// VecEqual compares two vectors component-wise with an absolute error margin.
func VecEqual(a, b mgl64.Vec2, epsilon float64) bool {
	return EqualWithError(a.X(), b.X(), epsilon) && EqualWithError(a.Y(), b.Y(), epsilon)
}

// IsFinite reports whether neither component is NaN or infinite.
func IsFinite(v mgl64.Vec2) bool {
	return !math.IsNaN(v.X()) && !math.IsNaN(v.Y()) && !math.IsInf(v.X(), 0) && !math.IsInf(v.Y(), 0)
}

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// SegmentIntersection returns the crossing point of segments p1-p2 and q1-q2.
// Parallel and collinear segments report no intersection.
func SegmentIntersection(p1, p2, q1, q2 mgl64.Vec2) (mgl64.Vec2, bool) {
	r := p2.Sub(p1)
	s := q2.Sub(q1)

	denominator := Cross(r, s)
	if math.Abs(denominator) < 1e-12 {
		return mgl64.Vec2{}, false
	}

	qp := q1.Sub(p1)
	t := Cross(qp, s) / denominator
	u := Cross(qp, r) / denominator

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return mgl64.Vec2{}, false
	}

	return p1.Add(r.Mul(t)), true
}
