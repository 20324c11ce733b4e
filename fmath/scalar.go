// Package fmath holds the numeric primitives shared by the simulation:
// scalar tolerance helpers, vector helpers over mgl64.Vec2 and the 2x2
// Transform2 used for body rotation.
package fmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance is the band used by boundary tests (point-in-box, extents
// filtering) to avoid flicker on exact comparisons.
const Tolerance = 0.01

// DefaultEpsilon is the margin used by EqualWithError when none is given.
const DefaultEpsilon = 0.0001

// Clamp returns val bounded to the interval spanned by from and to,
// whichever of the two is greater.
func Clamp(from, val, to float64) float64 {
	if from > to {
		from, to = to, from
	}

	return mgl64.Clamp(val, from, to)
}

// InRange reports whether val lies in the closed interval spanned by from and to.
func InRange(from, val, to float64) bool {
	if from < to {
		return from <= val && val <= to
	}

	return to <= val && val <= from
}

// EqualWithError compares two scalars with an absolute error margin.
func EqualWithError(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= math.Abs(epsilon)
}

// DegToRad converts degrees to radians, wrapping the angle into (-360, 360) first.
func DegToRad(angle float64) float64 {
	return mgl64.DegToRad(math.Mod(angle, 360))
}

// Pow2 returns a squared
func Pow2(a float64) float64 {
	return a * a
}
