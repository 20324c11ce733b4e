package fmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

var (
	// ErrSingularMatrix is returned by NewMatrix for a zero determinant
	ErrSingularMatrix = errors.New("fmath: matrix is singular")
	// ErrNotRotation is the panic value of Rotate and Unrotate on a custom matrix
	ErrNotRotation = errors.New("fmath: rotate called on a non-rotation matrix")
)

// TransformKind tells how a Transform2 was built.
type TransformKind uint8

const (
	TransformCustom TransformKind = iota
	TransformRotation
)

// Transform2 is an immutable 2x2 linear transform.
//
// A rotation transform uses the row layout
//
//	[ cosθ  sinθ ]
//	[-sinθ  cosθ ]
//
// which, combined with the renderer's flipped Y axis, makes positive angles
// turn clockwise on screen. The inverse is computed once at construction.
type Transform2 struct {
	matrix  mgl64.Mat2
	inverse mgl64.Mat2
	kind    TransformKind
	angle   float64
}

// NewMatrix builds a custom transform from its rows (d00 d01) and (d10 d11).
func NewMatrix(d00, d01, d10, d11 float64) (Transform2, error) {
	// mgl64 matrices are column major
	m := mgl64.Mat2{d00, d10, d01, d11}

	det := m.Det()
	if det == 0 || math.IsNaN(det) {
		return Transform2{}, errors.Wrapf(ErrSingularMatrix, "rows (%v %v) (%v %v)", d00, d01, d10, d11)
	}

	return Transform2{
		matrix:  m,
		inverse: m.Inv(),
		kind:    TransformCustom,
	}, nil
}

// Rotation builds the rotation transform for an angle in degrees.
func Rotation(degrees float64) Transform2 {
	radians := DegToRad(degrees)
	cos, sin := math.Cos(radians), math.Sin(radians)

	return Transform2{
		matrix:  mgl64.Mat2{cos, -sin, sin, cos},
		inverse: mgl64.Mat2{cos, sin, -sin, cos},
		kind:    TransformRotation,
		angle:   degrees,
	}
}

// Kind tells whether t is a rotation or a custom matrix.
func (t Transform2) Kind() TransformKind {
	return t.kind
}

// Angle returns the generating angle in degrees; zero for custom transforms.
func (t Transform2) Angle() float64 {
	return t.angle
}

// At returns the coefficient at the given row and column.
func (t Transform2) At(row, col int) float64 {
	return t.matrix.At(row, col)
}

// Apply transforms v by the matrix.
func (t Transform2) Apply(v mgl64.Vec2) mgl64.Vec2 {
	return t.matrix.Mul2x1(v)
}

// ApplyInverse transforms v by the inverse matrix.
func (t Transform2) ApplyInverse(v mgl64.Vec2) mgl64.Vec2 {
	return t.inverse.Mul2x1(v)
}

// Inverse returns the inverse transform. A rotation keeps its kind and
// carries the negated angle.
func (t Transform2) Inverse() Transform2 {
	return Transform2{
		matrix:  t.inverse,
		inverse: t.matrix,
		kind:    t.kind,
		angle:   -t.angle,
	}
}

// Rotate applies a rotation transform. It panics on a custom matrix.
func (t Transform2) Rotate(v mgl64.Vec2) mgl64.Vec2 {
	t.mustRotation()
	return t.Apply(v)
}

// Unrotate applies the inverse of a rotation transform. It panics on a custom matrix.
func (t Transform2) Unrotate(v mgl64.Vec2) mgl64.Vec2 {
	t.mustRotation()
	return t.ApplyInverse(v)
}

func (t Transform2) mustRotation() {
	if t.kind != TransformRotation {
		panic(errors.WithStack(ErrNotRotation))
	}
}
