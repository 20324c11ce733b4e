package actor

import (
	"github.com/akmonengine/feather2d/fmath"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a pose in 2D space. Rotation is in degrees and the
// matching rotation matrix is kept alongside it.
type Transform struct {
	Position mgl64.Vec2
	rotation float64
	matrix   fmath.Transform2
}

// NewTransform creates a transform at position with the given rotation in degrees
func NewTransform(position mgl64.Vec2, rotation float64) Transform {
	return Transform{
		Position: position,
		rotation: rotation,
		matrix:   fmath.Rotation(rotation),
	}
}

func (t Transform) Rotation() float64 {
	return t.rotation
}

// SetRotation updates the angle and rebuilds the rotation matrix
func (t *Transform) SetRotation(degrees float64) {
	t.rotation = degrees
	t.matrix = fmath.Rotation(degrees)
}

func (t Transform) Matrix() fmath.Transform2 {
	return t.matrix
}

// ToWorld maps a point from the local unrotated frame to world space
func (t Transform) ToWorld(local mgl64.Vec2) mgl64.Vec2 {
	return t.matrix.Rotate(local).Add(t.Position)
}

// ToLocal maps a world point into the local unrotated frame
func (t Transform) ToLocal(world mgl64.Vec2) mgl64.Vec2 {
	return t.matrix.Unrotate(world.Sub(t.Position))
}
