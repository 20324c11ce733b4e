package actor

import (
	"github.com/akmonengine/feather2d/fmath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

var (
	// ErrShapeMismatch is returned by a box-only query on a circle, or the reverse
	ErrShapeMismatch = errors.New("actor: shape mismatch")
	// ErrInvalidBody is returned by NewBody for definitions that cannot be simulated
	ErrInvalidBody = errors.New("actor: invalid body definition")
)

const (
	DefaultMass        = 10.0
	DefaultRestitution = 0.9
	DefaultRepelForce  = 10000.0
)

// BodyDef holds the creation parameters of a body. Start from DefaultBodyDef
// and override what differs.
type BodyDef struct {
	Position        mgl64.Vec2
	Rotation        float64 // degrees
	Velocity        mgl64.Vec2
	AngularVelocity float64 // degrees per second
	HalfExtents     mgl64.Vec2
	Shape           ShapeKind
	IsStatic        bool
	ApplyGenerators bool
	Mass            float64
	Restitution     float64 // 0 = no rebound, 1 = perfect restitution
	RepelForce      float64
}

// DefaultBodyDef returns a dynamic 2x2 box of mass 10 at the origin
func DefaultBodyDef() BodyDef {
	return BodyDef{
		HalfExtents:     mgl64.Vec2{1, 1},
		Shape:           ShapeBox,
		ApplyGenerators: true,
		Mass:            DefaultMass,
		Restitution:     DefaultRestitution,
		RepelForce:      DefaultRepelForce,
	}
}

// Body represents a rigid body in the simulation
type Body struct {
	// Spatial properties, mutated only by Integrate
	Transform Transform

	// Linear motion
	Velocity mgl64.Vec2
	// Angular motion, degrees per second
	AngularVelocity float64

	accumulatedForce  mgl64.Vec2
	accumulatedTorque float64

	mass        float64
	inverseMass float64

	shape           Shape
	isStatic        bool
	applyGenerators bool
	restitution     float64
	repelForce      float64
}

// NewBody creates a body from its definition
func NewBody(def BodyDef) (*Body, error) {
	if def.Shape != ShapeBox && def.Shape != ShapeCircle {
		return nil, errors.Wrapf(ErrInvalidBody, "unknown shape kind %d", def.Shape)
	}
	if def.Mass < 0 {
		return nil, errors.Wrapf(ErrInvalidBody, "negative mass %v", def.Mass)
	}
	if !fmath.IsFinite(def.Position) || !fmath.IsFinite(def.Velocity) {
		return nil, errors.Wrap(ErrInvalidBody, "non finite position or velocity")
	}

	b := &Body{
		Transform:       NewTransform(def.Position, def.Rotation),
		Velocity:        def.Velocity,
		AngularVelocity: def.AngularVelocity,
		shape:           newShape(def.Shape, def.HalfExtents),
		isStatic:        def.IsStatic,
		applyGenerators: def.ApplyGenerators,
		restitution:     fmath.Clamp(0, def.Restitution, 1),
		repelForce:      def.RepelForce,
	}
	b.SetMass(def.Mass)

	return b, nil
}

// SetMass keeps the inverse mass consistent: zero mass means infinite mass
func (b *Body) SetMass(mass float64) {
	b.mass = mass
	if mass != 0 {
		b.inverseMass = 1.0 / mass
	} else {
		b.inverseMass = 0
	}
}

func (b *Body) Mass() float64 {
	return b.mass
}

func (b *Body) InverseMass() float64 {
	return b.inverseMass
}

// HasInfiniteMass reports whether collisions must treat the body as immovable.
// Static bodies qualify regardless of their inverse mass.
func (b *Body) HasInfiniteMass() bool {
	return b.isStatic || b.mass == 0
}

func (b *Body) Shape() Shape {
	return b.shape
}

func (b *Body) IsStatic() bool {
	return b.isStatic
}

func (b *Body) IsCircle() bool {
	return b.shape.kind == ShapeCircle
}

// ReceivesForces reports whether the force generators act on the body
func (b *Body) ReceivesForces() bool {
	return !b.isStatic && b.applyGenerators
}

func (b *Body) Restitution() float64 {
	return b.restitution
}

func (b *Body) RepelForce() float64 {
	return b.repelForce
}

func (b *Body) Position() mgl64.Vec2 {
	return b.Transform.Position
}

// Rotation returns the orientation in degrees
func (b *Body) Rotation() float64 {
	return b.Transform.Rotation()
}

func (b *Body) AddForce(force mgl64.Vec2) {
	b.accumulatedForce = b.accumulatedForce.Add(force)
}

func (b *Body) AddTorque(torque float64) {
	b.accumulatedTorque += torque
}

// Force returns the force accumulated since the last ClearForces
func (b *Body) Force() mgl64.Vec2 {
	return b.accumulatedForce
}

func (b *Body) Torque() float64 {
	return b.accumulatedTorque
}

func (b *Body) ClearForces() {
	b.accumulatedForce = mgl64.Vec2{}
	b.accumulatedTorque = 0
}

// Integrate advances the body by dt with semi-implicit Euler. Static and
// zero-mass bodies are frozen.
func (b *Body) Integrate(dt float64) {
	if b.isStatic || b.mass == 0 {
		return
	}

	b.Velocity = b.Velocity.Add(b.accumulatedForce.Mul(b.inverseMass * dt))
	b.Transform.Position = b.Transform.Position.Add(b.Velocity.Mul(dt))

	b.AngularVelocity += b.accumulatedTorque * b.inverseMass * dt
	b.Transform.SetRotation(b.Transform.Rotation() + b.AngularVelocity*dt)
}

// LocalAABB returns the bounds relative to the body position
func (b *Body) LocalAABB() AABB {
	return b.shape.LocalAABB(b.Transform.Matrix())
}

// AABB returns the world space bounds
func (b *Body) AABB() AABB {
	return b.LocalAABB().Translate(b.Transform.Position)
}

// Radius returns the circle radius
func (b *Body) Radius() (float64, error) {
	circle, ok := b.shape.Circle()
	if !ok {
		return 0, errors.Wrapf(ErrShapeMismatch, "radius of a %s", b.shape.kind)
	}

	return circle.Radius, nil
}

// WorldVertices returns the box corners in world space
func (b *Body) WorldVertices() ([4]mgl64.Vec2, error) {
	box, ok := b.shape.Box()
	if !ok {
		return [4]mgl64.Vec2{}, errors.Wrapf(ErrShapeMismatch, "vertices of a %s", b.shape.kind)
	}

	return box.WorldVertices(b.Transform), nil
}

// ContainsPoint tests a world point against the box
func (b *Body) ContainsPoint(point mgl64.Vec2) (bool, error) {
	box, ok := b.shape.Box()
	if !ok {
		return false, errors.Wrapf(ErrShapeMismatch, "point in box on a %s", b.shape.kind)
	}

	return box.ContainsPoint(b.Transform, point), nil
}

// ContainsLine tests whether the segment touches the circle
func (b *Body) ContainsLine(start, end mgl64.Vec2) (bool, error) {
	circle, ok := b.shape.Circle()
	if !ok {
		return false, errors.Wrapf(ErrShapeMismatch, "line in circle on a %s", b.shape.kind)
	}

	return circle.ContainsLine(b.Transform, start, end), nil
}

// Raycast intersects a ray with the body whatever its shape
func (b *Body) Raycast(origin, direction mgl64.Vec2) RaycastHit {
	if circle, ok := b.shape.Circle(); ok {
		return circle.Raycast(b.Transform, origin, direction)
	}
	box, _ := b.shape.Box()

	return box.Raycast(b.Transform, origin, direction)
}

// RenderVertices returns the outline the renderer draws for the body
func (b *Body) RenderVertices() []mgl64.Vec2 {
	if circle, ok := b.shape.Circle(); ok {
		return circle.RenderVertices(b.Transform)
	}
	box, _ := b.shape.Box()

	return box.RenderVertices(b.Transform)
}
