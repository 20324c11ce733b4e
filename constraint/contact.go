package constraint

import (
	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/manifold"
	"github.com/go-gl/mathgl/mgl64"
)

// ContactConstraint resolves one colliding pair. BodyA is always movable;
// BodyB may have infinite mass.
type ContactConstraint struct {
	BodyA    *actor.Body
	BodyB    *actor.Body
	Manifold manifold.Manifold
}

// NewContactConstraint builds the constraint of a pair, or returns false when
// there is nothing to resolve: both bodies immovable, or no contact.
// An immovable body passed as a is swapped to B, and the manifold is
// computed in that order so the normal still points from A to B.
func NewContactConstraint(a, b *actor.Body) (*ContactConstraint, bool) {
	if a.HasInfiniteMass() && b.HasInfiniteMass() {
		return nil, false
	}
	if a.HasInfiniteMass() {
		a, b = b, a
	}

	m := manifold.Collide(a, b)
	if !m.Hit {
		return nil, false
	}

	return &ContactConstraint{
		BodyA:    a,
		BodyB:    b,
		Manifold: m,
	}, true
}

func (c *ContactConstraint) relativeVelocity() mgl64.Vec2 {
	return c.BodyB.Velocity.Sub(c.BodyA.Velocity)
}

// Separating reports whether the bodies already move apart along the normal
func (c *ContactConstraint) Separating() bool {
	return c.relativeVelocity().Dot(c.Manifold.Normal) >= 0
}

// SolveVelocity applies the restitution impulse along the contact normal.
// Against an immovable B only A's inverse mass takes part.
func (c *ContactConstraint) SolveVelocity() {
	if c.Separating() {
		return
	}

	bodyA := c.BodyA
	bodyB := c.BodyB
	normal := c.Manifold.Normal

	restitution := ComputeRestitution(bodyA, bodyB)
	normalVel := c.relativeVelocity().Dot(normal)

	invMassA := bodyA.InverseMass()
	if bodyB.HasInfiniteMass() {
		j := -(1 + restitution) * normalVel / invMassA
		bodyA.Velocity = bodyA.Velocity.Sub(normal.Mul(j * invMassA))
		return
	}

	invMassB := bodyB.InverseMass()
	j := -(1 + restitution) * normalVel / (invMassA + invMassB)
	bodyA.Velocity = bodyA.Velocity.Sub(normal.Mul(j * invMassA))
	bodyB.Velocity = bodyB.Velocity.Add(normal.Mul(j * invMassB))
}

// ApplyRepel deposits the push-apart force into the accumulators, scaled by
// the interpenetration fraction. It applies to separating contacts too.
func (c *ContactConstraint) ApplyRepel() {
	force := c.Manifold.Normal.Mul(ComputeRepel(c.BodyA, c.BodyB) * c.Manifold.Overlap)

	if !c.BodyA.HasInfiniteMass() {
		c.BodyA.AddForce(force.Mul(-1))
	}
	if !c.BodyB.HasInfiniteMass() {
		c.BodyB.AddForce(force)
	}
}

var _ Constraint = (*ContactConstraint)(nil)
