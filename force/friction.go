package force

import (
	"github.com/akmonengine/feather2d/actor"
)

const DefaultFrictionCoefficient = -1.0

// Friction is a linear drag: it adds a force proportional to the velocity and
// a torque proportional to the angular velocity. Coefficients are negative.
type Friction struct {
	Linear  float64
	Angular float64
}

func NewFriction() *Friction {
	return &Friction{
		Linear:  DefaultFrictionCoefficient,
		Angular: DefaultFrictionCoefficient,
	}
}

func (f *Friction) UpdateForce(body *actor.Body, frame int) {
	body.AddForce(body.Velocity.Mul(f.Linear))
	body.AddTorque(body.AngularVelocity * f.Angular)
}
