package constraint

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
)

// Constraint is a pair correction run once per resolution pass
type Constraint interface {
	SolveVelocity()
	ApplyRepel()
}

// ComputeRestitution keeps the least bouncy of the two bodies
func ComputeRestitution(bodyA, bodyB *actor.Body) float64 {
	return math.Min(bodyA.Restitution(), bodyB.Restitution())
}

// ComputeRepel averages the push-apart strength of the pair
func ComputeRepel(bodyA, bodyB *actor.Body) float64 {
	return (bodyA.RepelForce() + bodyB.RepelForce()) / 2.0
}
