// Package force holds the generators that deposit force and torque into the
// bodies every tick, before collisions are resolved.
package force

import (
	"github.com/akmonengine/feather2d/actor"
)

// Generator adds its contribution to the accumulators of one body. The world
// calls it once per eligible body per tick, in registration order.
type Generator interface {
	UpdateForce(body *actor.Body, frame int)
}
