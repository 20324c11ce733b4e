package force

import (
	"sync"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/fmath"
	"github.com/go-gl/mathgl/mgl64"
)

// StandardGravity is the default acceleration, in world units per second²
var StandardGravity = mgl64.Vec2{0, -100}

// Gravity applies a uniform acceleration
type Gravity struct {
	Acceleration mgl64.Vec2
}

func NewGravity() *Gravity {
	return &Gravity{Acceleration: StandardGravity}
}

func (g *Gravity) UpdateForce(body *actor.Body, frame int) {
	body.AddForce(g.Acceleration.Mul(body.Mass()))
}

// RotatingGravity turns its acceleration one full revolution every
// FramesPerRotation frames. The rotated vector is cached for the current
// frame, so it is computed once however many bodies the frame holds.
type RotatingGravity struct {
	Acceleration      mgl64.Vec2
	FramesPerRotation int

	mu        sync.Mutex
	cached    mgl64.Vec2
	lastFrame int
	valid     bool
}

func NewRotatingGravity(framesPerRotation int) *RotatingGravity {
	return &RotatingGravity{
		Acceleration:      StandardGravity,
		FramesPerRotation: framesPerRotation,
	}
}

func (g *RotatingGravity) UpdateForce(body *actor.Body, frame int) {
	body.AddForce(g.At(frame).Mul(body.Mass()))
}

// At returns the acceleration for the given frame
func (g *RotatingGravity) At(frame int) mgl64.Vec2 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.valid && g.lastFrame == frame {
		return g.cached
	}

	angle := 0.0
	if g.FramesPerRotation != 0 {
		angle = 360.0 * float64(frame) / float64(g.FramesPerRotation)
	}
	g.cached = fmath.Rotation(angle).Rotate(g.Acceleration)
	g.lastFrame = frame
	g.valid = true

	return g.cached
}
