// Package feather2d is a fixed-step 2D rigid-body engine for circles and
// rotated boxes.
//
// A World owns the bodies and the force generators. Each Tick applies the
// generators, resolves collisions over a few passes, integrates the bodies
// and clears their accumulators:
//
//	world := feather2d.NewWorld(feather2d.DefaultConfig())
//	world.AddForceGenerator(force.NewGravity())
//	handle, err := world.AddBody(actor.DefaultBodyDef())
//	world.Tick()
package feather2d

import (
	"iter"
	"log"
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/force"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ErrUnknownBody is returned for a handle that was never issued or was removed
var ErrUnknownBody = errors.New("feather2d: unknown body handle")

// BodyHandle addresses a body in its world. Handles are never reused.
type BodyHandle int

type entry struct {
	handle BodyHandle
	body   *actor.Body
}

// World is not safe for concurrent use; ticks run one after the other.
type World struct {
	config Config
	logger *log.Logger

	// Slot i holds the body of handle i, nil once removed
	bodies     []*actor.Body
	live       int
	generators []force.Generator
	frame      int

	Events Events
}

func NewWorld(config Config) *World {
	config = config.withDefaults()

	return &World{
		config: config,
		logger: config.Logger,
		Events: NewEvents(),
	}
}

// Config returns the parameters in effect, defaults included
func (w *World) Config() Config {
	return w.config
}

// AddBody creates a body from its definition and returns its handle
func (w *World) AddBody(def actor.BodyDef) (BodyHandle, error) {
	body, err := actor.NewBody(def)
	if err != nil {
		return -1, errors.Wrap(err, "add body")
	}

	handle := BodyHandle(len(w.bodies))
	w.bodies = append(w.bodies, body)
	w.live++
	w.logger.Printf("body %d added: %s at %v, static=%t", handle, body.Shape().Kind(), body.Position(), body.IsStatic())

	return handle, nil
}

// RemoveBody drops a body. Its contact pairs are forgotten without Exit events.
func (w *World) RemoveBody(handle BodyHandle) error {
	if _, ok := w.Body(handle); !ok {
		return errors.Wrapf(ErrUnknownBody, "remove body %d", handle)
	}

	w.bodies[handle] = nil
	w.live--
	w.Events.forget(handle)
	w.logger.Printf("body %d removed", handle)

	return nil
}

// Body returns the body of a handle, or false if there is none
func (w *World) Body(handle BodyHandle) (*actor.Body, bool) {
	if handle < 0 || int(handle) >= len(w.bodies) || w.bodies[handle] == nil {
		return nil, false
	}

	return w.bodies[handle], true
}

// Bodies iterates the live bodies in handle order
func (w *World) Bodies() iter.Seq2[BodyHandle, *actor.Body] {
	return func(yield func(BodyHandle, *actor.Body) bool) {
		for i, body := range w.bodies {
			if body == nil {
				continue
			}
			if !yield(BodyHandle(i), body) {
				return
			}
		}
	}
}

// Len returns the number of live bodies
func (w *World) Len() int {
	return w.live
}

// AddForceGenerator appends a generator; generators run in registration order
func (w *World) AddForceGenerator(generator force.Generator) {
	w.generators = append(w.generators, generator)
	w.logger.Printf("force generator %T added", generator)
}

// Frame returns the number of ticks executed so far
func (w *World) Frame() int {
	return w.frame
}

// Tick advances the world by one fixed step
func (w *World) Tick() {
	bodies := w.entries()

	// Phase 1: force generators
	w.applyGenerators(bodies)

	// Phase 2: collisions, push-apart forces on the first pass only
	circles, boxes := partition(bodies)
	for iteration := range w.config.Iterations {
		w.resolveCollisions(circles, boxes, iteration == 0)
	}

	// Phase 3: integration
	w.integrate(bodies)

	// Phase 4: clear accumulators
	for _, e := range bodies {
		e.body.ClearForces()
	}

	w.frame++
	w.Events.flush()
}

func (w *World) entries() []entry {
	entries := make([]entry, 0, w.live)
	for handle, body := range w.Bodies() {
		entries = append(entries, entry{handle: handle, body: body})
	}

	return entries
}

func (w *World) applyGenerators(bodies []entry) {
	if len(w.generators) == 0 {
		return
	}

	frame := w.frame
	task(w.config.Workers, bodies, func(e entry) {
		if !e.body.ReceivesForces() {
			return
		}
		for _, generator := range w.generators {
			generator.UpdateForce(e.body, frame)
		}
	})
}

func (w *World) integrate(bodies []entry) {
	task(w.config.Workers, bodies, func(e entry) {
		e.body.Integrate(w.config.Dt)
	})
}

// RaycastResult is the nearest body hit by a ray
type RaycastResult struct {
	actor.RaycastHit
	Handle BodyHandle
}

// Raycast returns the body whose surface the ray reaches first
func (w *World) Raycast(origin, direction mgl64.Vec2) (RaycastResult, bool) {
	var nearest RaycastResult
	bestDistance := math.Inf(1)

	for handle, body := range w.Bodies() {
		hit := body.Raycast(origin, direction)
		if !hit.Hit {
			continue
		}

		if distance := hit.Point.Sub(origin).LenSqr(); distance < bestDistance {
			bestDistance = distance
			nearest = RaycastResult{RaycastHit: hit, Handle: handle}
		}
	}

	return nearest, nearest.Hit
}
