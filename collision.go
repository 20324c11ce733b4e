package feather2d

import (
	"github.com/akmonengine/feather2d/constraint"
	"github.com/akmonengine/feather2d/manifold"
)

// partition splits the bodies into circles and boxes, keeping handle order
func partition(bodies []entry) (circles, boxes []entry) {
	for _, e := range bodies {
		if e.body.IsCircle() {
			circles = append(circles, e)
		} else {
			boxes = append(boxes, e)
		}
	}

	return circles, boxes
}

// resolveCollisions runs one pass over every candidate pair: circle pairs,
// box pairs, then each circle against each box. The search is quadratic.
func (w *World) resolveCollisions(circles, boxes []entry, firstPass bool) {
	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			w.resolvePair(circles[i], circles[j], firstPass)
		}
	}

	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			w.resolvePair(boxes[i], boxes[j], firstPass)
		}
	}

	for _, circle := range circles {
		for _, box := range boxes {
			w.resolvePair(circle, box, firstPass)
		}
	}
}

// resolvePair filters the pair on bounds, then on the exact shape test, and
// resolves it unless both bodies are immovable.
func (w *World) resolvePair(a, b entry, firstPass bool) {
	// Broad phase
	if !a.body.AABB().Overlaps(b.body.AABB()) {
		return
	}

	// Narrow phase
	if !manifold.Overlaps(a.body, b.body) {
		return
	}

	contact, ok := constraint.NewContactConstraint(a.body, b.body)
	if !ok {
		return
	}

	if firstPass {
		w.Events.recordContact(a.handle, b.handle)
		contact.ApplyRepel()
	}
	contact.SolveVelocity()
}
