// Package manifold computes contact geometry for a colliding pair of bodies.
//
// Every builder returns a Manifold whose Hit field tells whether the exact
// narrow-phase test passed; the other fields are only meaningful on a hit.
// The normal always points from body A toward body B.
package manifold

import (
	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Manifold is the contact geometry of one pair, recomputed for every test.
type Manifold struct {
	Normal  mgl64.Vec2
	Contact mgl64.Vec2
	Depth   float64
	// Overlap is the interpenetration fraction in [0, 1] scaling the push-apart force
	Overlap float64
	Hit     bool
}

// Flip returns the manifold seen from the other body
func (m Manifold) Flip() Manifold {
	m.Normal = m.Normal.Mul(-1)
	return m
}

// Collide dispatches to the builder matching the pair's shapes. A box-circle
// pair is computed as circle-box and flipped back to the caller's order.
func Collide(a, b *actor.Body) Manifold {
	switch {
	case a.IsCircle() && b.IsCircle():
		return CircleCircle(a, b)
	case a.IsCircle():
		return CircleBox(a, b)
	case b.IsCircle():
		return CircleBox(b, a).Flip()
	default:
		return BoxBox(a, b)
	}
}

// Overlaps is the exact boolean test for the pair, without the manifold
func Overlaps(a, b *actor.Body) bool {
	switch {
	case a.IsCircle() && b.IsCircle():
		return circlesOverlap(a, b)
	case a.IsCircle():
		return circleBoxOverlap(a, b)
	case b.IsCircle():
		return circleBoxOverlap(b, a)
	default:
		return BoxesOverlap(a, b)
	}
}
