package manifold

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/fmath"
	"github.com/go-gl/mathgl/mgl64"
)

// fallbackNormal is used when two centers coincide
var fallbackNormal = mgl64.Vec2{0, 1}

func circlesOverlap(a, b *actor.Body) bool {
	circleA, _ := a.Shape().Circle()
	circleB, _ := b.Shape().Circle()
	radiusSum := circleA.Radius + circleB.Radius

	return b.Position().Sub(a.Position()).LenSqr() <= fmath.Pow2(radiusSum)
}

// CircleCircle builds the manifold of two circles. The depth is half the
// overlap, so the contact sits midway inside the intersection lens.
func CircleCircle(a, b *actor.Body) Manifold {
	if !circlesOverlap(a, b) {
		return Manifold{}
	}

	circleA, _ := a.Shape().Circle()
	circleB, _ := b.Shape().Circle()
	radiusSum := circleA.Radius + circleB.Radius

	delta := b.Position().Sub(a.Position())
	depth := (radiusSum - delta.Len()) / 2
	normal := fmath.NormalizeOr(delta, fallbackNormal)

	return Manifold{
		Normal:  normal,
		Contact: a.Position().Add(normal.Mul(circleA.Radius - depth)),
		Depth:   depth,
		Overlap: fmath.Clamp(0, 1-delta.LenSqr()/fmath.Pow2(radiusSum), 1),
		Hit:     true,
	}
}

func circleBoxOverlap(circleBody, boxBody *actor.Body) bool {
	circle, _ := circleBody.Shape().Circle()
	box, _ := boxBody.Shape().Box()

	if box.ContainsPoint(boxBody.Transform, circleBody.Position()) {
		return true
	}
	for _, edge := range box.Edges(boxBody.Transform) {
		if circle.ContainsLine(circleBody.Transform, edge[0], edge[1]) {
			return true
		}
	}

	return false
}

// CircleBox builds the manifold of a circle (A) against a box (B).
//
// In the box's local frame the circle is intersected with the four support
// lines x = ±hx and y = ±hy; the candidates lying on the box outline are
// averaged into the contact. The depth is half the distance between the
// contact and the circle center, an estimate rather than the exact
// penetration.
func CircleBox(circleBody, boxBody *actor.Body) Manifold {
	if !circleBoxOverlap(circleBody, boxBody) {
		return Manifold{}
	}

	circle, _ := circleBody.Shape().Circle()
	box, _ := boxBody.Shape().Box()
	center := circleBody.Position()
	local := boxBody.Transform.ToLocal(center)
	// strict: a center in the tolerance band still lies outside the faces
	inside := math.Abs(local.X()) < box.HalfExtents.X() && math.Abs(local.Y()) < box.HalfExtents.Y()

	localContact, ok := outlineCrossing(box.HalfExtents, local, circle.Radius)
	if !ok {
		if inside {
			localContact = nearestFacePoint(box.HalfExtents, local)
		} else {
			// the whole box sits inside the circle
			localContact = mgl64.Vec2{}
		}
	}
	contact := boxBody.Transform.ToWorld(localContact)

	offset := contact.Sub(center)
	towardBox := fmath.NormalizeOr(boxBody.Position().Sub(center), fallbackNormal)
	normal := fmath.NormalizeOr(offset, towardBox)
	if inside {
		// the contact lies on the faces the circle must exit through
		normal = fmath.NormalizeOr(offset.Mul(-1), towardBox)
	}

	distance := offset.Len()
	overlap := 1.0
	if !inside {
		overlap = fmath.Clamp(0, 1-fmath.Pow2(distance)/fmath.Pow2(circle.Radius), 1)
	}

	return Manifold{
		Normal:  normal,
		Contact: contact,
		Depth:   distance / 2,
		Overlap: overlap,
		Hit:     true,
	}
}

// outlineCrossing averages the intersections of a circle (local center c,
// radius r) with the four support lines of a box, keeping only points within
// the box extents.
func outlineCrossing(halfExtents, c mgl64.Vec2, r float64) (mgl64.Vec2, bool) {
	hx, hy := halfExtents.X(), halfExtents.Y()
	var sum mgl64.Vec2
	count := 0

	keep := func(p mgl64.Vec2) {
		if math.Abs(p.X()) <= hx+fmath.Tolerance && math.Abs(p.Y()) <= hy+fmath.Tolerance {
			sum = sum.Add(p)
			count++
		}
	}

	for _, x := range [2]float64{hx, -hx} {
		if dy, ok := chord(r, x-c.X()); ok {
			keep(mgl64.Vec2{x, c.Y() + dy})
			keep(mgl64.Vec2{x, c.Y() - dy})
		}
	}
	for _, y := range [2]float64{hy, -hy} {
		if dx, ok := chord(r, y-c.Y()); ok {
			keep(mgl64.Vec2{c.X() + dx, y})
			keep(mgl64.Vec2{c.X() - dx, y})
		}
	}

	if count == 0 {
		return mgl64.Vec2{}, false
	}

	return sum.Mul(1 / float64(count)), true
}

// chord solves offset² + d² = r² for d
func chord(r, offset float64) (float64, bool) {
	discriminant := r*r - offset*offset
	if discriminant < 0 {
		return 0, false
	}

	return math.Sqrt(discriminant), true
}

// nearestFacePoint projects a local point inside the box onto its closest face
func nearestFacePoint(halfExtents, p mgl64.Vec2) mgl64.Vec2 {
	gapX := halfExtents.X() - math.Abs(p.X())
	gapY := halfExtents.Y() - math.Abs(p.Y())

	if gapX < gapY {
		return mgl64.Vec2{math.Copysign(halfExtents.X(), p.X()), p.Y()}
	}

	return mgl64.Vec2{p.X(), math.Copysign(halfExtents.Y(), p.Y())}
}
