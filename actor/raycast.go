package actor

import (
	"math"

	"github.com/akmonengine/feather2d/fmath"
	"github.com/go-gl/mathgl/mgl64"
)

// RaycastHit is the result of a ray query. When Hit is false the other
// fields are zero.
type RaycastHit struct {
	Point  mgl64.Vec2
	Normal mgl64.Vec2
	// T is the ray parameter, Point = origin + direction*T
	T   float64
	Hit bool
}

func validDirection(direction mgl64.Vec2) bool {
	return fmath.IsFinite(direction) && direction.LenSqr() > 0
}

// Raycast intersects the ray origin + t*direction (t >= 0) with the circle.
// The near root is used unless the origin is inside the circle.
func (c Circle) Raycast(transform Transform, origin, direction mgl64.Vec2) RaycastHit {
	if !validDirection(direction) || !fmath.IsFinite(origin) {
		return RaycastHit{}
	}

	f := origin.Sub(transform.Position)
	a := direction.Dot(direction)
	b := 2 * f.Dot(direction)
	cc := f.Dot(f) - c.Radius*c.Radius

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return RaycastHit{}
	}
	sqrtDisc := math.Sqrt(discriminant)

	t := (-b - sqrtDisc) / (2 * a)
	if cc < 0 {
		// origin inside, the ray leaves through the far root
		t = (-b + sqrtDisc) / (2 * a)
	}
	if t < 0 {
		return RaycastHit{}
	}

	point := origin.Add(direction.Mul(t))

	return RaycastHit{
		Point:  point,
		Normal: fmath.NormalizeOr(point.Sub(transform.Position), mgl64.Vec2{0, 1}),
		T:      t,
		Hit:    true,
	}
}

// Raycast intersects the ray with the box using the slab method in the
// box's local axes.
func (b Box) Raycast(transform Transform, origin, direction mgl64.Vec2) RaycastHit {
	if !validDirection(direction) || !fmath.IsFinite(origin) {
		return RaycastHit{}
	}

	localOrigin := transform.ToLocal(origin)
	localDirection := transform.Matrix().Unrotate(direction)

	tMin, tMax := math.Inf(-1), math.Inf(1)
	var entryNormal, exitNormal mgl64.Vec2

	for axis := 0; axis < 2; axis++ {
		half := b.HalfExtents[axis]
		o, d := localOrigin[axis], localDirection[axis]

		if math.Abs(d) < 1e-12 {
			if o < -half || o > half {
				return RaycastHit{}
			}
			continue
		}

		t1 := (-half - o) / d
		t2 := (half - o) / d
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}

		if t1 > tMin {
			tMin = t1
			entryNormal = mgl64.Vec2{}
			entryNormal[axis] = sign
		}
		if t2 < tMax {
			tMax = t2
			exitNormal = mgl64.Vec2{}
			exitNormal[axis] = -sign
		}
		if tMin > tMax {
			return RaycastHit{}
		}
	}

	if tMax < 0 {
		return RaycastHit{}
	}

	t, normal := tMin, entryNormal
	if tMin < 0 {
		t, normal = tMax, exitNormal
	}

	return RaycastHit{
		Point:  origin.Add(direction.Mul(t)),
		Normal: transform.Matrix().Rotate(normal),
		T:      t,
		Hit:    true,
	}
}
