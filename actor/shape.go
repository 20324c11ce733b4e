package actor

import (
	"math"

	"github.com/akmonengine/feather2d/fmath"
	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind represents the type of collision shape
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// MinHalfExtent is the floor applied to each axis of a shape's half extents
const MinHalfExtent = 0.1

// CircleRenderPoints is the resolution of the polygon approximating a circle
const CircleRenderPoints = 16

// Shape is a tagged union of Box and Circle. A circle stores its radius in
// the X half extent.
type Shape struct {
	kind        ShapeKind
	halfExtents mgl64.Vec2
}

func NewBoxShape(halfExtents mgl64.Vec2) Shape {
	return newShape(ShapeBox, halfExtents)
}

func NewCircleShape(radius float64) Shape {
	return newShape(ShapeCircle, mgl64.Vec2{radius, radius})
}

func newShape(kind ShapeKind, halfExtents mgl64.Vec2) Shape {
	return Shape{
		kind: kind,
		halfExtents: mgl64.Vec2{
			max(halfExtents.X(), MinHalfExtent),
			max(halfExtents.Y(), MinHalfExtent),
		},
	}
}

func (s Shape) Kind() ShapeKind {
	return s.kind
}

func (s Shape) HalfExtents() mgl64.Vec2 {
	return s.halfExtents
}

// Box returns the box view of the shape, ok is false for circles
func (s Shape) Box() (Box, bool) {
	if s.kind != ShapeBox {
		return Box{}, false
	}

	return Box{HalfExtents: s.halfExtents}, true
}

// Circle returns the circle view of the shape, ok is false for boxes
func (s Shape) Circle() (Circle, bool) {
	if s.kind != ShapeCircle {
		return Circle{}, false
	}

	return Circle{Radius: s.halfExtents.X()}, true
}

// LocalAABB is the box around the shape, relative to the body position
func (s Shape) LocalAABB(matrix fmath.Transform2) AABB {
	if circle, ok := s.Circle(); ok {
		return circle.LocalAABB()
	}
	box, _ := s.Box()

	return box.LocalAABB(matrix)
}

// Box represents an oriented rectangle defined by its half extents
type Box struct {
	HalfExtents mgl64.Vec2
}

// RelativeVertices returns the four unrotated corners in winding order
// (+x,+y), (+x,-y), (-x,-y), (-x,+y). Edge enumeration relies on this order.
func (b Box) RelativeVertices() [4]mgl64.Vec2 {
	hx, hy := b.HalfExtents.X(), b.HalfExtents.Y()

	return [4]mgl64.Vec2{
		{+hx, +hy},
		{+hx, -hy},
		{-hx, -hy},
		{-hx, +hy},
	}
}

// RotatedVertices returns the corners rotated but not translated
func (b Box) RotatedVertices(matrix fmath.Transform2) [4]mgl64.Vec2 {
	vertices := b.RelativeVertices()
	for i := range vertices {
		vertices[i] = matrix.Rotate(vertices[i])
	}

	return vertices
}

// WorldVertices returns the corners in world space
func (b Box) WorldVertices(transform Transform) [4]mgl64.Vec2 {
	vertices := b.RotatedVertices(transform.Matrix())
	for i := range vertices {
		vertices[i] = vertices[i].Add(transform.Position)
	}

	return vertices
}

// Edges returns the four world space edges, edge i running from vertex i to i+1
func (b Box) Edges(transform Transform) [4][2]mgl64.Vec2 {
	v := b.WorldVertices(transform)

	return [4][2]mgl64.Vec2{
		{v[0], v[1]},
		{v[1], v[2]},
		{v[2], v[3]},
		{v[3], v[0]},
	}
}

// ContainsPoint tests a world point against the box in its local frame,
// with a fmath.Tolerance band on each axis.
func (b Box) ContainsPoint(transform Transform, point mgl64.Vec2) bool {
	local := transform.ToLocal(point)

	return math.Abs(local.X()) <= b.HalfExtents.X()+fmath.Tolerance &&
		math.Abs(local.Y()) <= b.HalfExtents.Y()+fmath.Tolerance
}

func (b Box) LocalAABB(matrix fmath.Transform2) AABB {
	vertices := b.RotatedVertices(matrix)
	return fromPoints(vertices[:])
}

func (b Box) RenderVertices(transform Transform) []mgl64.Vec2 {
	vertices := b.WorldVertices(transform)
	return vertices[:]
}

// Circle represents a circular collision shape
type Circle struct {
	Radius float64
}

func (c Circle) ContainsPoint(transform Transform, point mgl64.Vec2) bool {
	return point.Sub(transform.Position).LenSqr() <= c.Radius*c.Radius
}

// ContainsLine reports whether the segment a-b touches the circle: either
// endpoint is within the radius, or the closest point of the segment is.
func (c Circle) ContainsLine(transform Transform, a, b mgl64.Vec2) bool {
	if c.ContainsPoint(transform, a) || c.ContainsPoint(transform, b) {
		return true
	}

	segment := b.Sub(a)
	lengthSqr := segment.LenSqr()
	if lengthSqr == 0 {
		return false
	}

	t := fmath.Clamp(0, transform.Position.Sub(a).Dot(segment)/lengthSqr, 1)
	closest := a.Add(segment.Mul(t))

	return c.ContainsPoint(transform, closest)
}

func (c Circle) LocalAABB() AABB {
	r := mgl64.Vec2{c.Radius, c.Radius}
	return AABB{Min: r.Mul(-1), Max: r}
}

// RenderVertices approximates the circle with CircleRenderPoints points. The
// polygon turns with the body so spin stays visible.
func (c Circle) RenderVertices(transform Transform) []mgl64.Vec2 {
	vertices := make([]mgl64.Vec2, CircleRenderPoints)
	step := 360.0 / CircleRenderPoints
	for i := range vertices {
		vertices[i] = transform.ToWorld(fmath.Rotation(step * float64(i)).Rotate(mgl64.Vec2{c.Radius, 0}))
	}

	return vertices
}
