package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs overlap. Touching boxes overlap.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}

// Translate returns the box moved by offset
func (a AABB) Translate(offset mgl64.Vec2) AABB {
	return AABB{Min: a.Min.Add(offset), Max: a.Max.Add(offset)}
}

// fromPoints returns the tightest box around points
func fromPoints(points []mgl64.Vec2) AABB {
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min[0] = min(box.Min[0], p[0])
		box.Min[1] = min(box.Min[1], p[1])
		box.Max[0] = max(box.Max[0], p[0])
		box.Max[1] = max(box.Max[1], p[1])
	}

	return box
}
