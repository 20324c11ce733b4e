package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Shape Tests
// =============================================================================

func TestShape_PatternMatch(t *testing.T) {
	box := NewBoxShape(mgl64.Vec2{2, 3})
	if _, ok := box.Circle(); ok {
		t.Error("box shape should not match Circle()")
	}
	if b, ok := box.Box(); !ok || b.HalfExtents != (mgl64.Vec2{2, 3}) {
		t.Errorf("Box() = %v, %v, want (2,3), true", b, ok)
	}

	circle := NewCircleShape(4)
	if _, ok := circle.Box(); ok {
		t.Error("circle shape should not match Box()")
	}
	if c, ok := circle.Circle(); !ok || c.Radius != 4 {
		t.Errorf("Circle() = %v, %v, want 4, true", c, ok)
	}
}

func TestShapeKind_String(t *testing.T) {
	if ShapeBox.String() != "box" || ShapeCircle.String() != "circle" || ShapeKind(7).String() != "unknown" {
		t.Error("unexpected ShapeKind names")
	}
}

// =============================================================================
// Box Tests
// =============================================================================

func TestBox_RelativeVertices_WindingOrder(t *testing.T) {
	box := Box{HalfExtents: mgl64.Vec2{2, 1}}
	want := [4]mgl64.Vec2{{2, 1}, {2, -1}, {-2, -1}, {-2, 1}}

	if got := box.RelativeVertices(); got != want {
		t.Errorf("RelativeVertices = %v, want %v", got, want)
	}
}

func TestBox_WorldVertices_Rotated(t *testing.T) {
	box := Box{HalfExtents: mgl64.Vec2{2, 1}}
	transform := NewTransform(mgl64.Vec2{10, 10}, 90)

	// rotation maps (x, y) to (y, -x)
	want := [4]mgl64.Vec2{{11, 8}, {9, 8}, {9, 12}, {11, 12}}
	got := box.WorldVertices(transform)
	for i := range want {
		if !vec2AlmostEqual(got[i], want[i], 1e-9) {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBox_ContainsPoint(t *testing.T) {
	box := Box{HalfExtents: mgl64.Vec2{2, 1}}
	transform := NewTransform(mgl64.Vec2{0, 0}, 90)

	tests := []struct {
		name  string
		point mgl64.Vec2
		want  bool
	}{
		{"center", mgl64.Vec2{0, 0}, true},
		// rotated by 90 degrees, the long axis is vertical
		{"along rotated long axis", mgl64.Vec2{0, 1.9}, true},
		{"outside rotated short axis", mgl64.Vec2{1.5, 0}, false},
		{"within tolerance band", mgl64.Vec2{1.005, 0}, true},
		{"just outside tolerance band", mgl64.Vec2{1.02, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsPoint(transform, tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestBox_LocalAABB_Rotated45(t *testing.T) {
	box := Box{HalfExtents: mgl64.Vec2{1, 1}}
	aabb := box.LocalAABB(NewTransform(mgl64.Vec2{}, 45).Matrix())

	want := math.Sqrt2
	if !almostEqual(aabb.Max.X(), want, 1e-9) || !almostEqual(aabb.Max.Y(), want, 1e-9) ||
		!almostEqual(aabb.Min.X(), -want, 1e-9) || !almostEqual(aabb.Min.Y(), -want, 1e-9) {
		t.Errorf("LocalAABB = %v, want ±%v", aabb, want)
	}
}

func TestBox_Edges(t *testing.T) {
	box := Box{HalfExtents: mgl64.Vec2{1, 1}}
	transform := NewTransform(mgl64.Vec2{}, 0)
	vertices := box.WorldVertices(transform)
	edges := box.Edges(transform)

	for i, edge := range edges {
		if edge[0] != vertices[i] || edge[1] != vertices[(i+1)%4] {
			t.Errorf("edge %d = %v, want %v -> %v", i, edge, vertices[i], vertices[(i+1)%4])
		}
	}
}

// =============================================================================
// Circle Tests
// =============================================================================

func TestCircle_ContainsLine(t *testing.T) {
	circle := Circle{Radius: 5}
	transform := NewTransform(mgl64.Vec2{0, 0}, 0)

	tests := []struct {
		name       string
		start, end mgl64.Vec2
		want       bool
	}{
		{"start inside", mgl64.Vec2{1, 1}, mgl64.Vec2{20, 20}, true},
		{"end inside", mgl64.Vec2{20, 20}, mgl64.Vec2{0, 4}, true},
		{"crossing through", mgl64.Vec2{-10, 0}, mgl64.Vec2{10, 0}, true},
		{"tangent", mgl64.Vec2{-10, 5}, mgl64.Vec2{10, 5}, true},
		{"passing beside", mgl64.Vec2{-10, 6}, mgl64.Vec2{10, 6}, false},
		{"line would cross but segment stops short", mgl64.Vec2{10, 0}, mgl64.Vec2{20, 0}, false},
		{"zero length outside", mgl64.Vec2{10, 0}, mgl64.Vec2{10, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := circle.ContainsLine(transform, tt.start, tt.end); got != tt.want {
				t.Errorf("ContainsLine(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestCircle_LocalAABB_IgnoresRotation(t *testing.T) {
	shape := NewCircleShape(3)
	a := shape.LocalAABB(NewTransform(mgl64.Vec2{}, 0).Matrix())
	b := shape.LocalAABB(NewTransform(mgl64.Vec2{}, 77).Matrix())

	want := AABB{Min: mgl64.Vec2{-3, -3}, Max: mgl64.Vec2{3, 3}}
	if a != want || b != want {
		t.Errorf("LocalAABB = %v / %v, want %v", a, b, want)
	}
}
