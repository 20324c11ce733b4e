package constraint

import (
	"math"
	"testing"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Helper function to create a dynamic circle of radius 5 for testing
func createDynamicCircle(t *testing.T, position, velocity mgl64.Vec2, restitution float64) *actor.Body {
	t.Helper()

	def := actor.DefaultBodyDef()
	def.Shape = actor.ShapeCircle
	def.HalfExtents = mgl64.Vec2{5, 5}
	def.Position = position
	def.Velocity = velocity
	def.Restitution = restitution

	body, err := actor.NewBody(def)
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}

	return body
}

// Helper function to create a static box
func createStaticBox(t *testing.T, position, halfExtents mgl64.Vec2) *actor.Body {
	t.Helper()

	def := actor.DefaultBodyDef()
	def.Position = position
	def.HalfExtents = halfExtents
	def.IsStatic = true

	body, err := actor.NewBody(def)
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}

	return body
}

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func vec2AlmostEqual(a, b mgl64.Vec2, epsilon float64) bool {
	return almostEqual(a.X(), b.X(), epsilon) && almostEqual(a.Y(), b.Y(), epsilon)
}

func TestComputeRestitution(t *testing.T) {
	tests := []struct {
		name     string
		restA    float64
		restB    float64
		expected float64
	}{
		{"both zero restitution", 0.0, 0.0, 0.0},
		{"one zero, one high restitution - returns min", 0.0, 0.8, 0.0},
		{"both same restitution", 0.5, 0.5, 0.5},
		{"different restitutions - returns min", 0.7, 0.3, 0.3},
		{"both perfect restitution", 1.0, 1.0, 1.0},
		{"out of range is clamped first", 1.5, 2.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := createDynamicCircle(t, mgl64.Vec2{}, mgl64.Vec2{}, tt.restA)
			b := createDynamicCircle(t, mgl64.Vec2{}, mgl64.Vec2{}, tt.restB)

			if got := ComputeRestitution(a, b); !almostEqual(got, tt.expected, 1e-12) {
				t.Errorf("ComputeRestitution() = %v, want %v", got, tt.expected)
			}
			if got := ComputeRestitution(b, a); !almostEqual(got, tt.expected, 1e-12) {
				t.Errorf("ComputeRestitution() not symmetric: %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestComputeRepel(t *testing.T) {
	defA := actor.DefaultBodyDef()
	defA.RepelForce = 100
	defB := actor.DefaultBodyDef()
	defB.RepelForce = 300

	a, err := actor.NewBody(defA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := actor.NewBody(defB)
	if err != nil {
		t.Fatal(err)
	}

	if got := ComputeRepel(a, b); got != 200 {
		t.Errorf("ComputeRepel() = %v, want 200", got)
	}
}
