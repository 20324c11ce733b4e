package manifold

import (
	"math"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/fmath"
	"github.com/go-gl/mathgl/mgl64"
)

// BoxesOverlap tests two oriented boxes: any pair of crossing edges, or the
// smaller box lying fully inside the larger one. The larger box is taken as A
// so that containment is detected from one vertex.
func BoxesOverlap(a, b *actor.Body) bool {
	if area(b) > area(a) {
		a, b = b, a
	}
	boxA, _ := a.Shape().Box()
	boxB, _ := b.Shape().Box()

	if len(edgeCrossings(boxA.Edges(a.Transform), boxB.Edges(b.Transform))) > 0 {
		return true
	}

	return boxA.ContainsPoint(a.Transform, boxB.WorldVertices(b.Transform)[0])
}

func area(body *actor.Body) float64 {
	he := body.Shape().HalfExtents()
	return he.X() * he.Y()
}

func edgeCrossings(edgesA, edgesB [4][2]mgl64.Vec2) []mgl64.Vec2 {
	var points []mgl64.Vec2
	for _, edgeA := range edgesA {
		for _, edgeB := range edgesB {
			if p, ok := fmath.SegmentIntersection(edgeA[0], edgeA[1], edgeB[0], edgeB[1]); ok {
				points = append(points, p)
			}
		}
	}

	return points
}

// BoxBox builds the manifold of two oriented boxes with the separating axis
// test over the four face normals. The axis of least overlap becomes the
// normal; the contact is the mean of the vertices lying inside the other
// box and of the edge crossings.
func BoxBox(a, b *actor.Body) Manifold {
	if !BoxesOverlap(a, b) {
		return Manifold{}
	}

	boxA, _ := a.Shape().Box()
	boxB, _ := b.Shape().Box()
	verticesA := boxA.WorldVertices(a.Transform)
	verticesB := boxB.WorldVertices(b.Transform)

	axes := [4]mgl64.Vec2{
		faceAxis(verticesA[0], verticesA[3]),
		faceAxis(verticesA[0], verticesA[1]),
		faceAxis(verticesB[0], verticesB[3]),
		faceAxis(verticesB[0], verticesB[1]),
	}

	bestOverlap := math.Inf(1)
	var normal mgl64.Vec2
	var extent float64
	for _, axis := range axes {
		minA, maxA := project(verticesA, axis)
		minB, maxB := project(verticesB, axis)

		overlap := min(maxA, maxB) - max(minA, minB)
		if overlap < bestOverlap {
			bestOverlap = overlap
			normal = axis
			extent = (maxA - minA + maxB - minB) / 2
		}
	}
	if bestOverlap < 0 {
		// touching within the point-in-box tolerance only
		bestOverlap = 0
	}

	if b.Position().Sub(a.Position()).Dot(normal) < 0 {
		normal = normal.Mul(-1)
	}

	return Manifold{
		Normal:  normal,
		Contact: boxContact(a, b, boxA, boxB, verticesA, verticesB),
		Depth:   bestOverlap / 2,
		Overlap: fmath.Clamp(0, bestOverlap/extent, 1),
		Hit:     true,
	}
}

// faceAxis is the unit direction from vertex to, along one local axis of the box
func faceAxis(from, to mgl64.Vec2) mgl64.Vec2 {
	return fmath.Normalize(from.Sub(to))
}

func project(vertices [4]mgl64.Vec2, axis mgl64.Vec2) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vertices {
		d := v.Dot(axis)
		lo = min(lo, d)
		hi = max(hi, d)
	}

	return lo, hi
}

func boxContact(a, b *actor.Body, boxA, boxB actor.Box, verticesA, verticesB [4]mgl64.Vec2) mgl64.Vec2 {
	points := edgeCrossings(boxA.Edges(a.Transform), boxB.Edges(b.Transform))
	for _, v := range verticesA {
		if boxB.ContainsPoint(b.Transform, v) {
			points = append(points, v)
		}
	}
	for _, v := range verticesB {
		if boxA.ContainsPoint(a.Transform, v) {
			points = append(points, v)
		}
	}

	if len(points) == 0 {
		return a.Position().Add(b.Position()).Mul(0.5)
	}

	var sum mgl64.Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}

	return sum.Mul(1 / float64(len(points)))
}
