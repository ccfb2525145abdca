package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/stlkit/pkg/stl"
)

// Triangle is a facet lifted to float64 for measurements.
type Triangle struct {
	Normal     mgl64.Vec3
	V1, V2, V3 mgl64.Vec3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 mgl64.Vec3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// FromVertex widens a vertex to float64.
func FromVertex(v stl.Vertex) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// FromFacet converts a facet into a Triangle.
func FromFacet(f stl.Facet) Triangle {
	return NewTriangle(
		FromVertex(stl.Vertex(f.Normal)),
		FromVertex(f.Vertices[0]),
		FromVertex(f.Vertices[1]),
		FromVertex(f.Vertices[2]),
	)
}

// CalculateNormal computes the unit normal from the winding of the vertices.
// Degenerate triangles yield the zero vector.
func (t Triangle) CalculateNormal() mgl64.Vec3 {
	cross := t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
	if cross.Len() == 0 {
		return mgl64.Vec3{}
	}
	return cross.Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Len() / 2.0
}

// IsDegenerate reports whether the triangle has (almost) no area.
func (t Triangle) IsDegenerate() bool {
	return mgl64.FloatEqualThreshold(t.Area(), 0, 1e-12)
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V2.Sub(t.V1).Len(),
		t.V3.Sub(t.V2).Len(),
		t.V1.Sub(t.V3).Len(),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() mgl64.Vec3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}
