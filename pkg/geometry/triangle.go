package geometry

// Triangle is a single STL facet
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// CalculateNormal computes the face normal from the winding order.
// The stored Normal is not trusted since many exporters write zeros.
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2.0
}

// Edges returns the three edges as start/end pairs
func (t Triangle) Edges() [3][2]Vector3 {
	return [3][2]Vector3{{t.V1, t.V2}, {t.V2, t.V3}, {t.V3, t.V1}}
}
