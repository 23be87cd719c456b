package geometry

import "math"

// BoundingBox is an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty box that the first Extend call collapses onto a point
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

func (b BoundingBox) Center() Vector3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// MaxExtent returns the largest side length, used to frame the camera
func (b BoundingBox) MaxExtent() float64 {
	size := b.Size()
	return math.Max(size.X, math.Max(size.Y, size.Z))
}
