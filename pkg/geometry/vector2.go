package geometry

import "math"

// Vector2 represents a point or offset in screen space.
// Y grows downward, matching window coordinates.
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{X: v.X * scalar, Y: v.Y * scalar}
}

// Abs returns the vector with both components made non-negative
func (v Vector2) Abs() Vector2 {
	return Vector2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Angle returns atan2(y, x) in degrees
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}
