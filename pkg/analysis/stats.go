// Package analysis summarises STL models for display.
package analysis

import (
	"fmt"
	"math"

	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/stl"
)

// Stats describes a model's size and tessellation
type Stats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int // triangle edges, shared edges counted per triangle
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeModel computes the statistics of a model
func AnalyzeModel(model *stl.Model) Stats {
	stats := Stats{
		TriangleCount: model.TriangleCount(),
	}
	if stats.TriangleCount == 0 {
		return stats
	}

	stats.BoundingBox = model.BoundingBox()
	stats.Dimensions = stats.BoundingBox.Size()

	minLength := math.MaxFloat64
	totalLength := 0.0
	for _, triangle := range model.Triangles {
		stats.SurfaceArea += triangle.Area()
		for _, edge := range triangle.Edges() {
			length := edge[0].Sub(edge[1]).Length()
			totalLength += length
			minLength = math.Min(minLength, length)
			stats.MaxEdgeLength = math.Max(stats.MaxEdgeLength, length)
			stats.EdgeCount++
		}
	}
	stats.MinEdgeLength = minLength
	stats.AvgEdgeLength = totalLength / float64(stats.EdgeCount)

	return stats
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// FormatSize formats dimensions as W × D × H
func FormatSize(v geometry.Vector3) string {
	return fmt.Sprintf("%.2f × %.2f × %.2f", v.X, v.Y, v.Z)
}
