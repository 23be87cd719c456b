package analysis_test

import (
	"math"
	"testing"

	"github.com/renzk/shadingwheel/pkg/analysis"
	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/stl"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeModel(t *testing.T) {
	model := stl.NewModel("right triangle")
	model.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0, 4, 0),
	))

	stats := analysis.AnalyzeModel(model)

	assert.Equal(t, 1, stats.TriangleCount)
	assert.Equal(t, 3, stats.EdgeCount)
	assert.InDelta(t, 6.0, stats.SurfaceArea, 1e-9)
	assert.InDelta(t, 3.0, stats.MinEdgeLength, 1e-9)
	assert.InDelta(t, 5.0, stats.MaxEdgeLength, 1e-9)
	assert.InDelta(t, 4.0, stats.AvgEdgeLength, 1e-9)
	assert.Equal(t, geometry.NewVector3(3, 4, 0), stats.Dimensions)
}

func TestAnalyzeEmptyModel(t *testing.T) {
	stats := analysis.AnalyzeModel(stl.NewModel("empty"))
	assert.Zero(t, stats.TriangleCount)
	assert.False(t, math.IsNaN(stats.AvgEdgeLength))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "(1.000, 2.500, -3.000)", analysis.FormatVector(geometry.NewVector3(1, 2.5, -3)))
	assert.Equal(t, "1.00 × 2.00 × 3.00", analysis.FormatSize(geometry.NewVector3(1, 2, 3)))
}
