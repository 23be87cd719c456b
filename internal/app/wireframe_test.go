package app

import (
	"testing"

	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/stl"
	"github.com/stretchr/testify/assert"
)

func TestUniqueEdgesSharesReversedEdges(t *testing.T) {
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(0, 1, 0)
	d := geometry.NewVector3(1, 1, 0)

	model := stl.NewModel("quad")
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, b, d, c))

	// two triangles sharing b-c: 5 distinct edges
	assert.Len(t, uniqueEdges(model), 5)
}

func TestUniqueEdgesEmptyModel(t *testing.T) {
	assert.Empty(t, uniqueEdges(stl.NewModel("empty")))
}
