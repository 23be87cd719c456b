package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/stl"
)

const cylinderSegments = 8

// toRaylib converts a model-space point
func toRaylib(v geometry.Vector3) rl.Vector3 {
	x, y, z := v.Float32()
	return rl.Vector3{X: x, Y: y, Z: z}
}

// lessVec orders points so an edge and its reverse share one key
func lessVec(a, b rl.Vector3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// uniqueEdges returns every triangle edge once, in first-seen order
func uniqueEdges(model *stl.Model) [][2]rl.Vector3 {
	seen := make(map[[2]rl.Vector3]struct{}, len(model.Triangles)*3/2)
	edges := make([][2]rl.Vector3, 0, len(model.Triangles)*3/2)

	for _, triangle := range model.Triangles {
		for _, e := range triangle.Edges() {
			a, b := toRaylib(e[0]), toRaylib(e[1])
			if lessVec(b, a) {
				a, b = b, a
			}
			key := [2]rl.Vector3{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, key)
		}
	}
	return edges
}

// drawWireframe renders the model edges as thin cylinders. Without a filled
// surface underneath the lines are drawn brighter.
func (app *App) drawWireframe() {
	if !app.View.showWireframe {
		return
	}

	wireframeColor := rl.NewColor(100, 100, 100, 200)
	if !app.View.showFilled {
		wireframeColor = rl.NewColor(200, 210, 225, 255)
	}
	// Scale with camera distance for constant screen thickness
	thickness := app.Camera.distance * 0.0001

	for _, edge := range app.Model.edges {
		rl.DrawCylinderEx(edge[0], edge[1], thickness, thickness, cylinderSegments, wireframeColor)
	}
}
