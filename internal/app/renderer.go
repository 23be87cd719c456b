package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/analysis"
	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/stl"
)

const baseColor = 200.0

// Light direction for baked lighting
var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

// faceColor returns the vertex colour of a face. Lit faces get diffuse
// shading with 30% ambient; unlit faces are uniform.
func faceColor(normal geometry.Vector3, lit bool) rl.Color {
	intensity := 0.75
	if lit {
		intensity = math.Max(0.3, -normal.Dot(lightDir))
	}
	return rl.NewColor(
		uint8(baseColor*intensity*0.5),
		uint8(baseColor*intensity*0.6),
		uint8(baseColor*intensity),
		255,
	)
}

// stlToRaylibMesh converts an STL model to a Raylib mesh and uploads it
func stlToRaylibMesh(model *stl.Model, lit bool) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	uvs := [3][2]float32{{0, 0}, {1, 0}, {0, 1}}

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()
		color := faceColor(normal, lit)
		nx, ny, nz := normal.Float32()

		for i, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0], vertices[idx*3+1], vertices[idx*3+2] = v.Float32()
			normals[idx*3+0], normals[idx*3+1], normals[idx*3+2] = nx, ny, nz
			texcoords[idx*2+0], texcoords[idx*2+1] = uvs[i][0], uvs[i][1]
			colors[idx*4+0] = color.R
			colors[idx*4+1] = color.G
			colors[idx*4+2] = color.B
			colors[idx*4+3] = color.A
			idx++
		}
	}

	if vertexCount > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// setModel builds the GPU meshes and the wireframe for a model, replacing
// the previous ones. Must run on the main thread.
func (app *App) setModel(model *stl.Model) {
	lit := stlToRaylibMesh(model, true)
	flat := stlToRaylibMesh(model, false)

	if app.Model.model != nil {
		rl.UnloadMesh(&app.Model.litMesh)
		rl.UnloadMesh(&app.Model.flatMesh)
	}

	app.Model.model = model
	app.Model.litMesh = lit
	app.Model.flatMesh = flat
	app.Model.edges = uniqueEdges(model)
	app.Model.stats = analysis.AnalyzeModel(model)
}

// drawModel renders the filled surface
func (app *App) drawModel() {
	if !app.View.showFilled || app.Model.model == nil {
		return
	}
	mesh := app.Model.flatMesh
	if app.View.lighting {
		mesh = app.Model.litMesh
	}
	rl.DrawMesh(mesh, app.Model.material, rl.MatrixIdentity())
}

func (app *App) unloadModel() {
	if app.Model.model == nil {
		return
	}
	rl.UnloadMesh(&app.Model.litMesh)
	rl.UnloadMesh(&app.Model.flatMesh)
	app.Model.model = nil
}
