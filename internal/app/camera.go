package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/stl"
)

const (
	defaultAngle  = 0.3
	rotateSpeed   = 0.005
	zoomStep      = 0.1
	minDistance   = 0.01
	maxPitchAngle = math.Pi/2 - 0.01
)

// frameModel points the camera at a model's bounding box
func (app *App) frameModel(model *stl.Model) {
	bbox := model.BoundingBox()
	center := bbox.Center()
	maxDim := bbox.MaxExtent()
	if maxDim <= 0 {
		maxDim = 1
	}
	distance := float32(maxDim * 2.0)

	app.Model.center = rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	app.Model.size = float32(maxDim)

	app.Camera.target = app.Model.center
	app.Camera.distance = distance
	app.Camera.angleX = defaultAngle
	app.Camera.angleY = defaultAngle
	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = defaultAngle
	app.Camera.defaultAngleY = defaultAngle

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Model.center
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	cam := &app.Camera
	x := cam.distance * float32(math.Cos(float64(cam.angleX))) * float32(math.Sin(float64(cam.angleY)))
	y := cam.distance * float32(math.Sin(float64(cam.angleX)))
	z := cam.distance * float32(math.Cos(float64(cam.angleX))) * float32(math.Cos(float64(cam.angleY)))

	cam.camera.Position = rl.Vector3{
		X: cam.target.X + x,
		Y: cam.target.Y + y,
		Z: cam.target.Z + z,
	}
	cam.camera.Target = cam.target
}

// doRotate orbits the camera around its target
func (app *App) doRotate(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * rotateSpeed
	app.Camera.angleX += delta.Y * rotateSpeed
	app.Camera.angleX = float32(math.Max(-maxPitchAngle, math.Min(maxPitchAngle, float64(app.Camera.angleX))))
}

// doZoom moves the camera towards or away from its target
func (app *App) doZoom(wheelMove float32) {
	app.Camera.distance *= 1 - wheelMove*zoomStep
	if app.Camera.distance < minDistance {
		app.Camera.distance = minDistance
	}
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	cam := &app.Camera
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.target, cam.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := cam.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	cam.target = rl.Vector3Add(cam.target, rightMove)
	cam.target = rl.Vector3Add(cam.target, upMove)
}
