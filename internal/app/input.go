package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

func keyDown(keys ...int32) bool {
	for _, k := range keys {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}

// wheelEvents translates this frame's raylib input into wheel events
func wheelEvents(activation wheel.Key) []wheel.Event {
	mouse := rl.GetMousePosition()
	base := wheel.Event{
		Position: geometry.NewVector2(float64(mouse.X), float64(mouse.Y)),
		Control:  keyDown(rl.KeyLeftControl, rl.KeyRightControl),
		Command:  keyDown(rl.KeyLeftSuper, rl.KeyRightSuper),
	}

	var events []wheel.Event
	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		ev := base
		ev.Type = wheel.EventPointer
		events = append(events, ev)
	}
	if rl.IsKeyPressed(int32(activation)) {
		ev := base
		ev.Type = wheel.EventKeyDown
		ev.Key = activation
		events = append(events, ev)
	}
	if rl.IsKeyReleased(int32(activation)) {
		ev := base
		ev.Type = wheel.EventKeyUp
		ev.Key = activation
		events = append(events, ev)
	}
	return events
}

// handleInput processes user input. While the wheel is open it owns the
// pointer and the camera and shortcuts are left alone.
func (app *App) handleInput() {
	activation := app.Wheel.controller.Selector().Config().ActivationKey
	for _, ev := range wheelEvents(activation) {
		// raylib redraws every frame, so the repaint hint is not needed
		app.Wheel.dispatcher.Dispatch(ev)
	}
	if app.Wheel.controller.Selector().Active() {
		app.Interaction.isPanning = false
		return
	}

	app.handleShortcuts(activation)
	app.handleCameraInput()
}

// handleShortcuts handles the keyboard toggles. The activation key wins
// if it collides with one of them.
func (app *App) handleShortcuts(activation wheel.Key) {
	pressed := func(k int32) bool {
		return k != int32(activation) && rl.IsKeyPressed(k)
	}

	if pressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if pressed(rl.KeyW) {
		app.View.toggleWireframe()
	}
	if pressed(rl.KeyF) {
		app.View.toggleFilled()
	}
	if pressed(rl.KeyL) {
		app.View.toggleLighting()
	}
	if pressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}
}

// handleCameraInput orbits with left drag, pans with shift+left or middle
// drag and zooms with the mouse wheel
func (app *App) handleCameraInput() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.isPanning = keyDown(rl.KeyLeftShift, rl.KeyRightShift)
	}

	delta := rl.GetMouseDelta()
	moved := delta.X != 0 || delta.Y != 0

	switch {
	case (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton):
		if moved {
			app.doPan(delta)
		}
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		if moved {
			app.doRotate(delta)
		}
	}

	if move := rl.GetMouseWheelMove(); move != 0 {
		app.doZoom(move)
	}
}
