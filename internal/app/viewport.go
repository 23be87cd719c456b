package app

import "github.com/renzk/shadingwheel/pkg/wheel"

// ViewSettings holds display settings. It is the wheel's viewport: the
// filled and wireframe flags together form the render mode.
type ViewSettings struct {
	showFilled    bool
	showWireframe bool
	lighting      bool
}

// ViewMode derives the render mode from the flags
func (v *ViewSettings) ViewMode() wheel.ViewMode {
	switch {
	case v.showFilled && v.showWireframe:
		return wheel.ViewTexturedWire
	case v.showFilled:
		return wheel.ViewTextured
	case v.showWireframe:
		return wheel.ViewWireframe
	default:
		return wheel.ViewHidden
	}
}

// SetViewMode sets the flags for a render mode
func (v *ViewSettings) SetViewMode(mode wheel.ViewMode, lighting bool) {
	switch mode {
	case wheel.ViewTextured:
		v.showFilled, v.showWireframe = true, false
	case wheel.ViewWireframe:
		v.showFilled, v.showWireframe = false, true
	case wheel.ViewTexturedWire:
		v.showFilled, v.showWireframe = true, true
	default:
		v.showFilled, v.showWireframe = false, false
	}
	v.lighting = lighting
}

func (v *ViewSettings) toggleWireframe() {
	v.showWireframe = !v.showWireframe
}

func (v *ViewSettings) toggleFilled() {
	v.showFilled = !v.showFilled
}

func (v *ViewSettings) toggleLighting() {
	v.lighting = !v.lighting
}
