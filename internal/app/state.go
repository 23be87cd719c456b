package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/analysis"
	"github.com/renzk/shadingwheel/pkg/prefs"
	"github.com/renzk/shadingwheel/pkg/stl"
	"github.com/renzk/shadingwheel/pkg/watcher"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32
	defaultAngleY float32
}

// ModelData holds all model-related data
type ModelData struct {
	model    *stl.Model
	litMesh  rl.Mesh // vertex colours with baked diffuse lighting
	flatMesh rl.Mesh // uniform vertex colours
	material rl.Material
	edges    [][2]rl.Vector3
	stats    analysis.Stats
	center   rl.Vector3
	size     float32 // max dimension
}

// InteractionState holds mouse state for camera control
type InteractionState struct {
	isPanning bool
}

// WheelState holds the shading wheel and everything it draws with
type WheelState struct {
	controller *wheel.Controller
	dispatcher *wheel.Dispatcher
	textures   *wheelTextures
}

// FileWatchState holds file watching and reload state.
// Watcher callbacks run on another goroutine and only set the flags.
type FileWatchState struct {
	sourceFile       string
	prefs            *prefs.Store
	fileWatcher      *watcher.FileWatcher
	modelChanged     atomic.Bool
	prefsChanged     atomic.Bool
	isLoading        atomic.Bool
	loadingStartTime time.Time
	loaded           atomic.Pointer[stl.Model]
}

// UIState holds HUD state
type UIState struct {
	showHelp bool
}
