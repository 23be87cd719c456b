// Package app is the STL viewer hosting the shading wheel.
package app

import (
	"context"
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/prefs"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

const (
	defaultWidth  = 1400
	defaultHeight = 900
	windowTitle   = "Shading Wheel"
)

var backgroundColor = rl.NewColor(15, 18, 25, 255)

// Options configure a viewer run
type Options struct {
	File   string
	Prefs  *prefs.Store
	Width  int32
	Height int32
}

type App struct {
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Interaction InteractionState
	Wheel       WheelState
	FileWatch   FileWatchState
	UI          UIState
}

// Run opens the viewer window and blocks until it is closed or ctx is done
func Run(ctx context.Context, opts Options) error {
	if opts.File == "" {
		return errors.New("no model file given")
	}
	if opts.Prefs == nil {
		return errors.New("no preference store given")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = defaultWidth, defaultHeight
	}

	model, err := loadModel(opts.File)
	if err != nil {
		return err
	}
	slog.Info("model loaded", "name", model.Name, "triangles", model.TriangleCount())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app := &App{
		View: ViewSettings{showFilled: true, showWireframe: false, lighting: true},
		UI:   UIState{showHelp: true},
	}
	app.FileWatch.sourceFile = opts.File
	app.FileWatch.prefs = opts.Prefs

	cfg := wheel.LoadConfig(opts.Prefs)
	app.Wheel.controller = wheel.NewController(cfg, &app.View)
	app.Wheel.dispatcher = wheel.NewDispatcher()
	detach := app.Wheel.controller.Attach(app.Wheel.dispatcher)
	defer detach()

	if err := app.setupFileWatcher(ctx); err != nil {
		slog.Warn("auto-reload will not be available", "error", err)
	} else {
		defer app.FileWatch.fileWatcher.Close()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(opts.Width, opts.Height, windowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	// Keep Escape from closing the window so it stays usable as an activation key
	rl.SetExitKey(rl.KeyNull)
	setupGUIStyle()

	app.Model.material = rl.LoadMaterialDefault()
	app.setModel(model)
	defer app.unloadModel()
	app.frameModel(model)

	app.Wheel.textures = loadWheelTextures(assetDirs(opts.Prefs.Dir()))
	defer app.Wheel.textures.unload()

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		app.pollFileChanges()

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		rl.BeginMode3D(app.Camera.camera)
		app.drawModel()
		app.drawWireframe()
		rl.EndMode3D()

		app.drawUI()
		app.drawWheel()

		rl.EndDrawing()
	}
	return nil
}
