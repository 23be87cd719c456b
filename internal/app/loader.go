package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/stl"
	"github.com/renzk/shadingwheel/pkg/watcher"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

const watchDebounce = 500 * time.Millisecond

// loadModel loads an STL file
func loadModel(filePath string) (*stl.Model, error) {
	if ext := strings.ToLower(filepath.Ext(filePath)); ext != ".stl" {
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl)", ext)
	}
	model, err := stl.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse STL file: %w", err)
	}
	return model, nil
}

// setupFileWatcher watches the model file and the preferences file. The
// callbacks only raise flags; the main loop does the work.
func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Watch([]string{app.FileWatch.sourceFile}, func(changed string) {
		slog.Info("model file changed", "path", changed)
		app.FileWatch.modelChanged.Store(true)
	}); err != nil {
		_ = fw.Close()
		return fmt.Errorf("failed to watch model: %w", err)
	}

	if path := app.FileWatch.prefs.Path(); path != "" {
		// The preferences directory may not exist until the first save
		if err := fw.Watch([]string{path}, func(string) {
			app.FileWatch.prefsChanged.Store(true)
		}); err != nil {
			slog.Warn("preferences will not be reloaded automatically", "path", path, "error", err)
		}
	}

	fw.Start(ctx)
	app.FileWatch.fileWatcher = fw
	return nil
}

// pollFileChanges acts on the watcher flags. Must run on the main thread.
func (app *App) pollFileChanges() {
	if app.FileWatch.prefsChanged.CompareAndSwap(true, false) {
		app.reloadPreferences()
	}
	if app.FileWatch.modelChanged.Load() && !app.FileWatch.isLoading.Load() {
		app.FileWatch.modelChanged.Store(false)
		app.reloadModel()
	}
	app.applyLoadedModel()
}

// reloadPreferences re-reads the preferences file into the wheel
func (app *App) reloadPreferences() {
	if err := app.FileWatch.prefs.Reload(); err != nil {
		slog.Warn("failed to reload preferences, keeping current settings", "error", err)
		return
	}
	cfg := wheel.LoadConfig(app.FileWatch.prefs)
	app.Wheel.controller.Configure(cfg)
	slog.Info("preferences reloaded", "radius", cfg.WheelRadius, "deadzone", cfg.DeadZoneRadius, "key", cfg.ActivationKey.String())
}

// reloadModel parses the model file in the background
func (app *App) reloadModel() {
	if !app.FileWatch.isLoading.CompareAndSwap(false, true) {
		return
	}
	app.FileWatch.loadingStartTime = time.Now()
	slog.Info("reloading model", "path", app.FileWatch.sourceFile)

	// Parse off the main thread; mesh creation happens in applyLoadedModel
	go func() {
		model, err := loadModel(app.FileWatch.sourceFile)
		if err != nil {
			slog.Error("failed to reload model", "error", err)
			app.FileWatch.isLoading.Store(false)
			return
		}
		app.FileWatch.loaded.Store(model)
	}()
}

// applyLoadedModel swaps in a model parsed by reloadModel, keeping the
// camera relative to the model centre. Must run on the main thread.
func (app *App) applyLoadedModel() {
	model := app.FileWatch.loaded.Swap(nil)
	if model == nil {
		return
	}

	bbox := model.BoundingBox()
	center := bbox.Center()
	newCenter := rl.Vector3{X: float32(center.X), Y: float32(center.Y), Z: float32(center.Z)}
	centerDelta := rl.Vector3Subtract(newCenter, app.Model.center)

	app.setModel(model)
	app.Model.center = newCenter
	app.Model.size = float32(bbox.MaxExtent())
	app.Camera.target = rl.Vector3Add(app.Camera.target, centerDelta)

	elapsed := time.Since(app.FileWatch.loadingStartTime)
	slog.Info("model reloaded", "triangles", model.TriangleCount(), "seconds", elapsed.Seconds())
	app.FileWatch.isLoading.Store(false)
}
