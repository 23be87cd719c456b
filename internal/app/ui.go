package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/analysis"
	"github.com/renzk/shadingwheel/version"
)

const (
	hudFontSize   = 14
	hudLineHeight = 20
)

var (
	hudHeading = rl.Yellow
	hudText    = rl.White
	hudDim     = rl.NewColor(150, 150, 160, 255)
)

// drawUI draws the heads-up display
func (app *App) drawUI() {
	y := int32(10)
	line := func(text string, c rl.Color) {
		rl.DrawText(text, 10, y, hudFontSize, c)
		y += hudLineHeight
	}

	line(fmt.Sprintf("Model: %s", app.Model.model.Name), hudHeading)
	stats := app.Model.stats
	line(fmt.Sprintf("  Triangles: %d", stats.TriangleCount), hudText)
	line(fmt.Sprintf("  Size: %s", analysis.FormatSize(stats.Dimensions)), hudText)
	line(fmt.Sprintf("  Surface Area: %.2f", stats.SurfaceArea), hudText)
	line(fmt.Sprintf("  Shading: %s (lighting %s)", app.View.ViewMode(), onOff(app.View.lighting)), hudText)

	cfg := app.Wheel.controller.Selector().Config()
	line(fmt.Sprintf("  Hold %s for the shading wheel", cfg.ActivationKey), hudDim)

	if app.UI.showHelp {
		y += hudLineHeight / 2
		line("Controls:", hudHeading)
		for _, help := range []string{
			"  Drag: rotate   Shift/Middle drag: pan   Wheel: zoom",
			"  Home: reset camera",
			"  W: wireframe   F: fill   L: lighting",
			"  H: hide help",
		} {
			line(help, hudText)
		}
	}

	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	if app.FileWatch.isLoading.Load() {
		elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
		text := fmt.Sprintf("Loading... (%.1fs)", elapsed)
		w := rl.MeasureText(text, 18) + 40
		x := screenWidth - w - 20
		rl.DrawRectangle(x, 20, w, 40, rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(x, 20, w, 40, rl.Yellow)
		rl.DrawText(text, x+20, 31, 18, rl.Yellow)
	}

	v := "shadingwheel " + version.GetVersion()
	rl.DrawText(v, screenWidth-rl.MeasureText(v, 12)-10, screenHeight-20, 12, hudDim)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
