package app

import (
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

const (
	wheelFontSize  = 14
	wheelIconSize  = 16
	labelFontSize  = 16
	buttonTextDark = 30
)

var wheelTextColor = rl.NewColor(buttonTextDark, buttonTextDark, buttonTextDark, 255)

func toRect(r wheel.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.Width), Height: float32(r.Height)}
}

func toVec2(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// drawWheel draws the wheel for the current session, if any
func (app *App) drawWheel() {
	sel := app.Wheel.controller.Selector()
	state := sel.VisualState()
	if !state.Active {
		return
	}
	cfg := sel.Config()

	if cfg.ShowDeadZone {
		app.drawDeadZoneRing(state, cfg)
	}
	if cfg.ShowRadius {
		rl.DrawCircleLines(int32(state.Anchor.X), int32(state.Anchor.Y), float32(cfg.WheelRadius), wheel.ColorRadiusRing)
	}

	for _, b := range wheel.Buttons(state, cfg) {
		app.drawWheelButton(b)
	}

	if cfg.ShowLabel {
		r := wheel.LabelRect(state.Anchor, cfg.DeadZoneRadius)
		text := "Shading"
		w := float64(rl.MeasureText(text, labelFontSize))
		x := r.X + (r.Width-w)/2
		y := r.Y + (r.Height-labelFontSize)/2
		rl.DrawText(text, int32(x), int32(y), labelFontSize, rl.RayWhite)
	}
}

// drawDeadZoneRing draws the ring texture with the rotated indicator, or a
// plain circle when the texture is missing
func (app *App) drawDeadZoneRing(state wheel.VisualState, cfg wheel.Config) {
	tex := app.Wheel.textures
	if tex == nil || tex.outline.ID == 0 {
		rl.DrawCircleV(toVec2(state.Anchor), float32(cfg.DeadZoneRadius), wheel.ColorDeadZoneFill)
		rl.DrawCircleLines(int32(state.Anchor.X), int32(state.Anchor.Y), float32(cfg.DeadZoneRadius+wheel.DeadZoneRingPadding), wheel.ColorDeadZoneRing)
		return
	}

	dst := toRect(wheel.DeadZoneRingRect(state.Anchor, cfg.DeadZoneRadius))
	drawTextureFit(tex.outline, dst, 0)

	if !state.InDeadZone && tex.indicator.ID > 0 {
		drawTextureFit(tex.indicator, dst, float32(state.IndicatorAngle))
	}
}

// drawTextureFit draws a texture scaled into dst, rotated about dst's centre
func drawTextureFit(tex rl.Texture2D, dst rl.Rectangle, rotation float32) {
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	origin := rl.Vector2{X: dst.Width / 2, Y: dst.Height / 2}
	// DrawTexturePro rotates around origin, which is relative to dst's corner
	dst.X += origin.X
	dst.Y += origin.Y
	rl.DrawTexturePro(tex, src, dst, origin, rotation, rl.White)
}

// drawWheelButton draws one slot with raygui, coloured by its state
func (app *App) drawWheelButton(b wheel.Button) {
	text := b.Choice.Label()
	icon, hasIcon := rl.Texture2D{}, false
	if app.Wheel.textures != nil {
		icon, hasIcon = app.Wheel.textures.icons[b.Choice]
	}
	if hasIcon {
		text = "     " + text
	}

	width := wheel.ButtonWidth(float64(rl.MeasureText(text, wheelFontSize)), wheel.MinButtonWidth)
	bounds := toRect(wheel.ButtonRect(b.Direction, b.Position, width))

	restore := pushButtonStyle(wheel.ButtonColor(b.Current, b.Highlighted))
	// The pointer direction picks the choice, so clicks are not handled
	_ = gui.Button(bounds, text)
	restore()

	if hasIcon {
		iconDst := rl.Rectangle{
			X:      bounds.X + 8,
			Y:      bounds.Y + (bounds.Height-wheelIconSize)/2,
			Width:  wheelIconSize,
			Height: wheelIconSize,
		}
		rl.DrawTexturePro(icon, rl.Rectangle{Width: float32(icon.Width), Height: float32(icon.Height)}, iconDst, rl.Vector2{}, 0, rl.White)
	}
}

// pushButtonStyle sets every button state to one colour, so hovering does
// not fight the wheel's own highlight, and returns a function restoring the
// previous style
func pushButtonStyle(c color.RGBA) func() {
	var saved [6]int64
	saved[0] = gui.GetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL)
	saved[1] = gui.GetStyle(gui.BUTTON, gui.BASE_COLOR_FOCUSED)
	saved[2] = gui.GetStyle(gui.BUTTON, gui.BASE_COLOR_PRESSED)
	saved[3] = gui.GetStyle(gui.BUTTON, gui.TEXT_COLOR_NORMAL)
	saved[4] = gui.GetStyle(gui.BUTTON, gui.TEXT_COLOR_FOCUSED)
	saved[5] = gui.GetStyle(gui.BUTTON, gui.TEXT_COLOR_PRESSED)

	base := gui.NewColorPropertyValue(c)
	text := gui.NewColorPropertyValue(wheelTextColor)
	gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL, base)
	gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_FOCUSED, base)
	gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_PRESSED, base)
	gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_NORMAL, text)
	gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_FOCUSED, text)
	gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_PRESSED, text)

	return func() {
		gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_NORMAL, saved[0])
		gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_FOCUSED, saved[1])
		gui.SetStyle(gui.BUTTON, gui.BASE_COLOR_PRESSED, saved[2])
		gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_NORMAL, saved[3])
		gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_FOCUSED, saved[4])
		gui.SetStyle(gui.BUTTON, gui.TEXT_COLOR_PRESSED, saved[5])
	}
}

// setupGUIStyle applies the HUD font size once after the window opens
func setupGUIStyle() {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, wheelFontSize)
}
