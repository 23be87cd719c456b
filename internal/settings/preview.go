package settings

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/renzk/shadingwheel/pkg/geometry"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

const previewHeight = 220

// Preview draws a scaled-down wheel for the current settings
type Preview struct {
	widget.BaseWidget
	cfg wheel.Config
}

// NewPreview creates a preview widget
func NewPreview(cfg wheel.Config) *Preview {
	p := &Preview{cfg: cfg}
	p.ExtendBaseWidget(p)
	return p
}

// SetConfig redraws the preview for new settings
func (p *Preview) SetConfig(cfg wheel.Config) {
	p.cfg = cfg
	p.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (p *Preview) CreateRenderer() fyne.WidgetRenderer {
	r := &previewRenderer{
		preview:      p,
		background:   canvas.NewRectangle(wheel.ColorPreviewBackground),
		radiusRing:   ring(wheel.ColorRadiusRing),
		deadZoneRing: ring(wheel.ColorDeadZoneRing),
		deadZoneDisc: canvas.NewCircle(wheel.ColorDeadZoneFill),
	}
	for i := range r.boxes {
		r.boxes[i] = canvas.NewRectangle(wheel.ColorOther)
		r.labels[i] = canvas.NewText("", color.White)
		r.labels[i].Alignment = fyne.TextAlignCenter
	}
	r.update()
	return r
}

func ring(c color.Color) *canvas.Circle {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = c
	circle.StrokeWidth = 1
	return circle
}

// previewRenderer implements fyne.WidgetRenderer
type previewRenderer struct {
	preview      *Preview
	background   *canvas.Rectangle
	radiusRing   *canvas.Circle
	deadZoneRing *canvas.Circle
	deadZoneDisc *canvas.Circle
	boxes        [4]*canvas.Rectangle
	labels       [4]*canvas.Text
}

// update syncs visibility and labels with the config
func (r *previewRenderer) update() {
	cfg := r.preview.cfg
	setVisible(r.radiusRing, cfg.ShowRadius)
	setVisible(r.deadZoneRing, cfg.ShowDeadZone)
	for i, d := range wheel.Directions {
		r.labels[i].Text = cfg.Order.For(d).Label()
	}
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

func placeCircle(c *canvas.Circle, center geometry.Vector2, radius float64) {
	c.Move(fyne.NewPos(float32(center.X-radius), float32(center.Y-radius)))
	c.Resize(fyne.NewSquareSize(float32(2 * radius)))
}

func (r *previewRenderer) Layout(size fyne.Size) {
	cfg := r.preview.cfg
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)

	center := geometry.NewVector2(float64(size.Width)/2, float64(size.Height)/2)
	radius := cfg.WheelRadius * wheel.PreviewScale
	placeCircle(r.radiusRing, center, radius)
	placeCircle(r.deadZoneRing, center, (cfg.DeadZoneRadius+wheel.DeadZoneRingPadding)*wheel.PreviewScale)
	placeCircle(r.deadZoneDisc, center, cfg.DeadZoneRadius*wheel.PreviewScale)

	textSize := theme.TextSize()
	for i, d := range wheel.Directions {
		label := r.labels[i]
		measured := fyne.MeasureText(label.Text, textSize, label.TextStyle)
		width := wheel.ButtonWidth(float64(measured.Width), wheel.PreviewMinButtonWidth)
		rect := wheel.ButtonRect(d, wheel.PositionForDirection(center, d, radius), width)

		r.boxes[i].Move(fyne.NewPos(float32(rect.X), float32(rect.Y)))
		r.boxes[i].Resize(fyne.NewSize(float32(rect.Width), float32(rect.Height)))

		label.Move(fyne.NewPos(float32(rect.X), float32(rect.Y)+(float32(rect.Height)-measured.Height)/2))
		label.Resize(fyne.NewSize(float32(rect.Width), measured.Height))
	}
}

func (r *previewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, previewHeight)
}

func (r *previewRenderer) Refresh() {
	r.update()
	r.Layout(r.preview.Size())
	for _, o := range r.Objects() {
		o.Refresh()
	}
}

func (r *previewRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background, r.radiusRing, r.deadZoneRing, r.deadZoneDisc}
	for i := range r.boxes {
		objects = append(objects, r.boxes[i], r.labels[i])
	}
	return objects
}

func (r *previewRenderer) Destroy() {}
