// Package settings is the preferences window for the shading wheel.
package settings

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

const (
	minRadius   = 50
	maxRadius   = 200
	minDeadZone = 0
	maxDeadZone = 50
)

// Window title and minimum content size
const (
	Title     = "Shading Wheel Preferences"
	MinWidth  = 350
	MinHeight = 300
)

var toggleLabels = [3]string{"Show Deadzone Wheel", "Show Shading Label", "Show Wheel Radius"}

// directionRows lists the direction selects top to bottom
var directionRows = [4]wheel.Direction{wheel.Up, wheel.Down, wheel.Left, wheel.Right}

// Store is where the editor saves to
type Store interface {
	wheel.Preferences
	Save() error
	Path() string
}

// Editor binds the preference widgets to a wheel configuration. Edits stay
// in memory until Save.
type Editor struct {
	store  Store
	window fyne.Window
	cfg    wheel.Config

	// set while pushing cfg into the widgets so their callbacks stay quiet
	updating bool

	preview       *Preview
	radius        *widget.Slider
	radiusValue   *widget.Label
	deadZone      *widget.Slider
	deadZoneValue *widget.Label
	key           *widget.Select
	toggles       [3]*widget.Check
	directions    [4]*widget.Select
	saveButton    *widget.Button
	resetButton   *widget.Button
	status        *widget.Label
	content       fyne.CanvasObject
}

// NewEditor loads the stored configuration and builds the widgets. window
// is used for error dialogs and may be nil.
func NewEditor(store Store, window fyne.Window) *Editor {
	e := &Editor{store: store, window: window}
	e.build()
	e.setConfig(wheel.LoadConfig(store))
	return e
}

// Content returns the root canvas object for a window
func (e *Editor) Content() fyne.CanvasObject {
	return e.content
}

// Config returns the edited configuration
func (e *Editor) Config() wheel.Config {
	return e.cfg
}

func (e *Editor) build() {
	e.preview = NewPreview(e.cfg)

	e.radius = widget.NewSlider(minRadius, maxRadius)
	e.radiusValue = widget.NewLabel("")
	e.radius.OnChanged = func(v float64) {
		e.edit(func(c *wheel.Config) { c.WheelRadius = v })
	}

	e.deadZone = widget.NewSlider(minDeadZone, maxDeadZone)
	e.deadZoneValue = widget.NewLabel("")
	e.deadZone.OnChanged = func(v float64) {
		e.edit(func(c *wheel.Config) { c.DeadZoneRadius = v })
	}

	e.key = widget.NewSelect(wheel.KeyNames(), func(name string) {
		k, err := wheel.ParseKey(name)
		if err != nil {
			return
		}
		e.edit(func(c *wheel.Config) { c.ActivationKey = k })
	})

	for i := range e.toggles {
		e.toggles[i] = widget.NewCheck(toggleLabels[i], func(on bool) {
			e.edit(func(c *wheel.Config) { c.SetToggle(i, on) })
		})
	}

	for i, d := range directionRows {
		e.directions[i] = widget.NewSelect(wheel.ChoiceLabels(), func(label string) {
			choice, err := wheel.ParseChoice(label)
			if err != nil {
				return
			}
			e.edit(func(c *wheel.Config) { c.Order[d] = choice })
		})
	}

	e.saveButton = widget.NewButton("Save Preferences", func() {
		if err := e.Save(); err != nil && e.window != nil {
			dialog.ShowError(err, e.window)
		}
	})
	e.saveButton.Importance = widget.HighImportance
	e.resetButton = widget.NewButton("Reset", e.Reset)
	e.status = widget.NewLabel("")

	settingsHeader := widget.NewLabel("Settings")
	settingsHeader.TextStyle = fyne.TextStyle{Bold: true}
	directionsHeader := widget.NewLabel("Wheel Directions")
	directionsHeader.TextStyle = fyne.TextStyle{Bold: true}

	settingsForm := container.New(layout.NewFormLayout(),
		widget.NewLabel("Wheel Radius"), container.NewBorder(nil, nil, nil, e.radiusValue, e.radius),
		widget.NewLabel("Dead Zone Radius"), container.NewBorder(nil, nil, nil, e.deadZoneValue, e.deadZone),
		widget.NewLabel("Activation Key"), e.key,
	)

	directionsForm := container.New(layout.NewFormLayout())
	for i, d := range directionRows {
		directionsForm.Add(widget.NewLabel(d.String() + ":"))
		directionsForm.Add(e.directions[i])
	}

	body := container.NewVBox(
		e.preview,
		settingsHeader,
		settingsForm,
		e.toggles[0], e.toggles[1], e.toggles[2],
		widget.NewSeparator(),
		directionsHeader,
		directionsForm,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, e.resetButton, e.saveButton),
		e.status,
	)

	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(fyne.NewSize(MinWidth, MinHeight))
	e.content = container.NewStack(minSize, container.NewVScroll(body))
}

// edit applies a change coming from a widget
func (e *Editor) edit(change func(*wheel.Config)) {
	if e.updating {
		return
	}
	change(&e.cfg)
	e.refreshDerived()
}

// refreshDerived updates everything computed from cfg rather than edited
func (e *Editor) refreshDerived() {
	e.radiusValue.SetText(fmt.Sprintf("%.0f", e.cfg.WheelRadius))
	e.deadZoneValue.SetText(fmt.Sprintf("%.0f", e.cfg.DeadZoneRadius))
	e.preview.SetConfig(e.cfg)
}

// setConfig pushes a whole configuration into the widgets
func (e *Editor) setConfig(cfg wheel.Config) {
	e.cfg = cfg
	e.updating = true
	defer func() { e.updating = false }()

	e.radius.SetValue(cfg.WheelRadius)
	e.deadZone.SetValue(cfg.DeadZoneRadius)

	e.key.Options = wheel.KeyNames()
	if !cfg.ActivationKey.Known() {
		e.key.Options = append(e.key.Options, cfg.ActivationKey.String())
	}
	e.key.SetSelected(cfg.ActivationKey.String())

	for i, on := range cfg.Toggles() {
		e.toggles[i].SetChecked(on)
	}
	for i, d := range directionRows {
		e.directions[i].SetSelected(cfg.Order.For(d).Label())
	}

	e.refreshDerived()
}

// Save writes the edited configuration to the store and persists it
func (e *Editor) Save() error {
	wheel.SaveConfig(e.store, e.cfg)
	if err := e.store.Save(); err != nil {
		e.status.SetText("Save failed")
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	slog.Info("preferences saved", "path", e.store.Path())
	e.status.SetText("Saved to " + e.store.Path())
	return nil
}

// Reset restores the default settings in the editor. Nothing is written
// until Save.
func (e *Editor) Reset() {
	e.setConfig(wheel.ResetConfig())
	e.status.SetText("Defaults restored, not saved yet")
}
