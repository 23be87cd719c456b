package wheel

import (
	"math"

	"github.com/renzk/shadingwheel/pkg/geometry"
)

// Layout constants in screen pixels
const (
	ButtonHeight          = 30
	MinButtonWidth        = 100
	PreviewMinButtonWidth = 80
	ButtonTextPadding     = 20
	DeadZoneRingPadding   = 10
	LabelWidth            = 100
	LabelHeight           = 20
	LabelOffset           = 35
	PreviewScale          = 0.4
)

// Rect is an axis-aligned screen rectangle
type Rect struct {
	X, Y, Width, Height float64
}

// ButtonWidth sizes a button to its label, never below minWidth
func ButtonWidth(textWidth, minWidth float64) float64 {
	return math.Max(minWidth, textWidth+ButtonTextPadding)
}

// ButtonRect places a button so it extends away from the anchor:
// side buttons are vertically centred on pos, top and bottom buttons
// horizontally centred.
func ButtonRect(d Direction, pos geometry.Vector2, width float64) Rect {
	switch d {
	case Left:
		return Rect{X: pos.X - width, Y: pos.Y - ButtonHeight/2, Width: width, Height: ButtonHeight}
	case Right:
		return Rect{X: pos.X, Y: pos.Y - ButtonHeight/2, Width: width, Height: ButtonHeight}
	case Up:
		return Rect{X: pos.X - width/2, Y: pos.Y - ButtonHeight, Width: width, Height: ButtonHeight}
	case Down:
		return Rect{X: pos.X - width/2, Y: pos.Y, Width: width, Height: ButtonHeight}
	default:
		return Rect{Width: width, Height: ButtonHeight}
	}
}

// DeadZoneRingRect is the square the dead-zone ring texture is drawn into
func DeadZoneRingRect(anchor geometry.Vector2, deadZone float64) Rect {
	r := deadZone + DeadZoneRingPadding
	return Rect{X: anchor.X - r, Y: anchor.Y - r, Width: 2 * r, Height: 2 * r}
}

// LabelRect is where the "Shading" caption goes, above the dead-zone ring
func LabelRect(anchor geometry.Vector2, deadZone float64) Rect {
	return Rect{
		X:      anchor.X - LabelWidth/2,
		Y:      anchor.Y - (deadZone + LabelOffset),
		Width:  LabelWidth,
		Height: LabelHeight,
	}
}

// Button is one wheel slot resolved for drawing
type Button struct {
	Direction   Direction
	Choice      Choice
	Position    geometry.Vector2
	Current     bool // choice matches the host's live mode
	Highlighted bool // choice is under the pointer, outside the dead zone
}

// Buttons resolves the four slots for a visual state
func Buttons(state VisualState, cfg Config) [4]Button {
	var buttons [4]Button
	for i, d := range Directions {
		choice := cfg.Order.For(d)
		buttons[i] = Button{
			Direction:   d,
			Choice:      choice,
			Position:    PositionForDirection(state.Anchor, d, cfg.WheelRadius),
			Current:     choice == state.Current,
			Highlighted: state.HasHighlight && !state.InDeadZone && choice == state.Highlighted,
		}
	}
	return buttons
}
