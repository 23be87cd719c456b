package wheel

import (
	"github.com/renzk/shadingwheel/pkg/geometry"
)

// Direction is one of the four wheel slots
type Direction int

const (
	Left Direction = iota
	Down
	Right
	Up
)

// Directions lists the slots in storage order
var Directions = [4]Direction{Left, Down, Right, Up}

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// DirectionFor picks the slot an offset from the anchor points at.
// Exact diagonals resolve horizontally. A zero offset never reaches here
// while a dead zone is set.
func DirectionFor(delta geometry.Vector2) Direction {
	abs := delta.Abs()
	if abs.X >= abs.Y {
		if delta.X < 0 {
			return Left
		}
		return Right
	}
	if delta.Y > 0 {
		return Down
	}
	return Up
}

// PositionForDirection returns where a slot's button is anchored.
// The layout is a fixed plus shape; screen Y grows downward.
func PositionForDirection(anchor geometry.Vector2, d Direction, radius float64) geometry.Vector2 {
	switch d {
	case Left:
		return anchor.Add(geometry.NewVector2(-radius, 0))
	case Down:
		return anchor.Add(geometry.NewVector2(0, radius))
	case Right:
		return anchor.Add(geometry.NewVector2(radius, 0))
	case Up:
		return anchor.Add(geometry.NewVector2(0, -radius))
	default:
		return anchor
	}
}

// IndicatorAngle is the rotation in degrees for the direction indicator graphic.
// It is purely visual; selection never looks at it.
func IndicatorAngle(anchor, pointer geometry.Vector2) float64 {
	return pointer.Sub(anchor).Angle() + 90
}
