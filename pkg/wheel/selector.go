// Package wheel implements a four-way radial selector ("shading wheel"):
// the user holds a key, moves the pointer away from where the key was
// pressed and releases it to pick the option in that direction.
package wheel

import (
	"github.com/renzk/shadingwheel/pkg/geometry"
)

// VisualState is what a host needs to draw the wheel for one frame
type VisualState struct {
	Active         bool
	Anchor         geometry.Vector2
	Pointer        geometry.Vector2
	Highlighted    Choice
	HasHighlight   bool
	InDeadZone     bool
	Current        Choice  // the host's live choice when the session began
	IndicatorAngle float64 // degrees, only meaningful outside the dead zone
}

// Selector tracks a single wheel session. It is not safe for concurrent
// use; hosts drive it from their input thread.
type Selector struct {
	cfg Config

	active       bool
	anchor       geometry.Vector2
	pointer      geometry.Vector2
	highlighted  Choice
	hasHighlight bool
	inDeadZone   bool
	current      Choice
}

// NewSelector creates an idle selector
func NewSelector(cfg Config) *Selector {
	return &Selector{cfg: cfg}
}

// Config returns the active configuration
func (s *Selector) Config() Config {
	return s.cfg
}

// Configure replaces the configuration. A running session keeps its anchor
// and is re-evaluated against the new radii on the next Update.
func (s *Selector) Configure(cfg Config) {
	s.cfg = cfg
}

// Active reports whether a session is in progress
func (s *Selector) Active() bool {
	return s.active
}

// Begin starts a session anchored at the pointer position. current is the
// choice matching the host's live state. Begin returns false and leaves the
// session untouched when one is already running.
func (s *Selector) Begin(anchor geometry.Vector2, current Choice) bool {
	if s.active {
		return false
	}
	s.active = true
	s.anchor = anchor
	s.current = current
	s.hasHighlight = false
	s.highlighted = ChoiceNone
	s.Update(anchor)
	return true
}

// SetCurrent refreshes the host's live choice, e.g. after a commit was applied
func (s *Selector) SetCurrent(current Choice) {
	s.current = current
}

// Update moves the pointer and recomputes the highlighted choice
func (s *Selector) Update(pos geometry.Vector2) {
	if !s.active {
		return
	}
	s.pointer = pos

	if s.anchor.Distance(pos) < s.cfg.DeadZoneRadius {
		s.highlighted = ChoiceNone
		s.hasHighlight = false
		s.inDeadZone = true
		return
	}

	s.inDeadZone = false
	s.highlighted = s.cfg.Order.For(DirectionFor(pos.Sub(s.anchor)))
	s.hasHighlight = true
}

// End finishes the session at the release position and returns the choice
// to commit. ok is false when released inside the dead zone (a cancel) or
// when no session was running. The selector is idle afterwards either way.
func (s *Selector) End(pos geometry.Vector2) (choice Choice, ok bool) {
	if !s.active {
		return ChoiceNone, false
	}
	s.Update(pos)
	s.active = false

	if s.anchor.Distance(pos) <= s.cfg.DeadZoneRadius || !s.hasHighlight {
		return ChoiceNone, false
	}
	return s.highlighted, true
}

// VisualState returns a snapshot for drawing. It has no side effects.
func (s *Selector) VisualState() VisualState {
	return VisualState{
		Active:         s.active,
		Anchor:         s.anchor,
		Pointer:        s.pointer,
		Highlighted:    s.highlighted,
		HasHighlight:   s.hasHighlight,
		InDeadZone:     s.inDeadZone,
		Current:        s.current,
		IndicatorAngle: IndicatorAngle(s.anchor, s.pointer),
	}
}
