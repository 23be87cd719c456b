package wheel

import (
	"log/slog"
)

// Viewport is the host side the wheel switches shading on
type Viewport interface {
	ViewMode() ViewMode
	SetViewMode(mode ViewMode, lighting bool)
}

// Apply sets the viewport to the mode a choice maps to. ChoiceNone leaves
// the viewport alone and Apply returns false.
func Apply(vp Viewport, choice Choice) bool {
	mode, lighting, ok := choice.ViewMode()
	if !ok {
		return false
	}
	vp.SetViewMode(mode, lighting)
	return true
}

// Controller turns host events into selector calls and applies commits
type Controller struct {
	selector *Selector
	viewport Viewport
	// sessionKey is the key that opened the running session; its release
	// ends it even if the configured key changed meanwhile
	sessionKey Key
}

// NewController creates a controller for one viewport
func NewController(cfg Config, vp Viewport) *Controller {
	return &Controller{
		selector: NewSelector(cfg),
		viewport: vp,
	}
}

// Selector exposes the underlying selector for drawing
func (c *Controller) Selector() *Selector {
	return c.selector
}

// Configure swaps the configuration, e.g. after the preferences changed
func (c *Controller) Configure(cfg Config) {
	c.selector.Configure(cfg)
}

// Attach subscribes the controller to a dispatcher. The returned function
// detaches it; hosts defer it so teardown always unsubscribes.
func (c *Controller) Attach(d *Dispatcher) (detach func()) {
	return d.Subscribe(c.HandleEvent)
}

// HandleEvent processes one event and reports whether a repaint is needed.
// Events with Control or Command held are ignored so the activation key
// stays free for shortcuts like Ctrl+Z.
func (c *Controller) HandleEvent(ev Event) bool {
	if ev.Control || ev.Command {
		return false
	}

	repaint := false

	switch {
	case ev.Type == EventKeyDown && ev.Key == c.selector.Config().ActivationKey:
		if c.selector.Begin(ev.Position, ChoiceForViewMode(c.viewport.ViewMode())) {
			c.sessionKey = ev.Key
			slog.Debug("wheel session started", "x", ev.Position.X, "y", ev.Position.Y)
		}
		repaint = true

	case ev.Type == EventKeyUp && c.selector.Active() && ev.Key == c.sessionKey:
		choice, ok := c.selector.End(ev.Position)
		if ok && Apply(c.viewport, choice) {
			slog.Info("shading changed", "choice", choice.Label(), "mode", c.viewport.ViewMode().String())
		}
		c.selector.SetCurrent(ChoiceForViewMode(c.viewport.ViewMode()))
		repaint = true
	}

	if c.selector.Active() {
		c.selector.Update(ev.Position)
		repaint = true
	}

	return repaint
}
