package wheel

import (
	"fmt"
	"log/slog"
)

// Preference keys, shared by every reader and writer of the store
const (
	KeyRadius        = "shadingwheel.radius"
	KeyDeadZone      = "shadingwheel.deadzone"
	KeyActivationKey = "shadingwheel.activation_key"
	KeyOrder         = "shadingwheel.order"
	keyTogglePrefix  = "shadingwheel.toggle_"
)

// Toggle indices, in persisted order
const (
	ToggleDeadZone = iota
	ToggleLabel
	ToggleRadius
)

// ToggleKey returns the preference key of a display toggle
func ToggleKey(i int) string {
	return fmt.Sprintf("%s%d", keyTogglePrefix, i)
}

// Preferences is the key-value store the wheel configuration lives in.
// Reads take a caller-supplied default returned when the key is absent.
type Preferences interface {
	GetFloat(key string, def float64) float64
	SetFloat(key string, value float64)
	GetBool(key string, def bool) bool
	SetBool(key string, value bool)
	GetInt(key string, def int) int
	SetInt(key string, value int)
	GetString(key string, def string) string
	SetString(key string, value string)
}

// Config holds the user-tunable wheel settings
type Config struct {
	WheelRadius    float64
	DeadZoneRadius float64
	ActivationKey  Key
	Order          Mapping
	ShowDeadZone   bool // dead-zone ring and direction indicator
	ShowLabel      bool // "Shading" caption above the anchor
	ShowRadius     bool // ring at the wheel radius
}

// DefaultConfig is what LoadConfig falls back to for missing keys
func DefaultConfig() Config {
	return Config{
		WheelRadius:    135,
		DeadZoneRadius: 20,
		ActivationKey:  DefaultActivationKey,
		Order:          IdentityMapping,
		ShowDeadZone:   true,
		ShowLabel:      true,
		ShowRadius:     true,
	}
}

// ResetConfig is what the preferences "Reset" action restores.
// Its dead zone (10) and order differ from DefaultConfig.
func ResetConfig() Config {
	return Config{
		WheelRadius:    135,
		DeadZoneRadius: 10,
		ActivationKey:  DefaultActivationKey,
		Order:          Mapping{ChoiceWireframe, ChoiceShaded, ChoiceShadedWireframe, ChoiceNone},
		ShowDeadZone:   true,
		ShowLabel:      true,
		ShowRadius:     true,
	}
}

// Toggles returns the display toggles in persisted order
func (c Config) Toggles() [3]bool {
	return [3]bool{c.ShowDeadZone, c.ShowLabel, c.ShowRadius}
}

// SetToggle updates a display toggle by persisted index
func (c *Config) SetToggle(i int, on bool) {
	switch i {
	case ToggleDeadZone:
		c.ShowDeadZone = on
	case ToggleLabel:
		c.ShowLabel = on
	case ToggleRadius:
		c.ShowRadius = on
	}
}

// Usable reports whether the dead zone leaves room to select anything.
// Nothing enforces it; LoadConfig only warns.
func (c Config) Usable() bool {
	return c.WheelRadius > 0 && c.DeadZoneRadius >= 0 && c.DeadZoneRadius < c.WheelRadius
}

// LoadConfig reads the wheel configuration. Malformed values never fail the
// load: they are logged and replaced with safe defaults.
func LoadConfig(p Preferences) Config {
	def := DefaultConfig()
	cfg := Config{
		WheelRadius:    p.GetFloat(KeyRadius, def.WheelRadius),
		DeadZoneRadius: p.GetFloat(KeyDeadZone, def.DeadZoneRadius),
		ActivationKey:  Key(p.GetInt(KeyActivationKey, int(def.ActivationKey))),
	}

	toggles := def.Toggles()
	for i := range toggles {
		cfg.SetToggle(i, p.GetBool(ToggleKey(i), toggles[i]))
	}

	order, err := ParseMapping(p.GetString(KeyOrder, def.Order.String()))
	if err != nil {
		slog.Warn("invalid wheel order, using fallback", "error", err, "order", order.String())
	}
	cfg.Order = order

	if !cfg.Usable() {
		slog.Warn("wheel dead zone is not smaller than the wheel radius",
			"radius", cfg.WheelRadius, "deadzone", cfg.DeadZoneRadius)
	}

	return cfg
}

// SaveConfig writes every wheel setting to the store. Persisting the store
// itself is left to the caller.
func SaveConfig(p Preferences, c Config) {
	p.SetFloat(KeyRadius, c.WheelRadius)
	p.SetFloat(KeyDeadZone, c.DeadZoneRadius)
	p.SetInt(KeyActivationKey, int(c.ActivationKey))
	p.SetString(KeyOrder, c.Order.String())
	for i, on := range c.Toggles() {
		p.SetBool(ToggleKey(i), on)
	}
}
