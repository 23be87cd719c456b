package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/renzk/shadingwheel/pkg/wheel"
	"github.com/spf13/cobra"
)

func newPrefsCmd(c *cli) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and edit the shading wheel preferences",
		Args:  cobra.NoArgs,
	}
	prefsCmd.AddCommand(
		newPrefsShowCmd(c),
		newPrefsSetCmd(c),
		newPrefsResetCmd(c),
		newPrefsPathCmd(c),
	)
	return prefsCmd
}

func newPrefsShowCmd(c *cli) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective wheel configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), renderSettings(c.store.AllSettings()))
				return nil
			}
			cfg := wheel.LoadConfig(c.store)
			fmt.Fprintln(cmd.OutOrStdout(), renderConfig(c.store.Path(), cfg))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored keys instead of the effective configuration")
	return cmd
}

var setFlags = []string{"radius", "deadzone", "key", "order", "show-deadzone", "show-label", "show-radius"}

type setOptions struct {
	radius       float64
	deadZone     float64
	key          string
	order        string
	showDeadZone bool
	showLabel    bool
	showRadius   bool
}

func newPrefsSetCmd(c *cli) *cobra.Command {
	var opts setOptions

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change wheel settings; only the given flags are written",
		Example: `  shadingwheel prefs set --radius 150 --deadzone 15
  shadingwheel prefs set --key F2 --order 2,1,3,0
  shadingwheel prefs set --show-label=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wheel.LoadConfig(c.store)
			if err := opts.apply(cmd, &cfg); err != nil {
				return err
			}
			if !cfg.Usable() {
				slog.Warn("dead zone is not smaller than the wheel radius, nothing will be selectable",
					"radius", cfg.WheelRadius, "deadzone", cfg.DeadZoneRadius)
			}
			wheel.SaveConfig(c.store, cfg)
			if err := c.store.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderConfig(c.store.Path(), cfg))
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.radius, "radius", 0, "wheel radius in pixels")
	f.Float64Var(&opts.deadZone, "deadzone", 0, "dead zone radius in pixels")
	f.StringVar(&opts.key, "key", "", "activation key name (A-Z, 0-9, F1-F12, Space, Tab, Grave) or key code")
	f.StringVar(&opts.order, "order", "", "choice index for Left,Down,Right,Up (0 None, 1 Shaded, 2 Wireframe, 3 Shaded Wireframe)")
	f.BoolVar(&opts.showDeadZone, "show-deadzone", true, "draw the dead zone ring")
	f.BoolVar(&opts.showLabel, "show-label", true, "draw the Shading label")
	f.BoolVar(&opts.showRadius, "show-radius", true, "draw the wheel radius ring")
	return cmd
}

// apply copies the changed flags into cfg
func (o setOptions) apply(cmd *cobra.Command, cfg *wheel.Config) error {
	changed := cmd.Flags().Changed
	anyChanged := false
	for _, name := range setFlags {
		anyChanged = anyChanged || changed(name)
	}
	if !anyChanged {
		return errors.New("nothing to set, see --help")
	}

	if changed("radius") {
		if o.radius <= 0 {
			return fmt.Errorf("radius must be positive, got %g", o.radius)
		}
		cfg.WheelRadius = o.radius
	}
	if changed("deadzone") {
		if o.deadZone < 0 {
			return fmt.Errorf("deadzone must not be negative, got %g", o.deadZone)
		}
		cfg.DeadZoneRadius = o.deadZone
	}
	if changed("key") {
		k, err := wheel.ParseKey(o.key)
		if err != nil {
			return err
		}
		cfg.ActivationKey = k
	}
	if changed("order") {
		m, err := wheel.ParseMapping(o.order)
		if err != nil {
			return fmt.Errorf("invalid order %q: %w", o.order, err)
		}
		cfg.Order = m
	}
	if changed("show-deadzone") {
		cfg.ShowDeadZone = o.showDeadZone
	}
	if changed("show-label") {
		cfg.ShowLabel = o.showLabel
	}
	if changed("show-radius") {
		cfg.ShowRadius = o.showRadius
	}
	return nil
}

func newPrefsResetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default wheel settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wheel.ResetConfig()
			wheel.SaveConfig(c.store, cfg)
			if err := c.store.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderConfig(c.store.Path(), cfg))
			return nil
		},
	}
}

func newPrefsPathCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preferences file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.store.Path())
			return nil
		},
	}
}
