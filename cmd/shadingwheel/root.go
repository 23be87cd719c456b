package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/renzk/shadingwheel/internal/app"
	"github.com/renzk/shadingwheel/internal/logging"
	"github.com/renzk/shadingwheel/pkg/prefs"
	"github.com/renzk/shadingwheel/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "shadingwheel"

// cli holds what the persistent flags resolve to
type cli struct {
	v         *viper.Viper
	prefsPath string
	logLevel  string
	store     *prefs.Store
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	var width, height int32

	rootCmd := &cobra.Command{
		Use:   "shadingwheel [file]",
		Short: "STL viewer with a radial shading wheel",
		Long: `shadingwheel opens an STL model in a 3D viewer. Hold the activation key
(Z by default), move the mouse towards an option and release the key to
switch between shaded, wireframe and shaded wireframe display.`,
		Version:           version.GetFullVersion(),
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				File:   args[0],
				Prefs:  c.store,
				Width:  width,
				Height: height,
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.prefsPath, "prefs", "", "preferences file (default is $XDG_CONFIG_HOME/shadingwheel/prefs.toml)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.Flags().Int32Var(&width, "width", 1400, "initial window width")
	rootCmd.Flags().Int32Var(&height, "height", 900, "initial window height")

	rootCmd.AddCommand(newPrefsCmd(c), newInfoCmd())
	return rootCmd
}

// setup binds the environment, installs the logger and opens the store
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if err := c.bindFlags(cmd); err != nil {
		return err
	}
	if _, err := logging.Setup(cmd.ErrOrStderr(), c.logLevel); err != nil {
		return err
	}

	path := c.prefsPath
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(); err != nil {
			return err
		}
	}
	store, err := prefs.New(path)
	if err != nil {
		return err
	}
	c.store = store
	slog.Debug("preferences opened", "path", path)
	return nil
}

// bindFlags fills every flag the user did not set from a SHADINGWHEEL_*
// environment variable, if present
func (c *cli) bindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || !c.v.IsSet(f.Name) {
			return
		}
		val := c.v.GetString(f.Name)
		if err := cmd.Flags().Set(f.Name, val); err != nil {
			bindErr = fmt.Errorf("invalid value %q for --%s from environment: %w", val, f.Name, err)
			return
		}
		slog.Debug("flag set from environment", "flag", f.Name, "value", val)
	})
	return bindErr
}

// loadDotEnv exports the variables of an optional .env file. Variables
// already in the environment win.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
	}
}
