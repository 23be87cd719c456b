package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/renzk/shadingwheel/internal/logging"
	"github.com/renzk/shadingwheel/internal/settings"
	"github.com/renzk/shadingwheel/pkg/prefs"
	"github.com/renzk/shadingwheel/version"
	"github.com/spf13/pflag"
)

const appID = "com.renzk.shadingwheel.settings"

func main() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	prefsPath := pflag.String("prefs", os.Getenv("SHADINGWHEEL_PREFS"), "preferences file (default is $XDG_CONFIG_HOME/shadingwheel/prefs.toml)")
	logLevel := pflag.String("log-level", envOr("SHADINGWHEEL_LOG_LEVEL", "info"), "log level: debug, info, warn or error")
	showVersion := pflag.Bool("version", false, "print the version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		return
	}

	if err := run(*prefsPath, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func run(prefsPath, logLevel string) error {
	if _, err := logging.Setup(os.Stderr, logLevel); err != nil {
		return err
	}

	if prefsPath == "" {
		var err error
		if prefsPath, err = prefs.DefaultPath(); err != nil {
			return err
		}
	}
	store, err := prefs.New(prefsPath)
	if err != nil {
		return err
	}

	a := app.NewWithID(appID)
	w := a.NewWindow(settings.Title)

	editor := settings.NewEditor(store, w)
	w.SetContent(editor.Content())
	w.Resize(fyne.NewSize(420, 680))
	w.ShowAndRun()
	return nil
}
