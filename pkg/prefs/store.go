// Package prefs persists user preferences in a TOML file managed by viper.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	appDir   = "shadingwheel"
	fileName = "prefs.toml"
)

// ErrNoPath is returned by Save on a store that has no backing file
var ErrNoPath = errors.New("prefs: store has no backing file")

// Store is a string-keyed preference store. Reads take the default to return
// for absent keys. It is not safe for concurrent use.
type Store struct {
	v    *viper.Viper
	path string
}

// DefaultPath returns prefs.toml under the user's config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// New opens the store at path. A missing file yields an empty store that
// Save will create; an empty path yields an in-memory store. A file that
// cannot be parsed is logged and treated like a missing one, so callers fall
// back to defaults and the next Save replaces it.
func New(path string) (*Store, error) {
	s := &Store{v: newViper(path), path: path}
	if path == "" {
		return s, nil
	}
	if err := read(s.v, path); err != nil {
		slog.Warn("ignoring unreadable preferences", "path", path, "error", err)
		s.v = newViper(path)
	}
	return s, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
	}
	return v
}

// read loads path into v. A missing file is not an error.
func read(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read preferences %s: %w", path, err)
	}
	return nil
}

// Path returns the backing file, empty for in-memory stores
func (s *Store) Path() string {
	return s.path
}

// Dir returns the directory of the backing file, empty for in-memory stores
func (s *Store) Dir() string {
	if s.path == "" {
		return ""
	}
	return filepath.Dir(s.path)
}

// Reload re-reads the backing file. The current values are kept when the
// file vanished or cannot be parsed; the latter is returned as an error.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	fresh := newViper(s.path)
	if err := read(fresh, s.path); err != nil {
		return err
	}
	s.v = fresh
	return nil
}

// Save writes every value to the backing file, creating its directory
func (s *Store) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", s.path, err)
	}
	return nil
}

// Has reports whether a key has a value
func (s *Store) Has(key string) bool {
	return s.v.IsSet(key)
}

func (s *Store) GetFloat(key string, def float64) float64 {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetFloat64(key)
}

func (s *Store) SetFloat(key string, value float64) {
	s.v.Set(key, value)
}

func (s *Store) GetBool(key string, def bool) bool {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetBool(key)
}

func (s *Store) SetBool(key string, value bool) {
	s.v.Set(key, value)
}

func (s *Store) GetInt(key string, def int) int {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetInt(key)
}

func (s *Store) SetInt(key string, value int) {
	s.v.Set(key, value)
}

func (s *Store) GetString(key string, def string) string {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetString(key)
}

func (s *Store) SetString(key string, value string) {
	s.v.Set(key, value)
}

// AllSettings returns a copy of every stored value, nested by key segment
func (s *Store) AllSettings() map[string]any {
	return s.v.AllSettings()
}
