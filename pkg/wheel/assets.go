package wheel

import (
	"os"
	"path/filepath"
)

// Decorative texture names
const (
	TextureDeadZoneRing = "wheel_outline"
	TextureIndicator    = "wheel_indicator"
)

// FindAsset looks for <name>.png in each directory in order and returns the
// first regular file found. Missing assets are not an error; hosts fall back
// to primitive shapes.
func FindAsset(name string, dirs []string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, name+".png")
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}
