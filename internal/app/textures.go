package app

import (
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

const contentDir = "Content"

// wheelTextures holds the optional decorations. A zero texture ID means
// the asset was not found and the primitive fallback is drawn.
type wheelTextures struct {
	outline   rl.Texture2D
	indicator rl.Texture2D
	icons     map[wheel.Choice]rl.Texture2D
}

// assetDirs lists where wheel textures are looked up, in priority order
func assetDirs(prefsDir string) []string {
	dirs := []string{contentDir}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), contentDir))
	}
	if prefsDir != "" {
		dirs = append(dirs, filepath.Join(prefsDir, contentDir))
	}
	return dirs
}

func loadTexture(name string, dirs []string) rl.Texture2D {
	path, ok := wheel.FindAsset(name, dirs)
	if !ok {
		slog.Info("wheel texture not found, using primitive shapes", "name", name, "dirs", dirs)
		return rl.Texture2D{}
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		slog.Warn("failed to load wheel texture", "path", path)
		return rl.Texture2D{}
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	slog.Debug("loaded wheel texture", "path", path)
	return tex
}

// loadWheelTextures loads every decoration it can find. Must run after the
// window is created.
func loadWheelTextures(dirs []string) *wheelTextures {
	t := &wheelTextures{
		outline:   loadTexture(wheel.TextureDeadZoneRing, dirs),
		indicator: loadTexture(wheel.TextureIndicator, dirs),
		icons:     make(map[wheel.Choice]rl.Texture2D),
	}
	for _, c := range wheel.Choices {
		if c.Icon() == "" {
			continue
		}
		if path, ok := wheel.FindAsset(c.Icon(), dirs); ok {
			if tex := rl.LoadTexture(path); tex.ID > 0 {
				t.icons[c] = tex
			}
		}
	}
	return t
}

func (t *wheelTextures) unload() {
	for _, tex := range append([]rl.Texture2D{t.outline, t.indicator}, mapValues(t.icons)...) {
		if tex.ID > 0 {
			rl.UnloadTexture(tex)
		}
	}
}

func mapValues(m map[wheel.Choice]rl.Texture2D) []rl.Texture2D {
	out := make([]rl.Texture2D, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
