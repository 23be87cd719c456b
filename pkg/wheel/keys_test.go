package wheel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/renzk/shadingwheel/pkg/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNames(t *testing.T) {
	names := wheel.KeyNames()

	assert.Equal(t, "A", names[0])
	assert.Contains(t, names, "Z")
	assert.Contains(t, names, "F12")
	assert.Contains(t, names, "Space")
	assert.Len(t, names, 26+10+12+3)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want wheel.Key
	}{
		{"Z", wheel.KeyZ},
		{"z", wheel.KeyZ},
		{"7", wheel.Key0 + 7},
		{"f1", wheel.KeyF1},
		{"F12", wheel.KeyF12},
		{"space", wheel.KeySpace},
		{"Tab", wheel.KeyTab},
		{"341", wheel.Key(341)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			k, err := wheel.ParseKey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}

	_, err := wheel.ParseKey("hyper")
	assert.Error(t, err)
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, name := range wheel.KeyNames() {
		k, err := wheel.ParseKey(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
		assert.True(t, k.Known())
	}
	assert.False(t, wheel.Key(341).Known())
}

func TestChoiceLabels(t *testing.T) {
	assert.Equal(t, []string{"None", "Shaded", "Wireframe", "Shaded Wireframe"}, wheel.ChoiceLabels())

	c, err := wheel.ParseChoice("shaded wireframe")
	require.NoError(t, err)
	assert.Equal(t, wheel.ChoiceShadedWireframe, c)

	_, err = wheel.ParseChoice("Unlit")
	assert.Error(t, err)
	assert.Empty(t, wheel.ChoiceNone.Icon())
	assert.False(t, wheel.Choice(7).Valid())
}

func TestFindAsset(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "wheel_outline.png"), []byte("png"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(first, "wheel_indicator.png"), 0o755))

	path, ok := wheel.FindAsset(wheel.TextureDeadZoneRing, []string{"", first, second})
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(second, "wheel_outline.png"), path)

	_, ok = wheel.FindAsset(wheel.TextureIndicator, []string{first, second})
	assert.False(t, ok, "directories named like the asset are skipped")
}
