package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/renzk/shadingwheel/pkg/prefs"
	"github.com/renzk/shadingwheel/pkg/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func loadFile(t *testing.T, path string) wheel.Config {
	t.Helper()
	s, err := prefs.New(path)
	require.NoError(t, err)
	return wheel.LoadConfig(s)
}

func TestPrefsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	out, err := execute(t, "--prefs", path, "prefs", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestPrefsSetWritesOnlyChangedFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	_, err := execute(t, "--prefs", path, "prefs", "set", "--radius", "150", "--key", "F2", "--show-label=false")
	require.NoError(t, err)

	want := wheel.DefaultConfig()
	want.WheelRadius = 150
	want.ActivationKey = wheel.KeyF2
	want.ShowLabel = false
	assert.Equal(t, want, loadFile(t, path))

	_, err = execute(t, "--prefs", path, "prefs", "set", "--order", "2,1,3,0")
	require.NoError(t, err)

	want.Order = wheel.Mapping{wheel.ChoiceWireframe, wheel.ChoiceShaded, wheel.ChoiceShadedWireframe, wheel.ChoiceNone}
	assert.Equal(t, want, loadFile(t, path))
}

func TestPrefsSetRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	for _, args := range [][]string{
		{"--order", "0,1,9,3"},
		{"--order", "0,1"},
		{"--key", "NotAKey"},
		{"--radius", "-5"},
		{"--deadzone", "-1"},
		{},
	} {
		_, err := execute(t, append([]string{"--prefs", path, "prefs", "set"}, args...)...)
		assert.Error(t, err, args)
	}

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing should have been saved")
}

func TestPrefsReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	_, err := execute(t, "--prefs", path, "prefs", "set", "--radius", "180")
	require.NoError(t, err)
	_, err = execute(t, "--prefs", path, "prefs", "reset")
	require.NoError(t, err)

	assert.Equal(t, wheel.ResetConfig(), loadFile(t, path))
}

func TestPrefsResetRepairsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("[shadingwheel\nradius = = 3"), 0o644))

	out, err := execute(t, "--prefs", path, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "135")

	_, err = execute(t, "--prefs", path, "prefs", "reset")
	require.NoError(t, err)
	assert.Equal(t, wheel.ResetConfig(), loadFile(t, path))
}

func TestPrefsShowRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	_, err := execute(t, "--prefs", path, "prefs", "set", "--deadzone", "12", "--key", "F2")
	require.NoError(t, err)

	out, err := execute(t, "--prefs", path, "prefs", "show", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "shadingwheel.deadzone = 12")
	assert.Contains(t, out, "shadingwheel.activation_key = 291")
	assert.Contains(t, out, "shadingwheel.radius = 135")
}

func TestPrefsShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	_, err := execute(t, "--prefs", path, "prefs", "set", "--deadzone", "12")
	require.NoError(t, err)

	out, err := execute(t, "--prefs", path, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Dead zone radius")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "Shaded Wireframe")
}

func TestPrefsFlagFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "from-env.toml")
	t.Setenv("SHADINGWHEEL_PREFS", path)

	out, err := execute(t, "prefs", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--prefs", filepath.Join(t.TempDir(), "p.toml"), "--log-level", "chatty", "prefs", "path")
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SHADINGWHEEL_TEST_DOTENV=loaded\n"), 0o644))
	t.Setenv("SHADINGWHEEL_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("SHADINGWHEEL_TEST_DOTENV"))

	loadDotEnv(path)
	assert.Equal(t, "loaded", os.Getenv("SHADINGWHEEL_TEST_DOTENV"))

	loadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
}

func TestInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.stl")
	stlText := `solid tri
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 3 0 0
    vertex 0 4 0
  endloop
endfacet
endsolid tri
`
	require.NoError(t, os.WriteFile(path, []byte(stlText), 0o644))

	out, err := execute(t, "--prefs", filepath.Join(t.TempDir(), "p.toml"), "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Name: tri")
	assert.Contains(t, out, "Triangles:    1")
	assert.Contains(t, out, "Surface area: 6.000000")
	assert.Contains(t, out, "3.00 × 4.00 × 0.00")
}

func TestInfoMissingFile(t *testing.T) {
	_, err := execute(t, "--prefs", filepath.Join(t.TempDir(), "p.toml"), "info", filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}
