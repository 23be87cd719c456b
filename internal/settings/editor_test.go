package settings_test

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/renzk/shadingwheel/internal/settings"
	"github.com/renzk/shadingwheel/pkg/prefs"
	"github.com/renzk/shadingwheel/pkg/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *prefs.Store {
	t.Helper()
	s, err := prefs.New(filepath.Join(t.TempDir(), "prefs.toml"))
	require.NoError(t, err)
	return s
}

func reopen(t *testing.T, s *prefs.Store) wheel.Config {
	t.Helper()
	fresh, err := prefs.New(s.Path())
	require.NoError(t, err)
	return wheel.LoadConfig(fresh)
}

func TestEditorLoadsStoredConfig(t *testing.T) {
	test.NewTempApp(t)
	store := newStore(t)
	cfg := wheel.DefaultConfig()
	cfg.WheelRadius = 150
	cfg.ShowLabel = false
	wheel.SaveConfig(store, cfg)

	e := settings.NewEditor(store, nil)
	assert.Equal(t, cfg, e.Config())
}

func TestEditorSaveWritesEdits(t *testing.T) {
	test.NewTempApp(t)
	store := newStore(t)
	e := settings.NewEditor(store, nil)
	w := test.NewWindow(e.Content())
	defer w.Close()

	test.Tap(findButton(t, e.Content(), "Reset"))
	require.NoError(t, e.Save())

	assert.Equal(t, wheel.ResetConfig(), reopen(t, store))
}

func TestEditorResetIsNotSavedUntilSave(t *testing.T) {
	test.NewTempApp(t)
	store := newStore(t)
	e := settings.NewEditor(store, nil)

	e.Reset()
	assert.Equal(t, wheel.ResetConfig(), e.Config())
	assert.False(t, store.Has(wheel.KeyDeadZone))
}

func TestEditorSaveButton(t *testing.T) {
	test.NewTempApp(t)
	store := newStore(t)
	e := settings.NewEditor(store, nil)
	w := test.NewWindow(e.Content())
	defer w.Close()

	test.Tap(findButton(t, e.Content(), "Save Preferences"))

	assert.Equal(t, wheel.DefaultConfig(), reopen(t, store))
	assert.True(t, store.Has(wheel.KeyOrder))
}

func TestEditorMinimumSize(t *testing.T) {
	test.NewTempApp(t)
	e := settings.NewEditor(newStore(t), nil)
	size := e.Content().MinSize()
	assert.GreaterOrEqual(t, size.Width, float32(settings.MinWidth))
	assert.GreaterOrEqual(t, size.Height, float32(settings.MinHeight))
}

func TestPreviewLabelsFollowOrder(t *testing.T) {
	test.NewTempApp(t)
	cfg := wheel.ResetConfig()
	p := settings.NewPreview(cfg)
	p.Resize(fyne.NewSize(400, 220))

	var labels []string
	for _, o := range test.WidgetRenderer(p).Objects() {
		if text, ok := o.(*canvas.Text); ok {
			labels = append(labels, text.Text)
		}
	}
	// Left, Down, Right, Up
	assert.Equal(t, []string{"Wireframe", "Shaded", "Shaded Wireframe", "None"}, labels)
}

func TestPreviewHidesDisabledRings(t *testing.T) {
	test.NewTempApp(t)
	cfg := wheel.DefaultConfig()
	cfg.ShowRadius = false
	cfg.ShowDeadZone = false
	p := settings.NewPreview(cfg)
	p.Resize(fyne.NewSize(400, 220))

	visibleCircles := 0
	for _, o := range test.WidgetRenderer(p).Objects() {
		if c, ok := o.(*canvas.Circle); ok && c.Visible() {
			visibleCircles++
		}
	}
	// only the dead zone disc remains
	assert.Equal(t, 1, visibleCircles)
}
