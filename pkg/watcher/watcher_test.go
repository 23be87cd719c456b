package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/renzk/shadingwheel/pkg/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 5 * time.Second

func newWatcher(t *testing.T) *watcher.FileWatcher {
	t.Helper()
	fw, err := watcher.NewFileWatcher(20 * time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })
	return fw
}

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	fw := newWatcher(t)
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start(context.Background())

	require.NoError(t, os.WriteFile(path, []byte("a = 2\n"), 0o644))

	select {
	case got := <-changed:
		want, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	case <-time.After(waitFor):
		t.Fatal("callback not called after write")
	}
}

func TestWatchFiresOnCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "later.stl")

	fw := newWatcher(t)
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start(context.Background())

	require.NoError(t, os.WriteFile(path, []byte("solid x\nendsolid x\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(waitFor):
		t.Fatal("callback not called after create")
	}
}

func TestUnwatchedSiblingIgnored(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.toml")
	sibling := filepath.Join(dir, "sibling.toml")

	fw := newWatcher(t)
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{watched}, func(p string) { changed <- p }))
	fw.Start(context.Background())

	require.NoError(t, os.WriteFile(sibling, []byte("x"), 0o644))

	select {
	case p := <-changed:
		t.Fatalf("unexpected callback for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	fw := newWatcher(t)
	err := fw.Watch([]string{filepath.Join(t.TempDir(), "nope", "file")}, func(string) {})
	assert.Error(t, err)
}

func TestCancelStopsWatcher(t *testing.T) {
	fw, err := watcher.NewFileWatcher(time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	fw.Start(ctx)
	cancel()

	require.Eventually(t, func() bool {
		return fw.Close() == nil
	}, waitFor, 10*time.Millisecond)
}
