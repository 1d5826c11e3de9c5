package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tsdk/internal/adapters/watcher"
	"go.trai.ch/tsdk/internal/core/ports"
)

// collectEvents drains the watcher's event iterator into a channel so tests
// can wait on specific paths with a deadline.
func collectEvents(w *watcher.Watcher) <-chan ports.WatchEvent {
	out := make(chan ports.WatchEvent, 100)
	go func() {
		defer close(out)
		for event := range w.Events() {
			out <- event
		}
	}()
	return out
}

func waitForPath(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("event stream closed while waiting for %s", path)
			}
			if event.Path == path {
				return event
			}
		case <-deadline:
			t.Fatalf("timed out waiting for an event on %s", path)
		}
	}
}

func TestWatcher_DetectsWrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	manifest := filepath.Join(root, "package.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{}`), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)

	require.NoError(t, os.WriteFile(manifest, []byte(`{"version":"5.4.2"}`), 0o644))

	event := waitForPath(t, events, manifest)
	assert.Equal(t, ports.OpWrite, event.Operation)
}

func TestWatcher_DetectsCreatesInNewDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)

	// A directory created after Start must be watched as well.
	nested := filepath.Join(root, "node_modules", "typescript")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	waitForPath(t, events, filepath.Join(root, "node_modules"))

	manifest := filepath.Join(nested, "package.json")
	// Give the watcher a moment to register the new directories.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(manifest, []byte(`{}`), 0o644)
		select {
		case event, ok := <-events:
			return ok && event.Path == manifest
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatcher_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	require.NoError(t, w.Add(root))
	require.NoError(t, w.Add(root))
}

func TestWatcher_SkipsVCSDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	skipped := filepath.Join(root, ".git")
	require.NoError(t, os.MkdirAll(skipped, 0o750))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)

	// Writes inside skipped directories produce no events; the sentinel
	// write outside proves the stream is live.
	require.NoError(t, os.WriteFile(filepath.Join(skipped, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644))
	sentinel := filepath.Join(root, "sentinel")
	require.NoError(t, os.WriteFile(sentinel, []byte("x"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok)
			assert.NotContains(t, event.Path, ".git")
			if event.Path == sentinel {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for the sentinel event")
		}
	}
}
