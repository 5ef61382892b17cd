package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, filepath.Join(dir, "atlas.png"), nil)

	cases := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: filepath.Join(dir, "hero.png"), Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: filepath.Join(dir, "hero.png"), Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: filepath.Join(dir, "hero.png"), Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: filepath.Join(dir, "hero.png"), Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: filepath.Join(dir, "hero.png"), Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: filepath.Join(dir, "atlas.png"), Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: filepath.Join(dir, "atlas.png"), Op: fsnotify.Create}, false},
		{fsnotify.Event{Name: filepath.Join(dir, "hero.tres"), Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: filepath.Join(dir, ".atlas.png-1.tmp"), Op: fsnotify.Create}, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, w.Relevant(tc.ev), tc.ev.String())
	}
}

func TestWatchRunsOnChange(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "atlas.png")

	var runs atomic.Int32
	w := New(dir, out, func() error {
		runs.Add(1)
		// the atlas written by a run must not trigger another run
		return os.WriteFile(out, []byte("atlas"), 0o644)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// give the watcher time to subscribe
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.png"), []byte("x"), 0o644))

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	require.Equal(t, int32(1), runs.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
