package leveldata

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, dir)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "ignored.png", "x")
	writeFile(t, dir, "level.txt", "PlayerSpawn: 1,1\n")

	select {
	case p := <-w.Events():
		assert.Equal(t, filepath.Join(dir, "level.txt"), p)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for level write")
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w, err := Watch(ctx, t.TempDir())
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-w.Events():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.NoError(t, w.Close())
}
