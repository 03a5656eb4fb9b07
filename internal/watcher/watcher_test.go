package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DetectsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.clab.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: lab\n"), 0644))

	var calls atomic.Int32
	w := New(Config{
		Path:     path,
		Debounce: 50 * time.Millisecond,
		OnChange: func() { calls.Add(1) },
	})
	require.NoError(t, w.Start())
	defer w.Stop()

	// Burst of writes should collapse into a single debounced callback.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("name: changed\n"), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lab.clab.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: lab\n"), 0644))

	var calls atomic.Int32
	w := New(Config{
		Path:     path,
		Debounce: 50 * time.Millisecond,
		OnChange: func() { calls.Add(1) },
	})
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_StartStopIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.clab.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: lab\n"), 0644))

	w := New(Config{Path: path})
	require.NoError(t, w.Start())
	require.NoError(t, w.Start())
	w.Stop()
	w.Stop()
}
