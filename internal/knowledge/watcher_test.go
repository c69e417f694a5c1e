package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa_data.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	var fired atomic.Int32
	w, err := NewWatcher(path, func() { fired.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(100 * time.Millisecond)

	// a burst of writes coalesces into a single notification
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":1}]`), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qa_data.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	var fired atomic.Int32
	w, err := NewWatcher(path, func() { fired.Add(1) })
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	time.Sleep(time.Second)
	assert.Equal(t, int32(0), fired.Load())
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher("/nonexistent/dir/qa.json", func() {})
	assert.Error(t, err)
}
