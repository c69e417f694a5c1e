package knowledge

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/pkg/logger"
)

// Watcher monitors the knowledge-base file for external edits and invokes
// onChange after a short debounce, so downstream consumers (retrieval index,
// caches) can rebuild. The parent directory is watched because editors
// typically replace the file via rename.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
}

func NewWatcher(path string, onChange func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{watcher: w, path: filepath.Clean(path), onChange: onChange}, nil
}

// Run blocks until ctx is cancelled, coalescing bursts of write events into
// a single onChange call.
func (w *Watcher) Run(ctx context.Context) {
	const debounce = 500 * time.Millisecond

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			logger.Info("Knowledge base file changed on disk", zap.String("path", w.path))
			w.onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Knowledge base watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
