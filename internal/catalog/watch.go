package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-seeds the store whenever the seed file changes on disk.
type Watcher struct {
	path    string
	store   *Store
	logger  *zap.Logger
	watcher *fsnotify.Watcher

	// OnReload, if set, is called after each reload attempt.
	OnReload func(roles int, err error)
}

// NewWatcher watches the directory containing path. Editors often replace
// files by rename, so the directory is watched rather than the file.
func NewWatcher(path string, store *Store, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:    filepath.Clean(path),
		store:   store,
		logger:  logger,
		watcher: w,
	}, nil
}

// Run processes file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.reload(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	roles, err := LoadSeedFile(w.path)
	if err == nil {
		err = w.store.Seed(ctx, roles)
	}

	if err != nil {
		// A half-written file fails to parse; the next write retries.
		w.logger.Warn("catalog reload failed", zap.String("path", w.path), zap.Error(err))
	} else {
		w.logger.Info("catalog reloaded", zap.String("path", w.path), zap.Int("roles", len(roles)))
	}

	if w.OnReload != nil {
		w.OnReload(len(roles), err)
	}
}
