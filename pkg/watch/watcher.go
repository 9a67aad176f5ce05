// Package watch provides a debounced fsnotify watcher for a single file,
// used to hot-reload the gocalc configuration.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ChangeEvent represents a single filesystem change to the watched file.
type ChangeEvent struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches one file for changes and emits debounced batches. The
// parent directory is watched rather than the file itself so that editor
// rename-replace saves are still observed.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a Watcher for the file at path. The directory holding
// the file must exist; the file itself may appear later.
func NewWatcher(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:     path,
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
	}, nil
}

// Run is the main event loop. It reads fsnotify events, filters for the
// watched file, debounces rapid edits, and sends batched ChangeEvents to out.
// It blocks until ctx is cancelled or an unrecoverable fsnotify error occurs.
func (w *Watcher) Run(ctx context.Context, out chan<- []ChangeEvent) error {
	pending := make(map[string]fsnotify.Op)
	timer := time.NewTimer(w.debounce)
	timer.Stop() // don't fire until we have events

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.accept(ev) {
				pending[ev.Name] = ev.Op
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("fsnotify error", zap.Error(err))

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]ChangeEvent, 0, len(pending))
			for p, op := range pending {
				batch = append(batch, ChangeEvent{Path: p, Op: op})
			}
			pending = make(map[string]fsnotify.Op)

			select {
			case out <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Close shuts down the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// accept returns true if the event is for the watched file and carries a
// relevant op.
func (w *Watcher) accept(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
