package config

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamaar/gocalc/pkg/watch"
)

// Reloader applies config-file changes to a live Store. Each watcher batch
// triggers one reload attempt; a snapshot that fails to load or validate is
// rejected and the previous one stays live.
type Reloader struct {
	path   string
	store  *Store
	level  zap.AtomicLevel
	logger *zap.Logger
}

// NewReloader creates a Reloader for the config file at path. The level is
// the AtomicLevel backing the process logger; reloads adjust it when
// log.level changes.
func NewReloader(path string, store *Store, level zap.AtomicLevel, logger *zap.Logger) *Reloader {
	return &Reloader{
		path:   path,
		store:  store,
		level:  level,
		logger: logger,
	}
}

// Run consumes watcher batches until ctx is cancelled or in closes.
func (r *Reloader) Run(ctx context.Context, in <-chan []watch.ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case events, ok := <-in:
			if !ok {
				return
			}
			r.reload(len(events))
		}
	}
}

func (r *Reloader) reload(eventCount int) {
	cfg, err := Load(r.path)
	if err != nil {
		r.logger.Warn("config reload rejected, keeping previous config",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return
	}

	prev := r.store.Current()
	r.store.Set(cfg)

	if cfg.Log.Level != prev.Log.Level {
		if level, err := ParseLevel(cfg.Log.Level); err == nil {
			r.level.SetLevel(level)
		}
	}

	r.logger.Info("config reloaded",
		zap.String("path", r.path),
		zap.Int("events", eventCount),
		zap.Int("precision", cfg.Precision),
		zap.String("log_level", cfg.Log.Level),
	)
}
