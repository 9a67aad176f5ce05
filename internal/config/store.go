package config

import "sync"

// Store holds the current configuration snapshot. Readers get whatever
// snapshot is live at call time; Set swaps the whole snapshot at once, so a
// reader never observes a half-applied reload.
type Store struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewStore creates a Store seeded with cfg.
func NewStore(cfg *Config) *Store {
	return &Store{cfg: cfg}
}

// Current returns the live snapshot.
func (s *Store) Current() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Set installs cfg as the live snapshot.
func (s *Store) Set(cfg *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}
