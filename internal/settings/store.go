package settings

import "sync"

// Store holds the current Settings. Writers replace the whole value; readers
// get a copy, so nothing can mutate the stored snapshot in place.
type Store struct {
	mu       sync.RWMutex
	settings Settings
	version  uint64
}

// NewStore returns a store seeded with initial.
func NewStore(initial Settings) *Store {
	return &Store{settings: initial.Normalize()}
}

// Replace swaps in a new snapshot and returns its version.
func (s *Store) Replace(next Settings) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = next.Normalize()
	s.version++
	return s.version
}

// Settings returns the current snapshot.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Version returns how many times the snapshot has been replaced.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
