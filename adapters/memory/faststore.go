// Package memory provides in-process adapters: an ephemeral fast store for
// tests and storeless deployments, and the null-object secondary store used
// when Postgres is not configured.
package memory

import "sync"

// FastStore is a map-backed fast store. Safe for concurrent use; contents do
// not survive a restart, which is acceptable for tests and demo mode.
type FastStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewFastStore creates an empty in-memory fast store.
func NewFastStore() *FastStore {
	return &FastStore{data: make(map[string]string)}
}

// Get returns the value for key.
func (s *FastStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set writes key=value.
func (s *FastStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Delete removes key.
func (s *FastStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
