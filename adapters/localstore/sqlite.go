// Package localstore implements the fast store over a local sqlite file.
// It is the process-scoped equivalent of the storefront's origin-scoped
// storage: synchronous, durable across restarts, and deliberately forgiving.
// Any I/O or decode failure surfaces as an absent key, never as an error.
package localstore

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"glastor/internal"
)

// Store is a sqlite-backed FastStore. Writes are serialized behind a mutex so
// a single process cannot interleave its own read-modify-write sequences;
// races between separate processes sharing the file remain possible and are
// accepted, matching the storefront's multi-tab behavior.
type Store struct {
	mu  sync.Mutex
	db  *sql.DB
	log *internal.Logger
}

// Open opens (and if needed initializes) the store at path. Use ":memory:"
// for an ephemeral store.
func Open(path string, log *internal.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store %s: %w", path, err)
	}
	// The kv schema is the whole contract: one text key, one text value.
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize local store schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key. Failures are logged and reported as absence.
func (s *Store) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Debug("local store read failed for %q: %v", key, err)
		}
		return "", false
	}
	return value, true
}

// Set upserts key=value. Failures are logged and swallowed: losing a write
// degrades determinism of future sessions, not correctness of this one.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		s.log.Warn("local store write failed for %q: %v", key, err)
	}
}

// Delete removes key if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Warn("local store delete failed for %q: %v", key, err)
	}
}
