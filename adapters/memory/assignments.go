package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"glastor/domain/core"
	"glastor/domain/persona"
	"glastor/ports"
)

// NoopAssignmentStore is the null-object secondary store, selected at
// composition time when no database is configured. Reads report no data and
// writes succeed silently, so resolution degrades to fast-store-only
// operation without any call-site probing.
type NoopAssignmentStore struct{}

// NewNoopAssignmentStore creates the null-object store.
func NewNoopAssignmentStore() *NoopAssignmentStore { return &NoopAssignmentStore{} }

// AssignmentsByProduct always reports no assignments.
func (*NoopAssignmentStore) AssignmentsByProduct(context.Context, core.ProductID) ([]ports.Assignment, error) {
	return nil, nil
}

// PutAssignments discards the write.
func (*NoopAssignmentStore) PutAssignments(context.Context, []ports.Assignment) error {
	return nil
}

// ErrUnavailable simulates a transient secondary-store failure.
var ErrUnavailable = errors.New("assignment store unavailable")

// AssignmentStore is an in-memory secondary store for tests that need to
// observe reconciliation traffic or preload authoritative assignments.
// Results are ordered by key, matching the Postgres adapter.
type AssignmentStore struct {
	mu      sync.Mutex
	byKey   map[persona.Key]core.ProductID
	FailAll bool // when set, both operations return ErrUnavailable
}

// NewAssignmentStore creates an empty in-memory secondary store.
func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{byKey: make(map[persona.Key]core.ProductID)}
}

// AssignmentsByProduct returns assignments owned by productID, key-ordered.
func (s *AssignmentStore) AssignmentsByProduct(_ context.Context, productID core.ProductID) ([]ports.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailAll {
		return nil, ErrUnavailable
	}
	var out []ports.Assignment
	for k, pid := range s.byKey {
		if pid == productID {
			out = append(out, ports.Assignment{Key: k, ProductID: pid})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Reset drops all stored assignments.
func (s *AssignmentStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKey = make(map[persona.Key]core.ProductID)
}

// PutAssignments upserts assignments.
func (s *AssignmentStore) PutAssignments(_ context.Context, assignments []ports.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailAll {
		return ErrUnavailable
	}
	for _, a := range assignments {
		s.byKey[a.Key] = a.ProductID
	}
	return nil
}
