package app

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"glastor/domain/core"
	"glastor/domain/persona"
	"glastor/domain/testimonial"
	"glastor/internal"
	"glastor/ports"
)

// TestimonialService resolves a product's four reviewer identities and
// synthesizes its testimonial cards. The fast store is authoritative for the
// synchronous path; the secondary store only feeds the asynchronous
// reconciliation that lets independent sessions converge.
type TestimonialService struct {
	pool      *persona.Pool
	store     ports.FastStore
	secondary ports.AssignmentStore
	clock     ports.Clock
	log       *internal.Logger

	group singleflight.Group
	// pending tracks in-flight reconciliations so Close can drain them.
	pending sync.WaitGroup
}

// NewTestimonialService creates a testimonial service. Pass a
// memory.NoopAssignmentStore as secondary when no database is configured.
func NewTestimonialService(pool *persona.Pool, store ports.FastStore, secondary ports.AssignmentStore, clock ports.Clock, log *internal.Logger) *TestimonialService {
	return &TestimonialService{
		pool:      pool,
		store:     store,
		secondary: secondary,
		clock:     clock,
		log:       log,
	}
}

// ResolvePersonas returns the product's four persona keys, allocating and
// persisting them on first request. Repeated calls short-circuit on the
// persisted selection, so the result is stable across calls and restarts.
// It never fails: every degraded path still yields exactly four keys.
func (s *TestimonialService) ResolvePersonas(ctx context.Context, productID core.ProductID, productName string) []persona.Key {
	keys := s.resolveLocal(productID, productName)
	s.reconcileAsync(productID)
	return keys
}

// resolveLocal is the synchronous fast-store path. Concurrent calls for the
// same product are coalesced so one allocation wins instead of racing the
// read-modify-write of the registry within this process.
func (s *TestimonialService) resolveLocal(productID core.ProductID, productName string) []persona.Key {
	v, _, _ := s.group.Do(productID.String(), func() (interface{}, error) {
		if prev := readSelection(s.store, productID); len(prev) >= persona.SlotCount {
			return prev[:persona.SlotCount], nil
		}

		seed := persona.NewSeed(productID.String(), productName)
		registry := readRegistry(s.store)
		keys := persona.Allocate(s.pool, seed, productID, registry)

		writeSelection(s.store, productID, keys)
		for _, k := range keys {
			registry[k] = productID
		}
		writeRegistry(s.store, registry)

		s.log.Debug("allocated personas for product %s (seed %d)", productID, seed)
		return keys, nil
	})
	return v.([]persona.Key)
}

// reconcileAsync fires the secondary-store reconciliation without blocking
// the caller. There is no retry and no timeout: a failed attempt is dropped
// and the fast-store result stands.
func (s *TestimonialService) reconcileAsync(productID core.ProductID) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.Reconcile(context.Background(), productID)
	}()
}

// Reconcile converges the fast store and the secondary store for one
// product. When the secondary store already holds a full selection it wins
// and overwrites the local view; otherwise the local selection is pushed so
// other sessions can adopt it. All failures are swallowed.
func (s *TestimonialService) Reconcile(ctx context.Context, productID core.ProductID) {
	assignments, err := s.secondary.AssignmentsByProduct(ctx, productID)
	if err != nil {
		s.log.Debug("secondary store read skipped for %s: %v", productID, err)
		return
	}

	if len(assignments) >= persona.SlotCount {
		keys := make([]persona.Key, persona.SlotCount)
		for i := range keys {
			keys[i] = assignments[i].Key
		}
		writeSelection(s.store, productID, keys)
		registry := readRegistry(s.store)
		for _, k := range keys {
			registry[k] = productID
		}
		writeRegistry(s.store, registry)
		return
	}

	local := readSelection(s.store, productID)
	if len(local) == 0 {
		return
	}
	push := make([]ports.Assignment, len(local))
	for i, k := range local {
		push[i] = ports.Assignment{Key: k, ProductID: productID}
	}
	if err := s.secondary.PutAssignments(ctx, push); err != nil {
		s.log.Debug("secondary store write skipped for %s: %v", productID, err)
	}
}

// GetTestimonials returns the product's four testimonial cards. It never
// errors and never blocks on the secondary store.
func (s *TestimonialService) GetTestimonials(ctx context.Context, productID core.ProductID, productName string) []testimonial.Testimonial {
	keys := s.ResolvePersonas(ctx, productID, productName)
	seed := persona.NewSeed(productID.String(), productName)

	personas := make([]persona.Persona, len(keys))
	for i, k := range keys {
		personas[i] = s.pool.Resolve(k, seed)
	}

	return testimonial.Synthesize(personas, seed, productName, s.clock.Now())
}

// Close drains in-flight reconciliations. Used by tests and shutdown.
func (s *TestimonialService) Close() {
	s.pending.Wait()
}
