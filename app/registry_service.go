package app

import (
	"sort"

	"glastor/domain/core"
	"glastor/domain/persona"
	"glastor/ports"
)

// RegistrySnapshot is a read-only view of the allocation state, used by the
// admin surface and the ops export.
type RegistrySnapshot struct {
	Assignments []ports.Assignment              `json:"assignments"`
	Selections  map[core.ProductID][]persona.Key `json:"selections"`
}

// RegistryService exposes maintenance operations over the allocation
// registry. Nothing here runs on the request path that serves testimonials.
type RegistryService struct {
	store ports.FastStore
}

// NewRegistryService creates a registry service
func NewRegistryService(store ports.FastStore) *RegistryService {
	return &RegistryService{store: store}
}

// Snapshot returns the registry and every known product selection, with
// assignments ordered by key for stable output.
func (s *RegistryService) Snapshot() RegistrySnapshot {
	registry := readRegistry(s.store)

	snap := RegistrySnapshot{
		Assignments: make([]ports.Assignment, 0, len(registry)),
		Selections:  make(map[core.ProductID][]persona.Key),
	}
	for k, pid := range registry {
		snap.Assignments = append(snap.Assignments, ports.Assignment{Key: k, ProductID: pid})
	}
	sort.Slice(snap.Assignments, func(i, j int) bool {
		return snap.Assignments[i].Key < snap.Assignments[j].Key
	})

	for _, pid := range s.products(registry) {
		if sel := readSelection(s.store, pid); len(sel) > 0 {
			snap.Selections[pid] = sel
		}
	}
	return snap
}

// PurgeProducts drops selections and registry entries for every product not
// in the keep list. Surviving products are untouched, so their rendered
// reviewers never change. Returns the number of products purged.
func (s *RegistryService) PurgeProducts(keep []core.ProductID) int {
	keepSet := make(map[core.ProductID]bool, len(keep))
	for _, pid := range keep {
		keepSet[pid] = true
	}

	registry := readRegistry(s.store)
	purged := 0
	for _, pid := range s.products(registry) {
		if keepSet[pid] {
			continue
		}
		s.store.Delete(selectionKey(pid))
		for k, owner := range registry {
			if owner == pid {
				delete(registry, k)
			}
		}
		purged++
	}
	if purged > 0 {
		writeRegistry(s.store, registry)
	}
	return purged
}

// products lists the distinct owners in the registry, sorted for determinism.
func (s *RegistryService) products(registry persona.Registry) []core.ProductID {
	seen := make(map[core.ProductID]bool)
	var out []core.ProductID
	for _, pid := range registry {
		if !seen[pid] {
			seen[pid] = true
			out = append(out, pid)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
