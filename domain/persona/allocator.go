package persona

import "glastor/domain/core"

// SlotCount is the number of reviewer identities every product resolves to.
const SlotCount = 4

// Registry is a snapshot of the durable key -> owning-product mapping. The
// allocator only reads it; persistence of the updated ownership is the
// caller's job.
type Registry map[Key]core.ProductID

// Knuth's multiplicative hash constant, used to derive the stride.
const strideMultiplier = 2654435761

// Allocate deterministically picks SlotCount distinct persona keys for a
// product. Starting at seed mod n it walks the pool with a seed-derived
// stride, skipping personas owned by other products, for at most 2n probes.
// If that leaves fewer than SlotCount keys, a second pass scans the pool in
// natural order ignoring ownership so the result is always complete.
//
// The stride is not forced coprime with the pool size, so a walk can revisit
// a short cycle and reach the fallback earlier than a full scan would. That
// traversal pattern is load-bearing: persisted selections were produced by
// it, and "fixing" it would reshuffle every product's reviewers.
func Allocate(pool *Pool, seed Seed, productID core.ProductID, registry Registry) []Key {
	n := pool.Size()
	start := int(seed) % n
	step := 1
	if n > 1 {
		step = int(abs32(int32(int64(seed)*strideMultiplier))%int64(n-1)) + 1
	}

	chosen := make([]Key, 0, SlotCount)
	idx := start
	for i := 0; len(chosen) < SlotCount && i < n*2; i++ {
		p := pool.At(idx)
		owner, owned := registry[p.Key]
		if !owned || owner == productID {
			if !containsKey(chosen, p.Key) {
				chosen = append(chosen, p.Key)
			}
		}
		idx = (idx + step) % n
	}

	// Degradation pass: completeness beats cross-product uniqueness.
	if len(chosen) < SlotCount {
		for i := 0; i < n && len(chosen) < SlotCount; i++ {
			k := pool.At(i).Key
			if !containsKey(chosen, k) {
				chosen = append(chosen, k)
			}
		}
	}

	return chosen[:SlotCount]
}

// abs32 widens before negating so MinInt32 maps correctly.
func abs32(v int32) int64 {
	w := int64(v)
	if w < 0 {
		w = -w
	}
	return w
}

func containsKey(ks []Key, k Key) bool {
	for _, x := range ks {
		if x == k {
			return true
		}
	}
	return false
}
