package persona

// Stream is a deterministic pseudo-random integer stream. It is the classic
// Numerical Recipes LCG (s' = s*1664525 + 1013904223) evaluated in wrapping
// signed 32-bit arithmetic. The exact recurrence is part of the persistence
// contract: replaying it against a stored seed must reproduce the time
// offsets already shown to customers.
type Stream struct {
	s int32
}

// NewStream starts a stream at the given seed.
func NewStream(seed Seed) *Stream {
	return &Stream{s: int32(seed)}
}

// Next advances the stream and returns the new raw state.
func (st *Stream) Next() int32 {
	st.s = st.s*1664525 + 1013904223
	return st.s
}

// State returns the current raw state without advancing.
func (st *Stream) State() int32 { return st.s }

// PickUnique selects count distinct indices in [0, n). The state is reduced
// with floor-normalized modulo (negative states wrap into range rather than
// being negated) and consulted before each advance, so the first index comes
// straight from the seed. A duplicate draw advances and retries; the LCG's
// full 2^32 period guarantees termination for count <= n.
func (st *Stream) PickUnique(n, count int) []int {
	if count > n {
		count = n
	}
	chosen := make([]int, 0, count)
	for len(chosen) < count {
		idx := int(((int64(st.s) % int64(n)) + int64(n)) % int64(n))
		if !containsInt(chosen, idx) {
			chosen = append(chosen, idx)
		}
		st.Next()
	}
	return chosen
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
