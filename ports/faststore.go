package ports

// FastStore is the synchronous, low-latency durable key-value store scoped to
// the running process. It is the authoritative store for persona selections,
// the allocation registry, and user reviews. The surface is deliberately
// error-free: adapters absorb I/O and corruption failures and present them as
// absence, because every caller treats unreadable state as empty.
type FastStore interface {
	// Get returns the value for key, or ok=false when absent or unreadable.
	Get(key string) (value string, ok bool)

	// Set durably writes key=value. Failures are absorbed by the adapter.
	Set(key, value string)

	// Delete removes key if present.
	Delete(key string)
}
