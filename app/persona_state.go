package app

import (
	"encoding/json"

	"glastor/domain/core"
	"glastor/domain/persona"
	"glastor/ports"
)

// Fast-store key layout. The "reviews:" prefix is shared with the storefront
// that originally owned this state; changing it would orphan live selections.
const registryKey = "reviews:persona-registry"

func selectionKey(productID core.ProductID) string {
	return "reviews:selected:" + productID.String()
}

func reviewsKey(productID core.ProductID) string {
	return "reviews:" + productID.String()
}

// readRegistry loads the global key -> product ownership map. Malformed or
// missing state reads as empty: availability beats strict uniqueness.
func readRegistry(store ports.FastStore) persona.Registry {
	raw, ok := store.Get(registryKey)
	if !ok {
		return persona.Registry{}
	}
	var reg map[string]string
	if err := json.Unmarshal([]byte(raw), &reg); err != nil {
		return persona.Registry{}
	}
	out := make(persona.Registry, len(reg))
	for k, pid := range reg {
		out[persona.Key(k)] = core.ProductID(pid)
	}
	return out
}

func writeRegistry(store ports.FastStore, reg persona.Registry) {
	plain := make(map[string]string, len(reg))
	for k, pid := range reg {
		plain[k.String()] = pid.String()
	}
	data, err := json.Marshal(plain)
	if err != nil {
		return
	}
	store.Set(registryKey, string(data))
}

// readSelection loads a product's persisted persona keys, or nil when absent
// or unreadable.
func readSelection(store ports.FastStore, productID core.ProductID) []persona.Key {
	raw, ok := store.Get(selectionKey(productID))
	if !ok {
		return nil
	}
	var keys []persona.Key
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil
	}
	return keys
}

func writeSelection(store ports.FastStore, productID core.ProductID, keys []persona.Key) {
	data, err := json.Marshal(keys)
	if err != nil {
		return
	}
	store.Set(selectionKey(productID), string(data))
}
