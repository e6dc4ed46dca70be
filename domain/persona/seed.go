package persona

import "unicode/utf16"

// Seed is the non-negative 32-bit hash a product's identity reduces to. All
// downstream pseudo-random draws (slot selection, time offsets) derive from it.
type Seed int64

// NewSeed hashes a (productID, productName) pair into a stable seed.
//
// The hash is h = (h<<5) - h + c over the UTF-16 code units of
// "productID:productName", wrapping to signed 32-bit at every step, then
// absolute value. UTF-16 units (not runes or bytes) keep seeds identical to
// the ones already persisted by the storefront for accented catalog names.
// Collisions between distinct products are accepted, not an error.
func NewSeed(productID, productName string) Seed {
	var h int32
	for _, c := range utf16.Encode([]rune(productID + ":" + productName)) {
		h = (h << 5) - h + int32(c)
	}
	// Widen before negating: abs(MinInt32) does not fit in int32.
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return Seed(v)
}
