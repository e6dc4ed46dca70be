package memory

import "testing"

func TestFastStoreRoundTrip(t *testing.T) {
	s := NewFastStore()

	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	s.Set("reviews:selected:p1", `["a","b"]`)
	got, ok := s.Get("reviews:selected:p1")
	if !ok || got != `["a","b"]` {
		t.Fatalf("got %q ok=%v, want stored value", got, ok)
	}

	s.Set("reviews:selected:p1", `["c"]`)
	if got, _ := s.Get("reviews:selected:p1"); got != `["c"]` {
		t.Fatalf("overwrite not applied, got %q", got)
	}

	s.Delete("reviews:selected:p1")
	if _, ok := s.Get("reviews:selected:p1"); ok {
		t.Fatal("expected miss after delete")
	}

	// Deleting an absent key is a no-op.
	s.Delete("reviews:selected:p1")
}
