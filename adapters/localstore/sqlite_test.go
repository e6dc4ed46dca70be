package localstore

import (
	"path/filepath"
	"testing"

	"glastor/internal"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path, internal.DefaultLogger)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t, ":memory:")

	if _, ok := s.Get("reviews:persona-registry"); ok {
		t.Fatal("expected miss on empty store")
	}

	s.Set("reviews:persona-registry", `{"Luis R.__Soldador":"p1"}`)
	got, ok := s.Get("reviews:persona-registry")
	if !ok || got != `{"Luis R.__Soldador":"p1"}` {
		t.Fatalf("got %q ok=%v", got, ok)
	}

	s.Set("reviews:persona-registry", `{}`)
	if got, _ := s.Get("reviews:persona-registry"); got != `{}` {
		t.Fatalf("overwrite not applied, got %q", got)
	}

	s.Delete("reviews:persona-registry")
	if _, ok := s.Get("reviews:persona-registry"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glastor.db")

	first := openTestStore(t, path)
	first.Set("reviews:selected:p1", `["Camila A.__Soldador"]`)
	first.Set("reviews:p1", `[]`)
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second := openTestStore(t, path)
	got, ok := second.Get("reviews:selected:p1")
	if !ok || got != `["Camila A.__Soldador"]` {
		t.Fatalf("selection not durable, got %q ok=%v", got, ok)
	}
	if got, ok := second.Get("reviews:p1"); !ok || got != `[]` {
		t.Fatalf("reviews not durable, got %q ok=%v", got, ok)
	}
}
