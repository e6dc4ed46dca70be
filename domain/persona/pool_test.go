package persona

import "testing"

func TestPoolShape(t *testing.T) {
	pool := NewPool()
	if got, want := pool.Size(), len(Names)*len(Roles); got != want {
		t.Fatalf("pool size = %d, want %d", got, want)
	}

	// Name-major order: the first len(Roles) entries share the first name.
	for i := 0; i < len(Roles); i++ {
		if pool.At(i).Name != Names[0] {
			t.Fatalf("entry %d name = %s, want %s", i, pool.At(i).Name, Names[0])
		}
		if pool.At(i).Role != Roles[i] {
			t.Fatalf("entry %d role = %s, want %s", i, pool.At(i).Role, Roles[i])
		}
	}
}

func TestPoolKeysUnique(t *testing.T) {
	pool := NewPool()
	seen := make(map[Key]bool, pool.Size())
	for i := 0; i < pool.Size(); i++ {
		k := pool.At(i).Key
		if seen[k] {
			t.Fatalf("duplicate key %s", k)
		}
		seen[k] = true
	}
}

func TestKeySplit(t *testing.T) {
	tests := []struct {
		key      Key
		wantName string
		wantRole string
	}{
		{"Carolina G.__Técnico", "Carolina G.", "Técnico"},
		{"solo-name", "solo-name", ""},
		{"__Plomero", "", "Plomero"},
		{"", "", ""},
	}
	for _, tt := range tests {
		name, role := tt.key.Split()
		if name != tt.wantName || role != tt.wantRole {
			t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tt.key, name, role, tt.wantName, tt.wantRole)
		}
	}
}

func TestPoolResolveFallback(t *testing.T) {
	pool := NewPool()
	seed := Seed(17)

	// Well-formed pool key resolves exactly.
	p := pool.Resolve("Luis R.__Soldador", seed)
	if p.Name != "Luis R." || p.Role != "Soldador" {
		t.Fatalf("resolved %q to (%s, %s)", "Luis R.__Soldador", p.Name, p.Role)
	}

	// Malformed keys still render something deterministic.
	p = pool.Resolve("__Soldador", seed)
	if p.Name != Names[17%len(Names)] || p.Role != "Soldador" {
		t.Fatalf("fallback name resolution = (%s, %s)", p.Name, p.Role)
	}
	p = pool.Resolve("Luis R.", seed)
	if p.Name != "Luis R." || p.Role != Roles[17%len(Roles)] {
		t.Fatalf("fallback role resolution = (%s, %s)", p.Name, p.Role)
	}
}
