package testimonial

import (
	"strings"
	"testing"
	"time"

	"glastor/domain/persona"
)

func fourPersonas(t *testing.T) []persona.Persona {
	t.Helper()
	pool := persona.NewPool()
	keys := []persona.Key{
		"Ricardo H.__Herrero",
		"Esteban T.__Contratista",
		"Camila A.__Tornero",
		"Luis R.__Albañil",
	}
	out := make([]persona.Persona, len(keys))
	for i, k := range keys {
		p, ok := pool.Lookup(k)
		if !ok {
			t.Fatalf("fixture key %s not in pool", k)
		}
		out[i] = p
	}
	return out
}

func TestSynthesizeSlots(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seed := persona.Seed(1943366846)
	personas := fourPersonas(t)

	cards := Synthesize(personas, seed, "Taladro Percutor 18V", now)
	if len(cards) != persona.SlotCount {
		t.Fatalf("got %d cards, want %d", len(cards), persona.SlotCount)
	}

	wantRatings := []int{5, 4, 5, 4}
	for i, card := range cards {
		if card.Rating != wantRatings[i] {
			t.Errorf("slot %d rating = %d, want %d", i, card.Rating, wantRatings[i])
		}
		if !card.Verified {
			t.Errorf("slot %d not verified", i)
		}
		if !strings.Contains(card.Comment, "Taladro Percutor 18V") {
			t.Errorf("slot %d comment does not reference the product: %q", i, card.Comment)
		}
		if card.Name != personas[i].Name || card.Role != personas[i].Role {
			t.Errorf("slot %d identity = (%s, %s), want (%s, %s)",
				i, card.Name, card.Role, personas[i].Name, personas[i].Role)
		}
	}
}

func TestSynthesizeOffsets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seed := persona.Seed(1943366846)

	// The makita seed draws candidate indices 11, 1, 2, 8.
	wantAges := []time.Duration{
		14 * 24 * time.Hour,
		2 * time.Minute,
		10 * time.Minute,
		48 * time.Hour,
	}

	cards := Synthesize(fourPersonas(t), seed, "Taladro Percutor 18V", now)
	for i, card := range cards {
		if got := now.Sub(card.CreatedAt.Time()); got != wantAges[i] {
			t.Errorf("slot %d age = %v, want %v", i, got, wantAges[i])
		}
	}
}

func TestSynthesizeOffsetsDistinct(t *testing.T) {
	now := time.Now()
	personas := fourPersonas(t)
	for seed := persona.Seed(0); seed < 200; seed++ {
		cards := Synthesize(personas, seed, "X", now)
		seen := make(map[time.Time]bool)
		for _, card := range cards {
			if seen[card.CreatedAt.Time()] {
				t.Fatalf("seed %d: duplicate createdAt %v", seed, card.CreatedAt.Time())
			}
			seen[card.CreatedAt.Time()] = true
		}
	}
}

func TestSynthesizeFallbackName(t *testing.T) {
	cards := Synthesize(fourPersonas(t), 42, "", time.Now())
	for i, card := range cards {
		if !strings.Contains(card.Comment, FallbackProductName) {
			t.Errorf("slot %d comment missing fallback name: %q", i, card.Comment)
		}
	}
}
