package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glastor/adapters/memory"
	"glastor/internal/errors"
	"glastor/models"
)

func TestReviewAddListRemove(t *testing.T) {
	svc := NewReviewService(memory.NewFastStore(), fixedClock())

	first, err := svc.Add("prod-1", "Juan M.", 5, "Excelente herramienta")
	require.NoError(t, err)
	second, err := svc.Add("prod-1", "Ana R.", 3, "Cumple, sin más")
	require.NoError(t, err)

	// Newest first.
	got := svc.List("prod-1")
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
	assert.Equal(t, models.ReviewPending, got[0].Status)

	// Other products are unaffected.
	assert.Empty(t, svc.List("prod-2"))

	svc.Remove("prod-1", first.ID)
	got = svc.List("prod-1")
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)

	// Removing an unknown ID is a no-op.
	svc.Remove("prod-1", "does-not-exist")
	assert.Len(t, svc.List("prod-1"), 1)
}

func TestReviewValidation(t *testing.T) {
	svc := NewReviewService(memory.NewFastStore(), fixedClock())

	tests := []struct {
		name    string
		rname   string
		rating  int
		comment string
	}{
		{"rating too low", "Juan", 0, "ok"},
		{"rating too high", "Juan", 6, "ok"},
		{"missing name", "", 4, "ok"},
		{"missing comment", "Juan", 4, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add("prod-1", tt.rname, tt.rating, tt.comment)
			require.Error(t, err)
			assert.Equal(t, errors.CodeValidationError, errors.GetCode(err))
		})
	}
	assert.Empty(t, svc.List("prod-1"), "failed adds must not persist")
}

func TestReviewSummary(t *testing.T) {
	svc := NewReviewService(memory.NewFastStore(), fixedClock())

	// Empty set: zero summary, no error.
	assert.Equal(t, models.ReviewSummary{}, svc.Summary("prod-1"))

	for _, r := range []int{5, 5, 4, 2} {
		_, err := svc.Add("prod-1", "Cliente", r, "comentario")
		require.NoError(t, err)
	}

	summary := svc.Summary("prod-1")
	assert.Equal(t, 4, summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 1e-9)
	assert.Equal(t, [5]int{0, 1, 0, 1, 2}, summary.ByStars)
}

func TestReviewCorruptStateReadsAsEmpty(t *testing.T) {
	store := memory.NewFastStore()
	store.Set("reviews:prod-1", "{not json")

	svc := NewReviewService(store, fixedClock())
	assert.Empty(t, svc.List("prod-1"))
	assert.Equal(t, models.ReviewSummary{}, svc.Summary("prod-1"))

	// A fresh write replaces the corrupt value.
	_, err := svc.Add("prod-1", "Juan", 4, "bien")
	require.NoError(t, err)
	assert.Len(t, svc.List("prod-1"), 1)
}
