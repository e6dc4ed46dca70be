package app

import (
	"encoding/json"
	"time"

	"github.com/montanaflynn/stats"

	"glastor/domain/core"
	"glastor/internal/errors"
	"glastor/models"
	"glastor/ports"
)

// ReviewService stores user-submitted reviews per product in the fast store.
// Reviews are kept newest-first, mirroring how the storefront prepends on
// submit.
type ReviewService struct {
	store ports.FastStore
	clock ports.Clock
}

// NewReviewService creates a review service
func NewReviewService(store ports.FastStore, clock ports.Clock) *ReviewService {
	return &ReviewService{store: store, clock: clock}
}

// List returns a product's reviews, newest first. Corrupt or missing state
// reads as an empty list.
func (s *ReviewService) List(productID core.ProductID) []models.Review {
	raw, ok := s.store.Get(reviewsKey(productID))
	if !ok {
		return nil
	}
	var reviews []models.Review
	if err := json.Unmarshal([]byte(raw), &reviews); err != nil {
		return nil
	}
	return reviews
}

// Add validates and persists a new review, returning it with its assigned ID
// and server timestamp.
func (s *ReviewService) Add(productID core.ProductID, name string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.ValidationError("rating must be between 1 and 5")
	}
	if name == "" {
		return nil, errors.ValidationError("reviewer name is required")
	}
	if comment == "" {
		return nil, errors.ValidationError("review comment is required")
	}

	review := models.Review{
		ID:        core.NewReviewID(),
		Name:      name,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: core.NewTimestamp(s.clock.Now().Truncate(time.Millisecond)),
		Status:    models.ReviewPending,
	}

	next := append([]models.Review{review}, s.List(productID)...)
	s.persist(productID, next)
	return &review, nil
}

// Remove deletes a review by ID. Removing an unknown ID is not an error.
func (s *ReviewService) Remove(productID core.ProductID, reviewID core.ReviewID) {
	reviews := s.List(productID)
	next := reviews[:0]
	for _, r := range reviews {
		if r.ID != reviewID {
			next = append(next, r)
		}
	}
	s.persist(productID, next)
}

// Summary aggregates a product's reviews. An empty set yields the zero
// summary rather than an error.
func (s *ReviewService) Summary(productID core.ProductID) models.ReviewSummary {
	reviews := s.List(productID)
	if len(reviews) == 0 {
		return models.ReviewSummary{}
	}

	ratings := make([]float64, len(reviews))
	var summary models.ReviewSummary
	for i, r := range reviews {
		ratings[i] = float64(r.Rating)
		if r.Rating >= 1 && r.Rating <= 5 {
			summary.ByStars[r.Rating-1]++
		}
	}

	avg, err := stats.Mean(ratings)
	if err != nil {
		return models.ReviewSummary{Count: len(reviews), ByStars: summary.ByStars}
	}

	summary.Average = avg
	summary.Count = len(reviews)
	return summary
}

func (s *ReviewService) persist(productID core.ProductID, reviews []models.Review) {
	data, err := json.Marshal(reviews)
	if err != nil {
		return
	}
	s.store.Set(reviewsKey(productID), string(data))
}
