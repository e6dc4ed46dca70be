package models

import (
	"glastor/domain/core"
)

// ReviewStatus tracks the moderation state of a user-submitted review.
type ReviewStatus string

const (
	ReviewVerified ReviewStatus = "verified"
	ReviewPending  ReviewStatus = "pending"
	ReviewFlagged  ReviewStatus = "flagged"
)

// Review is a user-submitted product review, persisted in the fast store
// under the product it belongs to. Distinct from synthesized testimonials,
// which are never stored.
type Review struct {
	ID        core.ReviewID  `json:"id"`
	Name      string         `json:"name"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment"`
	CreatedAt core.Timestamp `json:"created_at"`
	Status    ReviewStatus   `json:"status,omitempty"`
}

// ReviewSummary aggregates a product's reviews for the rating header.
type ReviewSummary struct {
	Average float64 `json:"avg"`
	Count   int     `json:"count"`
	ByStars [5]int  `json:"by_stars"`
}
