package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	ProductID ID
	ReviewID  ID
)

func (id ProductID) String() string { return ID(id).String() }
func (id ReviewID) String() string  { return ID(id).String() }

// NewReviewID mints a fresh review identifier.
func NewReviewID() ReviewID { return ReviewID(NewID()) }

// ParseProductID parses a string into ProductID. Whitespace-only identifiers
// are rejected; everything else is a valid catalog key.
func ParseProductID(s string) (ProductID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("product ID cannot be empty")
	}
	return ProductID(s), nil
}

// ParseReviewID parses a string into ReviewID
func ParseReviewID(s string) (ReviewID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("review ID cannot be empty")
	}
	return ReviewID(s), nil
}
