package ports

import (
	"context"

	"glastor/domain/core"
	"glastor/domain/persona"
)

// Assignment records that a persona key is owned by a product.
type Assignment struct {
	Key       persona.Key    `json:"key" db:"key"`
	ProductID core.ProductID `json:"product_id" db:"product_id"`
}

// AssignmentStore is the secondary reconciliation store: slower, larger and
// shared across sessions. It is an optional accelerator for cross-session
// convergence, never a correctness dependency. Callers must treat every
// error as "no data" and carry on with the fast store alone.
type AssignmentStore interface {
	// AssignmentsByProduct returns all assignments owned by a product.
	AssignmentsByProduct(ctx context.Context, productID core.ProductID) ([]Assignment, error)

	// PutAssignments upserts assignments, last writer wins per key.
	PutAssignments(ctx context.Context, assignments []Assignment) error
}
