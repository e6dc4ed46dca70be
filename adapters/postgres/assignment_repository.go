package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"glastor/domain/core"
	"glastor/domain/persona"
	"glastor/internal/errors"
	"glastor/ports"
)

// AssignmentRepository is the Postgres-backed secondary reconciliation store.
// It holds the shared persona_assignments table that independent sessions
// converge on; per key, the last writer wins.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// AssignmentsByProduct returns all assignments owned by a product, ordered by
// key so overwrites derived from this result are deterministic.
func (r *AssignmentRepository) AssignmentsByProduct(ctx context.Context, productID core.ProductID) ([]ports.Assignment, error) {
	query := `
		SELECT key, product_id
		FROM persona_assignments
		WHERE product_id = $1
		ORDER BY key`

	rows, err := r.db.QueryContext(ctx, query, productID.String())
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError,
			errors.Wrapf(err, "failed to query assignments for product %s", productID))
	}
	defer rows.Close()

	var out []ports.Assignment
	for rows.Next() {
		var key, pid string
		if err := rows.Scan(&key, &pid); err != nil {
			return nil, errors.WithCode(errors.CodeDatabaseError,
				errors.Wrap(err, "failed to scan assignment row"))
		}
		out = append(out, ports.Assignment{Key: persona.Key(key), ProductID: core.ProductID(pid)})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError,
			errors.Wrap(err, "failed to read assignment rows"))
	}

	return out, nil
}

// PutAssignments bulk-upserts assignments.
func (r *AssignmentRepository) PutAssignments(ctx context.Context, assignments []ports.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	keys := make([]string, len(assignments))
	productIDs := make([]string, len(assignments))
	for i, a := range assignments {
		keys[i] = a.Key.String()
		productIDs[i] = a.ProductID.String()
	}

	query := `
		INSERT INTO persona_assignments (key, product_id, updated_at)
		SELECT unnest($1::text[]), unnest($2::text[]), NOW()
		ON CONFLICT (key) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, pq.Array(keys), pq.Array(productIDs)); err != nil {
		return errors.WithCode(errors.CodeDatabaseError,
			errors.Wrapf(err, "failed to upsert %d assignments", len(assignments)))
	}

	return nil
}
