package vouches

import (
	"context"

	"github.com/grandx/vouchbot/internal/bot/models"
)

// Repository describes the persistence operations for vouch records.
// Implementations are backed by a local SQLite database.
type Repository interface {
	// Init idempotently ensures the backing table exists. Safe to call on
	// every process start.
	Init(ctx context.Context) error

	// Create inserts one record and returns its assigned identifier.
	// The product value is stored as-is; it is not validated against the
	// catalog (the caller owns any validation).
	Create(ctx context.Context, targetUserID, authorUserID, product, feedback string) (int64, error)

	// ListByTarget returns all records for a target in insertion order.
	ListByTarget(ctx context.Context, targetUserID string) ([]models.Vouch, error)

	// DeleteAllByTarget removes every record for a target and returns the
	// number removed. Deleting a target with no records is a no-op.
	DeleteAllByTarget(ctx context.Context, targetUserID string) (int64, error)

	// TopN groups records by target and returns the n most-vouched targets,
	// ordered by count descending. Ties are broken by lowest target ID so
	// the ordering is deterministic.
	TopN(ctx context.Context, n int) ([]models.TopEntry, error)
}
