// Package store persists donor records.
//
// Error Contract:
// All store methods follow this error pattern:
// - Return sentinel.ErrNotFound (wrapped) when the requested entity does not exist
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures
package store

import (
	"context"

	"lifelink/internal/donor/models"
)

// Store is the donor persistence contract. Create assigns the identifier;
// List returns every record sorted by creation time descending (newest
// first). There is no update or delete: donor records are immutable once
// written.
type Store interface {
	Create(ctx context.Context, donor *models.Donor) error
	List(ctx context.Context) ([]models.Donor, error)
}
