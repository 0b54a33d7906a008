package repository

import (
	"context"

	"github.com/odanga/stockledger-api/internal/domain/entity"
)

// DamageRepository defines the interface for the shrinkage log. Records are
// append-only: no edit or delete operations exist.
type DamageRepository interface {
	// Insert adds a record at the front of the shrinkage log.
	Insert(ctx context.Context, record *entity.DamageRecord) error
	// All returns the full log in insertion order (newest first).
	All(ctx context.Context) ([]entity.DamageRecord, error)
}
