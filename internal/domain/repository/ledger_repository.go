package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/entity"
)

// LedgerRepository applies stock-affecting movements. A movement pairs a
// stock decrement with the record explaining it; the two commit together
// or not at all, so a record never exists without its deduction and a
// deduction is never observable without its record.
type LedgerRepository interface {
	// ApplySale decrements stock for every cart line and inserts the sale
	// at the front of the history in one critical section. If any product
	// is missing or has insufficient stock, nothing is applied and the
	// offending ids are returned.
	ApplySale(ctx context.Context, decrements map[uuid.UUID]int, sale *entity.Sale) (failedIDs []uuid.UUID, err error)
	// ApplyDamage decrements the affected product's stock and appends the
	// record to the shrinkage log in one critical section. The failed id
	// is returned when the product is missing or short.
	ApplyDamage(ctx context.Context, record *entity.DamageRecord) (failedIDs []uuid.UUID, err error)
}
