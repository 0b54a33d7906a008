package repository

import (
	"context"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
)

// SaleRepository defines the interface for the sales history. The history
// is append-mostly: records are inserted at the front, a few fields may be
// corrected afterwards, and records may be deleted without reversing the
// stock deduction they caused.
type SaleRepository interface {
	// Insert adds a sale at the front of the history.
	Insert(ctx context.Context, sale *entity.Sale) error
	// GetByID returns (nil, nil) when no sale has that id.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// Update replaces the stored sale with the same id. Missing id is a
	// silent no-op.
	Update(ctx context.Context, sale *entity.Sale) error
	// Delete removes the sale if present. Missing id is a silent no-op.
	// Stock is never restored.
	Delete(ctx context.Context, id string) error
	// List filters then sorts a copy of the history; the underlying list
	// is never mutated by a query. Ties keep original relative order.
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, error)
	// All returns the full history in insertion order (newest first).
	All(ctx context.Context) ([]entity.Sale, error)
}

// SaleFilterParams contains the two independent query inputs: a committed
// search string and a sort mode.
type SaleFilterParams struct {
	// Search matches case-insensitively against the customer name.
	// Empty matches everything.
	Search string
	// Sort defaults to SortDateDesc when unset or unrecognised.
	Sort enum.SaleSortMode
}
