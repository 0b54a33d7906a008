package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog data operations.
// Implementations keep the catalog ordered most-recent-first.
type ProductRepository interface {
	// Insert adds a product at the front of the catalog.
	Insert(ctx context.Context, product *entity.Product) error
	// GetByID returns (nil, nil) when no product has that id.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products in one call (prevents N+1-style
	// repeated lookups when validating a cart).
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Product, error)
	// Update replaces the stored product with the same id. Missing id is a
	// silent no-op.
	Update(ctx context.Context, product *entity.Product) error
	// Delete removes the product if present. Missing id is a silent no-op;
	// historical sale and damage snapshots are unaffected.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns products matching the filter, catalog order preserved.
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, error)
}

// ProductFilterParams contains filtering parameters for catalog queries.
type ProductFilterParams struct {
	// Search matches case-insensitively against the product name.
	Search string
	// LowStock restricts to products at or below LowStockThreshold.
	LowStock          bool
	LowStockThreshold int
}
