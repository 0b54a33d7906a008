package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/domain/repository"
	"github.com/odanga/stockledger-api/pkg/utils"
)

// CatalogService handles catalog operations: adding, editing and removing
// products. Stock-affecting movements (sales, shrinkage) live in their own
// services.
type CatalogService struct {
	productRepo       repository.ProductRepository
	lowStockThreshold int
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository, lowStockThreshold int) *CatalogService {
	return &CatalogService{
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
	}
}

// AddProductInput represents the add product input
type AddProductInput struct {
	Name          string
	Category      enum.Category
	UnitPrice     float64
	StockQuantity int
}

// AddProduct creates a product and inserts it at the front of the catalog.
// Adding never fails: unknown categories normalize to Other and negative
// numerics clamp to zero.
func (s *CatalogService) AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:            utils.NewUUID(),
		Name:          strings.TrimSpace(input.Name),
		Category:      input.Category.Normalize(),
		StockQuantity: input.StockQuantity,
		DateAdded:     time.Now(),
	}
	product.SetUnitPriceFromDecimal(input.UnitPrice)
	if product.StockQuantity < 0 {
		product.StockQuantity = 0
	}

	if err := s.productRepo.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID            uuid.UUID
	Name          *string
	Category      *enum.Category
	UnitPrice     *float64
	StockQuantity *int
}

// UpdateProduct applies an explicit catalog edit. Historical sale and
// damage snapshots keep the values captured at the time of the movement.
// Missing id is a silent no-op.
func (s *CatalogService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		product.Category = input.Category.Normalize()
	}
	if input.UnitPrice != nil {
		product.SetUnitPriceFromDecimal(*input.UnitPrice)
	}
	if input.StockQuantity != nil {
		qty := *input.StockQuantity
		if qty < 0 {
			qty = 0
		}
		product.StockQuantity = qty
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// RemoveProduct deletes the product if present; removing an unknown id is
// a no-op. Sales and damage records referencing the product keep their
// snapshot data.
func (s *CatalogService) RemoveProduct(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists catalog products, newest first.
func (s *CatalogService) ListProducts(ctx context.Context, search string, lowStockOnly bool) ([]entity.Product, error) {
	return s.productRepo.List(ctx, &repository.ProductFilterParams{
		Search:            search,
		LowStock:          lowStockOnly,
		LowStockThreshold: s.lowStockThreshold,
	})
}

// GetProduct retrieves a product by id
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}
