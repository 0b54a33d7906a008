package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	domainRepo "github.com/odanga/stockledger-api/internal/domain/repository"
)

// ProductStore exposes the catalog slice of the store as a
// repository.ProductRepository.
type ProductStore struct {
	s *Store
}

// NewProductRepository creates the catalog repository backed by the store.
func NewProductRepository(s *Store) domainRepo.ProductRepository {
	return &ProductStore{s: s}
}

func (r *ProductStore) Insert(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = append([]entity.Product{*product}, r.s.products...)
	r.s.notifyLocked()
	return nil
}

func (r *ProductStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			p := r.s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductStore) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	found := make(map[uuid.UUID]entity.Product, len(ids))
	for _, id := range ids {
		for i := range r.s.products {
			if r.s.products[i].ID == id {
				found[id] = r.s.products[i]
				break
			}
		}
	}
	return found, nil
}

func (r *ProductStore) Update(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == product.ID {
			r.s.products[i] = *product
			r.s.notifyLocked()
			return nil
		}
	}
	return nil
}

func (r *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.products {
		if r.s.products[i].ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			r.s.notifyLocked()
			return nil
		}
	}
	// absent id is a no-op, not an error
	return nil
}

func (r *ProductStore) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Product, 0, len(r.s.products))
	var search string
	if params != nil {
		search = strings.ToLower(strings.TrimSpace(params.Search))
	}
	for _, p := range r.s.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if params != nil && params.LowStock && p.StockQuantity > params.LowStockThreshold {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

