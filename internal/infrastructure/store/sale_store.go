package store

import (
	"context"
	"sort"
	"strings"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	domainRepo "github.com/odanga/stockledger-api/internal/domain/repository"
)

// SaleStore exposes the sales history slice of the store as a
// repository.SaleRepository. It also hosts the history query engine:
// filter first, then stable sort, on a copy of the list.
type SaleStore struct {
	s *Store
}

// NewSaleRepository creates the sales history repository backed by the store.
func NewSaleRepository(s *Store) domainRepo.SaleRepository {
	return &SaleStore{s: s}
}

func (r *SaleStore) Insert(ctx context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales = append([]entity.Sale{*sale}, r.s.sales...)
	r.s.notifyLocked()
	return nil
}

func (r *SaleStore) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.sales {
		if r.s.sales[i].ID == id {
			sale := r.s.sales[i]
			items := make([]entity.SaleItem, len(sale.Items))
			copy(items, sale.Items)
			sale.Items = items
			return &sale, nil
		}
	}
	return nil, nil
}

func (r *SaleStore) Update(ctx context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.sales {
		if r.s.sales[i].ID == sale.ID {
			r.s.sales[i] = *sale
			r.s.notifyLocked()
			return nil
		}
	}
	return nil
}

func (r *SaleStore) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.sales {
		if r.s.sales[i].ID == id {
			r.s.sales = append(r.s.sales[:i], r.s.sales[i+1:]...)
			r.s.notifyLocked()
			return nil
		}
	}
	// absent id is a no-op, not an error
	return nil
}

func (r *SaleStore) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	if params == nil {
		return all, nil
	}

	filtered := all
	if search := strings.ToLower(strings.TrimSpace(params.Search)); search != "" {
		filtered = make([]entity.Sale, 0, len(all))
		for _, sale := range all {
			if strings.Contains(strings.ToLower(sale.CustomerName), search) {
				filtered = append(filtered, sale)
			}
		}
	}

	sortSales(filtered, params.Sort)
	return filtered, nil
}

// sortSales orders in place. SliceStable keeps ties in their original
// relative order.
func sortSales(sales []entity.Sale, mode enum.SaleSortMode) {
	var less func(a, b *entity.Sale) bool
	switch mode {
	case enum.SortDateAsc:
		less = func(a, b *entity.Sale) bool { return a.Timestamp.Before(b.Timestamp) }
	case enum.SortAmountDesc:
		less = func(a, b *entity.Sale) bool { return a.PaymentAmount > b.PaymentAmount }
	case enum.SortAmountAsc:
		less = func(a, b *entity.Sale) bool { return a.PaymentAmount < b.PaymentAmount }
	case enum.SortReceiptMonthDesc:
		less = func(a, b *entity.Sale) bool { return a.ReceiptMonth() > b.ReceiptMonth() }
	case enum.SortReceiptMonthAsc:
		less = func(a, b *entity.Sale) bool { return a.ReceiptMonth() < b.ReceiptMonth() }
	default: // SortDateDesc
		less = func(a, b *entity.Sale) bool { return a.Timestamp.After(b.Timestamp) }
	}
	sort.SliceStable(sales, func(i, j int) bool { return less(&sales[i], &sales[j]) })
}

func (r *SaleStore) All(ctx context.Context) ([]entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Sale, len(r.s.sales))
	for i, sale := range r.s.sales {
		items := make([]entity.SaleItem, len(sale.Items))
		copy(items, sale.Items)
		sale.Items = items
		out[i] = sale
	}
	return out, nil
}
