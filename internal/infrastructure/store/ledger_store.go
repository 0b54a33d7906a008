package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	domainRepo "github.com/odanga/stockledger-api/internal/domain/repository"
)

// LedgerStore commits stock-affecting movements against the store. Each
// movement runs in a single write lock and emits a single change
// notification, so no observer or persisted snapshot can ever hold a stock
// deduction without the sale or damage record that explains it.
type LedgerStore struct {
	s *Store
}

// NewLedgerRepository creates the movement repository backed by the store.
func NewLedgerRepository(s *Store) domainRepo.LedgerRepository {
	return &LedgerStore{s: s}
}

func (r *LedgerStore) ApplySale(ctx context.Context, decrements map[uuid.UUID]int, sale *entity.Sale) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if failed := r.s.decrementLocked(decrements); len(failed) > 0 {
		return failed, nil
	}
	r.s.sales = append([]entity.Sale{*sale}, r.s.sales...)
	r.s.notifyLocked()
	return nil, nil
}

func (r *LedgerStore) ApplyDamage(ctx context.Context, record *entity.DamageRecord) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	decrements := map[uuid.UUID]int{record.ProductID: record.Quantity}
	if failed := r.s.decrementLocked(decrements); len(failed) > 0 {
		return failed, nil
	}
	r.s.damages = append([]entity.DamageRecord{*record}, r.s.damages...)
	r.s.notifyLocked()
	return nil, nil
}
