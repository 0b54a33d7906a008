package store

import (
	"context"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	domainRepo "github.com/odanga/stockledger-api/internal/domain/repository"
)

// DamageStore exposes the shrinkage log slice of the store as a
// repository.DamageRepository.
type DamageStore struct {
	s *Store
}

// NewDamageRepository creates the shrinkage repository backed by the store.
func NewDamageRepository(s *Store) domainRepo.DamageRepository {
	return &DamageStore{s: s}
}

func (r *DamageStore) Insert(ctx context.Context, record *entity.DamageRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.damages = append([]entity.DamageRecord{*record}, r.s.damages...)
	r.s.notifyLocked()
	return nil
}

func (r *DamageStore) All(ctx context.Context) ([]entity.DamageRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.DamageRecord, len(r.s.damages))
	copy(out, r.s.damages)
	return out, nil
}
