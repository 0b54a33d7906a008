package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/entity"
)

// Snapshot is the whole application state as one serializable value. It is
// also the shape of the persisted record.
type Snapshot struct {
	Products []entity.Product      `json:"products"`
	Sales    []entity.Sale         `json:"sales"`
	Damages  []entity.DamageRecord `json:"damages"`
}

// Store is the single process-wide state container. All three collections
// are kept most-recent-first. A RWMutex guards the snapshot so every
// operation runs to completion in isolation; the all-or-nothing validation
// of a stock deduction happens entirely inside one write lock.
//
// After hydration an observer is attached with OnChange; every mutation
// then triggers a whole-state save. Until then writes are gated, so an
// empty initial state can never clobber previously stored data.
type Store struct {
	mu       sync.RWMutex
	products []entity.Product
	sales    []entity.Sale
	damages  []entity.DamageRecord
	onChange func(Snapshot)
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Hydrate replaces the store contents with a loaded snapshot. Intended to
// run once at startup, before OnChange is attached.
func (s *Store) Hydrate(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.Products
	s.sales = snap.Sales
	s.damages = snap.Damages
}

// OnChange attaches the persistence observer. Attaching it only after the
// initial load completes is what gates the first write.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Products: make([]entity.Product, len(s.products)),
		Sales:    make([]entity.Sale, len(s.sales)),
		Damages:  make([]entity.DamageRecord, len(s.damages)),
	}
	copy(snap.Products, s.products)
	copy(snap.Damages, s.damages)
	for i, sale := range s.sales {
		items := make([]entity.SaleItem, len(sale.Items))
		copy(items, sale.Items)
		sale.Items = items
		snap.Sales[i] = sale
	}
	return snap
}

// notifyLocked pushes the current state to the observer. Callers must hold
// the write lock. Saves are fire-and-forget: the observer logs its own
// failures and nothing propagates back to the mutating operation.
func (s *Store) notifyLocked() {
	if s.onChange == nil {
		return
	}
	s.onChange(s.snapshotLocked())
}

// decrementLocked validates every line before applying any deduction.
// Either all decrements happen or none do, so stock can never go negative
// and a partially applied cart can never be observed. Callers must hold
// the write lock and are responsible for notifying. The ids that are
// missing or short are returned; empty means the batch was applied.
func (s *Store) decrementLocked(decrements map[uuid.UUID]int) []uuid.UUID {
	index := make(map[uuid.UUID]int, len(decrements))
	var failed []uuid.UUID
	for id, qty := range decrements {
		pos := -1
		for i := range s.products {
			if s.products[i].ID == id {
				pos = i
				break
			}
		}
		if pos < 0 || s.products[pos].StockQuantity < qty {
			failed = append(failed, id)
			continue
		}
		index[id] = pos
	}
	if len(failed) > 0 {
		return failed
	}

	for id, qty := range decrements {
		p := &s.products[index[id]]
		p.StockQuantity -= qty
		if p.StockQuantity < 0 {
			p.StockQuantity = 0
		}
	}
	return nil
}
