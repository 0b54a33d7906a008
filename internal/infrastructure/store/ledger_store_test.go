package store

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/pkg/utils"
)

func testSale(id string, productID uuid.UUID, qty int) *entity.Sale {
	return &entity.Sale{
		ID:           id,
		CustomerName: "Customer",
		Items: []entity.SaleItem{{
			ProductID:   productID,
			ProductName: "Item",
			UnitPrice:   1000,
			Quantity:    qty,
		}},
		TotalPrice:    int64(qty) * 1000,
		PaymentAmount: int64(qty) * 1000,
		Timestamp:     time.Now(),
	}
}

func TestApplySaleCommitsDecrementAndRecordTogether(t *testing.T) {
	st := New()
	ids, productRepo, ctx := seedProducts(t, st, 10, 5)
	ledger := NewLedgerRepository(st)

	failed, err := ledger.ApplySale(ctx, map[uuid.UUID]int{ids[0]: 4, ids[1]: 5}, testSale("TXN-00000001", ids[0], 4))
	require.NoError(t, err)
	assert.Empty(t, failed)

	first, err := productRepo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 6, first.StockQuantity)
	second, err := productRepo.GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, 0, second.StockQuantity)

	snap := st.Snapshot()
	require.Len(t, snap.Sales, 1)
	assert.Equal(t, "TXN-00000001", snap.Sales[0].ID)
}

func TestApplySaleRejectsWholeBatch(t *testing.T) {
	st := New()
	ids, productRepo, ctx := seedProducts(t, st, 10, 2)
	ledger := NewLedgerRepository(st)

	failed, err := ledger.ApplySale(ctx, map[uuid.UUID]int{
		ids[0]: 4, // satisfiable
		ids[1]: 3, // short by one
	}, testSale("TXN-00000002", ids[0], 4))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{ids[1]}, failed)

	// neither the decrements nor the record were applied
	first, err := productRepo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 10, first.StockQuantity)
	second, err := productRepo.GetByID(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, 2, second.StockQuantity)
	assert.Empty(t, st.Snapshot().Sales)
}

func TestApplySaleUnknownIDFails(t *testing.T) {
	st := New()
	ids, productRepo, ctx := seedProducts(t, st, 10)
	ledger := NewLedgerRepository(st)
	ghost := uuid.New()

	failed, err := ledger.ApplySale(ctx, map[uuid.UUID]int{ids[0]: 1, ghost: 1}, testSale("TXN-00000003", ids[0], 1))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{ghost}, failed)

	p, err := productRepo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 10, p.StockQuantity)
}

func TestApplySaleEmitsOneNotificationWithBothChanges(t *testing.T) {
	st := New()
	ids, _, ctx := seedProducts(t, st, 5)
	ledger := NewLedgerRepository(st)

	var seen []Snapshot
	st.OnChange(func(snap Snapshot) { seen = append(seen, snap) })

	_, err := ledger.ApplySale(ctx, map[uuid.UUID]int{ids[0]: 2}, testSale("TXN-00000004", ids[0], 2))
	require.NoError(t, err)

	// one mutation, one save, holding the deduction and the record
	require.Len(t, seen, 1)
	assert.Equal(t, 3, seen[0].Products[0].StockQuantity)
	require.Len(t, seen[0].Sales, 1)
}

func TestApplyDamageEmitsOneNotificationWithBothChanges(t *testing.T) {
	st := New()
	ids, _, ctx := seedProducts(t, st, 5)
	ledger := NewLedgerRepository(st)

	var seen []Snapshot
	st.OnChange(func(snap Snapshot) { seen = append(seen, snap) })

	failed, err := ledger.ApplyDamage(ctx, &entity.DamageRecord{
		ID:        "DMG-00000001",
		ProductID: ids[0],
		Quantity:  2,
		Type:      enum.DamageTypeDamaged,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.Empty(t, failed)

	require.Len(t, seen, 1)
	assert.Equal(t, 3, seen[0].Products[0].StockQuantity)
	require.Len(t, seen[0].Damages, 1)
}

func TestApplyDamageShortStockLeavesNothing(t *testing.T) {
	st := New()
	ids, productRepo, ctx := seedProducts(t, st, 2)
	ledger := NewLedgerRepository(st)

	failed, err := ledger.ApplyDamage(ctx, &entity.DamageRecord{
		ID:        "DMG-00000002",
		ProductID: ids[0],
		Quantity:  3,
		Type:      enum.DamageTypeStolen,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{ids[0]}, failed)

	p, err := productRepo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 2, p.StockQuantity)
	assert.Empty(t, st.Snapshot().Damages)
}

func TestApplySaleConcurrentNeverOversells(t *testing.T) {
	st := New()
	ids, productRepo, ctx := seedProducts(t, st, 10)
	ledger := NewLedgerRepository(st)

	var wg sync.WaitGroup
	applied := make(chan struct{}, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sale := testSale(utils.GenerateTransactionID(), ids[0], 1)
			failed, err := ledger.ApplySale(ctx, map[uuid.UUID]int{ids[0]: 1}, sale)
			if err == nil && len(failed) == 0 {
				applied <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(applied)

	// exactly ten of the twenty single-unit sales can succeed
	assert.Equal(t, 10, len(applied))
	p, err := productRepo.GetByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 0, p.StockQuantity)
	assert.Len(t, st.Snapshot().Sales, 10)
}
