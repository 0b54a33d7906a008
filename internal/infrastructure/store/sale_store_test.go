package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/domain/repository"
)

func seedSales(t *testing.T) (repository.SaleRepository, context.Context) {
	t.Helper()
	repo := NewSaleRepository(New())
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fixtures := []entity.Sale{
		{ID: "TXN-AAAA0001", CustomerName: "Alice Mwangi", PaymentAmount: 5000, Timestamp: base, ReceiptReceivedAt: "2026-03-02"},
		{ID: "TXN-AAAA0002", CustomerName: "Bob Otieno", PaymentAmount: 12000, Timestamp: base.Add(time.Hour), ReceiptReceivedAt: "2026-01-15"},
		{ID: "TXN-AAAA0003", CustomerName: "alice cooper", PaymentAmount: 5000, Timestamp: base.Add(2 * time.Hour)},
		{ID: "TXN-AAAA0004", CustomerName: "Carol Wanjiru", PaymentAmount: 800, Timestamp: base.Add(3 * time.Hour), ReceiptReceivedAt: "2026-07-01"},
	}
	for i := range fixtures {
		require.NoError(t, repo.Insert(ctx, &fixtures[i]))
	}
	return repo, ctx
}

func saleIDs(sales []entity.Sale) []string {
	ids := make([]string, len(sales))
	for i := range sales {
		ids[i] = sales[i].ID
	}
	return ids
}

func TestListDefaultsToNewestFirst(t *testing.T) {
	repo, ctx := seedSales(t)

	sales, err := repo.List(ctx, &repository.SaleFilterParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"TXN-AAAA0004", "TXN-AAAA0003", "TXN-AAAA0002", "TXN-AAAA0001"}, saleIDs(sales))
}

func TestListFiltersByCustomerNameCaseInsensitive(t *testing.T) {
	repo, ctx := seedSales(t)

	sales, err := repo.List(ctx, &repository.SaleFilterParams{Search: "ALICE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TXN-AAAA0003", "TXN-AAAA0001"}, saleIDs(sales))
}

func TestListSortModes(t *testing.T) {
	repo, ctx := seedSales(t)

	tests := []struct {
		mode enum.SaleSortMode
		want []string
	}{
		{enum.SortDateAsc, []string{"TXN-AAAA0001", "TXN-AAAA0002", "TXN-AAAA0003", "TXN-AAAA0004"}},
		{enum.SortAmountDesc, []string{"TXN-AAAA0002", "TXN-AAAA0003", "TXN-AAAA0001", "TXN-AAAA0004"}},
		{enum.SortAmountAsc, []string{"TXN-AAAA0004", "TXN-AAAA0003", "TXN-AAAA0001", "TXN-AAAA0002"}},
		// sales without a receipt date sort as month 0
		{enum.SortReceiptMonthDesc, []string{"TXN-AAAA0004", "TXN-AAAA0001", "TXN-AAAA0002", "TXN-AAAA0003"}},
		{enum.SortReceiptMonthAsc, []string{"TXN-AAAA0003", "TXN-AAAA0002", "TXN-AAAA0001", "TXN-AAAA0004"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			sales, err := repo.List(ctx, &repository.SaleFilterParams{Sort: tt.mode})
			require.NoError(t, err)
			assert.Equal(t, tt.want, saleIDs(sales))
		})
	}
}

func TestListAmountTiesKeepListOrder(t *testing.T) {
	repo, ctx := seedSales(t)

	// 0003 and 0001 tie on amount; the newest-first base order must hold
	sales, err := repo.List(ctx, &repository.SaleFilterParams{Sort: enum.SortAmountDesc})
	require.NoError(t, err)
	ids := saleIDs(sales)
	assert.Equal(t, "TXN-AAAA0003", ids[1])
	assert.Equal(t, "TXN-AAAA0001", ids[2])
}

func TestListDoesNotMutateStoredOrder(t *testing.T) {
	repo, ctx := seedSales(t)

	_, err := repo.List(ctx, &repository.SaleFilterParams{Sort: enum.SortAmountAsc})
	require.NoError(t, err)

	// a later default query still returns insertion order
	sales, err := repo.List(ctx, &repository.SaleFilterParams{})
	require.NoError(t, err)
	assert.Equal(t, "TXN-AAAA0004", sales[0].ID)
}

func TestGetByIDReturnsCopy(t *testing.T) {
	repo := NewSaleRepository(New())
	ctx := context.Background()

	sale := &entity.Sale{
		ID:           "TXN-COPY0001",
		CustomerName: "Dora",
		Items:        []entity.SaleItem{{ProductName: "Widget", UnitPrice: 100, Quantity: 1}},
		Timestamp:    time.Now(),
	}
	require.NoError(t, repo.Insert(ctx, sale))

	got, err := repo.GetByID(ctx, "TXN-COPY0001")
	require.NoError(t, err)
	require.NotNil(t, got)
	got.Items[0].Quantity = 99

	again, err := repo.GetByID(ctx, "TXN-COPY0001")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	repo := NewSaleRepository(New())

	got, err := repo.GetByID(context.Background(), "TXN-MISSING1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
