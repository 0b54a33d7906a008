package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptMonth(t *testing.T) {
	tests := []struct {
		name    string
		receipt string
		want    int
	}{
		{"valid date", "2026-03-15", 3},
		{"december", "2025-12-01", 12},
		{"not collected", "", 0},
		{"too short", "2026-3", 0},
		{"garbage month", "2026-xx-01", 0},
		{"month out of range", "2026-13-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := Sale{ReceiptReceivedAt: tt.receipt}
			assert.Equal(t, tt.want, sale.ReceiptMonth())
		})
	}
}

func TestSaleMoneyFieldsMarshalAsDecimals(t *testing.T) {
	sale := Sale{
		ID:            "TXN-ABCD1234",
		TotalPrice:    123456,
		PaymentAmount: 100000,
		Items:         []SaleItem{{ProductName: "Widget", UnitPrice: 999, Quantity: 2}},
	}

	data, err := json.Marshal(sale)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"total_price":1234.56`)
	assert.Contains(t, string(data), `"payment_amount":1000`)
	assert.Contains(t, string(data), `"unit_price":9.99`)

	var back Sale
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, sale.TotalPrice, back.TotalPrice)
	assert.Equal(t, sale.PaymentAmount, back.PaymentAmount)
	assert.Equal(t, sale.Items[0].UnitPrice, back.Items[0].UnitPrice)
}

func TestSaleItemSubtotal(t *testing.T) {
	item := SaleItem{UnitPrice: 1050, Quantity: 3}
	assert.Equal(t, int64(3150), item.Subtotal())
}
