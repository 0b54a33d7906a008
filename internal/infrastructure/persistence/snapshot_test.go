package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/infrastructure/store"
)

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nope", "snapshot.json"))

	snap := fs.Load()
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Sales)
	assert.Empty(t, snap.Damages)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "snapshot.json")
	fs := NewFileStore(path)

	ts := time.Date(2026, 5, 10, 14, 30, 0, 0, time.UTC)
	original := store.Snapshot{
		Products: []entity.Product{{
			ID:            uuid.New(),
			Name:          "Pixel 9",
			Category:      enum.CategorySmartphone,
			UnitPrice:     49999,
			StockQuantity: 8,
			DateAdded:     ts,
		}},
		Sales: []entity.Sale{{
			ID:            "TXN-ABCD1234",
			CustomerName:  "Achieng",
			CustomerPhone: "0712345678",
			Items: []entity.SaleItem{{
				ProductID:   uuid.New(),
				ProductName: "Pixel 9",
				UnitPrice:   49999,
				Category:    enum.CategorySmartphone,
				Quantity:    2,
			}},
			TotalPrice:        99998,
			PaymentAmount:     90000,
			Timestamp:         ts,
			ReceiptReceivedAt: "2026-05-12",
		}},
		Damages: []entity.DamageRecord{{
			ID:          "DMG-ABCD1234",
			ProductID:   uuid.New(),
			ProductName: "Pixel 9",
			UnitPrice:   49999,
			Quantity:    1,
			Type:        enum.DamageTypeStolen,
			Note:        "display unit",
			Timestamp:   ts,
		}},
	}

	fs.Save(original)
	loaded := fs.Load()

	assert.Equal(t, original.Products, loaded.Products)
	assert.Equal(t, original.Sales, loaded.Sales)
	assert.Equal(t, original.Damages, loaded.Damages)
}

func TestSaveWritesEmptyArraysNotNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	fs := NewFileStore(path)

	fs.Save(store.Snapshot{})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
	assert.Contains(t, string(data), `"products": []`)
}

func TestLoadSkipsMalformedField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	doc := `{"products": "oops", "sales": [], "damages": []}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	snap := NewFileStore(path).Load()
	assert.Empty(t, snap.Products)
	assert.NotNil(t, snap.Sales)
}

func TestLoadMalformedDocumentStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	snap := NewFileStore(path).Load()
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Sales)
	assert.Empty(t, snap.Damages)
}
