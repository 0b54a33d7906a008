package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/enum"
)

// Product is a catalog entry. StockQuantity never drops below zero; every
// deduction is validated before it is applied.
type Product struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Category      enum.Category `json:"category"`
	UnitPrice     int64         `json:"-"` // stored in cents
	StockQuantity int           `json:"stock_quantity"`
	DateAdded     time.Time     `json:"date_added"`
}

// GetUnitPriceDecimal returns the unit price in currency units.
func (p *Product) GetUnitPriceDecimal() float64 {
	return float64(p.UnitPrice) / 100
}

// SetUnitPriceFromDecimal sets the unit price from a currency-unit value.
// Negative values clamp to zero; the catalog never rejects a product.
func (p *Product) SetUnitPriceFromDecimal(price float64) {
	if price < 0 {
		price = 0
	}
	p.UnitPrice = int64(math.Round(price * 100))
}

// StockValue returns unit price times quantity on hand, in cents.
func (p *Product) StockValue() int64 {
	return p.UnitPrice * int64(p.StockQuantity)
}

type productJSON struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Category      enum.Category `json:"category"`
	UnitPrice     float64       `json:"unit_price"`
	StockQuantity int           `json:"stock_quantity"`
	DateAdded     time.Time     `json:"date_added"`
}

// MarshalJSON exposes the unit price as a decimal value.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		UnitPrice:     p.GetUnitPriceDecimal(),
		StockQuantity: p.StockQuantity,
		DateAdded:     p.DateAdded,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON so persisted snapshots
// round-trip exactly.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.Name = raw.Name
	p.Category = raw.Category
	p.UnitPrice = int64(math.Round(raw.UnitPrice * 100))
	p.StockQuantity = raw.StockQuantity
	p.DateAdded = raw.DateAdded
	return nil
}
