package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/enum"
)

// DamageRecord logs shrinkage: stock lost to damage or theft. ProductName
// and UnitPrice are snapshots taken when the loss was logged. Records are
// never edited or deleted.
type DamageRecord struct {
	ID          string          `json:"id"` // DMG-prefixed code
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   int64           `json:"-"` // stored in cents
	Quantity    int             `json:"quantity"`
	Type        enum.DamageType `json:"type"`
	Note        string          `json:"note,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Loss returns the value written off by this record, in cents.
func (d *DamageRecord) Loss() int64 {
	return d.UnitPrice * int64(d.Quantity)
}

type damageRecordJSON struct {
	ID          string          `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   float64         `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Type        enum.DamageType `json:"type"`
	Note        string          `json:"note,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

func (d DamageRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(damageRecordJSON{
		ID:          d.ID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		UnitPrice:   float64(d.UnitPrice) / 100,
		Quantity:    d.Quantity,
		Type:        d.Type,
		Note:        d.Note,
		Timestamp:   d.Timestamp,
	})
}

func (d *DamageRecord) UnmarshalJSON(data []byte) error {
	var raw damageRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.ID = raw.ID
	d.ProductID = raw.ProductID
	d.ProductName = raw.ProductName
	d.UnitPrice = int64(math.Round(raw.UnitPrice * 100))
	d.Quantity = raw.Quantity
	d.Type = raw.Type
	d.Note = raw.Note
	d.Timestamp = raw.Timestamp
	return nil
}
