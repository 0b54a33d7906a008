package entity

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/domain/enum"
)

// SaleItem is one line of a sale. ProductName, UnitPrice and Category are
// snapshots taken at sale time and never recomputed from the live product,
// so history stays accurate after renames, reprices or deletions.
type SaleItem struct {
	ProductID   uuid.UUID     `json:"product_id"`
	ProductName string        `json:"product_name"`
	UnitPrice   int64         `json:"-"` // stored in cents
	Category    enum.Category `json:"category"`
	Quantity    int           `json:"quantity"`
}

// Subtotal returns unit price times quantity, in cents.
func (i *SaleItem) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

type saleItemJSON struct {
	ProductID   uuid.UUID     `json:"product_id"`
	ProductName string        `json:"product_name"`
	UnitPrice   float64       `json:"unit_price"`
	Category    enum.Category `json:"category"`
	Quantity    int           `json:"quantity"`
}

func (i SaleItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(saleItemJSON{
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		UnitPrice:   float64(i.UnitPrice) / 100,
		Category:    i.Category,
		Quantity:    i.Quantity,
	})
}

func (i *SaleItem) UnmarshalJSON(data []byte) error {
	var raw saleItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.ProductID = raw.ProductID
	i.ProductName = raw.ProductName
	i.UnitPrice = int64(math.Round(raw.UnitPrice * 100))
	i.Category = raw.Category
	i.Quantity = raw.Quantity
	return nil
}

// Sale is one settled transaction. ID, Items and Timestamp are immutable
// after creation; CustomerName, CustomerPhone, PaymentAmount and
// ReceiptReceivedAt may be corrected afterwards without touching stock.
type Sale struct {
	ID            string     `json:"id"` // TXN-prefixed code
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Items         []SaleItem `json:"items"`
	TotalPrice    int64      `json:"-"` // stored in cents
	PaymentAmount int64      `json:"-"` // stored in cents
	Timestamp     time.Time  `json:"timestamp"`
	// ReceiptReceivedAt marks when the paper receipt was collected,
	// as a YYYY-MM-DD string. Empty means not yet collected.
	ReceiptReceivedAt string `json:"receipt_received_at,omitempty"`
}

// GetPaymentAmountDecimal returns the tendered amount in currency units.
func (s *Sale) GetPaymentAmountDecimal() float64 {
	return float64(s.PaymentAmount) / 100
}

// ReceiptMonth returns the two-digit month component of ReceiptReceivedAt,
// or 0 when the receipt date is absent or malformed.
func (s *Sale) ReceiptMonth() int {
	if len(s.ReceiptReceivedAt) < 7 {
		return 0
	}
	month, err := strconv.Atoi(s.ReceiptReceivedAt[5:7])
	if err != nil || month < 1 || month > 12 {
		return 0
	}
	return month
}

type saleJSON struct {
	ID                string     `json:"id"`
	CustomerName      string     `json:"customer_name"`
	CustomerPhone     string     `json:"customer_phone"`
	Items             []SaleItem `json:"items"`
	TotalPrice        float64    `json:"total_price"`
	PaymentAmount     float64    `json:"payment_amount"`
	Timestamp         time.Time  `json:"timestamp"`
	ReceiptReceivedAt string     `json:"receipt_received_at,omitempty"`
}

func (s Sale) MarshalJSON() ([]byte, error) {
	return json.Marshal(saleJSON{
		ID:                s.ID,
		CustomerName:      s.CustomerName,
		CustomerPhone:     s.CustomerPhone,
		Items:             s.Items,
		TotalPrice:        float64(s.TotalPrice) / 100,
		PaymentAmount:     float64(s.PaymentAmount) / 100,
		Timestamp:         s.Timestamp,
		ReceiptReceivedAt: s.ReceiptReceivedAt,
	})
}

func (s *Sale) UnmarshalJSON(data []byte) error {
	var raw saleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.ID = raw.ID
	s.CustomerName = raw.CustomerName
	s.CustomerPhone = raw.CustomerPhone
	s.Items = raw.Items
	s.TotalPrice = int64(math.Round(raw.TotalPrice * 100))
	s.PaymentAmount = int64(math.Round(raw.PaymentAmount * 100))
	s.Timestamp = raw.Timestamp
	s.ReceiptReceivedAt = raw.ReceiptReceivedAt
	return nil
}
