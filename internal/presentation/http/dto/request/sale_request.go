package request

import "github.com/google/uuid"

// SaleItemRequest represents one cart line
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest represents a process-sale request
type CreateSaleRequest struct {
	CustomerName  string            `json:"customer_name" binding:"required"`
	CustomerPhone string            `json:"customer_phone"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentAmount float64           `json:"payment_amount" binding:"required,gt=0"`
	// AllowMissingPhone confirms the sale may proceed without a phone
	// number on file.
	AllowMissingPhone bool `json:"allow_missing_phone"`
}

// UpdateSaleRequest carries the editable fields of a settled sale
type UpdateSaleRequest struct {
	CustomerName      *string  `json:"customer_name"`
	CustomerPhone     *string  `json:"customer_phone"`
	PaymentAmount     *float64 `json:"payment_amount"`
	ReceiptReceivedAt *string  `json:"receipt_received_at" binding:"omitempty,datetime=2006-01-02"`
}

// SaleFilterRequest represents history query parameters: the committed
// search string and the sort mode.
type SaleFilterRequest struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
}
