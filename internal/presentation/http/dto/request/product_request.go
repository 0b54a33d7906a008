package request

// AddProductRequest represents a catalog add request. Prices and stock
// default to zero when absent; the engine clamps negatives rather than
// rejecting, so adding a product never fails.
type AddProductRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=255"`
	Category      string  `json:"category"`
	UnitPrice     float64 `json:"unit_price"`
	StockQuantity int     `json:"stock_quantity"`
}

// UpdateProductRequest represents an explicit catalog edit
type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Category      *string  `json:"category"`
	UnitPrice     *float64 `json:"unit_price"`
	StockQuantity *int     `json:"stock_quantity"`
}

// ProductFilterRequest represents catalog filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	LowStock bool   `form:"low_stock"`
}
