package request

import "github.com/google/uuid"

// RecordDamageRequest represents a log-shrinkage request. Quantity carries
// no binding rule: the service validates it so a non-positive value gets
// its specific rejection reason instead of a generic binding error.
type RecordDamageRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
	Type      string    `json:"type" binding:"required,oneof=damaged stolen"`
	Note      string    `json:"note"`
}
