package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/odanga/stockledger-api/internal/application/service"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/presentation/http/dto/request"
	"github.com/odanga/stockledger-api/internal/presentation/http/dto/response"
)

// DamageHandler handles shrinkage HTTP requests
type DamageHandler struct {
	damageService *service.DamageService
}

// NewDamageHandler creates a new damage handler
func NewDamageHandler(damageService *service.DamageService) *DamageHandler {
	return &DamageHandler{damageService: damageService}
}

// List handles listing the shrinkage log
func (h *DamageHandler) List(c *gin.Context) {
	records, err := h.damageService.ListDamages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Damage records retrieved successfully", records)
}

// Create handles recording a damaged or stolen stock event
func (h *DamageHandler) Create(c *gin.Context) {
	var req request.RecordDamageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record, err := h.damageService.RecordDamage(c.Request.Context(), &service.RecordDamageInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Type:      enum.DamageType(req.Type),
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Damage recorded successfully", record)
}
