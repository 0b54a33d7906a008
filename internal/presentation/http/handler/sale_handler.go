package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odanga/stockledger-api/internal/application/service"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/presentation/http/dto/request"
	"github.com/odanga/stockledger-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sale ledger HTTP requests
type SaleHandler struct {
	saleService   *service.SaleService
	exportService *service.ExportService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, exportService *service.ExportService) *SaleHandler {
	return &SaleHandler{
		saleService:   saleService,
		exportService: exportService,
	}
}

// List handles querying the sale history. Unknown sort modes fall back to
// newest-first.
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	sort := enum.SaleSortMode(req.Sort)
	if !sort.Valid() {
		sort = enum.SortDateDesc
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), req.Search, sort)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved successfully", sales)
}

// Create handles processing a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		Items:             items,
		PaymentAmount:     req.PaymentAmount,
		AllowMissingPhone: req.AllowMissingPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Update handles a post-hoc edit of a settled sale. Stock is never touched.
func (h *SaleHandler) Update(c *gin.Context) {
	var req request.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), &service.UpdateSaleInput{
		ID:                c.Param("id"),
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		PaymentAmount:     req.PaymentAmount,
		ReceiptReceivedAt: req.ReceiptReceivedAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if sale == nil {
		response.OK(c, "No matching sale", nil)
		return
	}

	response.OK(c, "Sale updated successfully", sale)
}

// Delete handles removing a sale from the history. The stock deduction it
// made stays applied.
func (h *SaleHandler) Delete(c *gin.Context) {
	if err := h.saleService.DeleteSale(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted", nil)
}

// Export streams the full sale history as a CSV download
func (h *SaleHandler) Export(c *gin.Context) {
	filename, data, err := h.exportService.ExportSalesCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
