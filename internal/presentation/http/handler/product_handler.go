package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/odanga/stockledger-api/internal/application/service"
	"github.com/odanga/stockledger-api/internal/domain/enum"
	"github.com/odanga/stockledger-api/internal/presentation/http/dto/request"
	"github.com/odanga/stockledger-api/internal/presentation/http/dto/response"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	catalogService *service.CatalogService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// List handles listing catalog products
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid filter parameters")
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), req.Search, req.LowStock)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// Create handles adding a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.catalogService.AddProduct(c.Request.Context(), &service.AddProductInput{
		Name:          req.Name,
		Category:      enum.Category(req.Category),
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product added successfully", product)
}

// Update handles an explicit catalog edit
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateProductInput{
		ID:            id,
		Name:          req.Name,
		UnitPrice:     req.UnitPrice,
		StockQuantity: req.StockQuantity,
	}
	if req.Category != nil {
		category := enum.Category(*req.Category)
		input.Category = &category
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if product == nil {
		// unknown id is ignored, not an error
		response.OK(c, "No matching product", nil)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles removing a product. Removing an unknown id is a no-op.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	if err := h.catalogService.RemoveProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product removed", nil)
}
