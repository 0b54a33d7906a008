package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/odanga/stockledger-api/internal/application/service"
	"github.com/odanga/stockledger-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the derived analytics view
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats recomputes every dashboard figure from the current ledger state
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
