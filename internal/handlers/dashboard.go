package handlers

import (
	"github.com/gin-gonic/gin"

	"carebridge-server/internal/store"
	"carebridge-server/internal/utils"
)

// DashboardHandler serves the summary widgets on the landing page.
type DashboardHandler struct {
	Store *store.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{Store: s}
}

// GetStats handles fetching the dashboard counters. They are computed
// from the full collections regardless of any active search or filter.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	utils.Success(c, "Stats fetched successfully", h.Store.Stats())
}

// GetHighRiskPatients handles listing patients needing triage attention.
func (h *DashboardHandler) GetHighRiskPatients(c *gin.Context) {
	utils.Success(c, "High risk patients fetched successfully", h.Store.HighRiskPatients())
}

// GetAvailableDoctors handles listing doctors currently available.
func (h *DashboardHandler) GetAvailableDoctors(c *gin.Context) {
	utils.Success(c, "Available doctors fetched successfully", h.Store.AvailableDoctors())
}
