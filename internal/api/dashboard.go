package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/internal/platform"
)

// DashboardGateway is the slice of the record gateway the dashboard needs.
type DashboardGateway interface {
	GetDashboardStats(ctx context.Context) (platform.DashboardStats, error)
	GetRegistrationStats(ctx context.Context) ([]platform.RegistrationPoint, error)
}

// DashboardHandler serves the landing-view statistics.
type DashboardHandler struct {
	gw DashboardGateway
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(gw DashboardGateway) *DashboardHandler {
	return &DashboardHandler{gw: gw}
}

// RegisterRoutes registers the dashboard routes.
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetStats)
		dashboard.GET("/user-stats", h.GetRegistrationStats)
	}
}

// GetStats returns the aggregate counts for the landing view.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.gw.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// GetRegistrationStats returns the registration time series for the chart.
func (h *DashboardHandler) GetRegistrationStats(c *gin.Context) {
	points, err := h.gw.GetRegistrationStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": points})
}
