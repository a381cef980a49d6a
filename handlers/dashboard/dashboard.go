package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/univault/univault-api/services"
	"github.com/univault/univault-api/utils/response"
)

// DashboardHandler serves the authenticated dashboard views.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard handles GET /api/v1/dashboard.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	overview, err := h.service.Overview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch dashboard data")
	}
	return response.Success(c, overview)
}

// GetStats handles GET /api/v1/dashboard/stats.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch stats")
	}
	return response.Success(c, stats)
}

// GetActivity handles GET /api/v1/dashboard/activity.
func (h *DashboardHandler) GetActivity(c *fiber.Ctx) error {
	activity, err := h.service.Activity(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch activity")
	}
	return response.Success(c, activity)
}
