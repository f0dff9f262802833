package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recruit-ops/internal/service"
)

// DashboardHandler serves the dashboard widgets.
type DashboardHandler struct {
	hr *service.HROperationsService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(hr *service.HROperationsService) *DashboardHandler {
	return &DashboardHandler{hr: hr}
}

// Stats GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.hr.DashboardStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// Activity GET /api/dashboard/activity?limit=N.
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	items, err := h.hr.RecentActivity(c.UserContext(), parseInt(c.Query("limit"), 0))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

// Overview GET /api/dashboard/overview.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.hr.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overview})
}
