package handlers

import (
	"strconv"

	"parkhub-backend/internal/core/services"
	"parkhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// ============================================================
// GET /api/dashboard-stats/
// ============================================================

// GetStats returns today's lot statistics
// @Summary Dashboard stats
// @Description Get active pass count, vehicles today, earnings today and slot occupancy
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Router /dashboard-stats/ [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get dashboard stats")
	}
	return c.JSON(stats)
}

// ============================================================
// GET /api/expiry-notifications/?days=N
// ============================================================

// GetExpiryNotifications returns passes expiring within the window
// @Summary Expiry notifications
// @Description List active passes expiring within the window (default 7 days), soonest first
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param days query int false "Window in days (default 7)"
// @Success 200 {array} services.ExpiryNotification
// @Router /expiry-notifications/ [get]
func (h *DashboardHandler) GetExpiryNotifications(c *fiber.Ctx) error {
	windowDays := services.DefaultExpiryWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "Invalid days parameter")
		}
		windowDays = parsed
	}

	notifications, err := h.dashboardService.GetExpiryNotifications(c.Context(), windowDays)
	if err != nil {
		return response.InternalServerError(c, "Failed to get expiry notifications")
	}
	return c.JSON(notifications)
}

// ============================================================
// GET /api/slots/
// ============================================================

// GetSlots returns slot occupancy grouped by vehicle class
// @Summary Slot occupancy
// @Description Get occupied and available slot counts for cars and bikes
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} services.SlotsData
// @Router /slots/ [get]
func (h *DashboardHandler) GetSlots(c *fiber.Ctx) error {
	slots, err := h.dashboardService.GetSlotsData(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get slots data")
	}
	return c.JSON(slots)
}
