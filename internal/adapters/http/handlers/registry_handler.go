package handlers

import (
	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/core/services"
	"parkhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RegistryHandler handles owner, vehicle and notification listing
// endpoints
type RegistryHandler struct {
	parkingService *services.ParkingService
	expiryService  *services.ExpiryService
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(parkingService *services.ParkingService, expiryService *services.ExpiryService) *RegistryHandler {
	return &RegistryHandler{
		parkingService: parkingService,
		expiryService:  expiryService,
	}
}

// ============================================================
// GET /api/owners/
// ============================================================

// ListOwners returns all registered owners
// @Summary List owners
// @Description List all registered owners
// @Tags Registry
// @Accept json
// @Produce json
// @Success 200 {array} models.Owner
// @Router /owners/ [get]
func (h *RegistryHandler) ListOwners(c *fiber.Ctx) error {
	owners, err := h.parkingService.ListOwners(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get owners")
	}
	return c.JSON(owners)
}

// ============================================================
// GET /api/vehicles/
// ============================================================

// ListVehicles returns all registered vehicles with the owner nested
// @Summary List vehicles
// @Description List all registered vehicles with the owner nested
// @Tags Registry
// @Accept json
// @Produce json
// @Success 200 {array} models.VehicleResponse
// @Router /vehicles/ [get]
func (h *RegistryHandler) ListVehicles(c *fiber.Ctx) error {
	vehicles, err := h.parkingService.ListVehicles(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get vehicles")
	}

	result := make([]*models.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		result = append(result, vehicles[i].ToResponse())
	}
	return c.JSON(result)
}

// ============================================================
// GET /api/notifications/
// ============================================================

// ListNotifications returns expiry-sweep notifications, newest first
// @Summary List notifications
// @Description List pass expiry and reminder notifications, newest first
// @Tags Registry
// @Accept json
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications/ [get]
func (h *RegistryHandler) ListNotifications(c *fiber.Ctx) error {
	notifications, err := h.expiryService.ListNotifications(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get notifications")
	}
	return c.JSON(notifications)
}
