package handlers

import (
	"errors"
	"strings"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/core/domain"
	"parkhub-backend/internal/core/services"
	"parkhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PassHandler handles pass issuance and listing endpoints
type PassHandler struct {
	parkingService *services.ParkingService
}

// NewPassHandler creates a new pass handler
func NewPassHandler(parkingService *services.ParkingService) *PassHandler {
	return &PassHandler{
		parkingService: parkingService,
	}
}

// ============================================================
// POST /api/create-pass/
// ============================================================

// CreatePass issues a new parking pass
// @Summary Create pass
// @Description Issue a parking pass for a vehicle, creating the owner and vehicle if unknown
// @Tags Passes
// @Accept json
// @Produce json
// @Param body body services.CreatePassInput true "Pass data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /create-pass/ [post]
func (h *PassHandler) CreatePass(c *fiber.Ctx) error {
	var input services.CreatePassInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.OwnerName = strings.TrimSpace(input.OwnerName)
	input.VehicleNumber = strings.TrimSpace(input.VehicleNumber)
	if input.OwnerName == "" || input.VehicleNumber == "" || input.VehicleType == "" || input.PassType == "" {
		return response.BadRequest(c, "owner_name, vehicle_number, vehicle_type and pass_type are required")
	}

	msg, err := h.parkingService.CreatePass(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateActivePass):
			return response.BadRequest(c, "This vehicle already has an active pass.")
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, "Invalid vehicle type or pass type")
		default:
			return response.InternalServerError(c, "Failed to create pass")
		}
	}

	return response.Success(c, msg)
}

// ============================================================
// GET /api/passes/
// ============================================================

// ListPasses returns all passes, newest issued first
// @Summary List passes
// @Description List parking passes with the vehicle and owner nested, newest issued first
// @Tags Passes
// @Accept json
// @Produce json
// @Success 200 {array} models.PassResponse
// @Router /passes/ [get]
func (h *PassHandler) ListPasses(c *fiber.Ctx) error {
	passes, err := h.parkingService.ListPasses(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get passes")
	}

	result := make([]*models.PassResponse, 0, len(passes))
	for i := range passes {
		result = append(result, passes[i].ToResponse())
	}
	return c.JSON(result)
}
