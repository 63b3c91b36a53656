package handlers

import (
	"errors"
	"strconv"
	"strings"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/core/domain"
	"parkhub-backend/internal/core/services"
	"parkhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ParkingHandler handles gate entry/exit and transaction endpoints
type ParkingHandler struct {
	parkingService *services.ParkingService
}

// NewParkingHandler creates a new parking handler
func NewParkingHandler(parkingService *services.ParkingService) *ParkingHandler {
	return &ParkingHandler{
		parkingService: parkingService,
	}
}

// ============================================================
// POST /api/vehicle-entry/
// ============================================================

// VehicleEntry records a vehicle entering the lot
// @Summary Vehicle entry
// @Description Record a vehicle entering the lot, creating the vehicle under the Guest owner if unknown
// @Tags Parking
// @Accept json
// @Produce json
// @Param body body services.VehicleEntryInput true "Entry data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /vehicle-entry/ [post]
func (h *ParkingHandler) VehicleEntry(c *fiber.Ctx) error {
	var input services.VehicleEntryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.VehicleNumber = strings.TrimSpace(input.VehicleNumber)
	if input.VehicleNumber == "" || input.VehicleType == "" {
		return response.BadRequest(c, "vehicle_number and vehicle_type are required")
	}

	msg, err := h.parkingService.RecordEntry(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyParked):
			return response.BadRequest(c, "Vehicle is already parked.")
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, "Invalid vehicle type")
		default:
			return response.InternalServerError(c, "Failed to record entry")
		}
	}

	return response.Success(c, msg)
}

// ============================================================
// POST /api/vehicle-exit/
// ============================================================

// VehicleExit records a vehicle leaving the lot
// @Summary Vehicle exit
// @Description Record a vehicle leaving the lot and compute fees unless an active pass covers the stay
// @Tags Parking
// @Accept json
// @Produce json
// @Param body body services.VehicleExitInput true "Exit data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vehicle-exit/ [post]
func (h *ParkingHandler) VehicleExit(c *fiber.Ctx) error {
	var input services.VehicleExitInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.VehicleNumber = strings.TrimSpace(input.VehicleNumber)
	if input.VehicleNumber == "" {
		return response.BadRequest(c, "vehicle_number is required")
	}

	msg, err := h.parkingService.RecordExit(c.Context(), input.VehicleNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveEntry):
			return response.NotFound(c, "No active parking entry found for this vehicle.")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Vehicle not found.")
		default:
			return response.InternalServerError(c, "Failed to record exit")
		}
	}

	return response.Success(c, msg)
}

// ============================================================
// GET /api/transactions/?limit=N
// ============================================================

// ListTransactions returns parking transactions, newest entry first
// @Summary List transactions
// @Description List parking transactions with the vehicle nested, newest entry first
// @Tags Parking
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of transactions"
// @Success 200 {array} models.TransactionResponse
// @Router /transactions/ [get]
func (h *ParkingHandler) ListTransactions(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "Invalid limit parameter")
		}
		limit = parsed
	}

	transactions, err := h.parkingService.ListTransactions(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to get transactions")
	}

	result := make([]*models.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		result = append(result, transactions[i].ToResponse())
	}
	return c.JSON(result)
}
