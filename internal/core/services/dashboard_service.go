package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"parkhub-backend/internal/adapters/persistence/repositories"
	"parkhub-backend/internal/config"
	"parkhub-backend/internal/core/domain"
)

// DefaultExpiryWindowDays is the lookahead window for expiry
// notifications
const DefaultExpiryWindowDays = 7

// DashboardService handles the read-only dashboard aggregations. The
// results depend only on the store snapshot and the clock, so repeated
// calls with no intervening mutation return identical data.
type DashboardService struct {
	passRepo repositories.PassRepository
	txRepo   repositories.TransactionRepository
	slots    config.SlotsConfig

	now func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	passRepo repositories.PassRepository,
	txRepo repositories.TransactionRepository,
	slots config.SlotsConfig,
) *DashboardService {
	return &DashboardService{
		passRepo: passRepo,
		txRepo:   txRepo,
		slots:    slots,
		now:      time.Now,
	}
}

// DashboardStats represents the dashboard summary tiles
type DashboardStats struct {
	ActivePassesCount int64   `json:"active_passes_count"`
	VehiclesToday     int64   `json:"vehicles_today"`
	EarningsToday     float64 `json:"earnings_today"`
	SlotsFilled       string  `json:"slots_filled"`
}

// GetStats returns the dashboard summary: unexpired pass count, distinct
// vehicles and earnings over today's entries, and occupancy formatted
// against the configured total capacity.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := s.now()

	activePasses, err := s.passRepo.CountActive(ctx, now)
	if err != nil {
		return nil, err
	}
	vehiclesToday, err := s.txRepo.CountDistinctVehiclesOnDate(ctx, now)
	if err != nil {
		return nil, err
	}
	earnings, err := s.txRepo.SumFeesOnDate(ctx, now)
	if err != nil {
		return nil, err
	}
	occupied, err := s.txRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ActivePassesCount: activePasses,
		VehiclesToday:     vehiclesToday,
		EarningsToday:     math.Round(earnings*100) / 100,
		SlotsFilled:       formatSlotsFilled(occupied, s.slots.CarTotal+s.slots.BikeTotal),
	}, nil
}

// ExpiryNotification represents one pass nearing expiry
type ExpiryNotification struct {
	ID            uint      `json:"id"`
	OwnerName     string    `json:"owner_name"`
	VehicleNumber string    `json:"vehicle_number"`
	PassType      string    `json:"pass_type"`
	ExpiryDate    time.Time `json:"expiry_date"`
	DaysLeft      int       `json:"days_left"`
}

// GetExpiryNotifications returns passes expiring within windowDays,
// soonest first. Fractional days round up, so a pass expiring in 30
// minutes reports 1 day left.
func (s *DashboardService) GetExpiryNotifications(ctx context.Context, windowDays int) ([]ExpiryNotification, error) {
	if windowDays <= 0 {
		windowDays = DefaultExpiryWindowDays
	}

	now := s.now()
	passes, err := s.passRepo.ListExpiringBetween(ctx, now, now.AddDate(0, 0, windowDays))
	if err != nil {
		return nil, err
	}

	notifications := make([]ExpiryNotification, 0, len(passes))
	for _, pass := range passes {
		n := ExpiryNotification{
			ID:         pass.ID,
			PassType:   pass.PassType,
			ExpiryDate: pass.ExpiryDate,
			DaysLeft:   domain.DaysLeft(now, pass.ExpiryDate),
		}
		if pass.Vehicle != nil {
			n.VehicleNumber = pass.Vehicle.VehicleNumber
			if pass.Vehicle.Owner != nil {
				n.OwnerName = pass.Vehicle.Owner.Name
			}
		}
		notifications = append(notifications, n)
	}

	// Stable: ties keep insertion order
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].DaysLeft < notifications[j].DaysLeft
	})

	return notifications, nil
}

// SlotPool represents one capacity pool
type SlotPool struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

// SlotsData represents current occupancy split by vehicle class
type SlotsData struct {
	CarsOccupied  int64    `json:"cars_occupied"`
	BikesOccupied int64    `json:"bikes_occupied"`
	Cars          SlotPool `json:"cars"`
	Bikes         SlotPool `json:"bikes"`
}

// GetSlotsData returns occupancy by class. Cars and "other" vehicles
// share the car pool; capacity comes from configuration, never from the
// data.
func (s *DashboardService) GetSlotsData(ctx context.Context) (*SlotsData, error) {
	open, err := s.txRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	bikes, err := s.txRepo.CountOpenBikes(ctx)
	if err != nil {
		return nil, err
	}
	cars := open - bikes

	return &SlotsData{
		CarsOccupied:  cars,
		BikesOccupied: bikes,
		Cars:          SlotPool{Total: s.slots.CarTotal, Available: s.slots.CarTotal - int(cars)},
		Bikes:         SlotPool{Total: s.slots.BikeTotal, Available: s.slots.BikeTotal - int(bikes)},
	}, nil
}

func formatSlotsFilled(occupied int64, total int) string {
	return fmt.Sprintf("%d / %d", occupied, total)
}
