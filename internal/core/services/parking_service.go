package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/adapters/persistence/repositories"
	"parkhub-backend/internal/core/domain"
)

// ParkingService handles pass issuance and the vehicle entry/exit
// lifecycle. Mutations are serialized per vehicle number so the
// duplicate-pass and already-parked guards stay race-free under
// concurrent requests; every guard runs before any write, so a failed
// call leaves the store unchanged.
type ParkingService struct {
	ownerRepo   repositories.OwnerRepository
	vehicleRepo repositories.VehicleRepository
	passRepo    repositories.PassRepository
	txRepo      repositories.TransactionRepository

	locksMu      sync.Mutex
	vehicleLocks map[string]*sync.Mutex

	now func() time.Time
}

// NewParkingService creates a new parking service
func NewParkingService(
	ownerRepo repositories.OwnerRepository,
	vehicleRepo repositories.VehicleRepository,
	passRepo repositories.PassRepository,
	txRepo repositories.TransactionRepository,
) *ParkingService {
	return &ParkingService{
		ownerRepo:    ownerRepo,
		vehicleRepo:  vehicleRepo,
		passRepo:     passRepo,
		txRepo:       txRepo,
		vehicleLocks: make(map[string]*sync.Mutex),
		now:          time.Now,
	}
}

// lockVehicle acquires the mutation lock for a plate number and returns
// its unlock function
func (s *ParkingService) lockVehicle(number string) func() {
	s.locksMu.Lock()
	mu, ok := s.vehicleLocks[number]
	if !ok {
		mu = &sync.Mutex{}
		s.vehicleLocks[number] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// CreatePassInput represents a pass creation request
type CreatePassInput struct {
	OwnerName     string `json:"owner_name" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	VehicleType   string `json:"vehicle_type" validate:"required"`
	PassType      string `json:"pass_type" validate:"required"`
}

// VehicleEntryInput represents a gate entry request
type VehicleEntryInput struct {
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	VehicleType   string `json:"vehicle_type" validate:"required"`
}

// VehicleExitInput represents a gate exit request
type VehicleExitInput struct {
	VehicleNumber string `json:"vehicle_number" validate:"required"`
}

// CreatePass issues a new pass, creating the owner and vehicle lazily.
// Fails with domain.ErrDuplicateActivePass when the vehicle already
// holds an unexpired pass.
func (s *ParkingService) CreatePass(ctx context.Context, input *CreatePassInput) (string, error) {
	if input.OwnerName == "" || input.VehicleNumber == "" {
		return "", domain.ErrValidation
	}
	vehicleType, err := domain.ParseVehicleType(input.VehicleType)
	if err != nil {
		return "", err
	}
	passType, err := domain.ParsePassType(input.PassType)
	if err != nil {
		return "", err
	}

	unlock := s.lockVehicle(input.VehicleNumber)
	defer unlock()

	owner, err := s.resolveOwner(ctx, input.OwnerName)
	if err != nil {
		return "", err
	}

	vehicle, err := s.resolveVehicle(ctx, input.VehicleNumber, vehicleType, owner)
	if err != nil {
		return "", err
	}

	now := s.now()
	hasActive, err := s.passRepo.HasActive(ctx, vehicle.ID, now)
	if err != nil {
		return "", err
	}
	if hasActive {
		return "", domain.ErrDuplicateActivePass
	}

	pass := &models.ParkingPass{
		VehicleID:  vehicle.ID,
		PassType:   string(passType),
		IssueDate:  now,
		ExpiryDate: domain.PassExpiry(now, passType),
		IsActive:   true,
	}
	if err := s.passRepo.Create(ctx, pass); err != nil {
		return "", err
	}

	log.Printf("✅ Pass #%d (%s) issued for %s, expires %s",
		pass.ID, pass.PassType, input.VehicleNumber, pass.ExpiryDate.Format("2006-01-02 15:04"))

	return fmt.Sprintf("Pass for %s created successfully!", input.VehicleNumber), nil
}

// RecordEntry opens a transaction for a vehicle at the gate. New
// vehicles are registered under the shared Guest owner. Fails with
// domain.ErrAlreadyParked when an open transaction already exists.
func (s *ParkingService) RecordEntry(ctx context.Context, input *VehicleEntryInput) (string, error) {
	if input.VehicleNumber == "" {
		return "", domain.ErrValidation
	}
	vehicleType, err := domain.ParseVehicleType(input.VehicleType)
	if err != nil {
		return "", err
	}

	unlock := s.lockVehicle(input.VehicleNumber)
	defer unlock()

	vehicle, err := s.vehicleRepo.GetByNumber(ctx, input.VehicleNumber)
	if errors.Is(err, domain.ErrNotFound) {
		guest, gerr := s.resolveOwner(ctx, domain.GuestOwnerName)
		if gerr != nil {
			return "", gerr
		}
		vehicle, err = s.resolveVehicle(ctx, input.VehicleNumber, vehicleType, guest)
	}
	if err != nil {
		return "", err
	}

	if _, err := s.txRepo.GetOpenByVehicle(ctx, vehicle.ID); err == nil {
		return "", domain.ErrAlreadyParked
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	tx := &models.ParkingTransaction{
		VehicleID: vehicle.ID,
		EntryTime: s.now(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return "", err
	}

	log.Printf("✅ Vehicle %s entered (transaction #%d)", input.VehicleNumber, tx.ID)

	return fmt.Sprintf("Vehicle %s entered.", input.VehicleNumber), nil
}

// RecordExit closes the open transaction for a vehicle. A stay covered
// by an active pass leaves fees unset and the message omits them;
// otherwise the fee is charged pro rata with a minimum one-hour floor.
func (s *ParkingService) RecordExit(ctx context.Context, vehicleNumber string) (string, error) {
	if vehicleNumber == "" {
		return "", domain.ErrValidation
	}

	unlock := s.lockVehicle(vehicleNumber)
	defer unlock()

	vehicle, err := s.vehicleRepo.GetByNumber(ctx, vehicleNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNoActiveEntry
		}
		return "", err
	}

	tx, err := s.txRepo.GetOpenByVehicle(ctx, vehicle.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNoActiveEntry
		}
		return "", err
	}

	now := s.now()
	exitTime := now
	tx.ExitTime = &exitTime

	hasActive, err := s.passRepo.HasActive(ctx, vehicle.ID, now)
	if err != nil {
		return "", err
	}

	message := fmt.Sprintf("Vehicle %s exited.", vehicleNumber)
	if !hasActive {
		fee := domain.ParkingFee(tx.EntryTime, exitTime, domain.VehicleType(vehicle.VehicleType))
		tx.FeesPaid = &fee
		message += fmt.Sprintf(" Fees: $%.2f", fee)
	}

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return "", err
	}

	log.Printf("✅ Vehicle %s exited (transaction #%d)", vehicleNumber, tx.ID)

	return message, nil
}

// ListTransactions returns transactions newest first, all of them when
// limit <= 0
func (s *ParkingService) ListTransactions(ctx context.Context, limit int) ([]models.ParkingTransaction, error) {
	return s.txRepo.List(ctx, limit)
}

// ListPasses returns all passes, newest issue first
func (s *ParkingService) ListPasses(ctx context.Context) ([]models.ParkingPass, error) {
	return s.passRepo.List(ctx)
}

// ListOwners returns all owners
func (s *ParkingService) ListOwners(ctx context.Context) ([]models.Owner, error) {
	return s.ownerRepo.List(ctx)
}

// ListVehicles returns all registered vehicles
func (s *ParkingService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

// resolveOwner finds an owner by case-insensitive name or creates one
func (s *ParkingService) resolveOwner(ctx context.Context, name string) (*models.Owner, error) {
	owner, err := s.ownerRepo.GetByName(ctx, name)
	if err == nil {
		return owner, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	owner = &models.Owner{Name: name}
	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

// resolveVehicle finds a vehicle by exact plate number or creates one
// attached to the given owner
func (s *ParkingService) resolveVehicle(ctx context.Context, number string, vehicleType domain.VehicleType, owner *models.Owner) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByNumber(ctx, number)
	if err == nil {
		return vehicle, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	vehicle = &models.Vehicle{
		OwnerID:       owner.ID,
		VehicleNumber: number,
		VehicleType:   string(vehicleType),
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	vehicle.Owner = owner
	return vehicle, nil
}
