package repositories

import (
	"context"
	"time"

	"parkhub-backend/internal/adapters/persistence/models"
)

// Repositories return domain.ErrNotFound for missing rows so services
// never depend on the storage driver. The GORM implementations and the
// in-memory store are interchangeable behind these interfaces.

// OwnerRepository defines owner repository interface
type OwnerRepository interface {
	Create(ctx context.Context, owner *models.Owner) error
	GetByName(ctx context.Context, name string) (*models.Owner, error) // case-insensitive
	List(ctx context.Context) ([]models.Owner, error)
}

// VehicleRepository defines vehicle repository interface
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByNumber(ctx context.Context, number string) (*models.Vehicle, error) // exact match
	List(ctx context.Context) ([]models.Vehicle, error)
}

// PassRepository defines parking pass repository interface
type PassRepository interface {
	Create(ctx context.Context, pass *models.ParkingPass) error
	HasActive(ctx context.Context, vehicleID uint, now time.Time) (bool, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
	List(ctx context.Context) ([]models.ParkingPass, error)
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]models.ParkingPass, error)
	ListActiveExpiredBefore(ctx context.Context, now time.Time) ([]models.ParkingPass, error)
	Deactivate(ctx context.Context, id uint) error
}

// TransactionRepository defines parking transaction repository interface
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.ParkingTransaction) error
	Update(ctx context.Context, tx *models.ParkingTransaction) error
	GetOpenByVehicle(ctx context.Context, vehicleID uint) (*models.ParkingTransaction, error)
	List(ctx context.Context, limit int) ([]models.ParkingTransaction, error)
	CountOpen(ctx context.Context) (int64, error)
	CountOpenBikes(ctx context.Context) (int64, error)
	CountDistinctVehiclesOnDate(ctx context.Context, day time.Time) (int64, error)
	SumFeesOnDate(ctx context.Context, day time.Time) (float64, error)
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ExistsForPass(ctx context.Context, passID uint, messagePrefix string) (bool, error)
	List(ctx context.Context, limit int) ([]models.Notification, error)
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}
