package repositories

import (
	"context"
	"errors"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/core/domain"

	"gorm.io/gorm"
)

// vehicleRepository implements VehicleRepository interface
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create creates a new vehicle
func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

// GetByNumber gets a vehicle by exact plate number with its owner
// preloaded. The BINARY cast keeps the lookup case-sensitive on MySQL's
// default collation.
func (r *vehicleRepository) GetByNumber(ctx context.Context, number string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("BINARY vehicle_number = ?", number).
		First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// List returns all vehicles with owners, ordered by plate number
func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("vehicle_number ASC").
		Find(&vehicles).Error
	return vehicles, err
}
