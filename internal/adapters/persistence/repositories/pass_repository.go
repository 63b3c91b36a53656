package repositories

import (
	"context"
	"time"

	"parkhub-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// passRepository implements PassRepository interface
type passRepository struct {
	db *gorm.DB
}

// NewPassRepository creates a new pass repository
func NewPassRepository(db *gorm.DB) PassRepository {
	return &passRepository{db: db}
}

// Create creates a new parking pass
func (r *passRepository) Create(ctx context.Context, pass *models.ParkingPass) error {
	return r.db.WithContext(ctx).Create(pass).Error
}

// HasActive reports whether the vehicle holds an unexpired pass
func (r *passRepository) HasActive(ctx context.Context, vehicleID uint, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ParkingPass{}).
		Where("vehicle_id = ? AND expiry_date > ?", vehicleID, now).
		Count(&count).Error
	return count > 0, err
}

// CountActive counts unexpired passes across all vehicles
func (r *passRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ParkingPass{}).
		Where("expiry_date > ?", now).
		Count(&count).Error
	return count, err
}

// List returns all passes with vehicle and owner, newest issue first
func (r *passRepository) List(ctx context.Context) ([]models.ParkingPass, error) {
	var passes []models.ParkingPass
	err := r.db.WithContext(ctx).
		Preload("Vehicle.Owner").
		Order("issue_date DESC").
		Find(&passes).Error
	return passes, err
}

// ListExpiringBetween returns passes with from < expiry_date <= to in
// insertion order
func (r *passRepository) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]models.ParkingPass, error) {
	var passes []models.ParkingPass
	err := r.db.WithContext(ctx).
		Preload("Vehicle.Owner").
		Where("expiry_date > ? AND expiry_date <= ?", from, to).
		Order("id ASC").
		Find(&passes).Error
	return passes, err
}

// ListActiveExpiredBefore returns still-flagged-active passes whose
// expiry date has passed, for the expiry sweep
func (r *passRepository) ListActiveExpiredBefore(ctx context.Context, now time.Time) ([]models.ParkingPass, error) {
	var passes []models.ParkingPass
	err := r.db.WithContext(ctx).
		Preload("Vehicle.Owner").
		Where("is_active = ? AND expiry_date < ?", true, now).
		Order("id ASC").
		Find(&passes).Error
	return passes, err
}

// Deactivate clears the is_active flag on a pass
func (r *passRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.ParkingPass{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
