package repositories

import (
	"context"
	"errors"
	"time"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/core/domain"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new parking transaction
func (r *transactionRepository) Create(ctx context.Context, tx *models.ParkingTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// Update saves exit time and fees on an existing transaction
func (r *transactionRepository) Update(ctx context.Context, tx *models.ParkingTransaction) error {
	return r.db.WithContext(ctx).Model(&models.ParkingTransaction{}).
		Where("id = ?", tx.ID).
		Updates(map[string]interface{}{
			"exit_time": tx.ExitTime,
			"fees_paid": tx.FeesPaid,
		}).Error
}

// GetOpenByVehicle returns the open transaction for a vehicle, or
// domain.ErrNotFound when the vehicle is not inside
func (r *transactionRepository) GetOpenByVehicle(ctx context.Context, vehicleID uint) (*models.ParkingTransaction, error) {
	var tx models.ParkingTransaction
	err := r.db.WithContext(ctx).
		Preload("Vehicle.Owner").
		Where("vehicle_id = ? AND exit_time IS NULL", vehicleID).
		First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// List returns transactions newest entry first, limited when limit > 0
func (r *transactionRepository) List(ctx context.Context, limit int) ([]models.ParkingTransaction, error) {
	var txs []models.ParkingTransaction
	q := r.db.WithContext(ctx).
		Preload("Vehicle.Owner").
		Order("entry_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&txs).Error
	return txs, err
}

// CountOpen counts vehicles currently inside the lot
func (r *transactionRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ParkingTransaction{}).
		Where("exit_time IS NULL").
		Count(&count).Error
	return count, err
}

// CountOpenBikes counts open transactions for bike-class vehicles
func (r *transactionRepository) CountOpenBikes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ParkingTransaction{}).
		Joins("JOIN vehicles ON vehicles.id = parking_transactions.vehicle_id").
		Where("parking_transactions.exit_time IS NULL AND vehicles.vehicle_type = ?", string(domain.VehicleTypeBike)).
		Count(&count).Error
	return count, err
}

// CountDistinctVehiclesOnDate counts distinct plate numbers among
// transactions entered on the given local calendar day
func (r *transactionRepository) CountDistinctVehiclesOnDate(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ParkingTransaction{}).
		Joins("JOIN vehicles ON vehicles.id = parking_transactions.vehicle_id").
		Where("DATE(parking_transactions.entry_time) = ?", day.Format("2006-01-02")).
		Distinct("vehicles.vehicle_number").
		Count(&count).Error
	return count, err
}

// SumFeesOnDate sums fees over transactions entered on the given day,
// treating NULL fees as zero
func (r *transactionRepository) SumFeesOnDate(ctx context.Context, day time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.ParkingTransaction{}).
		Where("DATE(entry_time) = ?", day.Format("2006-01-02")).
		Select("COALESCE(SUM(fees_paid), 0)").
		Scan(&total).Error
	return total, err
}
