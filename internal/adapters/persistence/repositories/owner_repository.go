package repositories

import (
	"context"
	"errors"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/core/domain"

	"gorm.io/gorm"
)

// ownerRepository implements OwnerRepository interface
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

// Create creates a new owner
func (r *ownerRepository) Create(ctx context.Context, owner *models.Owner) error {
	return r.db.WithContext(ctx).Create(owner).Error
}

// GetByName gets an owner by case-insensitive name match
func (r *ownerRepository) GetByName(ctx context.Context, name string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &owner, nil
}

// List returns all owners ordered by name
func (r *ownerRepository) List(ctx context.Context) ([]models.Owner, error) {
	var owners []models.Owner
	err := r.db.WithContext(ctx).Order("name ASC").Find(&owners).Error
	return owners, err
}
