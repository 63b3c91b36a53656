package repositories

import (
	"context"

	"parkhub-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// notificationRepository implements NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create creates a new notification
func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ExistsForPass reports whether a notification whose message starts with
// the given prefix already exists for a pass. The sweep uses this to
// stay idempotent.
func (r *notificationRepository) ExistsForPass(ctx context.Context, passID uint, messagePrefix string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("pass_id = ? AND message LIKE ?", passID, messagePrefix+"%").
		Count(&count).Error
	return count > 0, err
}

// List returns notifications newest first, limited when limit > 0
func (r *notificationRepository) List(ctx context.Context, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	q := r.db.WithContext(ctx).
		Preload("Recipient").
		Preload("Pass.Vehicle").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&notifications).Error
	return notifications, err
}
