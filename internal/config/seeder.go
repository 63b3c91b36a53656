package config

import (
	"log"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/core/domain"
	"parkhub-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	if err := s.seedGuestOwner(); err != nil {
		log.Printf("⚠️ Guest owner seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	// Check if admin already exists
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "ADMIN").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@parkhub.local",
		Password: hashedPassword,
		Role:     "ADMIN",
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}

// seedGuestOwner ensures the fallback owner for walk-in vehicles exists
func (s *Seeder) seedGuestOwner() error {
	var count int64
	s.db.Model(&models.Owner{}).Where("LOWER(name) = LOWER(?)", domain.GuestOwnerName).Count(&count)
	if count > 0 {
		return nil
	}

	guest := &models.Owner{Name: domain.GuestOwnerName}
	if err := s.db.Create(guest).Error; err != nil {
		return err
	}

	log.Printf("✅ Guest owner created (id=%d)", guest.ID)
	return nil
}
