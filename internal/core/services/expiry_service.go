package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderWindowDays is how far ahead the sweep writes reminder
// notifications
const ReminderWindowDays = 3

// Notification message prefixes, also used as idempotency keys
const (
	expiredMessagePrefix  = "Your parking pass"
	reminderMessagePrefix = "Reminder:"
)

// ExpiryService runs the daily pass expiry sweep: it retires passes
// past their expiry date and writes one notification per pass, plus
// reminders for passes expiring soon. The sweep is idempotent — a pass
// is never notified twice.
type ExpiryService struct {
	passRepo  repositories.PassRepository
	notifRepo repositories.NotificationRepository
	tokenRepo repositories.RefreshTokenRepository
	cron      *cron.Cron

	now func() time.Time
}

// NewExpiryService creates a new expiry service
func NewExpiryService(
	passRepo repositories.PassRepository,
	notifRepo repositories.NotificationRepository,
	tokenRepo repositories.RefreshTokenRepository,
) *ExpiryService {
	return &ExpiryService{
		passRepo:  passRepo,
		notifRepo: notifRepo,
		tokenRepo: tokenRepo,
		cron:      cron.New(),
		now:       time.Now,
	}
}

// Start schedules the sweep at 08:30 daily and runs one sweep
// immediately to catch up after downtime
func (s *ExpiryService) Start() {
	s.cron.AddFunc("30 8 * * *", func() {
		if err := s.RunSweep(context.Background()); err != nil {
			log.Printf("❌ Expiry sweep failed: %v", err)
		}
	})
	s.cron.Start()

	go func() {
		if err := s.RunSweep(context.Background()); err != nil {
			log.Printf("❌ Initial expiry sweep failed: %v", err)
		}
	}()

	log.Println("🚀 ExpiryService started (sweep at 08:30 daily)")
}

// Stop stops the cron scheduler
func (s *ExpiryService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ExpiryService stopped")
}

// RunSweep deactivates expired passes and writes expiry and reminder
// notifications
func (s *ExpiryService) RunSweep(ctx context.Context) error {
	now := s.now()
	created := 0

	expired, err := s.passRepo.ListActiveExpiredBefore(ctx, now)
	if err != nil {
		return err
	}
	for i := range expired {
		pass := &expired[i]
		if err := s.passRepo.Deactivate(ctx, pass.ID); err != nil {
			return err
		}

		ok, err := s.notify(ctx, pass, expiredMessagePrefix,
			fmt.Sprintf("%s for vehicle %s expired on %s.",
				expiredMessagePrefix, vehicleNumberOf(pass), pass.ExpiryDate.Format("2006-01-02 15:04")))
		if err != nil {
			return err
		}
		if ok {
			created++
		}
	}

	upcoming, err := s.passRepo.ListExpiringBetween(ctx, now, now.AddDate(0, 0, ReminderWindowDays))
	if err != nil {
		return err
	}
	for i := range upcoming {
		pass := &upcoming[i]
		ok, err := s.notify(ctx, pass, reminderMessagePrefix,
			fmt.Sprintf("%s Your parking pass for vehicle %s will expire on %s.",
				reminderMessagePrefix, vehicleNumberOf(pass), pass.ExpiryDate.Format("2006-01-02 15:04")))
		if err != nil {
			return err
		}
		if ok {
			created++
		}
	}

	// Housekeeping: refresh tokens past their expiry are dead weight
	if err := s.tokenRepo.DeleteExpired(ctx); err != nil {
		return err
	}

	log.Printf("✅ Expiry sweep done: %d expired, %d upcoming, %d notifications created",
		len(expired), len(upcoming), created)
	return nil
}

// ListNotifications returns sweep notifications, newest first
func (s *ExpiryService) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return s.notifRepo.List(ctx, 0)
}

// notify writes a notification for a pass unless one with the same
// prefix already exists. Returns whether a notification was created.
func (s *ExpiryService) notify(ctx context.Context, pass *models.ParkingPass, prefix, message string) (bool, error) {
	exists, err := s.notifRepo.ExistsForPass(ctx, pass.ID, prefix)
	if err != nil || exists {
		return false, err
	}

	var recipientID uint
	if pass.Vehicle != nil {
		recipientID = pass.Vehicle.OwnerID
	}
	return true, s.notifRepo.Create(ctx, &models.Notification{
		RecipientID: recipientID,
		PassID:      pass.ID,
		Message:     message,
		Type:        models.NotificationPassExpiry,
	})
}

func vehicleNumberOf(pass *models.ParkingPass) string {
	if pass.Vehicle != nil {
		return pass.Vehicle.VehicleNumber
	}
	return "N/A"
}
