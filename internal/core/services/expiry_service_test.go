package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/adapters/persistence/repositories"
	"parkhub-backend/internal/core/domain"
)

func newTestExpiryService(now time.Time) (*ExpiryService, *ParkingService, *repositories.MemoryStore) {
	store := repositories.NewMemoryStore()
	parking := NewParkingService(store.Owners(), store.Vehicles(), store.Passes(), store.Transactions())
	parking.now = func() time.Time { return now }
	expiry := NewExpiryService(store.Passes(), store.Notifications(), store.RefreshTokens())
	expiry.now = func() time.Time { return now }
	return expiry, parking, store
}

func TestRunSweepDeactivatesExpiredPasses(t *testing.T) {
	issued := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	expiry, parking, store := newTestExpiryService(issued)
	ctx := context.Background()

	if _, err := parking.CreatePass(ctx, &CreatePassInput{
		OwnerName: "Alice", VehicleNumber: "V1", VehicleType: "car", PassType: "daily",
	}); err != nil {
		t.Fatalf("CreatePass: %v", err)
	}

	// Two days later the daily pass has lapsed
	expiry.now = func() time.Time { return issued.AddDate(0, 0, 2) }
	if err := expiry.RunSweep(ctx); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	passes, _ := store.Passes().List(ctx)
	if passes[0].IsActive {
		t.Fatalf("expected pass deactivated by sweep")
	}

	notifications, _ := store.Notifications().List(ctx, 0)
	if len(notifications) != 1 {
		t.Fatalf("expected 1 expiry notification, got %d", len(notifications))
	}
	if !strings.HasPrefix(notifications[0].Message, "Your parking pass") {
		t.Fatalf("unexpected message: %q", notifications[0].Message)
	}
	if !strings.Contains(notifications[0].Message, "V1") {
		t.Fatalf("expected vehicle number in message: %q", notifications[0].Message)
	}
}

func TestRunSweepWritesReminders(t *testing.T) {
	issued := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	expiry, parking, store := newTestExpiryService(issued)
	ctx := context.Background()

	// Weekly pass expires June 8; on June 6 that is inside the 3-day
	// reminder window
	if _, err := parking.CreatePass(ctx, &CreatePassInput{
		OwnerName: "Alice", VehicleNumber: "V1", VehicleType: "car", PassType: "weekly",
	}); err != nil {
		t.Fatalf("CreatePass: %v", err)
	}

	expiry.now = func() time.Time { return issued.AddDate(0, 0, 5) }
	if err := expiry.RunSweep(ctx); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	passes, _ := store.Passes().List(ctx)
	if !passes[0].IsActive {
		t.Fatalf("pass should stay active before expiry")
	}

	notifications, _ := store.Notifications().List(ctx, 0)
	if len(notifications) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(notifications))
	}
	if !strings.HasPrefix(notifications[0].Message, "Reminder:") {
		t.Fatalf("unexpected message: %q", notifications[0].Message)
	}
}

func TestRunSweepIdempotent(t *testing.T) {
	issued := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	expiry, parking, store := newTestExpiryService(issued)
	ctx := context.Background()

	if _, err := parking.CreatePass(ctx, &CreatePassInput{
		OwnerName: "Alice", VehicleNumber: "V1", VehicleType: "car", PassType: "daily",
	}); err != nil {
		t.Fatalf("CreatePass: %v", err)
	}

	expiry.now = func() time.Time { return issued.AddDate(0, 0, 2) }
	for i := 0; i < 3; i++ {
		if err := expiry.RunSweep(ctx); err != nil {
			t.Fatalf("RunSweep #%d: %v", i+1, err)
		}
	}

	notifications, _ := store.Notifications().List(ctx, 0)
	if len(notifications) != 1 {
		t.Fatalf("sweep not idempotent: %d notifications", len(notifications))
	}
}

func TestRunSweepOutsideReminderWindow(t *testing.T) {
	issued := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	expiry, parking, store := newTestExpiryService(issued)
	ctx := context.Background()

	// Monthly pass expires July 1; on June 2 nothing is due
	if _, err := parking.CreatePass(ctx, &CreatePassInput{
		OwnerName: "Alice", VehicleNumber: "V1", VehicleType: "car", PassType: "monthly",
	}); err != nil {
		t.Fatalf("CreatePass: %v", err)
	}

	expiry.now = func() time.Time { return issued.AddDate(0, 0, 1) }
	if err := expiry.RunSweep(ctx); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	notifications, _ := store.Notifications().List(ctx, 0)
	if len(notifications) != 0 {
		t.Fatalf("expected no notifications, got %d", len(notifications))
	}
}

func TestRunSweepDeletesExpiredRefreshTokens(t *testing.T) {
	issued := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	expiry, _, store := newTestExpiryService(issued)
	ctx := context.Background()

	tokens := store.RefreshTokens()
	if err := tokens.Create(ctx, &models.RefreshToken{
		UserID: 1, TokenHash: "stale", ExpiresAt: time.Now().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("Create stale token: %v", err)
	}
	if err := tokens.Create(ctx, &models.RefreshToken{
		UserID: 1, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour),
	}); err != nil {
		t.Fatalf("Create live token: %v", err)
	}

	if err := expiry.RunSweep(ctx); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	if _, err := tokens.GetByTokenHash(ctx, "stale"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected stale token removed by sweep, got err %v", err)
	}
	if _, err := tokens.GetByTokenHash(ctx, "live"); err != nil {
		t.Fatalf("live token should survive the sweep: %v", err)
	}
}
