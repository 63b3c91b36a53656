package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"parkhub-backend/internal/adapters/persistence/repositories"
	"parkhub-backend/internal/core/domain"
)

func newTestParkingService(now time.Time) (*ParkingService, *repositories.MemoryStore) {
	store := repositories.NewMemoryStore()
	svc := NewParkingService(store.Owners(), store.Vehicles(), store.Passes(), store.Transactions())
	svc.now = func() time.Time { return now }
	return svc, store
}

func TestCreatePass(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(now)
	ctx := context.Background()

	msg, err := svc.CreatePass(ctx, &CreatePassInput{
		OwnerName:     "Alice",
		VehicleNumber: "KA01AB1234",
		VehicleType:   "car",
		PassType:      "monthly",
	})
	if err != nil {
		t.Fatalf("CreatePass: %v", err)
	}
	if msg != "Pass for KA01AB1234 created successfully!" {
		t.Fatalf("unexpected message: %q", msg)
	}

	passes, err := store.Passes().List(ctx)
	if err != nil {
		t.Fatalf("List passes: %v", err)
	}
	if len(passes) != 1 {
		t.Fatalf("expected 1 pass, got %d", len(passes))
	}
	want := time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)
	if !passes[0].ExpiryDate.Equal(want) {
		t.Fatalf("expiry = %v, want %v", passes[0].ExpiryDate, want)
	}
	if !passes[0].IsActive {
		t.Fatalf("expected pass active")
	}
}

func TestCreatePassDuplicateActive(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(now)
	ctx := context.Background()

	input := &CreatePassInput{
		OwnerName:     "Alice",
		VehicleNumber: "KA01AB1234",
		VehicleType:   "car",
		PassType:      "weekly",
	}
	if _, err := svc.CreatePass(ctx, input); err != nil {
		t.Fatalf("first CreatePass: %v", err)
	}

	if _, err := svc.CreatePass(ctx, input); !errors.Is(err, domain.ErrDuplicateActivePass) {
		t.Fatalf("expected ErrDuplicateActivePass, got %v", err)
	}

	passes, _ := store.Passes().List(ctx)
	if len(passes) != 1 {
		t.Fatalf("expected store unchanged after failure, got %d passes", len(passes))
	}
}

func TestCreatePassAfterExpiryAllowed(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestParkingService(now)
	ctx := context.Background()

	input := &CreatePassInput{
		OwnerName:     "Alice",
		VehicleNumber: "KA01AB1234",
		VehicleType:   "car",
		PassType:      "daily",
	}
	if _, err := svc.CreatePass(ctx, input); err != nil {
		t.Fatalf("first CreatePass: %v", err)
	}

	// Two days later the daily pass has lapsed and a new one is allowed
	svc.now = func() time.Time { return now.AddDate(0, 0, 2) }
	if _, err := svc.CreatePass(ctx, input); err != nil {
		t.Fatalf("CreatePass after expiry: %v", err)
	}
}

func TestCreatePassOwnerCaseInsensitive(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(now)
	ctx := context.Background()

	if _, err := svc.CreatePass(ctx, &CreatePassInput{
		OwnerName: "Alice", VehicleNumber: "V1", VehicleType: "car", PassType: "daily",
	}); err != nil {
		t.Fatalf("CreatePass: %v", err)
	}
	if _, err := svc.CreatePass(ctx, &CreatePassInput{
		OwnerName: "ALICE", VehicleNumber: "V2", VehicleType: "bike", PassType: "daily",
	}); err != nil {
		t.Fatalf("CreatePass: %v", err)
	}

	owners, _ := store.Owners().List(ctx)
	if len(owners) != 1 {
		t.Fatalf("expected one owner for case-insensitive match, got %d", len(owners))
	}
}

func TestCreatePassValidation(t *testing.T) {
	svc, _ := newTestParkingService(time.Now())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreatePassInput
	}{
		{"missing owner", CreatePassInput{VehicleNumber: "V1", VehicleType: "car", PassType: "daily"}},
		{"missing vehicle", CreatePassInput{OwnerName: "A", VehicleType: "car", PassType: "daily"}},
		{"bad vehicle type", CreatePassInput{OwnerName: "A", VehicleNumber: "V1", VehicleType: "truck", PassType: "daily"}},
		{"bad pass type", CreatePassInput{OwnerName: "A", VehicleNumber: "V1", VehicleType: "car", PassType: "hourly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreatePass(ctx, &tt.input); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRecordEntryRegistersGuestVehicle(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(now)
	ctx := context.Background()

	msg, err := svc.RecordEntry(ctx, &VehicleEntryInput{VehicleNumber: "MH12CD5678", VehicleType: "bike"})
	if err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}
	if msg != "Vehicle MH12CD5678 entered." {
		t.Fatalf("unexpected message: %q", msg)
	}

	vehicle, err := store.Vehicles().GetByNumber(ctx, "MH12CD5678")
	if err != nil {
		t.Fatalf("GetByNumber: %v", err)
	}
	if vehicle.Owner == nil || vehicle.Owner.Name != domain.GuestOwnerName {
		t.Fatalf("expected Guest owner, got %+v", vehicle.Owner)
	}
}

func TestRecordEntryAlreadyParked(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(now)
	ctx := context.Background()

	input := &VehicleEntryInput{VehicleNumber: "V1", VehicleType: "car"}
	if _, err := svc.RecordEntry(ctx, input); err != nil {
		t.Fatalf("first RecordEntry: %v", err)
	}

	if _, err := svc.RecordEntry(ctx, input); !errors.Is(err, domain.ErrAlreadyParked) {
		t.Fatalf("expected ErrAlreadyParked, got %v", err)
	}

	txs, _ := store.Transactions().List(ctx, 0)
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction after rejected double entry, got %d", len(txs))
	}
}

func TestRecordExitComputesFee(t *testing.T) {
	entry := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(entry)
	ctx := context.Background()

	if _, err := svc.RecordEntry(ctx, &VehicleEntryInput{VehicleNumber: "V1", VehicleType: "car"}); err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}

	// 150 minutes at 5.00/h = 12.50
	svc.now = func() time.Time { return entry.Add(150 * time.Minute) }
	msg, err := svc.RecordExit(ctx, "V1")
	if err != nil {
		t.Fatalf("RecordExit: %v", err)
	}
	if msg != "Vehicle V1 exited. Fees: $12.50" {
		t.Fatalf("unexpected message: %q", msg)
	}

	txs, _ := store.Transactions().List(ctx, 0)
	if len(txs) != 1 || txs[0].FeesPaid == nil || *txs[0].FeesPaid != 12.50 {
		t.Fatalf("unexpected transaction state: %+v", txs)
	}
	if txs[0].ExitTime == nil {
		t.Fatalf("expected exit time set")
	}
}

func TestRecordExitMinimumHourFloor(t *testing.T) {
	entry := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(entry)
	ctx := context.Background()

	if _, err := svc.RecordEntry(ctx, &VehicleEntryInput{VehicleNumber: "V1", VehicleType: "car"}); err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}

	svc.now = func() time.Time { return entry.Add(30 * time.Minute) }
	if _, err := svc.RecordExit(ctx, "V1"); err != nil {
		t.Fatalf("RecordExit: %v", err)
	}

	txs, _ := store.Transactions().List(ctx, 0)
	if txs[0].FeesPaid == nil || *txs[0].FeesPaid != 5.00 {
		t.Fatalf("expected minimum-hour fee 5.00, got %+v", txs[0].FeesPaid)
	}
}

func TestRecordExitCoveredByPass(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(now)
	ctx := context.Background()

	if _, err := svc.CreatePass(ctx, &CreatePassInput{
		OwnerName: "Alice", VehicleNumber: "V1", VehicleType: "car", PassType: "monthly",
	}); err != nil {
		t.Fatalf("CreatePass: %v", err)
	}
	if _, err := svc.RecordEntry(ctx, &VehicleEntryInput{VehicleNumber: "V1", VehicleType: "car"}); err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}

	svc.now = func() time.Time { return now.Add(5 * time.Hour) }
	msg, err := svc.RecordExit(ctx, "V1")
	if err != nil {
		t.Fatalf("RecordExit: %v", err)
	}
	if strings.Contains(msg, "Fees") {
		t.Fatalf("expected no fees in message for pass-covered stay: %q", msg)
	}

	txs, _ := store.Transactions().List(ctx, 0)
	if txs[0].FeesPaid != nil {
		t.Fatalf("expected nil fees for pass-covered stay, got %v", *txs[0].FeesPaid)
	}
}

func TestRecordExitNoActiveEntry(t *testing.T) {
	svc, _ := newTestParkingService(time.Now())
	ctx := context.Background()

	// Unknown vehicle
	if _, err := svc.RecordExit(ctx, "GHOST"); !errors.Is(err, domain.ErrNoActiveEntry) {
		t.Fatalf("expected ErrNoActiveEntry for unknown vehicle, got %v", err)
	}

	// Known vehicle already exited
	if _, err := svc.RecordEntry(ctx, &VehicleEntryInput{VehicleNumber: "V1", VehicleType: "car"}); err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}
	if _, err := svc.RecordExit(ctx, "V1"); err != nil {
		t.Fatalf("RecordExit: %v", err)
	}
	if _, err := svc.RecordExit(ctx, "V1"); !errors.Is(err, domain.ErrNoActiveEntry) {
		t.Fatalf("expected ErrNoActiveEntry for second exit, got %v", err)
	}
}

func TestVehicleNumberCaseSensitive(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, store := newTestParkingService(now)
	ctx := context.Background()

	if _, err := svc.RecordEntry(ctx, &VehicleEntryInput{VehicleNumber: "ka01", VehicleType: "car"}); err != nil {
		t.Fatalf("RecordEntry: %v", err)
	}
	// Different case is a different vehicle
	if _, err := svc.RecordEntry(ctx, &VehicleEntryInput{VehicleNumber: "KA01", VehicleType: "car"}); err != nil {
		t.Fatalf("RecordEntry distinct case: %v", err)
	}

	vehicles, _ := store.Vehicles().List(ctx)
	if len(vehicles) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(vehicles))
	}
}

func TestListTransactionsLimitAndOrder(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestParkingService(now)
	ctx := context.Background()

	for i, number := range []string{"V1", "V2", "V3"} {
		svc.now = func() time.Time { return now.Add(time.Duration(i) * time.Hour) }
		if _, err := svc.RecordEntry(ctx, &VehicleEntryInput{VehicleNumber: number, VehicleType: "car"}); err != nil {
			t.Fatalf("RecordEntry %s: %v", number, err)
		}
	}

	txs, err := svc.ListTransactions(ctx, 2)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions with limit, got %d", len(txs))
	}
	if txs[0].EntryTime.Before(txs[1].EntryTime) {
		t.Fatalf("expected newest entry first")
	}
}
