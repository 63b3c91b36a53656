package domain

import (
	"testing"
	"time"
)

func TestHourlyRate(t *testing.T) {
	if got := HourlyRate(VehicleTypeCar); got != 5.00 {
		t.Fatalf("car rate = %v, want 5.00", got)
	}
	if got := HourlyRate(VehicleTypeBike); got != 2.00 {
		t.Fatalf("bike rate = %v, want 2.00", got)
	}
	// "other" vehicles are billed at the car rate
	if got := HourlyRate(VehicleTypeOther); got != 5.00 {
		t.Fatalf("other rate = %v, want 5.00", got)
	}
}

func TestParkingFee(t *testing.T) {
	entry := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		exit        time.Time
		vehicleType VehicleType
		want        float64
	}{
		{"30 min car charges minimum hour", entry.Add(30 * time.Minute), VehicleTypeCar, 5.00},
		{"exactly one hour car", entry.Add(time.Hour), VehicleTypeCar, 5.00},
		{"150 min car pro rata", entry.Add(150 * time.Minute), VehicleTypeCar, 12.50},
		{"30 min bike charges minimum hour", entry.Add(30 * time.Minute), VehicleTypeBike, 2.00},
		{"3 hours bike", entry.Add(3 * time.Hour), VehicleTypeBike, 6.00},
		{"90 min other billed as car", entry.Add(90 * time.Minute), VehicleTypeOther, 7.50},
		{"zero duration charges minimum", entry, VehicleTypeCar, 5.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParkingFee(entry, tt.exit, tt.vehicleType); got != tt.want {
				t.Fatalf("ParkingFee = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseVehicleType(t *testing.T) {
	for _, valid := range []string{"car", "bike", "other"} {
		if _, err := ParseVehicleType(valid); err != nil {
			t.Fatalf("ParseVehicleType(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseVehicleType("truck"); err == nil {
		t.Fatalf("expected error for unknown vehicle type")
	}
}

func TestParsePassType(t *testing.T) {
	for _, valid := range []string{"daily", "weekly", "monthly", "yearly"} {
		if _, err := ParsePassType(valid); err != nil {
			t.Fatalf("ParsePassType(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParsePassType("hourly"); err == nil {
		t.Fatalf("expected error for unknown pass type")
	}
}
