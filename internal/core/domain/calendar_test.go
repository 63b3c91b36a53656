package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestPassExpiry(t *testing.T) {
	tests := []struct {
		name     string
		issue    time.Time
		passType PassType
		want     time.Time
	}{
		{"daily", date(2024, time.March, 15), PassTypeDaily, date(2024, time.March, 16)},
		{"weekly", date(2024, time.March, 15), PassTypeWeekly, date(2024, time.March, 22)},
		{"monthly mid-month", date(2024, time.March, 15), PassTypeMonthly, date(2024, time.April, 15)},
		{"monthly jan 31 leap year clamps to feb 29", date(2024, time.January, 31), PassTypeMonthly, date(2024, time.February, 29)},
		{"monthly jan 31 non-leap clamps to feb 28", date(2023, time.January, 31), PassTypeMonthly, date(2023, time.February, 28)},
		{"monthly oct 31 clamps to nov 30", date(2024, time.October, 31), PassTypeMonthly, date(2024, time.November, 30)},
		{"monthly dec rolls year", date(2024, time.December, 15), PassTypeMonthly, date(2025, time.January, 15)},
		{"yearly", date(2024, time.March, 15), PassTypeYearly, date(2025, time.March, 15)},
		{"yearly feb 29 clamps to feb 28", date(2024, time.February, 29), PassTypeYearly, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PassExpiry(tt.issue, tt.passType)
			if !got.Equal(tt.want) {
				t.Fatalf("PassExpiry(%v, %s) = %v, want %v", tt.issue, tt.passType, got, tt.want)
			}
		})
	}
}

func TestPassExpiryKeepsTimeOfDay(t *testing.T) {
	issue := time.Date(2024, time.January, 31, 14, 30, 45, 0, time.UTC)
	got := PassExpiry(issue, PassTypeMonthly)
	if got.Hour() != 14 || got.Minute() != 30 || got.Second() != 45 {
		t.Fatalf("expected time of day preserved, got %v", got)
	}
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   int
	}{
		{"30 minutes left rounds up to 1", now.Add(30 * time.Minute), 1},
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"6 days 23 hours rounds up to 7", now.Add(6*24*time.Hour + 23*time.Hour), 7},
		{"exactly 7 days", now.Add(7 * 24 * time.Hour), 7},
		{"already expired", now.Add(-time.Hour), 0},
		{"expiring this instant", now, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysLeft(now, tt.expiry); got != tt.want {
				t.Fatalf("DaysLeft = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSameLocalDay(t *testing.T) {
	a := time.Date(2024, time.June, 1, 0, 30, 0, 0, time.UTC)
	b := time.Date(2024, time.June, 1, 23, 59, 0, 0, time.UTC)
	c := time.Date(2024, time.June, 2, 0, 0, 1, 0, time.UTC)

	if !SameLocalDay(a, b) {
		t.Fatalf("expected %v and %v on same day", a, b)
	}
	if SameLocalDay(b, c) {
		t.Fatalf("expected %v and %v on different days", b, c)
	}
}
