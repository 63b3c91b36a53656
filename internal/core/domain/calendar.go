package domain

import "time"

const millisPerDay = 24 * 60 * 60 * 1000

// PassExpiry derives the expiry date of a pass from its issue date.
// Monthly and yearly passes use calendar arithmetic with the day of month
// clamped to the last valid day of the target month (Jan 31 + 1 month =
// Feb 28/29, Feb 29 + 1 year = Feb 28), never naive day-count addition.
func PassExpiry(issue time.Time, passType PassType) time.Time {
	switch passType {
	case PassTypeDaily:
		return issue.AddDate(0, 0, 1)
	case PassTypeWeekly:
		return issue.AddDate(0, 0, 7)
	case PassTypeMonthly:
		return addMonthsClamped(issue, 1)
	case PassTypeYearly:
		return addMonthsClamped(issue, 12)
	}
	return issue
}

// addMonthsClamped adds months keeping the same day of month, clamped to
// the last valid day of the target month. time.AddDate would normalize
// Jan 31 + 1 month into Mar 2/3, which is the wrong behavior here.
func addMonthsClamped(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + months
	year += month / 12
	month = month % 12

	day := t.Day()
	if last := daysInMonth(year, time.Month(month+1)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysLeft returns the whole days remaining until expiry, rounding up so
// a pass expiring in 30 minutes reports 1, never 0. Uses fixed
// millisecond division, independent of calendar boundaries.
func DaysLeft(now, expiry time.Time) int {
	ms := expiry.Sub(now).Milliseconds()
	if ms <= 0 {
		return 0
	}
	days := ms / millisPerDay
	if ms%millisPerDay > 0 {
		days++
	}
	return int(days)
}

// SameLocalDay reports whether two instants fall on the same calendar day
// in a's location
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
