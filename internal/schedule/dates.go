// Package schedule builds contractual amortization schedules for loans.
package schedule

import "time"

// PaymentDates returns the monthly payment dates strictly after reporting and
// no later than maturity. Payments fall on maturity's day of month, clamped to
// the last day of shorter months. A loan that has already matured has no
// payment dates.
func PaymentDates(reporting, maturity time.Time) []time.Time {
	if !maturity.After(reporting) {
		return nil
	}

	anchor := maturity.Day()
	year, month := reporting.Year(), reporting.Month()
	if reporting.Day() >= anchor {
		year, month = nextMonth(year, month)
	}

	end := dateOnly(maturity)
	var dates []time.Time
	for {
		day := min(anchor, daysIn(year, month))
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if d.After(end) {
			break
		}
		dates = append(dates, d)
		year, month = nextMonth(year, month)
	}
	return dates
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
