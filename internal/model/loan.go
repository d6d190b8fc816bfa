package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanRecord is one contract as delivered by ingestion. It is treated as
// read-only once built.
type LoanRecord struct {
	ReportingDate time.Time
	AccountID     string
	Currency      string
	Outstanding   decimal.Decimal
	InterestRate  decimal.Decimal // annual, as a fraction (0.12 = 12%)
	StartDate     time.Time
	MaturityDate  time.Time
	Installment   Installment
	Method        Method // empty = use the run's method

	ProductType   string
	Segment       string
	Region        string
	PostalCode    string
	Insured       string
	Transactional string
}

// RemainingDays is the whole-day distance from the reporting date to
// maturity. Negative for loans that have already matured.
func (l LoanRecord) RemainingDays() int {
	return DaysBetween(l.ReportingDate, l.MaturityDate)
}

// RemainingMonths is the calendar-month distance from the reporting date to
// maturity, ignoring the day of month.
func (l LoanRecord) RemainingMonths() int {
	return MonthsBetween(l.ReportingDate, l.MaturityDate)
}

// EffectiveMethod returns the record's own method when set, otherwise fallback.
func (l LoanRecord) EffectiveMethod(fallback Method) Method {
	if l.Method != "" {
		return l.Method
	}
	return fallback
}

// DaysBetween counts whole calendar days from a to b, ignoring time of day.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// MonthsBetween counts calendar months from a to b: (Δyear × 12) + Δmonth.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
