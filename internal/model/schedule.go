package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleRow is one period of an amortization schedule. All amounts are
// already rounded to cents.
type ScheduleRow struct {
	Period      int // 1-based
	PaymentDate time.Time
	Payment     decimal.Decimal
	Principal   decimal.Decimal
	Interest    decimal.Decimal
	Balance     decimal.Decimal // remaining after this payment, never negative
}

// Value returns the component picked by sel.
func (r ScheduleRow) Value(sel Selector) decimal.Decimal {
	if sel == SelectInterest {
		return r.Interest
	}
	return r.Principal
}

// TotalPrincipal sums the principal column of a schedule.
func TotalPrincipal(rows []ScheduleRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Principal)
	}
	return total
}

// TotalInterest sums the interest column of a schedule.
func TotalInterest(rows []ScheduleRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Interest)
	}
	return total
}
