package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ladder/internal/model"
)

// factorPrecision bounds the digits kept while compounding (1+r)^n so long
// tenors don't grow the mantissa without limit.
const factorPrecision = 24

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// Terms holds the loan economics a schedule is built from.
type Terms struct {
	Outstanding   decimal.Decimal
	AnnualRate    decimal.Decimal
	ReportingDate time.Time
	MaturityDate  time.Time
	Installment   model.Installment
}

// TermsOf extracts schedule terms from a loan record.
func TermsOf(loan model.LoanRecord) Terms {
	return Terms{
		Outstanding:   loan.Outstanding,
		AnnualRate:    loan.InterestRate,
		ReportingDate: loan.ReportingDate,
		MaturityDate:  loan.MaturityDate,
		Installment:   loan.Installment,
	}
}

// MonthlyRate is the nominal annual rate divided by 12.
func (t Terms) MonthlyRate() decimal.Decimal {
	return t.AnnualRate.Div(twelve)
}

// Build returns the schedule for the given terms. Bullet loans ignore method.
// An unrecognized installment flag, an unknown method, a matured loan or a
// schedule with no payment dates all yield an empty schedule.
//
// Every amount is rounded to cents as it is computed, so the final balance
// can differ from zero by rounding drift; there is no true-up period.
func Build(t Terms, method model.Method) []model.ScheduleRow {
	if !t.MaturityDate.After(t.ReportingDate) {
		return nil
	}
	dates := PaymentDates(t.ReportingDate, t.MaturityDate)
	if len(dates) == 0 {
		return nil
	}

	r := t.MonthlyRate()
	switch t.Installment {
	case model.InstallmentBullet:
		return bullet(t.Outstanding, r, dates)
	case model.InstallmentAmortizing:
		switch method {
		case model.MethodAnnuity:
			return annuity(t.Outstanding, r, dates)
		case model.MethodFlat:
			return flat(t.Outstanding, r, dates)
		}
	}
	return nil
}

func bullet(principal, r decimal.Decimal, dates []time.Time) []model.ScheduleRow {
	interest := principal.Mul(r).Round(2)
	last := len(dates)
	balance := principal

	rows := make([]model.ScheduleRow, 0, len(dates))
	for i, d := range dates {
		paid := decimal.Zero
		if i+1 == last {
			paid = principal.Round(2)
		}
		balance = balance.Sub(paid)
		rows = append(rows, row(i+1, d, paid, interest, balance))
	}
	return rows
}

func annuity(principal, r decimal.Decimal, dates []time.Time) []model.ScheduleRow {
	pmt := AnnuityPayment(principal, r, len(dates))
	balance := principal

	rows := make([]model.ScheduleRow, 0, len(dates))
	for i, d := range dates {
		interest := balance.Mul(r).Round(2)
		paid := pmt.Sub(interest)
		balance = balance.Sub(paid)
		rows = append(rows, row(i+1, d, paid, interest, balance))
	}
	return rows
}

func flat(principal, r decimal.Decimal, dates []time.Time) []model.ScheduleRow {
	n := decimal.NewFromInt(int64(len(dates)))
	paid := principal.Div(n).Round(2)
	interest := principal.Mul(r).Round(2)
	balance := principal

	rows := make([]model.ScheduleRow, 0, len(dates))
	for i, d := range dates {
		balance = balance.Sub(paid)
		rows = append(rows, row(i+1, d, paid, interest, balance))
	}
	return rows
}

func row(period int, d time.Time, principal, interest, balance decimal.Decimal) model.ScheduleRow {
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	return model.ScheduleRow{
		Period:      period,
		PaymentDate: d,
		Payment:     principal.Add(interest),
		Principal:   principal,
		Interest:    interest,
		Balance:     balance.Round(2),
	}
}

// AnnuityPayment is the level payment that amortizes principal over n
// periods at periodic rate r, rounded to cents. It returns zero when n < 1.
func AnnuityPayment(principal, r decimal.Decimal, n int) decimal.Decimal {
	if n < 1 {
		return decimal.Zero
	}
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	f := compound(r, n)
	return principal.Mul(r).Mul(f).Div(f.Sub(one)).Round(2)
}

// compound returns (1+r)^n.
func compound(r decimal.Decimal, n int) decimal.Decimal {
	base := one.Add(r)
	f := one
	for i := 0; i < n; i++ {
		f = f.Mul(base).Truncate(factorPrecision)
	}
	return f
}
