package model

import "github.com/shopspring/decimal"

// Bucket counts for each scheme.
const (
	ShortTermBuckets  = 2
	MediumTermBuckets = 3
	LadderBuckets     = 18
)

// ShortTerm is the liquidity split: ≤30 days, >30 days.
type ShortTerm [ShortTermBuckets]decimal.Decimal

// MediumTerm is the funding split: <6 months, 6-12 months, >12 months.
type MediumTerm [MediumTermBuckets]decimal.Decimal

// Ladder is the interest-rate-risk time ladder, ≤1 month through >20 years.
type Ladder [LadderBuckets]decimal.Decimal

// Total sums the buckets.
func (v ShortTerm) Total() decimal.Decimal { return sum(v[:]) }

// Total sums the buckets.
func (v MediumTerm) Total() decimal.Decimal { return sum(v[:]) }

// Total sums the buckets.
func (v Ladder) Total() decimal.Decimal { return sum(v[:]) }

// Plus adds two vectors element-wise, rounding each entry to cents.
func (v ShortTerm) Plus(o ShortTerm) ShortTerm {
	var out ShortTerm
	addInto(out[:], v[:], o[:])
	return out
}

// Plus adds two vectors element-wise, rounding each entry to cents.
func (v MediumTerm) Plus(o MediumTerm) MediumTerm {
	var out MediumTerm
	addInto(out[:], v[:], o[:])
	return out
}

// Plus adds two vectors element-wise, rounding each entry to cents.
func (v Ladder) Plus(o Ladder) Ladder {
	var out Ladder
	addInto(out[:], v[:], o[:])
	return out
}

// CashflowRow is the bucketed view of one loan for one View.
type CashflowRow struct {
	Loan          LoanRecord
	View          View
	Method        Method // method the schedule was built with
	RemainingDays int
	ShortTerm     ShortTerm
	MediumTerm    MediumTerm
	Ladder        Ladder
}

// Combine merges a principal row and an interest row for the same loan into
// a combined row.
func Combine(principal, interest CashflowRow) CashflowRow {
	return CashflowRow{
		Loan:          principal.Loan,
		View:          ViewCombined,
		Method:        principal.Method,
		RemainingDays: principal.RemainingDays,
		ShortTerm:     principal.ShortTerm.Plus(interest.ShortTerm),
		MediumTerm:    principal.MediumTerm.Plus(interest.MediumTerm),
		Ladder:        principal.Ladder.Plus(interest.Ladder),
	}
}

func sum(vals []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range vals {
		total = total.Add(v)
	}
	return total
}

func addInto(dst, a, b []decimal.Decimal) {
	for i := range dst {
		dst[i] = a[i].Add(b[i]).Round(2)
	}
}
