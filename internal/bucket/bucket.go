// Package bucket aggregates schedule cashflows into the regulatory time
// buckets: a short-term liquidity split, a medium-term funding split and
// an 18-bucket interest-rate-risk ladder.
package bucket

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ladder/internal/model"
)

const (
	// shortHorizonDays is the last day counted as "within 30 days".
	shortHorizonDays = 30

	mediumLowMonths  = 6
	mediumHighMonths = 12
)

// ladderEdges are the month boundaries of ladder buckets 1..17. Bucket i+1
// covers (ladderEdges[i], ladderEdges[i+1]]; the last edge is open-ended.
var ladderEdges = [model.LadderBuckets]int{
	1, 3, 6, 9, 12,
	18, 24, 36, 48, 60,
	72, 84, 96, 108, 120,
	180, 240, math.MaxInt,
}

var (
	shortTermLabels  = [model.ShortTermBuckets]string{"≤30D", ">30D"}
	mediumTermLabels = [model.MediumTermBuckets]string{"<6M", "6-12M", ">12M"}
	ladderLabels     = [model.LadderBuckets]string{
		"≤1M", "1-3M", "3-6M", "6-9M", "9-12M",
		"1-1.5Y", "1.5-2Y", "2-3Y", "3-4Y", "4-5Y",
		"5-6Y", "6-7Y", "7-8Y", "8-9Y", "9-10Y",
		"10-15Y", "15-20Y", ">20Y",
	}
)

// ShortTermLabels returns the column labels of the short-term split.
func ShortTermLabels() []string { return append([]string(nil), shortTermLabels[:]...) }

// MediumTermLabels returns the column labels of the medium-term split.
func MediumTermLabels() []string { return append([]string(nil), mediumTermLabels[:]...) }

// LadderLabels returns the column labels of the interest-rate-risk ladder.
func LadderLabels() []string { return append([]string(nil), ladderLabels[:]...) }

// LadderEdges returns the ladder's month boundaries. The last one is
// math.MaxInt and stands for "no upper bound".
func LadderEdges() []int { return append([]int(nil), ladderEdges[:]...) }

// ShortTermIndex picks the short-term bucket for a payment days after the
// reporting date.
func ShortTermIndex(days int) int {
	if days <= shortHorizonDays {
		return 0
	}
	return 1
}

// MediumTermIndex picks the medium-term bucket for a payment months after
// the reporting date.
func MediumTermIndex(months int) int {
	switch {
	case months < mediumLowMonths:
		return 0
	case months <= mediumHighMonths:
		return 1
	default:
		return 2
	}
}

// LadderIndex picks the ladder bucket. Anything within 30 days lands in
// bucket 0 regardless of months. Past 30 days but still at most one
// calendar month away goes to bucket 1.
func LadderIndex(days, months int) int {
	if days <= shortHorizonDays {
		return 0
	}
	if months <= ladderEdges[0] {
		return 1
	}
	for i := 0; i+1 < len(ladderEdges); i++ {
		if months > ladderEdges[i] && months <= ladderEdges[i+1] {
			return i + 1
		}
	}
	return model.LadderBuckets - 1
}

// ShortTerm buckets rows by elapsed days. Under the interest selector only
// interest due within 30 days is counted; later interest is dropped, so
// bucket 1 stays zero.
func ShortTerm(rows []model.ScheduleRow, reporting time.Time, sel model.Selector) model.ShortTerm {
	var out model.ShortTerm
	for _, r := range rows {
		idx := ShortTermIndex(model.DaysBetween(reporting, r.PaymentDate))
		if sel == model.SelectInterest && idx != 0 {
			continue
		}
		out[idx] = out[idx].Add(r.Value(sel))
	}
	roundAll(out[:])
	return out
}

// MediumTerm buckets rows by elapsed calendar months. Interest never counts
// toward this split, so the interest selector always yields zeros.
func MediumTerm(rows []model.ScheduleRow, reporting time.Time, sel model.Selector) model.MediumTerm {
	var out model.MediumTerm
	if sel == model.SelectInterest {
		return out
	}
	for _, r := range rows {
		idx := MediumTermIndex(model.MonthsBetween(reporting, r.PaymentDate))
		out[idx] = out[idx].Add(r.Value(sel))
	}
	roundAll(out[:])
	return out
}

// InterestRateRisk buckets rows on the 18-bucket ladder. Both selectors
// count in full.
func InterestRateRisk(rows []model.ScheduleRow, reporting time.Time, sel model.Selector) model.Ladder {
	var out model.Ladder
	for _, r := range rows {
		idx := LadderIndex(model.DaysBetween(reporting, r.PaymentDate), model.MonthsBetween(reporting, r.PaymentDate))
		out[idx] = out[idx].Add(r.Value(sel))
	}
	roundAll(out[:])
	return out
}

func roundAll(vals []decimal.Decimal) {
	for i := range vals {
		vals[i] = vals[i].Round(2)
	}
}
