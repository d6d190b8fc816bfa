package model

import (
	"fmt"
	"strings"
)

// Installment tells whether a loan amortizes. Values other than the two
// constants below are carried through as-is and produce no schedule.
type Installment string

const (
	InstallmentAmortizing Installment = "yes"
	InstallmentBullet     Installment = "no"
)

// Method selects how an amortizing loan splits each payment.
type Method string

const (
	MethodAnnuity Method = "annuity"
	MethodFlat    Method = "flat"
)

// ParseMethod accepts "annuity" or "flat" (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodAnnuity, MethodFlat:
		return m, nil
	default:
		return "", fmt.Errorf("unknown amortization method %q (want annuity or flat)", s)
	}
}

// Selector picks which component of a schedule row feeds a bucket pass.
type Selector string

const (
	SelectPrincipal Selector = "principal"
	SelectInterest  Selector = "interest"
)

// View is the cashflow view requested for a run.
type View string

const (
	ViewPrincipal View = "principal"
	ViewInterest  View = "interest"
	ViewCombined  View = "combined"
)

// Views lists every view in export order.
func Views() []View {
	return []View{ViewPrincipal, ViewInterest, ViewCombined}
}

// ParseView accepts "principal", "interest" or "combined" (case-insensitive).
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewPrincipal, ViewInterest, ViewCombined:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q (want principal, interest or combined)", s)
	}
}
