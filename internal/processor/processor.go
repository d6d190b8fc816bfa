// Package processor turns loan records into bucketed cashflow rows.
package processor

import (
	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/ladder/internal/bucket"
	"github.com/cleared-dev/ladder/internal/logging"
	"github.com/cleared-dev/ladder/internal/model"
	"github.com/cleared-dev/ladder/internal/schedule"
)

// Processor builds schedules and bucket vectors one record at a time. It
// keeps no state between records.
type Processor struct {
	log logrus.FieldLogger
}

// New creates a Processor. A nil logger discards output.
func New(log logrus.FieldLogger) *Processor {
	if log == nil {
		log = logging.Discard()
	}
	return &Processor{log: log}
}

// Process returns one CashflowRow per record, in input order. method applies
// to records that don't carry their own.
func (p *Processor) Process(records []model.LoanRecord, method model.Method, view model.View) []model.CashflowRow {
	out := make([]model.CashflowRow, 0, len(records))
	for _, rec := range records {
		out = append(out, p.ProcessRecord(rec, method, view))
	}
	p.log.WithFields(logrus.Fields{
		logging.FieldCount:  len(out),
		logging.FieldMethod: method,
		logging.FieldView:   view,
	}).Debug("processed records")
	return out
}

// ProcessRecord buckets a single record. The combined view runs the
// principal and interest passes independently and adds the results.
func (p *Processor) ProcessRecord(rec model.LoanRecord, method model.Method, view model.View) model.CashflowRow {
	switch view {
	case model.ViewInterest:
		return p.pass(rec, method, model.SelectInterest)
	case model.ViewCombined:
		principal := p.pass(rec, method, model.SelectPrincipal)
		interest := p.pass(rec, method, model.SelectInterest)
		return model.Combine(principal, interest)
	default:
		return p.pass(rec, method, model.SelectPrincipal)
	}
}

// Schedule returns the amortization schedule for rec.
func (p *Processor) Schedule(rec model.LoanRecord, method model.Method) []model.ScheduleRow {
	m := rec.EffectiveMethod(method)
	rows := schedule.Build(schedule.TermsOf(rec), m)

	entry := p.log.WithFields(logrus.Fields{
		logging.FieldAccountID:   rec.AccountID,
		logging.FieldMethod:      m,
		logging.FieldInstallment: rec.Installment,
		logging.FieldPeriods:     len(rows),
	})
	switch {
	case rec.Installment != model.InstallmentAmortizing && rec.Installment != model.InstallmentBullet:
		entry.Warn("unrecognized installment flag, no schedule")
	case len(rows) == 0:
		entry.Debug("no future payments")
	default:
		entry.Debug("built schedule")
	}
	return rows
}

func (p *Processor) pass(rec model.LoanRecord, method model.Method, sel model.Selector) model.CashflowRow {
	rows := p.Schedule(rec, method)
	view := model.ViewPrincipal
	if sel == model.SelectInterest {
		view = model.ViewInterest
	}
	return model.CashflowRow{
		Loan:          rec,
		View:          view,
		Method:        rec.EffectiveMethod(method),
		RemainingDays: rec.RemainingDays(),
		ShortTerm:     bucket.ShortTerm(rows, rec.ReportingDate, sel),
		MediumTerm:    bucket.MediumTerm(rows, rec.ReportingDate, sel),
		Ladder:        bucket.InterestRateRisk(rows, rec.ReportingDate, sel),
	}
}
