// Package report writes cashflow rows and schedules as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ladder/internal/bucket"
	"github.com/cleared-dev/ladder/internal/model"
)

const (
	dateFormat = "2006-01-02"

	colAccountID     = 0
	colReportingDate = 1
	colCurrency      = 2
	colOutstanding   = 3
	colInterestRate  = 4
	colStartDate     = 5
	colMaturityDate  = 6
	colInstallment   = 7
	colMethod        = 8
	colProductType   = 9
	colSegment       = 10
	colRegion        = 11
	colPostalCode    = 12
	colInsured       = 13
	colTransactional = 14
	colView          = 15
	colRemainingDays = 16
	numLoanFields    = 17

	numFields = numLoanFields + model.ShortTermBuckets + model.MediumTermBuckets + model.LadderBuckets
)

var loanHeader = [numLoanFields]string{
	"account_id", "reporting_date", "currency", "outstanding", "interest_rate",
	"start_date", "maturity_date", "installment", "method", "product_type",
	"segment", "region", "postal_code", "insured", "transactional",
	"view", "remaining_days_to_maturity",
}

// Header returns the CSV header: the loan columns followed by each bucket
// scheme's labels, prefixed LCR, NSFR and IRRBB.
func Header() []string {
	h := make([]string, 0, numFields)
	h = append(h, loanHeader[:]...)
	for _, l := range bucket.ShortTermLabels() {
		h = append(h, "LCR "+l)
	}
	for _, l := range bucket.MediumTermLabels() {
		h = append(h, "NSFR "+l)
	}
	for _, l := range bucket.LadderLabels() {
		h = append(h, "IRRBB "+l)
	}
	return h
}

// MarshalRow converts a CashflowRow to a CSV row ([]string).
func MarshalRow(row model.CashflowRow) []string {
	out := make([]string, numLoanFields, numFields)
	loan := row.Loan
	out[colAccountID] = loan.AccountID
	out[colReportingDate] = formatDate(loan.ReportingDate)
	out[colCurrency] = loan.Currency
	out[colOutstanding] = loan.Outstanding.StringFixed(2)
	out[colInterestRate] = loan.InterestRate.String()
	out[colStartDate] = formatDate(loan.StartDate)
	out[colMaturityDate] = formatDate(loan.MaturityDate)
	out[colInstallment] = string(loan.Installment)
	out[colMethod] = string(row.Method)
	out[colProductType] = loan.ProductType
	out[colSegment] = loan.Segment
	out[colRegion] = loan.Region
	out[colPostalCode] = loan.PostalCode
	out[colInsured] = loan.Insured
	out[colTransactional] = loan.Transactional
	out[colView] = string(row.View)
	out[colRemainingDays] = strconv.Itoa(row.RemainingDays)

	out = appendFixed(out, row.ShortTerm[:])
	out = appendFixed(out, row.MediumTerm[:])
	out = appendFixed(out, row.Ladder[:])
	return out
}

// WriteRows writes rows to w, including the header.
func WriteRows(w io.Writer, rows []model.CashflowRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FileName names an export: <view>_<reporting date>_<run id prefix>.csv.
func FileName(view model.View, reporting time.Time, runID string) string {
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return fmt.Sprintf("%s_%s_%s.csv", view, reporting.Format("20060102"), runID)
}

// WriteFile writes rows to a new file in dir and returns its path. The
// reporting date in the name comes from the first row.
func WriteFile(dir string, view model.View, runID string, rows []model.CashflowRow) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	var reporting time.Time
	if len(rows) > 0 {
		reporting = rows[0].Loan.ReportingDate
	}
	path := filepath.Join(dir, FileName(view, reporting, runID))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export: %w", err)
	}
	defer f.Close()

	if err := WriteRows(f, rows); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func appendFixed(out []string, vals []decimal.Decimal) []string {
	for _, v := range vals {
		out = append(out, v.StringFixed(2))
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
