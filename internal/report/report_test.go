package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ladder/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleRow() model.CashflowRow {
	row := model.CashflowRow{
		Loan: model.LoanRecord{
			ReportingDate: date(2024, 1, 31),
			AccountID:     "ACC-1",
			Currency:      "IDR",
			Outstanding:   dec("1000"),
			InterestRate:  dec("0.12"),
			StartDate:     date(2023, 1, 31),
			MaturityDate:  date(2024, 4, 30),
			Installment:   model.InstallmentAmortizing,
			ProductType:   "KPR",
			Segment:       "Retail",
			Region:        "Jakarta",
			PostalCode:    "10110",
			Insured:       "Insured",
			Transactional: "Transactional",
		},
		View:          model.ViewPrincipal,
		Method:        model.MethodFlat,
		RemainingDays: 90,
	}
	row.ShortTerm[0] = dec("333.33")
	row.ShortTerm[1] = dec("666.67")
	row.MediumTerm[0] = dec("1000")
	row.Ladder[0] = dec("333.33")
	row.Ladder[1] = dec("333.33")
	row.Ladder[2] = dec("333.34")
	return row
}

func TestHeader(t *testing.T) {
	h := Header()
	require.Len(t, h, numFields)
	assert.Equal(t, "account_id", h[colAccountID])
	assert.Equal(t, "remaining_days_to_maturity", h[colRemainingDays])
	assert.Equal(t, "LCR ≤30D", h[numLoanFields])
	assert.Equal(t, "LCR >30D", h[numLoanFields+1])
	assert.Equal(t, "NSFR <6M", h[numLoanFields+2])
	assert.Equal(t, "IRRBB ≤1M", h[numLoanFields+5])
	assert.Equal(t, "IRRBB >20Y", h[numFields-1])
}

func TestMarshalRow(t *testing.T) {
	rec := MarshalRow(sampleRow())
	require.Len(t, rec, numFields)

	assert.Equal(t, "ACC-1", rec[colAccountID])
	assert.Equal(t, "2024-01-31", rec[colReportingDate])
	assert.Equal(t, "1000.00", rec[colOutstanding])
	assert.Equal(t, "0.12", rec[colInterestRate])
	assert.Equal(t, "2024-04-30", rec[colMaturityDate])
	assert.Equal(t, "yes", rec[colInstallment])
	assert.Equal(t, "flat", rec[colMethod])
	assert.Equal(t, "Jakarta", rec[colRegion])
	assert.Equal(t, "principal", rec[colView])
	assert.Equal(t, "90", rec[colRemainingDays])

	assert.Equal(t, "333.33", rec[numLoanFields])
	assert.Equal(t, "666.67", rec[numLoanFields+1])
	assert.Equal(t, "1000.00", rec[numLoanFields+2])
	assert.Equal(t, "0.00", rec[numLoanFields+3])
	assert.Equal(t, "333.34", rec[numLoanFields+7])
	assert.Equal(t, "0.00", rec[numFields-1])
}

func TestMarshalRow_ZeroStartDate(t *testing.T) {
	row := sampleRow()
	row.Loan.StartDate = time.Time{}
	assert.Equal(t, "", MarshalRow(row)[colStartDate])
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, []model.CashflowRow{sampleRow(), sampleRow()}))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, Header(), recs[0])
	assert.Equal(t, "ACC-1", recs[1][colAccountID])
}

func TestWriteRows_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, nil))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "combined_20240131_0f8c2a1b.csv",
		FileName(model.ViewCombined, date(2024, 1, 31), "0f8c2a1b-7d3e-4c52-9a61-2b0e5f7c9d11"))
	assert.Equal(t, "interest_20240131_ab.csv", FileName(model.ViewInterest, date(2024, 1, 31), "ab"))
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteFile(dir, model.ViewPrincipal, "12345678-abcd", []model.CashflowRow{sampleRow()})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "principal_20240131_12345678.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "account_id,reporting_date,"))
}

func TestWriteSchedule(t *testing.T) {
	rows := []model.ScheduleRow{
		{Period: 1, PaymentDate: date(2024, 2, 29), Payment: dec("343.33"), Principal: dec("333.33"), Interest: dec("10"), Balance: dec("666.67")},
		{Period: 2, PaymentDate: date(2024, 3, 30), Payment: dec("343.33"), Principal: dec("333.33"), Interest: dec("10"), Balance: dec("333.34")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSchedule(&buf, rows))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, ScheduleHeader, recs[0])
	assert.Equal(t, []string{"1", "2024-02-29", "343.33", "333.33", "10.00", "666.67"}, recs[1])
	assert.Equal(t, "333.34", recs[2][5])
}
