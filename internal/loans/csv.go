package loans

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ladder/internal/model"
)

// DefaultDateLayout is the date layout used when Options leaves it empty.
const DefaultDateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// Options controls how raw columns become a LoanRecord.
type Options struct {
	DateLayout string
	Delimiter  rune
	// DefaultInstallment fills rows whose Installment column is blank.
	DefaultInstallment model.Installment
}

func (o Options) withDefaults() Options {
	if o.DateLayout == "" {
		o.DateLayout = DefaultDateLayout
	}
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.DefaultInstallment == "" {
		o.DefaultInstallment = model.InstallmentBullet
	}
	return o
}

// Row is one line of a loan export, keyed by the export's column headings.
// Columns other than the dates, amounts and account id may be absent.
type Row struct {
	ReportingDate string `csv:"Reporting Date"`
	AccountID     string `csv:"Account ID"`
	Currency      string `csv:"CCY"`
	Outstanding   string `csv:"Outstanding"`
	InterestRate  string `csv:"Interest Rate"`
	StartDate     string `csv:"Start Date"`
	EndDate       string `csv:"End Date"`
	Installment   string `csv:"Installment"`
	Method        string `csv:"Method"`
	ProductType   string `csv:"ProductType"`
	Segment       string `csv:"Segment"`
	Region        string `csv:"Daerah"`
	PostalCode    string `csv:"KodePos"`
	Insured       string `csv:"Insured/Uninsured"`
	Transactional string `csv:"Transactional/Non Transactional"`
}

// CSVParser reads delimited loan exports with a header row.
type CSVParser struct {
	format string
	opts   Options
}

// NewCSVParser creates a parser registered under format.
func NewCSVParser(format string, opts Options) *CSVParser {
	return &CSVParser{format: format, opts: opts.withDefaults()}
}

// Format returns the parser name.
func (p *CSVParser) Format() string { return p.format }

// Parse reads all rows. An empty input yields no records.
func (p *CSVParser) Parse(r io.Reader) ([]model.LoanRecord, error) {
	cr := csv.NewReader(r)
	cr.Comma = p.opts.Delimiter
	cr.TrimLeadingSpace = !unicode.IsSpace(p.opts.Delimiter)

	var rows []Row
	if err := gocsv.UnmarshalCSV(cr, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading loan CSV: %w", err)
	}

	records := make([]model.LoanRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := p.UnmarshalRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// UnmarshalRow converts a raw row into a LoanRecord.
func (p *CSVParser) UnmarshalRow(row Row) (model.LoanRecord, error) {
	if strings.TrimSpace(row.AccountID) == "" {
		return model.LoanRecord{}, errors.New("missing account id")
	}

	reporting, err := p.parseDate("reporting date", row.ReportingDate)
	if err != nil {
		return model.LoanRecord{}, err
	}
	maturity, err := p.parseDate("end date", row.EndDate)
	if err != nil {
		return model.LoanRecord{}, err
	}
	var start time.Time
	if strings.TrimSpace(row.StartDate) != "" {
		start, err = p.parseDate("start date", row.StartDate)
		if err != nil {
			return model.LoanRecord{}, err
		}
	}

	outstanding, err := decimal.NewFromString(strings.TrimSpace(row.Outstanding))
	if err != nil {
		return model.LoanRecord{}, fmt.Errorf("parsing outstanding %q: %w", row.Outstanding, err)
	}
	rate, err := ParseRate(row.InterestRate)
	if err != nil {
		return model.LoanRecord{}, err
	}

	var method model.Method
	if strings.TrimSpace(row.Method) != "" {
		method, err = model.ParseMethod(row.Method)
		if err != nil {
			return model.LoanRecord{}, err
		}
	}

	return model.LoanRecord{
		ReportingDate: reporting,
		AccountID:     strings.TrimSpace(row.AccountID),
		Currency:      strings.TrimSpace(row.Currency),
		Outstanding:   outstanding,
		InterestRate:  rate,
		StartDate:     start,
		MaturityDate:  maturity,
		Installment:   ParseInstallment(row.Installment, p.opts.DefaultInstallment),
		Method:        method,
		ProductType:   row.ProductType,
		Segment:       row.Segment,
		Region:        row.Region,
		PostalCode:    row.PostalCode,
		Insured:       row.Insured,
		Transactional: row.Transactional,
	}, nil
}

func (p *CSVParser) parseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(p.opts.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}

// ParseInstallment maps the export's yes/no flag. A blank flag takes def;
// anything unrecognized is kept verbatim (lowercased) so it produces no
// schedule downstream.
func ParseInstallment(s string, def model.Installment) model.Installment {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "":
		return def
	case "yes", "y", "true", "1":
		return model.InstallmentAmortizing
	case "no", "n", "false", "0":
		return model.InstallmentBullet
	default:
		return model.Installment(v)
	}
}

// ParseRate reads an annual rate as a fraction. "7.5%" is accepted and
// divided by 100.
func ParseRate(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	pct := strings.HasSuffix(raw, "%")
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))

	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing interest rate %q: %w", s, err)
	}
	if pct {
		rate = rate.Div(hundred)
	}
	return rate, nil
}
