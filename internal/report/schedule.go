package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cleared-dev/ladder/internal/model"
)

// ScheduleHeader is the CSV header for an amortization schedule.
var ScheduleHeader = []string{"period", "payment_date", "payment", "principal", "interest", "remaining_balance"}

// MarshalScheduleRow converts a ScheduleRow to a CSV row.
func MarshalScheduleRow(r model.ScheduleRow) []string {
	return []string{
		strconv.Itoa(r.Period),
		formatDate(r.PaymentDate),
		r.Payment.StringFixed(2),
		r.Principal.StringFixed(2),
		r.Interest.StringFixed(2),
		r.Balance.StringFixed(2),
	}
}

// WriteSchedule writes a schedule to w, including the header.
func WriteSchedule(w io.Writer, rows []model.ScheduleRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(ScheduleHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(MarshalScheduleRow(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
