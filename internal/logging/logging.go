// Package logging configures the logrus logger shared by commands and the
// record processor.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Standard field names, so log lines can be filtered consistently.
const (
	FieldRunID         = "run_id"
	FieldAccountID     = "account_id"
	FieldMethod        = "method"
	FieldView          = "view"
	FieldInstallment   = "installment"
	FieldPeriods       = "periods"
	FieldRemainingDays = "remaining_days"
	FieldCount         = "count"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
	FieldFormat        = "format"
)

// New returns a logger writing to out at the given level. format is "json"
// or "text"; an unparsable level falls back to info with a warning.
func New(level, format string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("invalid log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
