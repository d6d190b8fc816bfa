package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ladder/internal/loans"
	"github.com/cleared-dev/ladder/internal/logging"
	"github.com/cleared-dev/ladder/internal/processor"
	"github.com/cleared-dev/ladder/internal/report"
	"github.com/cleared-dev/ladder/internal/runlog"
)

type runOptions struct {
	input  string
	format string
	method string
	view   string
	out    string
}

func newRunCommand(a *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Bucket a loan file into cashflow ladders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "loan file (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVar(&opts.format, "format", "", "input format: csv or tsv (default: config, then file extension)")
	cmd.Flags().StringVar(&opts.method, "method", "", "amortization method: annuity or flat (default from config)")
	cmd.Flags().StringVar(&opts.view, "view", "", "principal, interest, combined or all (default from config)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output directory, or - for stdout (default from config)")

	return cmd
}

func runRun(cmd *cobra.Command, a *app, opts runOptions) error {
	cfg := *a.cfg
	if opts.method != "" {
		cfg.Method = opts.method
	}
	if opts.view != "" {
		cfg.View = opts.view
	}
	if opts.format != "" {
		cfg.Input.Format = opts.format
	}
	if opts.out != "" {
		cfg.Output.Directory = opts.out
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	method, _ := cfg.RunMethod()
	views, _ := cfg.Views()
	toStdout := cfg.Output.Directory == "-"
	if toStdout && len(views) > 1 {
		return errors.New("writing to stdout needs a single --view")
	}

	runID := uuid.New().String()
	log := a.log.WithField(logging.FieldRunID, runID)

	records, err := loans.ReadFile(loans.DefaultRegistry(cfg.LoanOptions()), opts.input, cfg.Input.Format)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		logging.FieldInputFile: opts.input,
		logging.FieldCount:     len(records),
	}).Info("loaded loans")

	proc := processor.New(log)
	var written []runlog.Entry
	for _, view := range views {
		rows := proc.Process(records, method, view)

		if toStdout {
			if err := report.WriteRows(cmd.OutOrStdout(), rows); err != nil {
				return fmt.Errorf("writing %s view: %w", view, err)
			}
			continue
		}

		path, err := report.WriteFile(cfg.Output.Directory, view, runID, rows)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			logging.FieldView:       view,
			logging.FieldOutputFile: path,
			logging.FieldCount:      len(rows),
		}).Info("wrote export")
		fmt.Fprintln(cmd.OutOrStdout(), path)

		written = append(written, runlog.Entry{
			Timestamp: time.Now(),
			RunID:     runID,
			View:      string(view),
			Method:    string(method),
			Input:     opts.input,
			Output:    path,
			Rows:      len(rows),
		})
	}

	if len(written) > 0 {
		if err := runlog.Append(cfg.Output.Directory, written); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}
	return nil
}
