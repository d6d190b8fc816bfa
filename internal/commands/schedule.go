package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ladder/internal/loans"
	"github.com/cleared-dev/ladder/internal/model"
	"github.com/cleared-dev/ladder/internal/processor"
	"github.com/cleared-dev/ladder/internal/report"
)

func newScheduleCommand(a *app) *cobra.Command {
	var input, format, account, method string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule of one loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if method == "" {
				method = a.cfg.Method
			}
			m, err := model.ParseMethod(method)
			if err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Input.Format
			}

			records, err := loans.ReadFile(loans.DefaultRegistry(a.cfg.LoanOptions()), input, format)
			if err != nil {
				return err
			}
			rec, ok := loans.NewBook(records).Get(account)
			if !ok {
				return fmt.Errorf("account %q not found in %s", account, input)
			}

			rows := processor.New(a.log).Schedule(rec, m)
			return report.WriteSchedule(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "loan file (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVar(&account, "account", "", "account id (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&format, "format", "", "input format: csv or tsv")
	cmd.Flags().StringVar(&method, "method", "", "amortization method: annuity or flat (default from config)")

	return cmd
}
