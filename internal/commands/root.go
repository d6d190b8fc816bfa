package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ladder/internal/buildinfo"
	"github.com/cleared-dev/ladder/internal/config"
	"github.com/cleared-dev/ladder/internal/logging"
)

// app carries what PersistentPreRunE resolves for the subcommands.
type app struct {
	configPath string
	envFile    string
	logLevel   string

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ladder",
		Short:   "Loan cashflow maturity ladders for liquidity and IRRBB reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.FileName, "path to config file")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file with LADDER_* overrides")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRunCommand(a))
	rootCmd.AddCommand(newScheduleCommand(a))
	rootCmd.AddCommand(newBucketsCommand())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	return nil
}
