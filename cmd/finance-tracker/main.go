package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/example/finance-tracker/internal/config"
	"github.com/example/finance-tracker/internal/ledger"
	"github.com/example/finance-tracker/internal/logging"
	"github.com/example/finance-tracker/internal/report"
	"github.com/example/finance-tracker/internal/store"
	"github.com/example/finance-tracker/pkg/transaction"
)

const version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, report.Message(err))
		os.Exit(1)
	}
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance-tracker",
		Short: "Record transactions and summarize personal finances",
		Long: `Finance Tracker records income and expenses in a plain text ledger,
lists them by date, and summarizes spending per category and per month.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Finance Tracker v%s\n", version)
			fmt.Fprintln(cmd.OutOrStdout(), "Use --help for available commands")
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "path to a TOML config file")
	flags.String("data-file", "", "ledger file (default finance_data.txt)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("today", "", "treat this YYYY-MM-DD date as today")

	cmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newSummaryCmd(),
		newChartCmd(),
		newShellCmd(),
	)
	return cmd
}

// app is the per-invocation wiring of config, logger and session.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	session *ledger.Session
	loadErr error
}

func openApp(cmd *cobra.Command) (*app, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if s, _ := flags.GetString("today"); s != "" {
		today, err := transaction.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("--today %q: %w", s, err)
		}
		now = func() time.Time { return today }
	}

	file := store.NewFile(cfg.DataFile, store.WithLogger(log))
	session, loadErr := ledger.Open(file,
		ledger.WithLogger(log),
		ledger.WithNewestFirst(cfg.NewestFirst),
		ledger.WithClock(now),
	)

	log.Debug().Str("data_file", cfg.DataFile).Int("transactions", session.Len()).Msg("ledger ready")
	return &app{cfg: cfg, log: log, session: session, loadErr: loadErr}, nil
}

// loadApp is openApp for one-shot commands: an unreadable ledger is an
// error, so a later save cannot overwrite a file the session never saw.
func loadApp(cmd *cobra.Command) (*app, error) {
	a, err := openApp(cmd)
	if err != nil {
		return nil, err
	}
	if a.loadErr != nil {
		return nil, a.loadErr
	}
	return a, nil
}
