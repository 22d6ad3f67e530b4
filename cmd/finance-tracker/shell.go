package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/finance-tracker/internal/report"
)

const shellHelp = `Commands:
  add                     enter a transaction field by field
  list                    show transactions
  sort newest|oldest      change the listing order
  summary                 this month's totals per category
  chart category|yearly   chart data series
  help                    this text
  quit                    save and exit`

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session; the ledger is saved on exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			sh := &shell{
				app: a,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return sh.run()
		},
	}
}

type shell struct {
	app *app
	in  *bufio.Scanner
	out io.Writer
}

func (sh *shell) run() error {
	cfg, session := sh.app.cfg, sh.app.session

	if sh.app.loadErr != nil {
		fmt.Fprintln(sh.out, report.Error(sh.app.loadErr))
	}
	fmt.Fprintln(sh.out, report.Table(session.Listing()))
	fmt.Fprint(sh.out, report.Summary(cfg.SummaryHeader, cfg.CurrencySymbol, session.MonthlySummary()))

	for {
		line, ok := sh.prompt("> ")
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "add":
			sh.add()
		case "list":
			fmt.Fprintln(sh.out, report.Table(session.Listing()))
		case "sort":
			if len(fields) != 2 || (fields[1] != "newest" && fields[1] != "oldest") {
				fmt.Fprintln(sh.out, "usage: sort newest|oldest")
				continue
			}
			fmt.Fprintln(sh.out, report.Table(session.SetSortOrder(fields[1] == "newest")))
		case "summary":
			fmt.Fprint(sh.out, report.Summary(cfg.SummaryHeader, cfg.CurrencySymbol, session.MonthlySummary()))
		case "chart":
			sh.chart(fields[1:])
		case "help":
			fmt.Fprintln(sh.out, shellHelp)
		case "quit", "exit":
			sh.close()
			return nil
		default:
			fmt.Fprintf(sh.out, "unknown command %q, type help\n", fields[0])
		}
	}
	if err := sh.in.Err(); err != nil {
		sh.app.log.Error().Err(err).Msg("reading input failed")
	}
	sh.close()
	return nil
}

func (sh *shell) add() {
	var values [4]string
	for i, label := range []string{"Date (YYYY-MM-DD): ", "Description: ", "Amount: ", "Category: "} {
		v, ok := sh.prompt(label)
		if !ok {
			return
		}
		values[i] = v
	}

	session, cfg := sh.app.session, sh.app.cfg
	t, err := session.Submit(values[0], values[1], values[2], values[3])
	if err != nil {
		fmt.Fprintln(sh.out, report.Error(err))
		// a failed save still keeps the transaction in the session
		if t.Date == "" {
			return
		}
	}
	fmt.Fprintln(sh.out, report.Table(session.Listing()))
	fmt.Fprint(sh.out, report.Summary(cfg.SummaryHeader, cfg.CurrencySymbol, session.MonthlySummary()))
}

func (sh *shell) chart(args []string) {
	session, symbol := sh.app.session, sh.app.cfg.CurrencySymbol
	if len(args) != 1 {
		fmt.Fprintln(sh.out, "usage: chart category|yearly")
		return
	}

	switch args[0] {
	case "category":
		totals, err := session.CategoryChart()
		if err != nil {
			fmt.Fprintln(sh.out, report.Error(err))
			return
		}
		fmt.Fprintln(sh.out, report.CategorySeries(symbol, totals))
	case "yearly":
		flows, err := session.YearlyChart()
		if err != nil {
			fmt.Fprintln(sh.out, report.Error(err))
			return
		}
		fmt.Fprintln(sh.out, report.YearlySeries(symbol, flows))
	default:
		fmt.Fprintln(sh.out, "usage: chart category|yearly")
	}
}

func (sh *shell) prompt(label string) (string, bool) {
	fmt.Fprint(sh.out, label)
	if !sh.in.Scan() {
		fmt.Fprintln(sh.out)
		return "", false
	}
	return sh.in.Text(), true
}

// close persists the ledger. A save failure is printed like any other error.
func (sh *shell) close() {
	if err := sh.app.session.Close(); err != nil {
		fmt.Fprintln(sh.out, report.Error(err))
		return
	}
	fmt.Fprintln(sh.out, "Saved.")
}
