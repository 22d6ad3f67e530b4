package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/finance-tracker/internal/report"
)

func newAddCmd() *cobra.Command {
	var date, description, amount, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record a transaction. Negative amounts are expenses, everything else is income.
Dates are year first: 2024-05-01, 2024-5-1 and 2024/05/01 are all accepted.`,
		Example: `  finance-tracker add --date 2024-05-01 --description rent --amount=-1000 --category housing`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			t, err := a.session.Submit(date, description, amount, category)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %s %s %s%s (%s)\n", t.Date, t.Description, a.cfg.CurrencySymbol, t.Amount.StringFixed(2), t.Category)
			fmt.Fprint(out, report.Summary(a.cfg.SummaryHeader, a.cfg.CurrencySymbol, a.session.MonthlySummary()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date, YYYY-MM-DD")
	cmd.Flags().StringVar(&description, "description", "", "what the transaction was for (no commas)")
	cmd.Flags().StringVar(&amount, "amount", "", "signed amount, negative for expenses")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	return cmd
}

func newListCmd() *cobra.Command {
	var oldestFirst, newestFirst bool
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions sorted by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			switch {
			case oldestFirst:
				a.session.SetSortOrder(false)
			case newestFirst:
				a.session.SetSortOrder(true)
			}

			ts := a.session.Listing()
			if category != "" {
				ts = a.session.Filter(category)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Table(ts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&oldestFirst, "oldest-first", false, "show the oldest transactions first")
	cmd.Flags().BoolVar(&newestFirst, "newest-first", false, "show the newest transactions first")
	cmd.Flags().StringVar(&category, "category", "", "only show this category")
	cmd.MarkFlagsMutuallyExclusive("oldest-first", "newest-first")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show this month's totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Summary(a.cfg.SummaryHeader, a.cfg.CurrencySymbol, a.session.MonthlySummary()))
			return nil
		},
	}
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print chart data series",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "category",
		Short: "All-time totals per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			totals, err := a.session.CategoryChart()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.CategorySeries(a.cfg.CurrencySymbol, totals))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "yearly",
		Short: "Income and expenses per month over the past year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			flows, err := a.session.YearlyChart()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.YearlySeries(a.cfg.CurrencySymbol, flows))
			return nil
		},
	})

	return cmd
}
