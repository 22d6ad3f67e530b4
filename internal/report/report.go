// Package report renders transactions, summaries and chart series for the terminal.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/example/finance-tracker/internal/store"
	"github.com/example/finance-tracker/pkg/transaction"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
	incomeStyle  = numberStyle.Foreground(lipgloss.Color("#00aa00"))
	expenseStyle = numberStyle.Foreground(lipgloss.Color("#cc0000"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// Table renders the transaction listing with amounts fixed to two decimals.
func Table(ts []transaction.Transaction) string {
	if len(ts) == 0 {
		return mutedStyle.Render("No transactions recorded.")
	}

	rows := make([][]string, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, []string{t.Date, t.Description, t.Amount.StringFixed(2), t.Category})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Description", "Amount", "Category").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 && ts[row].IsIncome():
				return incomeStyle
			case col == 2:
				return expenseStyle
			default:
				return cellStyle
			}
		}).
		String()
}

// Summary renders header followed by one "Category : $X.XX" line per entry.
func Summary(header, symbol string, totals transaction.Totals) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, e := range totals.Entries() {
		fmt.Fprintf(&b, "%s : %s%s\n", e.Category, symbol, e.Amount.StringFixed(2))
	}
	return b.String()
}

// CategorySeries renders all-time category totals as a chart data table.
func CategorySeries(symbol string, totals transaction.Totals) string {
	entries := totals.Entries()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Category, symbol + e.Amount.StringFixed(2)})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Amount").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return numberStyle
			default:
				return cellStyle
			}
		}).
		String()
}

// YearlySeries renders monthly income and expenses as a chart data table.
func YearlySeries(symbol string, flows []transaction.MonthFlow) string {
	rows := make([][]string, 0, len(flows))
	for _, f := range flows {
		rows = append(rows, []string{
			f.Month,
			symbol + f.Income.StringFixed(2),
			symbol + f.Expenses.StringFixed(2),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Month", "Income", "Expenses").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return incomeStyle
			case col == 2:
				return expenseStyle
			default:
				return cellStyle
			}
		}).
		String()
}

// Message turns an error into the text shown to the user.
func Message(err error) string {
	var fe *transaction.FieldError
	switch {
	case errors.Is(err, transaction.ErrMissingField):
		return "Please enter all transaction fields."
	case errors.Is(err, transaction.ErrInvalidDate):
		return "Invalid date format. Please use YYYY-MM-DD."
	case errors.Is(err, transaction.ErrInvalidAmount):
		return "Invalid amount number."
	case errors.Is(err, transaction.ErrIllegalCharacter) && errors.As(err, &fe):
		return fmt.Sprintf("%s cannot contain commas or line breaks.", capitalize(fe.Field))
	case errors.Is(err, transaction.ErrIllegalCharacter):
		return "Fields cannot contain commas or line breaks."
	case errors.Is(err, transaction.ErrNoData):
		return "No transactions to chart."
	case errors.Is(err, store.ErrIO):
		return "Error accessing data file: " + err.Error()
	default:
		return err.Error()
	}
}

// Error renders Message(err) in the error style.
func Error(err error) string {
	return errorStyle.Render(Message(err))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
