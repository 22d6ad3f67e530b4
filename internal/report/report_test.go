package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/example/finance-tracker/internal/store"
	"github.com/example/finance-tracker/pkg/transaction"
)

func TestSummary(t *testing.T) {
	var totals transaction.Totals
	totals.Add("housing", decimal.RequireFromString("-950"))
	totals.Add("food", decimal.RequireFromString("12.5"))

	got := Summary("Monthly Summary:", "$", totals)

	assert.Equal(t, "Monthly Summary:\nhousing : $-950.00\nfood : $12.50\n", got)
}

func TestSummary_Empty(t *testing.T) {
	assert.Equal(t, "Monthly Summary:\n", Summary("Monthly Summary:", "$", transaction.Totals{}))
}

func TestTable(t *testing.T) {
	out := Table([]transaction.Transaction{
		{Date: "2024-05-01", Description: "rent", Amount: decimal.RequireFromString("-1000"), Category: "housing"},
		{Date: "2024-05-02", Description: "salary", Amount: decimal.RequireFromString("2500.5"), Category: "work"},
	})

	for _, want := range []string{"Date", "Description", "Amount", "Category", "2024-05-01", "rent", "-1000.00", "2500.50", "work"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "rent"), strings.Index(out, "salary"))
}

func TestTable_Empty(t *testing.T) {
	assert.Contains(t, Table(nil), "No transactions recorded.")
}

func TestCategorySeries(t *testing.T) {
	var totals transaction.Totals
	totals.Add("A", decimal.NewFromInt(70))
	totals.Add("B", decimal.NewFromInt(20))

	out := CategorySeries("$", totals)
	assert.Contains(t, out, "$70.00")
	assert.Contains(t, out, "$20.00")
	assert.Less(t, strings.Index(out, "$70.00"), strings.Index(out, "$20.00"))
}

func TestYearlySeries(t *testing.T) {
	out := YearlySeries("$", []transaction.MonthFlow{
		{Month: "2024-04", Income: decimal.NewFromInt(100), Expenses: decimal.Zero},
		{Month: "2024-05", Income: decimal.Zero, Expenses: decimal.RequireFromString("30.5")},
	})

	assert.Contains(t, out, "2024-04")
	assert.Contains(t, out, "$100.00")
	assert.Contains(t, out, "$30.50")
	assert.Less(t, strings.Index(out, "2024-04"), strings.Index(out, "2024-05"))
}

func TestMessage(t *testing.T) {
	newErr := func(date, desc, amount, cat string) error {
		_, err := transaction.New(date, desc, amount, cat)
		return err
	}

	assert.Equal(t, "Please enter all transaction fields.", Message(newErr("", "a", "1", "c")))
	assert.Equal(t, "Invalid date format. Please use YYYY-MM-DD.", Message(newErr("x", "a", "1", "c")))
	assert.Equal(t, "Invalid amount number.", Message(newErr("2024-01-01", "a", "x", "c")))
	assert.Equal(t, "Description cannot contain commas or line breaks.", Message(newErr("2024-01-01", "a,b", "1", "c")))
	assert.Equal(t, "Category cannot contain commas or line breaks.", Message(newErr("2024-01-01", "a", "1", "c,d")))
	assert.Equal(t, "No transactions to chart.", Message(transaction.ErrNoData))

	ioErr := fmt.Errorf("%w: save data.txt: permission denied", store.ErrIO)
	assert.Contains(t, Message(ioErr), "Error accessing data file")
	assert.Contains(t, Message(ioErr), "permission denied")

	assert.Equal(t, "something else", Message(fmt.Errorf("something else")))
}

func TestError(t *testing.T) {
	assert.Contains(t, Error(transaction.ErrNoData), "No transactions to chart.")
}
