package transaction

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAmount is the running total of one category.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// Totals maps category to a signed total and remembers the order in which
// categories were first seen.
type Totals struct {
	entries []CategoryAmount
	index   map[string]int
}

// Add inserts category with amount, or accumulates onto its existing total.
func (t *Totals) Add(category string, amount decimal.Decimal) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[category]; ok {
		t.entries[i].Amount = t.entries[i].Amount.Add(amount)
		return
	}
	t.index[category] = len(t.entries)
	t.entries = append(t.entries, CategoryAmount{Category: category, Amount: amount})
}

// Get returns the total for category and whether it is present.
func (t Totals) Get(category string) (decimal.Decimal, bool) {
	i, ok := t.index[category]
	if !ok {
		return decimal.Zero, false
	}
	return t.entries[i].Amount, true
}

// Len returns the number of categories.
func (t Totals) Len() int {
	return len(t.entries)
}

// Entries returns the totals in first-encounter order.
func (t Totals) Entries() []CategoryAmount {
	return slices.Clone(t.entries)
}

// MonthFlow is the income and expense volume of one calendar month.
// Expenses is a magnitude and is never negative.
type MonthFlow struct {
	Month    string // YYYY-MM
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthlySummary totals transactions per category for the month containing today.
// Income and expenses of one category offset each other.
func MonthlySummary(ts []Transaction, today time.Time) Totals {
	year, month := today.Format("2006"), today.Format("01")

	var totals Totals
	for _, t := range ts {
		parts := strings.Split(t.Date, "-")
		if len(parts) < 2 || parts[0] != year || parts[1] != month {
			continue
		}
		totals.Add(t.Category, t.Amount)
	}
	return totals
}

// CategoryTotals totals every transaction per category.
func CategoryTotals(ts []Transaction) (Totals, error) {
	if len(ts) == 0 {
		return Totals{}, ErrNoData
	}
	var totals Totals
	for _, t := range ts {
		totals.Add(t.Category, t.Amount)
	}
	return totals, nil
}

// TrailingYear splits income and expenses per month for transactions dated
// on or after today minus one calendar year. Months are returned oldest first.
func TrailingYear(ts []Transaction, today time.Time) ([]MonthFlow, error) {
	cutoff := YearBefore(today)

	flows := make(map[string]*MonthFlow)
	for _, t := range ts {
		day, err := t.Time()
		if err != nil || day.Before(cutoff) {
			continue
		}
		key := day.Format("2006-01")
		f, ok := flows[key]
		if !ok {
			f = &MonthFlow{Month: key}
			flows[key] = f
		}
		if t.IsIncome() {
			f.Income = f.Income.Add(t.Amount)
		} else {
			f.Expenses = f.Expenses.Add(t.Amount.Abs())
		}
	}
	if len(flows) == 0 {
		return nil, ErrNoData
	}

	out := make([]MonthFlow, 0, len(flows))
	for _, key := range slices.Sorted(maps.Keys(flows)) {
		out = append(out, *flows[key])
	}
	return out, nil
}

// YearBefore returns the date one calendar year before day, at midnight UTC.
// February 29 maps to February 28 rather than rolling into March.
func YearBefore(day time.Time) time.Time {
	y, m, d := day.Date()
	if m == time.February && d == 29 {
		d = 28
	}
	return time.Date(y-1, m, d, 0, 0, 0, 0, time.UTC)
}
