package transaction

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrIllegalCharacter = errors.New("illegal character")
	ErrNoData           = errors.New("no data")
)

// FieldError reports which input field failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Year-first layouts only; month/day order is never guessed.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	time.RFC3339,
}

// Plain base-10 notation. decimal.NewFromString alone would also accept exponents.
var amountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)$`)

// New validates raw field text and builds a Transaction.
//
// Checks run in a fixed order: empty fields, date, amount, then
// delimiter characters. The first failure is returned as a *FieldError.
func New(date, description, amount, category string) (Transaction, error) {
	fields := []struct{ name, value string }{
		{"date", date},
		{"description", description},
		{"amount", amount},
		{"category", category},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return Transaction{}, &FieldError{Field: f.name, Err: ErrMissingField}
		}
	}

	day, err := ParseDate(date)
	if err != nil {
		return Transaction{}, &FieldError{Field: "date", Err: err}
	}

	value, err := ParseAmount(amount)
	if err != nil {
		return Transaction{}, &FieldError{Field: "amount", Err: err}
	}

	if hasIllegal(description) {
		return Transaction{}, &FieldError{Field: "description", Err: ErrIllegalCharacter}
	}
	if hasIllegal(category) {
		return Transaction{}, &FieldError{Field: "category", Err: ErrIllegalCharacter}
	}

	return Transaction{
		Date:        day.Format(DateLayout),
		Description: strings.TrimSpace(description),
		Amount:      value,
		Category:    strings.TrimSpace(category),
	}, nil
}

// ParseDate parses a year-first date and drops any time of day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ParseAmount parses a signed base-10 decimal such as "-12.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func hasIllegal(s string) bool {
	return strings.Contains(s, Delimiter) || strings.ContainsAny(s, "\r\n")
}
