package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical date form used for storage and ordering.
const DateLayout = "2006-01-02"

// Delimiter separates fields in the persisted record format.
const Delimiter = ","

// Transaction represents a single financial transaction.
// A non-negative Amount is income, a negative Amount is an expense.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
}

// Time parses the canonical date.
func (t Transaction) Time() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

// IsIncome reports whether the transaction counts as income.
func (t Transaction) IsIncome() bool {
	return !t.Amount.IsNegative()
}

// TransactionList holds an insertion-ordered collection of transactions
type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
}

// NewTransactionList returns a list seeded with ts.
func NewTransactionList(ts []Transaction) *TransactionList {
	tl := &TransactionList{}
	for _, t := range ts {
		tl.AddTransaction(t)
	}
	return tl
}

// AddTransaction appends a transaction to the list
func (tl *TransactionList) AddTransaction(t Transaction) {
	tl.Transactions = append(tl.Transactions, t)
}

// Len returns the number of transactions held.
func (tl *TransactionList) Len() int {
	return len(tl.Transactions)
}

// All returns a copy of the transactions in insertion order.
func (tl *TransactionList) All() []Transaction {
	out := make([]Transaction, len(tl.Transactions))
	copy(out, tl.Transactions)
	return out
}

// GetByCategory returns all transactions matching the given category
func (tl *TransactionList) GetByCategory(category string) []Transaction {
	var filtered []Transaction
	for _, t := range tl.Transactions {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
