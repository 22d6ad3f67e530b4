// Package ledger holds one user session: the loaded transactions, the
// current sort order and the operations the front end calls.
package ledger

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/finance-tracker/pkg/transaction"
)

// Store loads and saves the full transaction set.
type Store interface {
	Load() ([]transaction.Transaction, error)
	Save([]transaction.Transaction) error
}

// Session is not safe for concurrent use.
type Session struct {
	store       Store
	list        *transaction.TransactionList
	newestFirst bool
	now         func() time.Time
	log         zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for session events.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithNewestFirst sets the initial sort order of Listing.
func WithNewestFirst(newestFirst bool) Option {
	return func(s *Session) { s.newestFirst = newestFirst }
}

// WithClock overrides time.Now for month and year calculations.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Open loads the transaction set from store. If loading fails the session
// is still returned, empty, alongside the error.
func Open(store Store, opts ...Option) (*Session, error) {
	s := &Session{
		store:       store,
		list:        &transaction.TransactionList{},
		newestFirst: true,
		now:         time.Now,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "ledger").Logger()

	ts, err := store.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("load failed, starting with an empty ledger")
		return s, err
	}
	s.list = transaction.NewTransactionList(ts)
	s.log.Debug().Int("transactions", s.list.Len()).Msg("session opened")
	return s, nil
}

// Submit validates the fields, appends the transaction and saves the full set.
// A validation error leaves the session untouched. A save error is returned
// after the transaction has been appended.
func (s *Session) Submit(date, description, amount, category string) (transaction.Transaction, error) {
	t, err := transaction.New(date, description, amount, category)
	if err != nil {
		s.log.Debug().Err(err).Msg("transaction rejected")
		return transaction.Transaction{}, err
	}

	s.list.AddTransaction(t)
	s.log.Info().
		Str("date", t.Date).
		Str("amount", t.Amount.String()).
		Str("category", t.Category).
		Msg("transaction added")

	if err := s.store.Save(s.list.Transactions); err != nil {
		return t, err
	}
	return t, nil
}

// Len returns the number of transactions in the session.
func (s *Session) Len() int {
	return s.list.Len()
}

// Transactions returns the collection in insertion order.
func (s *Session) Transactions() []transaction.Transaction {
	return s.list.All()
}

// NewestFirst reports the current listing direction.
func (s *Session) NewestFirst() bool {
	return s.newestFirst
}

// SetSortOrder changes the listing direction and returns the re-sorted view.
func (s *Session) SetSortOrder(newestFirst bool) []transaction.Transaction {
	s.newestFirst = newestFirst
	return s.Listing()
}

// Listing returns the transactions sorted by date in the current direction.
func (s *Session) Listing() []transaction.Transaction {
	return transaction.Sorted(s.list.Transactions, s.newestFirst)
}

// Filter returns the sorted listing restricted to one category.
func (s *Session) Filter(category string) []transaction.Transaction {
	return transaction.Sorted(s.list.GetByCategory(category), s.newestFirst)
}

// MonthlySummary totals the current month per category.
func (s *Session) MonthlySummary() transaction.Totals {
	return transaction.MonthlySummary(s.list.Transactions, s.now())
}

// CategoryChart returns all-time totals per category.
func (s *Session) CategoryChart() (transaction.Totals, error) {
	totals, err := transaction.CategoryTotals(s.list.Transactions)
	if errors.Is(err, transaction.ErrNoData) {
		s.log.Debug().Msg("no transactions for category chart")
	}
	return totals, err
}

// YearlyChart returns the trailing twelve months of income and expenses.
func (s *Session) YearlyChart() ([]transaction.MonthFlow, error) {
	flows, err := transaction.TrailingYear(s.list.Transactions, s.now())
	if errors.Is(err, transaction.ErrNoData) {
		s.log.Debug().Msg("no transactions in the past year")
	}
	return flows, err
}

// Close persists the current state.
func (s *Session) Close() error {
	if err := s.store.Save(s.list.Transactions); err != nil {
		return err
	}
	s.log.Debug().Int("transactions", s.list.Len()).Msg("session closed")
	return nil
}
