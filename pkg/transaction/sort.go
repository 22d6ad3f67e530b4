package transaction

import (
	"slices"
	"strings"
)

// Sorted returns a copy of ts ordered by canonical date.
// Canonical dates are fixed-width and zero-padded, so string order is
// chronological order.
func Sorted(ts []Transaction, newestFirst bool) []Transaction {
	out := slices.Clone(ts)
	slices.SortStableFunc(out, func(a, b Transaction) int {
		if newestFirst {
			return strings.Compare(b.Date, a.Date)
		}
		return strings.Compare(a.Date, b.Date)
	})
	return out
}
