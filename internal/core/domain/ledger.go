package domain

import (
	"slices"
	"time"
)

// Ledger is the ordered collection of a business profile's transactions.
type Ledger []Transaction

// Find returns the index of the transaction with the given ID, or -1.
func (l Ledger) Find(transactionID string) int {
	return slices.IndexFunc(l, func(t Transaction) bool { return t.TransactionID == transactionID })
}

// Add returns a new ledger with txn in date order.
func (l Ledger) Add(txn Transaction) Ledger {
	out := make(Ledger, 0, len(l)+1)
	out = append(out, txn)
	out = append(out, l...)
	out.SortByDateDesc()
	return out
}

// Update replaces the transaction carrying txn's ID. The second return value
// is false when no such transaction exists.
func (l Ledger) Update(txn Transaction) (Ledger, bool) {
	idx := l.Find(txn.TransactionID)
	if idx < 0 {
		return l, false
	}
	out := slices.Clone(l)
	out[idx] = txn
	out.SortByDateDesc()
	return out, true
}

// Delete removes the transaction with the given ID.
func (l Ledger) Delete(transactionID string) (Ledger, bool) {
	idx := l.Find(transactionID)
	if idx < 0 {
		return l, false
	}
	out := slices.Clone(l)
	return slices.Delete(out, idx, idx+1), true
}

// ToggleRegimeTag flips the fixed-fee tag of one transaction.
func (l Ledger) ToggleRegimeTag(transactionID string, now time.Time) (Ledger, *Transaction, bool) {
	idx := l.Find(transactionID)
	if idx < 0 {
		return l, nil, false
	}
	out := slices.Clone(l)
	if out[idx].RegimeTag == FixedFeeTag {
		out[idx].RegimeTag = NoRegimeTag
	} else {
		out[idx].RegimeTag = FixedFeeTag
	}
	out[idx].LastUpdatedAt = now
	txn := out[idx]
	return out, &txn, true
}

// SortByDateDesc orders the ledger most recent first. Entries on the same day
// keep their relative order.
func (l Ledger) SortByDateDesc() {
	slices.SortStableFunc(l, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
}

// Split counts income and expense entries.
func (l Ledger) Split() (income, expense int) {
	for _, t := range l {
		if t.Direction == Income {
			income++
		} else {
			expense++
		}
	}
	return income, expense
}

// Between returns the transactions dated within [from, to).
func (l Ledger) Between(from, to time.Time) Ledger {
	var out Ledger
	for _, t := range l {
		if !t.Date.Before(from) && t.Date.Before(to) {
			out = append(out, t)
		}
	}
	return out
}
