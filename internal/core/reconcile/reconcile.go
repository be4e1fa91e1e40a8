// Package reconcile combines a freshly imported batch with an existing ledger.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
)

// Strategy selects how a batch is combined with the existing ledger.
type Strategy string

const (
	// Unset means the caller has not decided yet.
	Unset   Strategy = ""
	Replace Strategy = "replace"
	Merge   Strategy = "merge"
)

// NotePrefixRunes bounds the part of the note that participates in duplicate detection.
const NotePrefixRunes = 50

// ParseStrategy parses a caller supplied strategy. The empty string maps to Unset.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case Unset:
		return Unset, nil
	case Replace:
		return Replace, nil
	case Merge:
		return Merge, nil
	}
	return Unset, fmt.Errorf("%w: unknown import strategy %q", apperrors.ErrValidation, s)
}

// Preview is what the caller is shown before choosing a strategy.
type Preview struct {
	NewCount      int `json:"newCount"`
	NewIncome     int `json:"newIncome"`
	NewExpense    int `json:"newExpense"`
	ExistingCount int `json:"existingCount"`
	Duplicates    int `json:"duplicates"`
}

// NeedsDecision reports whether committing requires an explicit strategy.
func (p Preview) NeedsDecision() bool {
	return p.ExistingCount > 0
}

// Result is the ledger produced by a reconciliation.
type Result struct {
	Ledger   domain.Ledger `json:"-"`
	Strategy Strategy      `json:"strategy"`
	Added    int           `json:"added"`
	Skipped  int           `json:"skipped"`
	Total    int           `json:"total"`
}

type dedupKey struct {
	day    string
	amount string
	note   string
}

func keyOf(t domain.Transaction) dedupKey {
	note := []rune(strings.TrimSpace(t.Note))
	if len(note) > NotePrefixRunes {
		note = note[:NotePrefixRunes]
	}
	return dedupKey{
		day:    t.Date.UTC().Format("2006-01-02"),
		amount: t.Amount.StringFixed(2),
		note:   string(note),
	}
}

func indexOf(ledger domain.Ledger) map[dedupKey]struct{} {
	idx := make(map[dedupKey]struct{}, len(ledger))
	for _, t := range ledger {
		idx[keyOf(t)] = struct{}{}
	}
	return idx
}

// NewPreview summarises batch against existing.
func NewPreview(existing, batch domain.Ledger) Preview {
	income, expense := batch.Split()
	idx := indexOf(existing)
	dups := 0
	for _, t := range batch {
		if _, ok := idx[keyOf(t)]; ok {
			dups++
		}
	}
	return Preview{
		NewCount:      len(batch),
		NewIncome:     income,
		NewExpense:    expense,
		ExistingCount: len(existing),
		Duplicates:    dups,
	}
}

// Reconcile applies strategy. An Unset strategy is only accepted when the
// existing ledger is empty; otherwise apperrors.ErrConfirmationRequired is
// returned and nothing changes.
func Reconcile(existing, batch domain.Ledger, strategy Strategy) (Result, error) {
	switch strategy {
	case Unset:
		if len(existing) > 0 {
			return Result{}, apperrors.ErrConfirmationRequired
		}
		strategy = Replace
	case Replace, Merge:
	default:
		return Result{}, fmt.Errorf("%w: unknown import strategy %q", apperrors.ErrValidation, strategy)
	}

	var out domain.Ledger
	skipped := 0

	if strategy == Replace {
		out = make(domain.Ledger, len(batch))
		copy(out, batch)
	} else {
		idx := indexOf(existing)
		fresh := make(domain.Ledger, 0, len(batch))
		for _, t := range batch {
			if _, dup := idx[keyOf(t)]; dup {
				skipped++
				continue
			}
			fresh = append(fresh, t)
		}
		out = make(domain.Ledger, 0, len(fresh)+len(existing))
		out = append(out, fresh...)
		out = append(out, existing...)
	}

	out.SortByDateDesc()
	return Result{
		Ledger:   out,
		Strategy: strategy,
		Added:    len(batch) - skipped,
		Skipped:  skipped,
		Total:    len(out),
	}, nil
}
