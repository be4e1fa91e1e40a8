package repositories

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
)

// LedgerReader defines read operations for the ledger of a profile
type LedgerReader interface {
	// LoadLedger returns the ledger of a profile, most recent first. An unknown
	// or empty profile yields an empty ledger, not an error.
	LoadLedger(ctx context.Context, profileID string) (domain.Ledger, error)
}

// LedgerWriter defines write operations for the ledger of a profile
type LedgerWriter interface {
	// SaveLedger atomically replaces the stored ledger of a profile.
	SaveLedger(ctx context.Context, profileID string, ledger domain.Ledger) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
