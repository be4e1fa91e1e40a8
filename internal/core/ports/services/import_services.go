package services

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/bankexchange"
	"github.com/SscSPs/tax_ledger_app/internal/core/reconcile"
)

// ImportPreview describes what committing an upload would do.
type ImportPreview struct {
	Stats   bankexchange.Stats
	Preview reconcile.Preview
}

// ImportOutcome describes a committed upload.
type ImportOutcome struct {
	Stats  bankexchange.Stats
	Result reconcile.Result
}

// ImportSvc ingests bank statement exports into a profile ledger
type ImportSvc interface {
	// PreviewImport parses raw and compares it with the current ledger without saving.
	PreviewImport(ctx context.Context, profileID string, raw []byte, userID string) (*ImportPreview, error)

	// CommitImport parses raw and reconciles it into the ledger. With an unset
	// strategy on a non-empty ledger it returns the preview together with
	// apperrors.ErrConfirmationRequired and leaves the ledger untouched.
	CommitImport(ctx context.Context, profileID string, raw []byte, strategy reconcile.Strategy, userID string) (*ImportOutcome, *ImportPreview, error)
}
