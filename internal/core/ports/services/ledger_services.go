package services

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
)

// LedgerPage is one page of a filtered ledger.
type LedgerPage struct {
	Transactions domain.Ledger
	NextToken    string
}

// LedgerReaderSvc defines read operations for a profile ledger
type LedgerReaderSvc interface {
	// ListTransactions returns the filtered ledger, most recent first.
	ListTransactions(ctx context.Context, profileID string, params dto.ListTransactionsParams, userID string) (*LedgerPage, error)
}

// LedgerWriterSvc defines manual edits of a profile ledger
type LedgerWriterSvc interface {
	AddTransaction(ctx context.Context, profileID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, profileID, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, profileID, transactionID string, userID string) error

	// ToggleRegimeTag flips the fixed-fee tag of one transaction.
	ToggleRegimeTag(ctx context.Context, profileID, transactionID string, userID string) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
