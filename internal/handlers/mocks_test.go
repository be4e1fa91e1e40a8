package handlers_test

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/core/calendar"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/core/reconcile"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) CreateProfile(ctx context.Context, req dto.CreateProfileRequest, userID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}
func (m *MockProfileService) GetProfile(ctx context.Context, profileID string, userID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, profileID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}
func (m *MockProfileService) ListProfiles(ctx context.Context, userID string) ([]domain.BusinessProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessProfile), args.Error(1)
}
func (m *MockProfileService) UpdateRegime(ctx context.Context, profileID string, req dto.UpdateRegimeRequest, userID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, profileID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}
func (m *MockProfileService) AuthorizeProfileAccess(ctx context.Context, userID, profileID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, userID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, profileID string, params dto.ListTransactionsParams, userID string) (*portssvc.LedgerPage, error) {
	args := m.Called(ctx, profileID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.LedgerPage), args.Error(1)
}
func (m *MockLedgerService) AddTransaction(ctx context.Context, profileID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, profileID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) UpdateTransaction(ctx context.Context, profileID, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, profileID, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, profileID, transactionID string, userID string) error {
	args := m.Called(ctx, profileID, transactionID, userID)
	return args.Error(0)
}
func (m *MockLedgerService) ToggleRegimeTag(ctx context.Context, profileID, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, profileID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ImportService ---
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) PreviewImport(ctx context.Context, profileID string, raw []byte, userID string) (*portssvc.ImportPreview, error) {
	args := m.Called(ctx, profileID, raw, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.ImportPreview), args.Error(1)
}
func (m *MockImportService) CommitImport(ctx context.Context, profileID string, raw []byte, strategy reconcile.Strategy, userID string) (*portssvc.ImportOutcome, *portssvc.ImportPreview, error) {
	args := m.Called(ctx, profileID, raw, strategy, userID)
	var outcome *portssvc.ImportOutcome
	if v := args.Get(0); v != nil {
		outcome = v.(*portssvc.ImportOutcome)
	}
	var preview *portssvc.ImportPreview
	if v := args.Get(1); v != nil {
		preview = v.(*portssvc.ImportPreview)
	}
	return outcome, preview, args.Error(2)
}

var _ portssvc.ImportSvc = (*MockImportService)(nil)

// --- Mock TaxService ---
type MockTaxService struct {
	mock.Mock
}

func (m *MockTaxService) Summary(ctx context.Context, profileID string, year int, userID string) (*portssvc.TaxSummary, error) {
	args := m.Called(ctx, profileID, year, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.TaxSummary), args.Error(1)
}
func (m *MockTaxService) Calendar(ctx context.Context, profileID string, userID string) (int, []calendar.Obligation, error) {
	args := m.Called(ctx, profileID, userID)
	var obs []calendar.Obligation
	if v := args.Get(1); v != nil {
		obs = v.([]calendar.Obligation)
	}
	return args.Int(0), obs, args.Error(2)
}

var _ portssvc.TaxSvc = (*MockTaxService)(nil)
