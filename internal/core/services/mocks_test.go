package services_test

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock type for the ProfileRepositoryFacade interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.BusinessProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile domain.BusinessProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.BusinessProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessProfile), args.Error(1)
}

func (m *MockProfileRepository) ListProfilesByOwner(ctx context.Context, ownerID string) ([]domain.BusinessProfile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusinessProfile), args.Error(1)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) LoadLedger(ctx context.Context, profileID string) (domain.Ledger, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) SaveLedger(ctx context.Context, profileID string, ledger domain.Ledger) error {
	args := m.Called(ctx, profileID, ledger)
	return args.Error(0)
}
