// Package memory provides repository implementations that keep all data in
// process memory. Data is lost on restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
)

// Store is an in-memory implementation of the profile and ledger
// repositories. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]domain.BusinessProfile
	ledgers  map[string]domain.Ledger
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		profiles: make(map[string]domain.BusinessProfile),
		ledgers:  make(map[string]domain.Ledger),
	}
}

var (
	_ portsrepo.ProfileRepositoryFacade = (*Store)(nil)
	_ portsrepo.LedgerRepositoryFacade  = (*Store)(nil)
)

// NewRepositoryProvider exposes one store through both repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo: store,
		LedgerRepo:  store,
	}
}

// SaveProfile implements portsrepo.ProfileWriter.
func (s *Store) SaveProfile(ctx context.Context, profile domain.BusinessProfile) error {
	if profile.ProfileID == "" {
		return fmt.Errorf("%w: profile ID is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.ProfileID]; exists {
		return fmt.Errorf("%w: profile %s already exists", apperrors.ErrDuplicate, profile.ProfileID)
	}
	s.profiles[profile.ProfileID] = profile
	return nil
}

// UpdateProfile implements portsrepo.ProfileWriter.
func (s *Store) UpdateProfile(ctx context.Context, profile domain.BusinessProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.profiles[profile.ProfileID]
	if !exists {
		return apperrors.ErrNotFound
	}
	profile.OwnerID = existing.OwnerID
	profile.CreatedAt = existing.CreatedAt
	s.profiles[profile.ProfileID] = profile
	return nil
}

// FindProfileByID implements portsrepo.ProfileReader.
func (s *Store) FindProfileByID(ctx context.Context, profileID string) (*domain.BusinessProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.profiles[profileID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return &profile, nil
}

// ListProfilesByOwner implements portsrepo.ProfileReader.
func (s *Store) ListProfilesByOwner(ctx context.Context, ownerID string) ([]domain.BusinessProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.BusinessProfile{}
	for _, p := range s.profiles {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	slices.SortFunc(result, func(a, b domain.BusinessProfile) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.ProfileID < b.ProfileID {
			return -1
		}
		if a.ProfileID > b.ProfileID {
			return 1
		}
		return 0
	})
	return result, nil
}

// LoadLedger implements portsrepo.LedgerReader. The returned ledger is a copy.
func (s *Store) LoadLedger(ctx context.Context, profileID string) (domain.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.ledgers[profileID]), nil
}

// SaveLedger implements portsrepo.LedgerWriter.
func (s *Store) SaveLedger(ctx context.Context, profileID string, ledger domain.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profileID]; !exists {
		return apperrors.ErrNotFound
	}
	s.ledgers[profileID] = slices.Clone(ledger)
	return nil
}
