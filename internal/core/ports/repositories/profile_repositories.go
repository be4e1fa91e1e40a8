package repositories

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
)

// ProfileReader defines read operations for business profiles
type ProfileReader interface {
	// FindProfileByID retrieves a profile by its ID. Returns apperrors.ErrNotFound when missing.
	FindProfileByID(ctx context.Context, profileID string) (*domain.BusinessProfile, error)

	// ListProfilesByOwner retrieves all profiles owned by a user, oldest first.
	ListProfilesByOwner(ctx context.Context, ownerID string) ([]domain.BusinessProfile, error)
}

// ProfileWriter defines write operations for business profiles
type ProfileWriter interface {
	// SaveProfile persists a new profile.
	SaveProfile(ctx context.Context, profile domain.BusinessProfile) error

	// UpdateProfile overwrites the name, tax id and regime of an existing profile.
	UpdateProfile(ctx context.Context, profile domain.BusinessProfile) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
