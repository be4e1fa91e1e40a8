package services

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
)

// ProfileReaderSvc defines read operations for business profiles
type ProfileReaderSvc interface {
	// GetProfile retrieves a profile owned by userID.
	GetProfile(ctx context.Context, profileID string, userID string) (*domain.BusinessProfile, error)

	// ListProfiles retrieves all profiles owned by userID.
	ListProfiles(ctx context.Context, userID string) ([]domain.BusinessProfile, error)
}

// ProfileWriterSvc defines write operations for business profiles
type ProfileWriterSvc interface {
	// CreateProfile persists a new profile owned by userID.
	CreateProfile(ctx context.Context, req dto.CreateProfileRequest, userID string) (*domain.BusinessProfile, error)

	// UpdateRegime replaces the regime configuration of a profile.
	UpdateRegime(ctx context.Context, profileID string, req dto.UpdateRegimeRequest, userID string) (*domain.BusinessProfile, error)
}

// ProfileAuthorizerSvc resolves a profile on behalf of a caller
type ProfileAuthorizerSvc interface {
	// AuthorizeProfileAccess returns the profile when userID owns it and
	// apperrors.ErrForbidden otherwise.
	AuthorizeProfileAccess(ctx context.Context, userID, profileID string) (*domain.BusinessProfile, error)
}

// ProfileSvcFacade combines all profile-related service interfaces
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
	ProfileAuthorizerSvc
}
