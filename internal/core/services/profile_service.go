package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
	newID       func() string
}

// ProfileServiceOption is a functional option for configuring the profile service
type ProfileServiceOption func(*profileService)

// WithProfileClock overrides the clock used for audit fields.
func WithProfileClock(now func() time.Time) ProfileServiceOption {
	return func(s *profileService) {
		s.Now = now
	}
}

// WithProfileIDGenerator overrides the profile ID generator.
func WithProfileIDGenerator(gen func() string) ProfileServiceOption {
	return func(s *profileService) {
		s.newID = gen
	}
}

// NewProfileService creates a new profile service.
func NewProfileService(repo portsrepo.ProfileRepositoryFacade, options ...ProfileServiceOption) portssvc.ProfileSvcFacade {
	svc := &profileService{
		profileRepo: repo,
		newID:       uuid.NewString,
	}
	svc.ProfileAuthorizer = svc
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) CreateProfile(ctx context.Context, req dto.CreateProfileRequest, userID string) (*domain.BusinessProfile, error) {
	regime := req.Regime.ToDomain()
	if err := regime.Validate(); err != nil {
		s.LogError(ctx, err, "Invalid regime for new profile", slog.String("user_id", userID))
		return nil, err
	}

	now := s.CurrentTime()
	profile := domain.BusinessProfile{
		ProfileID: s.newID(),
		OwnerID:   userID,
		Name:      strings.TrimSpace(req.Name),
		INN:       strings.TrimSpace(req.INN),
		Regime:    regime,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if profile.Name == "" {
		return nil, fmt.Errorf("%w: profile name must not be blank", apperrors.ErrValidation)
	}

	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile", slog.String("profile_id", profile.ProfileID))
		return nil, err
	}

	s.LogInfo(ctx, "Profile created successfully",
		slog.String("profile_id", profile.ProfileID),
		slog.String("regime", string(regime.Primary)),
		slog.Bool("fixed_fee_addon", regime.FixedFeeAddon))
	return &profile, nil
}

func (s *profileService) GetProfile(ctx context.Context, profileID string, userID string) (*domain.BusinessProfile, error) {
	return s.AuthorizeProfileAccess(ctx, userID, profileID)
}

func (s *profileService) ListProfiles(ctx context.Context, userID string) ([]domain.BusinessProfile, error) {
	profiles, err := s.profileRepo.ListProfilesByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list profiles", slog.String("user_id", userID))
		return nil, err
	}
	if profiles == nil {
		return []domain.BusinessProfile{}, nil
	}
	return profiles, nil
}

func (s *profileService) UpdateRegime(ctx context.Context, profileID string, req dto.UpdateRegimeRequest, userID string) (*domain.BusinessProfile, error) {
	profile, err := s.AuthorizeProfileAccess(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	regime := req.ToDomain()
	if err := regime.Validate(); err != nil {
		s.LogError(ctx, err, "Invalid regime update", slog.String("profile_id", profileID))
		return nil, err
	}

	updated := *profile
	updated.Regime = regime
	if req.INN != nil {
		updated.INN = strings.TrimSpace(*req.INN)
	}
	updated.LastUpdatedAt = s.CurrentTime()

	if err := s.profileRepo.UpdateProfile(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update profile regime", slog.String("profile_id", profileID))
		return nil, err
	}

	s.LogInfo(ctx, "Profile regime updated",
		slog.String("profile_id", profileID),
		slog.String("regime", string(regime.Primary)),
		slog.Bool("fixed_fee_addon", regime.FixedFeeAddon),
		slog.Bool("has_employees", regime.HasEmployees))
	return &updated, nil
}

func (s *profileService) AuthorizeProfileAccess(ctx context.Context, userID, profileID string) (*domain.BusinessProfile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.OwnerID != userID {
		return nil, fmt.Errorf("%w: profile %s belongs to another user", apperrors.ErrForbidden, profileID)
	}
	return profile, nil
}
