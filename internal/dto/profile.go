package dto

import (
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegimeRequest describes the tax configuration of a profile.
type RegimeRequest struct {
	Primary                 string           `json:"primary" binding:"required,regime"`
	FixedFeeAddon           bool             `json:"fixedFeeAddon"`
	HasEmployees            bool             `json:"hasEmployees"`
	FixedFeeAccountFragment string           `json:"fixedFeeAccountFragment" binding:"omitempty,numeric,max=20"`
	FixedFeeCost            *decimal.Decimal `json:"fixedFeeCost"` // Optional, license cost per year
}

// ToDomain converts the request to a domain RegimeConfig.
func (r RegimeRequest) ToDomain() domain.RegimeConfig {
	cfg := domain.RegimeConfig{
		Primary:                 domain.PrimaryRegime(r.Primary),
		FixedFeeAddon:           r.FixedFeeAddon,
		HasEmployees:            r.HasEmployees,
		FixedFeeAccountFragment: r.FixedFeeAccountFragment,
		FixedFeeCost:            decimal.Zero,
	}
	if r.FixedFeeCost != nil {
		cfg.FixedFeeCost = *r.FixedFeeCost
	}
	return cfg
}

// CreateProfileRequest defines the data needed to create a business profile.
type CreateProfileRequest struct {
	Name   string        `json:"name" binding:"required,max=255"`
	INN    string        `json:"inn" binding:"omitempty,numeric,min=10,max=12"`
	Regime RegimeRequest `json:"regime"`
}

// UpdateRegimeRequest replaces the regime of a profile.
type UpdateRegimeRequest struct {
	RegimeRequest
	INN *string `json:"inn" binding:"omitempty,numeric,min=10,max=12"` // Optional: new own tax id
}

// ProfileResponse defines the data returned for a business profile.
type ProfileResponse struct {
	ProfileID     string              `json:"profileID"`
	Name          string              `json:"name"`
	INN           string              `json:"inn"`
	Regime        domain.RegimeConfig `json:"regime"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToProfileResponse converts a domain.BusinessProfile to ProfileResponse DTO
func ToProfileResponse(p *domain.BusinessProfile) ProfileResponse {
	return ProfileResponse{
		ProfileID:     p.ProfileID,
		Name:          p.Name,
		INN:           p.INN,
		Regime:        p.Regime,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ListProfilesResponse wraps a list of profiles.
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// ToListProfilesResponse converts a slice of domain.BusinessProfile to DTO.
func ToListProfilesResponse(ps []domain.BusinessProfile) ListProfilesResponse {
	list := make([]ProfileResponse, len(ps))
	for i := range ps {
		list[i] = ToProfileResponse(&ps[i])
	}
	return ListProfilesResponse{Profiles: list}
}
