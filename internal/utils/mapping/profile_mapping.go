package mapping

import (
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/SscSPs/tax_ledger_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToModelProfile converts a domain BusinessProfile to a model Profile
func ToModelProfile(d domain.BusinessProfile) models.Profile {
	return models.Profile{
		ProfileID:               d.ProfileID,
		OwnerID:                 d.OwnerID,
		Name:                    d.Name,
		INN:                     d.INN,
		PrimaryRegime:           string(d.Regime.Primary),
		FixedFeeAddon:           d.Regime.FixedFeeAddon,
		HasEmployees:            d.Regime.HasEmployees,
		FixedFeeAccountFragment: nullableString(d.Regime.FixedFeeAccountFragment),
		FixedFeeCost:            d.Regime.FixedFeeCost,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfile converts a model Profile to a domain BusinessProfile
func ToDomainProfile(m models.Profile) domain.BusinessProfile {
	return domain.BusinessProfile{
		ProfileID: m.ProfileID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		INN:       m.INN,
		Regime: domain.RegimeConfig{
			Primary:                 domain.PrimaryRegime(m.PrimaryRegime),
			FixedFeeAddon:           m.FixedFeeAddon,
			HasEmployees:            m.HasEmployees,
			FixedFeeAccountFragment: stringValue(m.FixedFeeAccountFragment),
			FixedFeeCost:            m.FixedFeeCost,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProfileSlice converts a slice of model Profiles to a slice of domain BusinessProfiles
func ToDomainProfileSlice(ms []models.Profile) []domain.BusinessProfile {
	ds := make([]domain.BusinessProfile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfile(m)
	}
	return ds
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
