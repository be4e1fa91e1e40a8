package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/core/calendar"
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/core/tax"
	"github.com/shopspring/decimal"
)

// DefaultSafeLoadThreshold is the load ratio, in percent, above which a
// summary is flagged.
var DefaultSafeLoadThreshold = decimal.NewFromInt(6)

type taxService struct {
	BaseService
	ledgerRepo    portsrepo.LedgerReader
	schedule      tax.ContributionSchedule
	safeThreshold decimal.Decimal
}

// TaxServiceOption is a functional option for configuring the tax service
type TaxServiceOption func(*taxService)

// WithFixedContributions sets the statutory fixed yearly contribution.
func WithFixedContributions(amount decimal.Decimal) TaxServiceOption {
	return func(s *taxService) {
		s.schedule.Fixed = amount
	}
}

// WithSafeLoadThreshold sets the load ratio above which a summary is flagged.
func WithSafeLoadThreshold(percent decimal.Decimal) TaxServiceOption {
	return func(s *taxService) {
		s.safeThreshold = percent
	}
}

// WithTaxClock overrides the clock that decides the current quarter.
func WithTaxClock(now func() time.Time) TaxServiceOption {
	return func(s *taxService) {
		s.Now = now
	}
}

// NewTaxService creates a new tax service.
func NewTaxService(repo portsrepo.LedgerReader, authorizer portssvc.ProfileAuthorizerSvc, options ...TaxServiceOption) portssvc.TaxSvc {
	svc := &taxService{
		BaseService:   BaseService{ProfileAuthorizer: authorizer},
		ledgerRepo:    repo,
		schedule:      tax.NewSchedule(tax.DefaultFixedContributions),
		safeThreshold: DefaultSafeLoadThreshold,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TaxSvc = (*taxService)(nil)

func (s *taxService) Summary(ctx context.Context, profileID string, year int, userID string) (*portssvc.TaxSummary, error) {
	profile, err := s.AuthorizeProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.LoadLedger(ctx, profileID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", slog.String("profile_id", profileID))
		return nil, err
	}
	compute := tax.ComputeYears
	if year != 0 {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		ledger = ledger.Between(start, start.AddDate(1, 0, 0))
		compute = tax.Compute
	}

	result, err := compute(ledger, profile.Regime, s.schedule)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute tax", slog.String("profile_id", profileID))
		return nil, err
	}

	summary := &portssvc.TaxSummary{
		Year:              year,
		Regime:            profile.Regime,
		Result:            result,
		LoadElevated:      result.LoadRatio.GreaterThan(s.safeThreshold),
		SafeLoadThreshold: s.safeThreshold,
	}
	s.LogDebug(ctx, "Tax computed",
		slog.String("profile_id", profileID),
		slog.Int("year", year),
		slog.String("net_tax", result.NetTax.String()),
		slog.String("load_ratio", result.LoadRatio.String()))
	return summary, nil
}

func (s *taxService) Calendar(ctx context.Context, profileID string, userID string) (int, []calendar.Obligation, error) {
	profile, err := s.AuthorizeProfile(ctx, userID, profileID)
	if err != nil {
		return 0, nil, err
	}

	ledger, err := s.ledgerRepo.LoadLedger(ctx, profileID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", slog.String("profile_id", profileID))
		return 0, nil, err
	}

	now := s.CurrentTime()
	obligations, err := calendar.Project(ledger, profile.Regime, s.schedule, calendar.StatutoryDeadlines(now.Year()), now)
	if err != nil {
		s.LogError(ctx, err, "Failed to project calendar", slog.String("profile_id", profileID))
		return 0, nil, err
	}
	if obligations == nil {
		obligations = []calendar.Obligation{}
	}
	return now.Year(), obligations, nil
}
