package services

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/core/calendar"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxSummary is a computed liability with the load assessment.
type TaxSummary struct {
	Year              int
	Regime            domain.RegimeConfig
	Result            domain.TaxResult
	LoadElevated      bool
	SafeLoadThreshold decimal.Decimal
}

// TaxSvc reports the liability and payment calendar of a profile
type TaxSvc interface {
	// Summary computes the tax of one calendar year, or of the whole ledger when year is 0.
	Summary(ctx context.Context, profileID string, year int, userID string) (*TaxSummary, error)

	// Calendar projects the obligations of the current year.
	Calendar(ctx context.Context, profileID string, userID string) (int, []calendar.Obligation, error)
}
