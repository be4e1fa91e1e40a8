package domain

import (
	"fmt"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PrimaryRegime is the main simplified tax regime of the business.
type PrimaryRegime string

const (
	RegimeNone                PrimaryRegime = "NONE"
	RegimeFlatRevenue         PrimaryRegime = "FLAT_REVENUE"
	RegimeRevenueMinusExpense PrimaryRegime = "REVENUE_MINUS_EXPENSE"
)

// Valid reports whether r is a known primary regime.
func (r PrimaryRegime) Valid() bool {
	switch r {
	case RegimeNone, RegimeFlatRevenue, RegimeRevenueMinusExpense:
		return true
	}
	return false
}

// RegimeConfig is the active tax configuration of a business profile. The
// fixed-fee regime is an independent add-on rather than a third primary value.
type RegimeConfig struct {
	Primary                 PrimaryRegime   `json:"primary"`
	FixedFeeAddon           bool            `json:"fixedFeeAddon"`
	HasEmployees            bool            `json:"hasEmployees"`
	FixedFeeAccountFragment string          `json:"fixedFeeAccountFragment,omitempty"`
	FixedFeeCost            decimal.Decimal `json:"fixedFeeCost"`
}

// Validate returns apperrors.ErrRegimeMisconfigured when the configuration cannot be computed.
func (c RegimeConfig) Validate() error {
	if !c.Primary.Valid() {
		return fmt.Errorf("%w: unknown primary regime %q", apperrors.ErrRegimeMisconfigured, c.Primary)
	}
	if c.FixedFeeCost.IsNegative() {
		return fmt.Errorf("%w: fixed-fee cost must not be negative", apperrors.ErrRegimeMisconfigured)
	}
	if !c.FixedFeeAddon && c.FixedFeeAccountFragment != "" {
		return fmt.Errorf("%w: fixed-fee account fragment set without the fixed-fee add-on", apperrors.ErrRegimeMisconfigured)
	}
	return nil
}

// TagFragment returns the account fragment used for auto-tagging, or "" when
// the add-on is off.
func (c RegimeConfig) TagFragment() string {
	if !c.FixedFeeAddon {
		return ""
	}
	return c.FixedFeeAccountFragment
}
