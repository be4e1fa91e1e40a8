package models

import "github.com/shopspring/decimal"

// Profile is the row shape of the business_profiles table. The regime
// configuration is flattened into columns.
type Profile struct {
	ProfileID               string          `db:"profile_id"`
	OwnerID                 string          `db:"owner_id"`
	Name                    string          `db:"name"`
	INN                     string          `db:"inn"`
	PrimaryRegime           string          `db:"primary_regime"`
	FixedFeeAddon           bool            `db:"fixed_fee_addon"`
	HasEmployees            bool            `db:"has_employees"`
	FixedFeeAccountFragment *string         `db:"fixed_fee_account_fragment"` // Nullable
	FixedFeeCost            decimal.Decimal `db:"fixed_fee_cost"`
	AuditFields
}
