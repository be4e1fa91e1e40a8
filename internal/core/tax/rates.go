package tax

import "github.com/shopspring/decimal"

// Statutory rates of the simplified regimes.
var (
	FlatRevenueRate      = decimal.RequireFromString("0.06")
	ProfitRate           = decimal.RequireFromString("0.15")
	MinimumTaxRate       = decimal.RequireFromString("0.01")
	EmployeeDeductionCap = decimal.RequireFromString("0.5")
)

// Defaults of the mandatory contribution schedule.
var (
	DefaultFixedContributions = decimal.NewFromInt(53658)
	DefaultSurchargeRate      = decimal.RequireFromString("0.01")
	DefaultSurchargeThreshold = decimal.NewFromInt(300000)
)

var hundred = decimal.NewFromInt(100)

// ContributionSchedule describes the mandatory contributions a business owner
// pays for themselves: a fixed yearly amount plus a surcharge on income above
// a threshold.
type ContributionSchedule struct {
	Fixed              decimal.Decimal
	SurchargeRate      decimal.Decimal
	SurchargeThreshold decimal.Decimal
}

// NewSchedule returns the statutory schedule with the given fixed amount.
func NewSchedule(fixed decimal.Decimal) ContributionSchedule {
	return ContributionSchedule{
		Fixed:              fixed,
		SurchargeRate:      DefaultSurchargeRate,
		SurchargeThreshold: DefaultSurchargeThreshold,
	}
}

// Surcharge is the income-dependent part of the contributions.
func (s ContributionSchedule) Surcharge(income decimal.Decimal) decimal.Decimal {
	excess := income.Sub(s.SurchargeThreshold)
	if !excess.IsPositive() {
		return decimal.Zero
	}
	return excess.Mul(s.SurchargeRate)
}

// Contributions is the total amount due for a year with the given income.
func (s ContributionSchedule) Contributions(income decimal.Decimal) decimal.Decimal {
	return s.Fixed.Add(s.Surcharge(income))
}

// Quarterly is the share of the schedule attributable to a single quarter:
// a quarter of the fixed amount and no surcharge, which falls due only after
// the year closes.
func (s ContributionSchedule) Quarterly() ContributionSchedule {
	return ContributionSchedule{
		Fixed:              s.Fixed.Div(decimal.NewFromInt(4)),
		SurchargeRate:      decimal.Zero,
		SurchargeThreshold: s.SurchargeThreshold,
	}
}
