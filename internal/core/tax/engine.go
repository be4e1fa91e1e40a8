// Package tax computes the liability of a ledger under the simplified
// regimes. Intermediate values are exact decimals; rounding to whole currency
// units happens once, in Compute.
package tax

import (
	"maps"
	"slices"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals are the unrounded bases and gross tax of a ledger.
type Totals struct {
	Income          decimal.Decimal
	Expense         decimal.Decimal
	FixedFeeIncome  decimal.Decimal
	FixedFeeExpense decimal.Decimal
	RegimeIncome    decimal.Decimal
	RegimeExpense   decimal.Decimal
	GrossTax        decimal.Decimal
}

// Net is the outcome of applying contributions to a gross tax.
type Net struct {
	Contributions decimal.Decimal
	Deductible    decimal.Decimal
	NetTax        decimal.Decimal
}

// ComputeTax sums the ledger and applies the primary regime. Transactions
// tagged with the fixed-fee regime stay out of both the income and the
// expense base of the primary regime.
func ComputeTax(ledger domain.Ledger, cfg domain.RegimeConfig) (Totals, error) {
	if err := cfg.Validate(); err != nil {
		return Totals{}, err
	}

	t := Totals{
		Income:          decimal.Zero,
		Expense:         decimal.Zero,
		FixedFeeIncome:  decimal.Zero,
		FixedFeeExpense: decimal.Zero,
		RegimeIncome:    decimal.Zero,
		RegimeExpense:   decimal.Zero,
		GrossTax:        decimal.Zero,
	}
	for _, txn := range ledger {
		switch txn.Direction {
		case domain.Income:
			t.Income = t.Income.Add(txn.Amount)
			if txn.IsFixedFee() {
				t.FixedFeeIncome = t.FixedFeeIncome.Add(txn.Amount)
			} else {
				t.RegimeIncome = t.RegimeIncome.Add(txn.Amount)
			}
		case domain.Expense:
			t.Expense = t.Expense.Add(txn.Amount)
			if txn.IsFixedFee() {
				t.FixedFeeExpense = t.FixedFeeExpense.Add(txn.Amount)
			} else {
				t.RegimeExpense = t.RegimeExpense.Add(txn.Amount)
			}
		}
	}

	t.GrossTax = GrossTax(cfg.Primary, t.RegimeIncome, t.RegimeExpense)
	return t, nil
}

// GrossTax applies a primary regime to its income and expense bases. The
// revenue-minus-expense regime never drops below the minimum tax on income,
// even at a loss.
func GrossTax(primary domain.PrimaryRegime, income, expense decimal.Decimal) decimal.Decimal {
	switch primary {
	case domain.RegimeFlatRevenue:
		return income.Mul(FlatRevenueRate)
	case domain.RegimeRevenueMinusExpense:
		profit := decimal.Max(decimal.Zero, income.Sub(expense))
		candidate := profit.Mul(ProfitRate)
		floor := income.Mul(MinimumTaxRate)
		return decimal.Max(candidate, floor)
	}
	return decimal.Zero
}

// Deduct reduces grossTax by contributions. Without employees the whole gross
// tax may be offset; with employees at most EmployeeDeductionCap of it.
func Deduct(grossTax, contributions decimal.Decimal, hasEmployees bool) (deductible, netTax decimal.Decimal) {
	limit := grossTax
	if hasEmployees {
		limit = grossTax.Mul(EmployeeDeductionCap)
	}
	deductible = decimal.Max(decimal.Zero, decimal.Min(contributions, limit))
	netTax = decimal.Max(decimal.Zero, grossTax.Sub(deductible))
	return deductible, netTax
}

// ComputeNet derives the contributions owed for income and deducts them from grossTax.
func ComputeNet(grossTax, income decimal.Decimal, cfg domain.RegimeConfig, schedule ContributionSchedule) (Net, error) {
	if err := cfg.Validate(); err != nil {
		return Net{}, err
	}
	contributions := schedule.Contributions(income)
	deductible, netTax := Deduct(grossTax, contributions, cfg.HasEmployees)
	return Net{
		Contributions: contributions,
		Deductible:    deductible,
		NetTax:        netTax,
	}, nil
}

// LoadRatio is netTax as a percentage of income, one decimal place.
func LoadRatio(netTax, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return netTax.Div(income).Mul(hundred).Round(1)
}

// Compute runs the full pipeline and rounds at the result boundary. Net tax is
// derived from the rounded gross and deduction so the three always reconcile.
func Compute(ledger domain.Ledger, cfg domain.RegimeConfig, schedule ContributionSchedule) (domain.TaxResult, error) {
	totals, err := ComputeTax(ledger, cfg)
	if err != nil {
		return domain.TaxResult{}, err
	}
	net, err := ComputeNet(totals.GrossTax, totals.Income, cfg, schedule)
	if err != nil {
		return domain.TaxResult{}, err
	}

	// The deduction is floored so a capped deduction never exceeds its cap.
	// A deduction that offsets the whole gross keeps doing so after rounding.
	gross := totals.GrossTax.Round(0)
	deductible := net.Deductible.RoundFloor(0)
	if net.Deductible.Equal(totals.GrossTax) {
		deductible = gross
	}
	deductible = decimal.Min(deductible, gross)
	netTax := gross.Sub(deductible)

	fixedFeeCost := decimal.Zero
	if cfg.FixedFeeAddon {
		fixedFeeCost = cfg.FixedFeeCost.Round(0)
	}

	return domain.TaxResult{
		Income:         totals.Income.Round(0),
		Expense:        totals.Expense.Round(0),
		FixedFeeIncome: totals.FixedFeeIncome.Round(0),
		RegimeIncome:   totals.RegimeIncome.Round(0),
		RegimeExpense:  totals.RegimeExpense.Round(0),
		GrossTax:       gross,
		Contributions:  net.Contributions.Round(0),
		Deductible:     deductible,
		NetTax:         netTax,
		NetProfit:      totals.Income.Sub(totals.Expense).Sub(netTax).Round(0),
		LoadRatio:      LoadRatio(netTax, totals.Income),
		FixedFeeCost:   fixedFeeCost,
	}, nil
}

// ComputeYears computes every calendar year of the ledger on its own and sums
// the results, so each year gets its own contributions and surcharge
// threshold. LoadRatio is taken over the summed figures.
func ComputeYears(ledger domain.Ledger, cfg domain.RegimeConfig, schedule ContributionSchedule) (domain.TaxResult, error) {
	byYear := make(map[int]domain.Ledger)
	for _, txn := range ledger {
		y := txn.Date.UTC().Year()
		byYear[y] = append(byYear[y], txn)
	}
	if len(byYear) <= 1 {
		return Compute(ledger, cfg, schedule)
	}

	years := slices.Sorted(maps.Keys(byYear))
	var sum domain.TaxResult
	for i, y := range years {
		res, err := Compute(byYear[y], cfg, schedule)
		if err != nil {
			return domain.TaxResult{}, err
		}
		if i == 0 {
			sum = res
			continue
		}
		sum.Income = sum.Income.Add(res.Income)
		sum.Expense = sum.Expense.Add(res.Expense)
		sum.FixedFeeIncome = sum.FixedFeeIncome.Add(res.FixedFeeIncome)
		sum.RegimeIncome = sum.RegimeIncome.Add(res.RegimeIncome)
		sum.RegimeExpense = sum.RegimeExpense.Add(res.RegimeExpense)
		sum.GrossTax = sum.GrossTax.Add(res.GrossTax)
		sum.Contributions = sum.Contributions.Add(res.Contributions)
		sum.Deductible = sum.Deductible.Add(res.Deductible)
		sum.NetTax = sum.NetTax.Add(res.NetTax)
		sum.NetProfit = sum.NetProfit.Add(res.NetProfit)
		sum.FixedFeeCost = sum.FixedFeeCost.Add(res.FixedFeeCost)
	}
	sum.LoadRatio = LoadRatio(sum.NetTax, sum.Income)
	return sum, nil
}
