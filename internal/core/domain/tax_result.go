package domain

import "github.com/shopspring/decimal"

// TaxResult is the computed liability for a ledger under a regime. It is
// always derived and never stored.
type TaxResult struct {
	Income         decimal.Decimal `json:"income"`
	Expense        decimal.Decimal `json:"expense"`
	FixedFeeIncome decimal.Decimal `json:"fixedFeeIncome"`
	RegimeIncome   decimal.Decimal `json:"regimeIncome"`
	RegimeExpense  decimal.Decimal `json:"regimeExpense"`
	GrossTax       decimal.Decimal `json:"grossTax"`
	Contributions  decimal.Decimal `json:"contributions"`
	Deductible     decimal.Decimal `json:"deductible"`
	NetTax         decimal.Decimal `json:"netTax"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	LoadRatio      decimal.Decimal `json:"loadRatio"` // percent, one decimal place
	FixedFeeCost   decimal.Decimal `json:"fixedFeeCost"`
}
