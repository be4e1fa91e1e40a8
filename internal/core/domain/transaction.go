package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether money came in or went out.
type Direction string

const (
	Income  Direction = "INCOME"
	Expense Direction = "EXPENSE"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == Income || d == Expense
}

// RegimeTag overrides the regime a transaction is taxed under.
type RegimeTag string

const (
	// NoRegimeTag means the transaction belongs to the primary regime.
	NoRegimeTag RegimeTag = ""
	// FixedFeeTag marks a transaction as covered by the fixed-fee (patent) regime.
	FixedFeeTag RegimeTag = "FIXED_FEE"
)

// Source records how a transaction entered the ledger.
type Source string

const (
	SourceImport Source = "IMPORT"
	SourceManual Source = "MANUAL"
)

// Auto-assigned categories.
const (
	CategorySales    = "sales"
	CategoryRent     = "rent"
	CategoryTaxes    = "taxes"
	CategoryPayroll  = "payroll"
	CategoryBankFees = "bank_fees"
	CategoryOther    = "other"
)

// Transaction is a single ledger entry. Amount is always non-negative; the
// sign lives in Direction.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     Direction       `json:"direction"`
	Category      string          `json:"category"`
	Note          string          `json:"note"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	RegimeTag     RegimeTag       `json:"regimeTag,omitempty"`
	Source        Source          `json:"source"`
	AuditFields
}

// IsFixedFee reports whether the transaction is taxed under the fixed-fee regime.
func (t Transaction) IsFixedFee() bool {
	return t.RegimeTag == FixedFeeTag
}

// Validate checks the invariants every stored transaction must satisfy.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return errors.New("transaction ID is required")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative, got %s", t.Amount.String())
	}
	if !t.Direction.Valid() {
		return fmt.Errorf("unknown transaction direction %q", t.Direction)
	}
	if t.RegimeTag != NoRegimeTag && t.RegimeTag != FixedFeeTag {
		return fmt.Errorf("unknown regime tag %q", t.RegimeTag)
	}
	return nil
}
