package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the ledger_transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	ProfileID     string          `db:"profile_id"`
	Position      int             `db:"position"` // order within the stored ledger
	TxnDate       time.Time       `db:"txn_date"`
	Amount        decimal.Decimal `db:"amount"`
	Direction     string          `db:"direction"`
	Category      string          `db:"category"`
	Note          string          `db:"note"`
	AccountNumber *string         `db:"account_number"` // Nullable
	RegimeTag     *string         `db:"regime_tag"`     // Nullable
	Source        string          `db:"source"`
	AuditFields
}
