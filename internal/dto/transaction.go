package dto

import (
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to add a manual ledger entry.
type CreateTransactionRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     string          `json:"direction" binding:"required,oneof=INCOME EXPENSE"`
	Category      string          `json:"category" binding:"omitempty,max=64"`
	Note          string          `json:"note" binding:"max=2000"`
	AccountNumber string          `json:"accountNumber" binding:"omitempty,max=34"`
	FixedFee      bool            `json:"fixedFee"`
}

// UpdateTransactionRequest defines the fields allowed for editing an entry.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Date          *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount        *decimal.Decimal `json:"amount"`
	Direction     *string          `json:"direction" binding:"omitempty,oneof=INCOME EXPENSE"`
	Category      *string          `json:"category" binding:"omitempty,max=64"`
	Note          *string          `json:"note" binding:"omitempty,max=2000"`
	AccountNumber *string          `json:"accountNumber" binding:"omitempty,max=34"`
}

// ListTransactionsParams defines query parameters for listing a ledger.
type ListTransactionsParams struct {
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"` // inclusive
	Direction string `form:"direction" binding:"omitempty,oneof=INCOME EXPENSE"`
	Limit     int    `form:"limit,default=100" binding:"min=1,max=1000"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string           `json:"transactionID"`
	Date          string           `json:"date"`
	Amount        decimal.Decimal  `json:"amount"`
	Direction     domain.Direction `json:"direction"`
	Category      string           `json:"category"`
	Note          string           `json:"note"`
	AccountNumber string           `json:"accountNumber,omitempty"`
	RegimeTag     domain.RegimeTag `json:"regimeTag,omitempty"`
	Source        domain.Source    `json:"source"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date.Format(DateLayout),
		Amount:        t.Amount,
		Direction:     t.Direction,
		Category:      t.Category,
		Note:          t.Note,
		AccountNumber: t.AccountNumber,
		RegimeTag:     t.RegimeTag,
		Source:        t.Source,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ListTransactionsResponse wraps one page of a ledger.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	IncomeCount  int                   `json:"incomeCount"`
	ExpenseCount int                   `json:"expenseCount"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a ledger page to DTO. Counts describe
// the page only.
func ToListTransactionsResponse(l domain.Ledger, nextToken string) ListTransactionsResponse {
	list := make([]TransactionResponse, len(l))
	for i := range l {
		list[i] = ToTransactionResponse(&l[i])
	}
	income, expense := l.Split()
	return ListTransactionsResponse{
		Transactions: list,
		IncomeCount:  income,
		ExpenseCount: expense,
		NextToken:    nextToken,
	}
}
