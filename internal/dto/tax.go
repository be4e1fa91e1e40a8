package dto

import (
	"github.com/SscSPs/tax_ledger_app/internal/core/calendar"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxParams defines query parameters for a tax summary.
type TaxParams struct {
	Year int `form:"year" binding:"omitempty,min=2000,max=2100"` // 0 means the whole ledger
}

// TaxSummaryResponse defines the data returned for a tax summary.
type TaxSummaryResponse struct {
	Year              int                 `json:"year,omitempty"`
	Regime            domain.RegimeConfig `json:"regime"`
	Result            domain.TaxResult    `json:"result"`
	LoadElevated      bool                `json:"loadElevated"`
	SafeLoadThreshold decimal.Decimal     `json:"safeLoadThreshold"`
}

// CalendarResponse lists the obligations of the current year.
type CalendarResponse struct {
	Year        int                   `json:"year"`
	Obligations []calendar.Obligation `json:"obligations"`
}
