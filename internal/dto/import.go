package dto

import (
	"github.com/SscSPs/tax_ledger_app/internal/bankexchange"
	"github.com/SscSPs/tax_ledger_app/internal/core/reconcile"
)

// ImportParams defines query parameters for committing an import.
type ImportParams struct {
	Strategy string `form:"strategy" binding:"omitempty,oneof=replace merge"`
}

// ImportStatsResponse reports what the extractor did with an uploaded file.
type ImportStatsResponse struct {
	Documents int `json:"documents"`
	Extracted int `json:"extracted"`
	Rejected  int `json:"rejected"`
	Truncated int `json:"truncated"`
}

// ToImportStatsResponse converts extractor stats to DTO.
func ToImportStatsResponse(s bankexchange.Stats) ImportStatsResponse {
	return ImportStatsResponse{
		Documents: s.Documents,
		Extracted: s.Extracted,
		Rejected:  s.Rejected,
		Truncated: s.Truncated,
	}
}

// ImportPreviewResponse summarizes an upload against the current ledger.
type ImportPreviewResponse struct {
	Stats         ImportStatsResponse `json:"stats"`
	NewCount      int                 `json:"newCount"`
	NewIncome     int                 `json:"newIncome"`
	NewExpense    int                 `json:"newExpense"`
	ExistingCount int                 `json:"existingCount"`
	Duplicates    int                 `json:"duplicates"`
	NeedsDecision bool                `json:"needsDecision"`
}

// ToImportPreviewResponse converts a reconciliation preview to DTO.
func ToImportPreviewResponse(stats bankexchange.Stats, p reconcile.Preview) ImportPreviewResponse {
	return ImportPreviewResponse{
		Stats:         ToImportStatsResponse(stats),
		NewCount:      p.NewCount,
		NewIncome:     p.NewIncome,
		NewExpense:    p.NewExpense,
		ExistingCount: p.ExistingCount,
		Duplicates:    p.Duplicates,
		NeedsDecision: p.NeedsDecision(),
	}
}

// ImportResultResponse reports a committed import.
type ImportResultResponse struct {
	Stats    ImportStatsResponse `json:"stats"`
	Strategy reconcile.Strategy  `json:"strategy"`
	Added    int                 `json:"added"`
	Skipped  int                 `json:"skipped"`
	Total    int                 `json:"total"`
}

// ToImportResultResponse converts a reconciliation result to DTO.
func ToImportResultResponse(stats bankexchange.Stats, r reconcile.Result) ImportResultResponse {
	return ImportResultResponse{
		Stats:    ToImportStatsResponse(stats),
		Strategy: r.Strategy,
		Added:    r.Added,
		Skipped:  r.Skipped,
		Total:    r.Total,
	}
}

// ConfirmationRequiredResponse is returned with 409 when an import into a
// non-empty ledger needs an explicit strategy.
type ConfirmationRequiredResponse struct {
	Error   string                `json:"error"`
	Preview ImportPreviewResponse `json:"preview"`
}
