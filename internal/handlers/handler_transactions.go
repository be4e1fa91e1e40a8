package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/SscSPs/tax_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to ledger entries.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
	}
}

// RegisterTransactionRoutes registers ledger routes under a single profile group.
func RegisterTransactionRoutes(profileGroup *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := profileGroup.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.addTransaction)
		transactions.PUT("/:transaction_id", h.updateTransaction)
		transactions.DELETE("/:transaction_id", h.deleteTransaction)
		transactions.POST("/:transaction_id/regime-tag", h.toggleRegimeTag)
	}
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Lists the profile's ledger, most recent first, with optional date and direction filters.
// @Tags transactions
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Param   from query string false "First date, YYYY-MM-DD"
// @Param   to query string false "Last date (inclusive), YYYY-MM-DD"
// @Param   direction query string false "INCOME or EXPENSE"
// @Param   limit query int false "Page size" default(100)
// @Param   nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /profiles/{profile_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	profileID := c.Param("profile_id")

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), profileID, params, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("profile_id", profileID)), err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page.Transactions, page.NextToken))
}

// addTransaction godoc
// @Summary Add a manual ledger entry
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Param   transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to add transaction"
// @Security BearerAuth
// @Router /profiles/{profile_id}/transactions [post]
func (h *transactionHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	profileID := c.Param("profile_id")

	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), profileID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("profile_id", profileID)), err, "Failed to add transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Edit a ledger entry
// @Description Updates only the fields present in the body.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Param   transaction_id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile or transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /profiles/{profile_id}/transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	profileID := c.Param("profile_id")
	transactionID := c.Param("transaction_id")
	logger = logger.With(slog.String("profile_id", profileID), slog.String("transaction_id", transactionID))

	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), profileID, transactionID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a ledger entry
// @Tags transactions
// @Param   profile_id path string true "Profile ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile or transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /profiles/{profile_id}/transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	profileID := c.Param("profile_id")
	transactionID := c.Param("transaction_id")
	logger = logger.With(slog.String("profile_id", profileID), slog.String("transaction_id", transactionID))

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), profileID, transactionID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// toggleRegimeTag godoc
// @Summary Toggle the fixed-fee tag of an entry
// @Description Moves an entry between the primary regime and the fixed-fee regime.
// @Tags transactions
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Fixed-fee add-on not enabled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile or transaction not found"
// @Failure 500 {object} map[string]string "Failed to toggle regime tag"
// @Security BearerAuth
// @Router /profiles/{profile_id}/transactions/{transaction_id}/regime-tag [post]
func (h *transactionHandler) toggleRegimeTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	profileID := c.Param("profile_id")
	transactionID := c.Param("transaction_id")
	logger = logger.With(slog.String("profile_id", profileID), slog.String("transaction_id", transactionID))

	txn, err := h.ledgerService.ToggleRegimeTag(c.Request.Context(), profileID, transactionID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to toggle regime tag")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
