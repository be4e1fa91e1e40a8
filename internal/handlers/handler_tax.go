package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/SscSPs/tax_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxHandler handles tax summary and payment calendar requests.
type taxHandler struct {
	taxService portssvc.TaxSvc
}

func newTaxHandler(ts portssvc.TaxSvc) *taxHandler {
	return &taxHandler{
		taxService: ts,
	}
}

// RegisterTaxRoutes registers tax routes under a single profile group.
func RegisterTaxRoutes(profileGroup *gin.RouterGroup, taxService portssvc.TaxSvc) {
	h := newTaxHandler(taxService)

	profileGroup.GET("/tax", h.getTaxSummary)
	profileGroup.GET("/calendar", h.getCalendar)
}

// getTaxSummary godoc
// @Summary Compute the tax liability
// @Description Computes gross tax, deductions, net tax and load ratio for one year, or the whole ledger when year is omitted.
// @Tags tax
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Param   year query int false "Calendar year"
// @Success 200 {object} dto.TaxSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 422 {object} map[string]string "Regime cannot be computed"
// @Failure 500 {object} map[string]string "Failed to compute tax"
// @Security BearerAuth
// @Router /profiles/{profile_id}/tax [get]
func (h *taxHandler) getTaxSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.TaxParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for TaxSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	profileID := c.Param("profile_id")

	summary, err := h.taxService.Summary(c.Request.Context(), profileID, params.Year, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("profile_id", profileID)), err, "Failed to compute tax")
		return
	}

	c.JSON(http.StatusOK, dto.TaxSummaryResponse{
		Year:              summary.Year,
		Regime:            summary.Regime,
		Result:            summary.Result,
		LoadElevated:      summary.LoadElevated,
		SafeLoadThreshold: summary.SafeLoadThreshold,
	})
}

// getCalendar godoc
// @Summary Project the payment calendar
// @Description Lists the statutory obligations of the current year with projected amounts and overdue flags.
// @Tags tax
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Success 200 {object} dto.CalendarResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 422 {object} map[string]string "Regime cannot be computed"
// @Failure 500 {object} map[string]string "Failed to project calendar"
// @Security BearerAuth
// @Router /profiles/{profile_id}/calendar [get]
func (h *taxHandler) getCalendar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	profileID := c.Param("profile_id")

	year, obligations, err := h.taxService.Calendar(c.Request.Context(), profileID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("profile_id", profileID)), err, "Failed to project calendar")
		return
	}

	c.JSON(http.StatusOK, dto.CalendarResponse{Year: year, Obligations: obligations})
}
