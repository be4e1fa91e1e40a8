package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/core/reconcile"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/SscSPs/tax_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UploadField is the multipart form field carrying the statement file.
const UploadField = "file"

// importHandler handles bank statement uploads.
type importHandler struct {
	importService  portssvc.ImportSvc
	maxUploadBytes int64
}

func newImportHandler(is portssvc.ImportSvc, maxUploadBytes int64) *importHandler {
	return &importHandler{
		importService:  is,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterImportRoutes registers import routes under a single profile group.
// Extra handlers, such as a rate limiter, run before the upload is read.
func RegisterImportRoutes(profileGroup *gin.RouterGroup, importService portssvc.ImportSvc, maxUploadBytes int64, extra ...gin.HandlerFunc) {
	h := newImportHandler(importService, maxUploadBytes)

	imports := profileGroup.Group("/imports", extra...)
	{
		imports.POST("/preview", h.previewImport)
		imports.POST("", h.commitImport)
	}
}

// readUpload returns the bytes of the uploaded statement.
func (h *importHandler) readUpload(c *gin.Context) ([]byte, error) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	header, err := c.FormFile(UploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.NewAppError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("statement exceeds %d bytes", tooLarge.Limit), err)
		}
		return nil, fmt.Errorf("%w: multipart field %q is required", apperrors.ErrValidation, UploadField)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return raw, nil
}

// previewImport godoc
// @Summary Preview a statement import
// @Description Parses an uploaded 1CClientBankExchange file and compares it with the current ledger. Nothing is saved.
// @Tags imports
// @Accept  multipart/form-data
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Param   file formData file true "Statement file (UTF-8 or Windows-1251)"
// @Success 200 {object} dto.ImportPreviewResponse
// @Failure 400 {object} map[string]string "Missing, empty or unrecognized file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 429 {object} map[string]string "Too many imports"
// @Failure 500 {object} map[string]string "Failed to preview import"
// @Security BearerAuth
// @Router /profiles/{profile_id}/imports/preview [post]
func (h *importHandler) previewImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	profileID := c.Param("profile_id")
	logger = logger.With(slog.String("profile_id", profileID))

	raw, err := h.readUpload(c)
	if err != nil {
		respondError(c, logger, err, "Failed to read upload")
		return
	}

	preview, err := h.importService.PreviewImport(c.Request.Context(), profileID, raw, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to preview import")
		return
	}

	c.JSON(http.StatusOK, dto.ToImportPreviewResponse(preview.Stats, preview.Preview))
}

// commitImport godoc
// @Summary Import a statement into the ledger
// @Description Parses an uploaded file and reconciles it with the ledger. A non-empty ledger needs strategy=replace or strategy=merge; without one the preview is returned with 409.
// @Tags imports
// @Accept  multipart/form-data
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Param   strategy query string false "replace or merge"
// @Param   file formData file true "Statement file (UTF-8 or Windows-1251)"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} map[string]string "Missing, empty or unrecognized file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 409 {object} dto.ConfirmationRequiredResponse "Strategy required"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 429 {object} map[string]string "Too many imports"
// @Failure 500 {object} map[string]string "Failed to commit import"
// @Security BearerAuth
// @Router /profiles/{profile_id}/imports [post]
func (h *importHandler) commitImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ImportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for CommitImport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	strategy, err := reconcile.ParseStrategy(params.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileID := c.Param("profile_id")
	logger = logger.With(slog.String("profile_id", profileID), slog.String("strategy", string(strategy)))

	raw, err := h.readUpload(c)
	if err != nil {
		respondError(c, logger, err, "Failed to read upload")
		return
	}

	outcome, preview, err := h.importService.CommitImport(c.Request.Context(), profileID, raw, strategy, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConfirmationRequired) && preview != nil {
			logger.Info("Import awaiting strategy decision")
			c.JSON(http.StatusConflict, dto.ConfirmationRequiredResponse{
				Error:   err.Error(),
				Preview: dto.ToImportPreviewResponse(preview.Stats, preview.Preview),
			})
			return
		}
		respondError(c, logger, err, "Failed to commit import")
		return
	}

	c.JSON(http.StatusOK, dto.ToImportResultResponse(outcome.Stats, outcome.Result))
}
