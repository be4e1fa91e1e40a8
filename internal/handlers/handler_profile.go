package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/SscSPs/tax_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests related to business profiles.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{
		profileService: ps,
	}
}

// RegisterProfileRoutes registers the profile routes and returns the group
// addressing a single profile, to which the ledger, import and tax routes attach.
func RegisterProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) *gin.RouterGroup {
	h := newProfileHandler(profileService)

	profiles := rg.Group("/profiles")
	{
		profiles.POST("", h.createProfile)
		profiles.GET("", h.listProfiles)
	}

	profileSpecific := rg.Group("/profiles/:profile_id")
	{
		profileSpecific.GET("", h.getProfile)
		profileSpecific.PUT("/regime", h.updateRegime)
	}
	return profileSpecific
}

// createProfile godoc
// @Summary Create a business profile
// @Description Creates a business profile owned by the caller together with its tax regime.
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   profile body dto.CreateProfileRequest true "Profile details"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Regime cannot be computed"
// @Failure 500 {object} map[string]string "Failed to create profile"
// @Security BearerAuth
// @Router /profiles [post]
func (h *profileHandler) createProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// listProfiles godoc
// @Summary List the caller's business profiles
// @Tags profiles
// @Produce  json
// @Success 200 {object} dto.ListProfilesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list profiles"
// @Security BearerAuth
// @Router /profiles [get]
func (h *profileHandler) listProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	profiles, err := h.profileService.ListProfiles(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, dto.ToListProfilesResponse(profiles))
}

// getProfile godoc
// @Summary Get a business profile
// @Tags profiles
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to retrieve profile"
// @Security BearerAuth
// @Router /profiles/{profile_id} [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	profileID := c.Param("profile_id")

	profile, err := h.profileService.GetProfile(c.Request.Context(), profileID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("profile_id", profileID)), err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// updateRegime godoc
// @Summary Update the tax regime of a profile
// @Description Replaces the regime configuration. Optionally updates the own tax id used for statement import.
// @Tags profiles
// @Accept  json
// @Produce  json
// @Param   profile_id path string true "Profile ID"
// @Param   regime body dto.UpdateRegimeRequest true "Regime configuration"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile belongs to another user"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 422 {object} map[string]string "Regime cannot be computed"
// @Failure 500 {object} map[string]string "Failed to update regime"
// @Security BearerAuth
// @Router /profiles/{profile_id}/regime [put]
func (h *profileHandler) updateRegime(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRegimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRegime", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	profileID := c.Param("profile_id")

	profile, err := h.profileService.UpdateRegime(c.Request.Context(), profileID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("profile_id", profileID)), err, "Failed to update regime")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
