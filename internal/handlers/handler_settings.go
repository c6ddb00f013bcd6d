package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests for the business settings record.
type settingsHandler struct {
	settingsService portssvc.SettingsService
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsService) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers routes related to business settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsService) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.POST("/initialize", h.initialize)
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

// initialize godoc
// @Summary Initialize the business
// @Description Creates the single settings record, optionally seeding the default chart of accounts. A second call is rejected.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.InitializeSettingsRequest true "Business details"
// @Success 201 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/initialize [post]
func (h *settingsHandler) initialize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InitializeSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settings, err := h.settingsService.Initialize(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to initialize business")
		return
	}

	logger.Info("Business initialized", slog.String("company_name", settings.CompanyName))
	c.JSON(http.StatusCreated, dto.ToSettingsResponse(settings))
}

// getSettings godoc
// @Summary Get the business settings
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update the business settings
// @Description Updates the company name or fiscal year start month. The base currency is fixed at initialization.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Fields to update"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
