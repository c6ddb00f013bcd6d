package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests for fixed assets and depreciation runs.
type assetHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(ps portssvc.PostingSvcFacade) *assetHandler {
	return &assetHandler{postingService: ps}
}

// registerAssetRoutes registers routes related to fixed assets.
func registerAssetRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newAssetHandler(postingService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.registerAsset)
		assets.GET("", h.listAssets)
		assets.POST("/depreciation-runs", h.runDepreciation)
	}
}

// registerAsset godoc
// @Summary Register a fixed asset
// @Description Saves the asset and posts Dr Fixed Assets / Cr Bank for the acquisition
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) registerAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	asset, entry, err := h.postingService.RegisterAsset(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register asset")
		return
	}

	logger.Info("Fixed asset registered", slog.Int64("asset_id", asset.AssetID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// runDepreciation godoc
// @Summary Run monthly depreciation
// @Description Charges one straight-line period for every active asset. Assets already charged for the period are skipped, so repeating the run is safe.
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   run body dto.RunDepreciationRequest true "Period to charge (YYYY-MM)"
// @Success 200 {object} dto.DepreciationRunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets/depreciation-runs [post]
func (h *assetHandler) runDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RunDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.postingService.RunMonthlyDepreciation(c.Request.Context(), req.Period, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run depreciation")
		return
	}

	logger.Info("Depreciation run completed",
		slog.String("period", result.Period),
		slog.Int("assets_charged", result.AssetsCharged),
		slog.Int("assets_skipped", result.AssetsSkipped))
	c.JSON(http.StatusOK, result)
}

// listAssets godoc
// @Summary List active fixed assets
// @Tags assets
// @Produce  json
// @Success 200 {array} dto.AssetResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.postingService.ListAssets(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list assets")
		return
	}

	responses := make([]dto.AssetResponse, len(assets))
	for i, asset := range assets {
		responses[i] = dto.ToAssetResponse(&asset)
	}
	c.JSON(http.StatusOK, responses)
}
