package handlers

import (
	"net/http"

	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler handles HTTP requests for the integrity sweep.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationService
}

// newReconciliationHandler creates a new reconciliationHandler.
func newReconciliationHandler(rs portssvc.ReconciliationService) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

// registerReconciliationRoutes registers the reconciliation endpoints.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationService) {
	h := newReconciliationHandler(reconciliationService)

	recon := rg.Group("/reconciliation")
	{
		recon.GET("/scan", h.scan)
		recon.POST("/repair", h.repair)
		recon.POST("/rebuild-balances", h.rebuildBalances)
	}
}

// scan godoc
// @Summary Run the integrity sweep
// @Description Compares source documents, journal entries and cached balances without changing anything
// @Tags reconciliation
// @Produce  json
// @Success 200 {object} dto.IntegrityReportResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reconciliation/scan [get]
func (h *reconciliationHandler) scan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reconciliationService.Scan(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run integrity scan")
		return
	}

	c.JSON(http.StatusOK, dto.ToIntegrityReportResponse(report))
}

// repair godoc
// @Summary Repair integrity findings
// @Description Scans and fixes what it finds: posts entries for unposted documents, removes orphan entries and rebuilds drifted balances
// @Tags reconciliation
// @Produce  json
// @Success 200 {object} dto.RepairSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reconciliation/repair [post]
func (h *reconciliationHandler) repair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reconciliationService.Repair(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to repair ledger")
		return
	}

	logger.Info("Ledger repair completed")
	c.JSON(http.StatusOK, summary)
}

// rebuildBalances godoc
// @Summary Rebuild all cached balances
// @Description Recomputes every account's cached balance from its lines, drifted or not
// @Tags reconciliation
// @Produce  json
// @Success 200 {object} map[string]int
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reconciliation/rebuild-balances [post]
func (h *reconciliationHandler) rebuildBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.reconciliationService.RebuildBalances(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to rebuild balances")
		return
	}

	c.JSON(http.StatusOK, gin.H{"balancesRebuilt": updated})
}
