package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests for payroll runs.
type payrollHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newPayrollHandler creates a new payrollHandler.
func newPayrollHandler(ps portssvc.PostingSvcFacade) *payrollHandler {
	return &payrollHandler{postingService: ps}
}

// registerPayrollRoutes registers routes related to payroll runs.
func registerPayrollRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newPayrollHandler(postingService)

	payroll := rg.Group("/payroll-runs")
	{
		payroll.POST("", h.recordRun)
		payroll.GET("", h.listRuns)
		payroll.POST("/:id/pay", h.payRun)
	}
}

// recordRun godoc
// @Summary Record a payroll run
// @Description Saves the run and posts the accrual: Dr Salaries Expense / Cr Salaries Payable + Cr Tax Payable. One run per period.
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   run body dto.CreatePayrollRunRequest true "Payroll run details"
// @Success 201 {object} dto.PayrollRunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll-runs [post]
func (h *payrollHandler) recordRun(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	run, entry, err := h.postingService.RecordPayrollRun(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payroll run")
		return
	}

	logger.Info("Payroll run recorded", slog.Int64("run_id", run.RunID), slog.String("period", run.Period))
	c.JSON(http.StatusCreated, dto.ToPayrollRunResponse(run, entry.EntryID))
}

// payRun godoc
// @Summary Pay a recorded payroll run
// @Description Posts Dr Salaries Payable / Cr Bank for the net salaries of the run
// @Tags payroll
// @Produce  json
// @Param   id path int true "Payroll run ID"
// @Success 200 {object} dto.PayrollRunResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll-runs/{id}/pay [post]
func (h *payrollHandler) payRun(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	runID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	run, entry, err := h.postingService.PayPayrollRun(c.Request.Context(), runID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pay payroll run")
		return
	}

	logger.Info("Payroll run paid", slog.Int64("run_id", run.RunID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToPayrollRunResponse(run, entry.EntryID))
}

// listRuns godoc
// @Summary List payroll runs
// @Tags payroll
// @Produce  json
// @Success 200 {array} dto.PayrollRunResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payroll-runs [get]
func (h *payrollHandler) listRuns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	runs, err := h.postingService.ListPayrollRuns(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list payroll runs")
		return
	}

	responses := make([]dto.PayrollRunResponse, len(runs))
	for i, run := range runs {
		responses[i] = dto.ToPayrollRunResponse(&run, "")
	}
	c.JSON(http.StatusOK, responses)
}
