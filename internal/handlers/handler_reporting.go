package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report endpoints.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/account-balances", h.accountBalances)
	}
}

// bindAsOf binds the asOf query parameter, defaulting to now. Returns false
// after writing the error response when the parameter is malformed.
func bindAsOf(c *gin.Context) (time.Time, bool) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return time.Time{}, false
	}
	if params.AsOf.IsZero() {
		return time.Now().UTC(), true
	}
	return params.AsOf, true
}

// trialBalance godoc
// @Summary Trial balance
// @Description Lists every account's debit and credit totals as of a date, with the grand totals and whether they agree
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := bindAsOf(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate trial balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(asOf, rows))
}

// profitAndLoss godoc
// @Summary Profit and loss statement
// @Description Aggregates revenue, cost of sales and operating expenses over a period
// @Tags reports
// @Produce  json
// @Param   from query string true "Period start (YYYY-MM-DD)"
// @Param   to query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), params.From, params.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate profit and loss")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Groups account balances into assets, liabilities and equity as of a date, folding lifetime net income into retained earnings
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := bindAsOf(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate balance sheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// accountBalances godoc
// @Summary Per-account signed balances
// @Description Recomputes every account's signed balance from its lines as of a date, independent of the cached balances
// @Tags reports
// @Produce  json
// @Param   asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} dto.AccountAmountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/account-balances [get]
func (h *reportingHandler) accountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := bindAsOf(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.AccountBalances(c.Request.Context(), asOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute account balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountAmountResponses(rows))
}
