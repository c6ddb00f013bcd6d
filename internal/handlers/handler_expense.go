package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests for direct expenses.
type expenseHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(ps portssvc.PostingSvcFacade) *expenseHandler {
	return &expenseHandler{postingService: ps}
}

// registerExpenseRoutes registers routes related to expenses.
func registerExpenseRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newExpenseHandler(postingService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.recordExpense)
		expenses.GET("", h.listExpenses)
	}
}

// recordExpense godoc
// @Summary Record a direct expense
// @Description Saves the expense and posts Dr Operating Expenses against Cash or Bank
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	expense, entry, err := h.postingService.RecordExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record expense")
		return
	}

	logger.Info("Expense recorded", slog.Int64("expense_id", expense.ExpenseID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense, entry.EntryID))
}

// listExpenses godoc
// @Summary List recorded expenses
// @Tags expenses
// @Produce  json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenses, err := h.postingService.ListExpenses(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list expenses")
		return
	}

	responses := make([]dto.ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = dto.ToExpenseResponse(&expense, "")
	}
	c.JSON(http.StatusOK, responses)
}
