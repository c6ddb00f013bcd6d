package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests for vendor bills and their payments.
type billHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newBillHandler creates a new billHandler.
func newBillHandler(ps portssvc.PostingSvcFacade) *billHandler {
	return &billHandler{postingService: ps}
}

// registerBillRoutes registers routes related to vendor bills.
func registerBillRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newBillHandler(postingService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.recordBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBill)
		bills.POST("/:id/payments", h.payBill)
	}
}

// parseDocumentID parses a numeric document id path parameter. Returns false
// after writing the error response when the parameter is not a number.
func parseDocumentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document id"})
		return 0, false
	}
	return id, true
}

// recordBill godoc
// @Summary Record a vendor bill
// @Description Saves the bill and posts Dr Inventory / Cr Accounts Payable for it
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) recordBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, entry, err := h.postingService.RecordBill(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record bill")
		return
	}

	logger.Info("Vendor bill recorded", slog.Int64("bill_id", bill.BillID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill, entry.EntryID))
}

// payBill godoc
// @Summary Pay a vendor bill
// @Description Saves a payment and posts Dr Accounts Payable / Cr Bank. The bill is flagged paid once payments cover its amount.
// @Tags bills
// @Accept  json
// @Produce  json
// @Param   id path int true "Bill ID"
// @Param   payment body dto.PayBillRequest true "Payment details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id}/payments [post]
func (h *billHandler) payBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	billID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var req dto.PayBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, entry, err := h.postingService.PayBill(c.Request.Context(), billID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to pay bill")
		return
	}

	logger.Info("Bill payment recorded", slog.Int64("bill_id", billID), slog.Int64("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, gin.H{
		"paymentID":   payment.PaymentID,
		"billID":      payment.BillID,
		"paymentDate": payment.PaymentDate,
		"amount":      money.FromMinor(payment.Amount),
		"entryID":     entry.EntryID,
	})
}

// getBill godoc
// @Summary Get a vendor bill
// @Tags bills
// @Produce  json
// @Param   id path int true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	billID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	bill, err := h.postingService.GetBill(c.Request.Context(), billID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve bill")
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill, ""))
}

// listBills godoc
// @Summary List vendor bills
// @Tags bills
// @Produce  json
// @Param   unpaidOnly query bool false "Only bills not fully paid" default(false)
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	unpaidOnly := c.Query("unpaidOnly") == "true"

	bills, err := h.postingService.ListBills(c.Request.Context(), unpaidOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bills")
		return
	}

	responses := make([]dto.BillResponse, len(bills))
	for i, bill := range bills {
		responses[i] = dto.ToBillResponse(&bill, "")
	}
	c.JSON(http.StatusOK, responses)
}
