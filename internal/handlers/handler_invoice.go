package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests for customer invoices and receipts.
type invoiceHandler struct {
	postingService portssvc.PostingSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(ps portssvc.PostingSvcFacade) *invoiceHandler {
	return &invoiceHandler{postingService: ps}
}

// registerInvoiceRoutes registers routes related to customer invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newInvoiceHandler(postingService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.recordInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("/:id/receipts", h.receiveInvoice)
	}
}

// recordInvoice godoc
// @Summary Record a customer invoice
// @Description Saves the invoice and posts Dr Accounts Receivable / Cr Sales Revenue, plus the cost-of-goods movement when costOfGoods is set
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) recordInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, entry, err := h.postingService.RecordInvoice(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record invoice")
		return
	}

	logger.Info("Customer invoice recorded", slog.Int64("invoice_id", invoice.InvoiceID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, entry.EntryID))
}

// receiveInvoice godoc
// @Summary Record cash received against an invoice
// @Description Saves a receipt and posts Dr Bank / Cr Accounts Receivable. The invoice is flagged settled once receipts cover its amount.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Param   receipt body dto.ReceiveInvoiceRequest true "Receipt details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/receipts [post]
func (h *invoiceHandler) receiveInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoiceID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	var req dto.ReceiveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	receipt, entry, err := h.postingService.ReceiveInvoice(c.Request.Context(), invoiceID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record receipt")
		return
	}

	logger.Info("Invoice receipt recorded", slog.Int64("invoice_id", invoiceID), slog.Int64("receipt_id", receipt.ReceiptID))
	c.JSON(http.StatusCreated, gin.H{
		"receiptID":   receipt.ReceiptID,
		"invoiceID":   receipt.InvoiceID,
		"receiptDate": receipt.ReceiptDate,
		"amount":      money.FromMinor(receipt.Amount),
		"entryID":     entry.EntryID,
	})
}

// getInvoice godoc
// @Summary Get a customer invoice
// @Tags invoices
// @Produce  json
// @Param   id path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoiceID, ok := parseDocumentID(c)
	if !ok {
		return
	}

	invoice, err := h.postingService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice, ""))
}

// listInvoices godoc
// @Summary List customer invoices
// @Tags invoices
// @Produce  json
// @Param   unsettledOnly query bool false "Only invoices not fully received" default(false)
// @Success 200 {array} dto.InvoiceResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	unsettledOnly := c.Query("unsettledOnly") == "true"

	invoices, err := h.postingService.ListInvoices(c.Request.Context(), unsettledOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list invoices")
		return
	}

	responses := make([]dto.InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		responses[i] = dto.ToInvoiceResponse(&invoice, "")
	}
	c.JSON(http.StatusOK, responses)
}
