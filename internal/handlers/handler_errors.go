package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/services"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError translates service errors into HTTP responses. The
// sentinel checks run before the generic apperrors checks because several
// sentinels carry more specific status codes.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrOverpayment),
		errors.Is(err, services.ErrNotPosted),
		errors.Is(err, services.ErrAccountHasBalance),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting request state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, services.ErrAmountNotPositive),
		errors.Is(err, services.ErrInvalidPeriod),
		errors.Is(err, services.ErrEntryMinAccounts),
		errors.Is(err, services.ErrDescriptionMissing),
		errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}
