package services

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/dto"
)

// SettingsService defines operations for the single business settings record
type SettingsService interface {
	// Initialize creates the settings record. Returns apperrors.ErrDuplicate
	// when the business is already initialized.
	Initialize(ctx context.Context, req dto.InitializeSettingsRequest, userID string) (*domain.Settings, error)

	// Get retrieves the settings record.
	Get(ctx context.Context) (*domain.Settings, error)

	// Update updates mutable settings fields.
	Update(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error)
}
