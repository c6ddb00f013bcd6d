package repositories

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
)

// SettingsRepository defines operations for the single business settings row.
type SettingsRepository interface {
	// GetSettings retrieves the settings row. Returns apperrors.ErrNotFound
	// when the business has not been initialized yet.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// SaveSettings inserts the settings row. Returns apperrors.ErrDuplicate
	// when one already exists.
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// UpdateSettings updates the existing settings row.
	UpdateSettings(ctx context.Context, settings domain.Settings) error
}
