package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	"github.com/bekzodm/erp-ledger/internal/models"
	"github.com/bekzodm/erp-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// settingsRowID is the fixed primary key of the single business_settings
// row; the table's CHECK constraint rejects any other value.
const settingsRowID = 1

// PgxSettingsRepository implements persistence for the single business
// settings row.
type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new PgxSettingsRepository.
func newPgxSettingsRepository(pool *pgxpool.Pool) *PgxSettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSettingsRepository implements the settings interface
var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetSettings retrieves the settings row. Returns apperrors.ErrNotFound when
// the business has not been initialized yet.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT id, company_name, base_currency, fiscal_year_start_month, created_at, created_by, last_updated_at, last_updated_by
		FROM business_settings
		WHERE id = $1;
	`

	var m models.Settings
	err := r.Pool.QueryRow(ctx, query, settingsRowID).Scan(
		&m.ID,
		&m.CompanyName,
		&m.BaseCurrency,
		&m.FiscalYearStartMonth,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("business not initialized: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

// SaveSettings inserts the settings row. Returns apperrors.ErrDuplicate when
// one already exists.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)

	query := `
		INSERT INTO business_settings (id, company_name, base_currency, fiscal_year_start_month, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		settingsRowID,
		m.CompanyName,
		m.BaseCurrency,
		m.FiscalYearStartMonth,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert settings: %w", err)
	}

	return nil
}

// UpdateSettings updates the existing settings row.
func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)

	query := `
		UPDATE business_settings
		SET company_name = $2, fiscal_year_start_month = $3, last_updated_at = $4, last_updated_by = $5
		WHERE id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		settingsRowID,
		m.CompanyName,
		m.FiscalYearStartMonth,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("business not initialized: %w", apperrors.ErrNotFound)
	}

	return nil
}
