package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
)

// settingsService manages the single business settings record. There is no
// implicit default: the business must be initialized explicitly before the
// settings can be read.
type settingsService struct {
	settingsRepo portsrepo.SettingsRepository
	accountSvc   portssvc.AccountSvcFacade
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, accountSvc portssvc.AccountSvcFacade) portssvc.SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		accountSvc:   accountSvc,
	}
}

// Ensure settingsService implements the portssvc.SettingsService interface
var _ portssvc.SettingsService = (*settingsService)(nil)

// Initialize creates the settings record, optionally seeding the default
// chart of accounts in the same step.
func (s *settingsService) Initialize(ctx context.Context, req dto.InitializeSettingsRequest, userID string) (*domain.Settings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	settings := domain.Settings{
		CompanyName:          req.CompanyName,
		BaseCurrency:         req.BaseCurrency,
		FiscalYearStartMonth: req.FiscalYearStartMonth,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: business is already initialized", apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	if req.SeedDefaultChart {
		created, err := s.accountSvc.SeedDefaultChart(ctx, userID)
		if err != nil {
			logger.Error("Failed to seed default chart during initialization", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to seed default chart: %w", err)
		}
		logger.Info("Default chart seeded during initialization", slog.Int("accounts", created))
	}

	logger.Info("Business initialized", slog.String("company", settings.CompanyName), slog.String("currency", settings.BaseCurrency))
	return &settings, nil
}

// Get retrieves the settings record.
func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// Update updates mutable settings fields.
func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	updated := false
	if req.CompanyName != nil {
		settings.CompanyName = *req.CompanyName
		updated = true
	}
	if req.FiscalYearStartMonth != nil {
		if *req.FiscalYearStartMonth < 1 || *req.FiscalYearStartMonth > 12 {
			return nil, fmt.Errorf("%w: fiscal year start month must be 1-12", apperrors.ErrValidation)
		}
		settings.FiscalYearStartMonth = *req.FiscalYearStartMonth
		updated = true
	}

	if !updated {
		return settings, nil
	}

	now := time.Now().UTC()
	settings.LastUpdatedAt = now
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.UpdateSettings(ctx, *settings); err != nil {
		logger.Error("Failed to update settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	logger.Info("Settings updated")
	return settings, nil
}
