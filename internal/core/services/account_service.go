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
)

var (
	ErrAccountHasBalance = errors.New("account carries a non-zero balance")
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account with a zero balance.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := s.GetLogger(ctx)

	if req.CostOfSales && req.AccountType != domain.ExpenseAccount {
		return nil, fmt.Errorf("%w: cost-of-sales flag only applies to EXPENSE accounts", apperrors.ErrValidation)
	}

	if req.ParentCode != "" {
		parent, err := s.accountRepo.FindAccountByCode(ctx, req.ParentCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrValidation, req.ParentCode)
			}
			return nil, fmt.Errorf("failed to check parent account: %w", err)
		}
		if parent.Type != req.AccountType {
			return nil, fmt.Errorf("%w: parent account %s has type %s, expected %s", apperrors.ErrValidation, req.ParentCode, parent.Type, req.AccountType)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		Code:        req.Code,
		Name:        req.Name,
		Type:        req.AccountType,
		ParentCode:  req.ParentCode,
		IsCurrent:   req.IsCurrent,
		CostOfSales: req.CostOfSales,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, req.Code)
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("code", account.Code), slog.String("type", string(account.Type)))
	return &account, nil
}

// GetAccountByCode retrieves a specific account by code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", code, err)
	}
	return account, nil
}

// ListAccounts retrieves the chart of accounts.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, params.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates an existing account's details. The cached balance is
// never writable through this path.
func (s *accountService) UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	logger := s.GetLogger(ctx)

	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", code, err)
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.ParentCode != nil {
		account.ParentCode = *req.ParentCode
		updated = true
	}
	if req.IsCurrent != nil {
		account.IsCurrent = *req.IsCurrent
		updated = true
	}
	if req.CostOfSales != nil {
		if *req.CostOfSales && account.Type != domain.ExpenseAccount {
			return nil, fmt.Errorf("%w: cost-of-sales flag only applies to EXPENSE accounts", apperrors.ErrValidation)
		}
		account.CostOfSales = *req.CostOfSales
		updated = true
	}

	if !updated {
		return account, nil
	}

	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("code", code))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account updated", slog.String("code", code))
	return account, nil
}

// DeactivateAccount marks an account as inactive. Accounts carrying a balance
// stay active until the balance is cleared, otherwise reports would orphan
// the amount.
func (s *accountService) DeactivateAccount(ctx context.Context, code string, requestingUserID string) error {
	logger := s.GetLogger(ctx)

	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to find account %s: %w", code, err)
	}

	if account.Balance != 0 {
		return fmt.Errorf("%w: account %s has balance %d", ErrAccountHasBalance, code, account.Balance)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, code, requestingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate account", slog.String("error", err.Error()), slog.String("code", code))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	logger.Info("Account deactivated", slog.String("code", code))
	return nil
}

// SeedDefaultChart installs the standard chart of accounts, skipping codes
// that already exist. Returns the number of accounts created.
func (s *accountService) SeedDefaultChart(ctx context.Context, creatorUserID string) (int, error) {
	logger := s.GetLogger(ctx)

	now := time.Now().UTC()
	created := 0
	for _, entry := range domain.DefaultChart {
		account := domain.Account{
			Code:        entry.Code,
			Name:        entry.Name,
			Type:        entry.Type,
			IsCurrent:   entry.IsCurrent,
			CostOfSales: entry.CostOfSales,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
		err := s.accountRepo.SaveAccount(ctx, account)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			logger.Error("Failed to seed account", slog.String("error", err.Error()), slog.String("code", entry.Code))
			return created, fmt.Errorf("failed to seed account %s: %w", entry.Code, err)
		}
		created++
	}

	logger.Info("Default chart seeded", slog.Int("created", created))
	return created, nil
}
