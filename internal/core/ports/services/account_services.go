package services

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByCode retrieves a specific account by code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive. Refused while the
	// account carries a non-zero balance.
	DeactivateAccount(ctx context.Context, code string, requestingUserID string) error

	// SeedDefaultChart creates the standard chart of accounts for a new
	// business. Existing codes are left untouched.
	SeedDefaultChart(ctx context.Context, creatorUserID string) (int, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
