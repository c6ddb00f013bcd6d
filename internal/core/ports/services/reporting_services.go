package services

import (
	"context"
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// ProfitAndLoss generates a profit and loss report for a specific period
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// AccountBalances returns the per-account signed balances recomputed from
	// posted lines as of a specific date.
	AccountBalances(ctx context.Context, asOf time.Time) ([]domain.AccountAmount, error)
}
