package repositories

import (
	"context"
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
)

// ReportingRepository defines aggregation queries over posted journal data.
// All sums are computed from journal lines, not from cached balances, so the
// reports stay truthful even when a cached balance has drifted.
type ReportingRepository interface {
	// SumBalancesAsOf aggregates the signed balance of every account from
	// posted lines dated on or before asOf.
	SumBalancesAsOf(ctx context.Context, asOf time.Time) ([]domain.AccountAmount, error)

	// SumActivityInRange aggregates the signed activity of every account from
	// posted lines dated within [from, to].
	SumActivityInRange(ctx context.Context, from, to time.Time) ([]domain.AccountAmount, error)

	// SumDebitsCreditsAsOf aggregates raw debit and credit totals per account
	// from posted lines dated on or before asOf, for the trial balance.
	SumDebitsCreditsAsOf(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// ListLedgerRows retrieves the dated line history of one account within
	// [from, to] with token-based pagination.
	ListLedgerRows(ctx context.Context, accountCode string, from, to time.Time, limit int, nextToken *string) ([]domain.LedgerRow, *string, error)
}
