package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	"github.com/bekzodm/erp-ledger/internal/utils/mapping"
	"github.com/bekzodm/erp-ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

// signedSum applies the accounting sign convention in SQL. It must agree with
// accounting.SignedAmount; the drift check depends on the two never diverging.
const signedSum = `SUM(CASE WHEN a.account_type IN ('ASSET', 'EXPENSE') THEN l.debit - l.credit ELSE l.credit - l.debit END)`

// PgxReportingRepository implements report aggregations over journal lines.
// As-of sums keep reversed entries and their reversals: both legs fall on or
// before the date once the reversal exists, cancel exactly and stay
// consistent with the cached balances. Period activity cannot rely on that
// cancellation, because a reversal is dated at reversal time and the pair may
// straddle the period boundary; those sums filter reversed entries and
// reversal entries out instead.
type PgxReportingRepository struct {
	BaseRepository
}

// effectiveEntries keeps only lines whose entry is live: not reversed, and
// not itself a reversal.
const effectiveEntries = `e.status <> 'REVERSED' AND e.entry_type <> 'REVERSAL'`

// newPgxReportingRepository creates a new PgxReportingRepository.
func newPgxReportingRepository(pool *pgxpool.Pool) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements the reporting interface
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// SumBalancesAsOf aggregates the signed balance of every account from lines
// dated on or before asOf. Accounts with no activity or a zero net are omitted.
func (r *PgxReportingRepository) SumBalancesAsOf(ctx context.Context, asOf time.Time) ([]domain.AccountAmount, error) {
	query := `
		SELECT a.code, a.name, ` + signedSum + ` AS net_amount
		FROM accounts a
		JOIN journal_lines l ON l.account_code = a.code
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.entry_date <= $1
		GROUP BY a.code, a.name
		HAVING ` + signedSum + ` <> 0
		ORDER BY a.code;
	`

	return r.queryAccountAmounts(ctx, query, mapping.ToEpoch(asOf))
}

// SumActivityInRange aggregates the signed activity of every account from
// effective lines dated within [from, to]. Reversed entries and reversal
// entries are excluded so a pair straddling the range boundary never leaks
// one-sided activity into a period report.
func (r *PgxReportingRepository) SumActivityInRange(ctx context.Context, from, to time.Time) ([]domain.AccountAmount, error) {
	query := `
		SELECT a.code, a.name, ` + signedSum + ` AS net_amount
		FROM accounts a
		JOIN journal_lines l ON l.account_code = a.code
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.entry_date >= $1 AND e.entry_date <= $2 AND ` + effectiveEntries + `
		GROUP BY a.code, a.name
		HAVING ` + signedSum + ` <> 0
		ORDER BY a.code;
	`

	return r.queryAccountAmounts(ctx, query, mapping.ToEpoch(from), mapping.ToEpoch(to))
}

func (r *PgxReportingRepository) queryAccountAmounts(ctx context.Context, query string, args ...interface{}) ([]domain.AccountAmount, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account amounts: %w", err)
	}
	defer rows.Close()

	amounts := []domain.AccountAmount{}
	for rows.Next() {
		var amount domain.AccountAmount
		if err := rows.Scan(&amount.AccountCode, &amount.Name, &amount.NetAmount); err != nil {
			return nil, fmt.Errorf("failed to scan account amount row: %w", err)
		}
		amounts = append(amounts, amount)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account amount rows: %w", rows.Err())
	}

	return amounts, nil
}

// SumDebitsCreditsAsOf aggregates raw debit and credit totals per account for
// the trial balance.
func (r *PgxReportingRepository) SumDebitsCreditsAsOf(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.code, a.name, a.account_type, SUM(l.debit) AS total_debit, SUM(l.credit) AS total_credit
		FROM accounts a
		JOIN journal_lines l ON l.account_code = a.code
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.entry_date <= $1
		GROUP BY a.code, a.name, a.account_type
		ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, mapping.ToEpoch(asOf))
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance rows: %w", err)
	}
	defer rows.Close()

	tbRows := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		if err := rows.Scan(&row.AccountCode, &row.AccountName, &accountType, &row.Debit, &row.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		row.AccountType = domain.AccountType(accountType)
		tbRows = append(tbRows, row)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", rows.Err())
	}

	return tbRows, nil
}

// ListLedgerRows retrieves the dated movement history of one account within
// [from, to], newest first, with token-based pagination on
// (entry_date, created_at).
func (r *PgxReportingRepository) ListLedgerRows(ctx context.Context, accountCode string, from, to time.Time, limit int, nextToken *string) ([]domain.LedgerRow, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT e.entry_id, e.entry_date, l.description, e.reference, l.debit, l.credit, l.running_balance, l.created_at
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.account_code = $1 AND e.entry_date >= $2 AND e.entry_date <= $3
	`
	args := []interface{}{accountCode, mapping.ToEpoch(from), mapping.ToEpoch(to)}

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(` AND (e.entry_date, l.created_at) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, entryDate, createdAt)
	}

	query += fmt.Sprintf(` ORDER BY e.entry_date DESC, l.created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query ledger rows for account %s: %w", accountCode, err)
	}
	defer rows.Close()

	type ledgerRowWithCursor struct {
		row       domain.LedgerRow
		entryDate int64
		createdAt int64
	}

	fetched := []ledgerRowWithCursor{}
	for rows.Next() {
		var row domain.LedgerRow
		var entryDate, createdAt int64
		err := rows.Scan(&row.EntryID, &entryDate, &row.Description, &row.Reference, &row.Debit, &row.Credit, &row.RunningBalance, &createdAt)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		row.EntryDate = mapping.FromEpoch(entryDate)
		fetched = append(fetched, ledgerRowWithCursor{row: row, entryDate: entryDate, createdAt: createdAt})
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating ledger rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(fetched) > limit {
		fetched = fetched[:limit]
		last := fetched[len(fetched)-1]
		token := pagination.EncodeToken(last.entryDate, last.createdAt)
		newNextToken = &token
	}

	ledgerRows := make([]domain.LedgerRow, len(fetched))
	for i, f := range fetched {
		ledgerRows[i] = f.row
	}

	return ledgerRows, newNextToken, nil
}
