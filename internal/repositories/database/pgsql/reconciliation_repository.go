package pgsql

import (
	"context"
	"fmt"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReconciliationRepository implements the integrity-sweep queries. Each
// check compares two of the three stores of truth: source documents, journal
// entries and cached account balances.
type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates a new PgxReconciliationRepository.
func newPgxReconciliationRepository(pool *pgxpool.Pool) *PgxReconciliationRepository {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReconciliationRepository implements the reconciliation interface
var _ portsrepo.ReconciliationRepository = (*PgxReconciliationRepository)(nil)

// FindMissingPostings returns source documents whose derived transaction id
// has no journal entry. A paid payroll run is expected to have both its run
// entry and its payout entry.
func (r *PgxReconciliationRepository) FindMissingPostings(ctx context.Context) ([]domain.MissingPosting, error) {
	query := `
		SELECT 'VENDOR_BILL' AS kind, b.bill_id AS document_id, 'bill-' || b.bill_id AS transaction_id, b.amount
		FROM vendor_bills b
		WHERE NOT EXISTS (SELECT 1 FROM journal_entries e WHERE e.transaction_id = 'bill-' || b.bill_id)
		UNION ALL
		SELECT 'BILL_PAYMENT', p.payment_id, 'pay-' || p.payment_id, p.amount
		FROM bill_payments p
		WHERE NOT EXISTS (SELECT 1 FROM journal_entries e WHERE e.transaction_id = 'pay-' || p.payment_id)
		UNION ALL
		SELECT 'CUSTOMER_INVOICE', i.invoice_id, 'inv-' || i.invoice_id, i.amount
		FROM customer_invoices i
		WHERE NOT EXISTS (SELECT 1 FROM journal_entries e WHERE e.transaction_id = 'inv-' || i.invoice_id)
		UNION ALL
		SELECT 'INVOICE_RECEIPT', rc.receipt_id, 'rcv-' || rc.receipt_id, rc.amount
		FROM invoice_receipts rc
		WHERE NOT EXISTS (SELECT 1 FROM journal_entries e WHERE e.transaction_id = 'rcv-' || rc.receipt_id)
		UNION ALL
		SELECT 'EXPENSE', x.expense_id, 'exp-' || x.expense_id, x.amount
		FROM expenses x
		WHERE NOT EXISTS (SELECT 1 FROM journal_entries e WHERE e.transaction_id = 'exp-' || x.expense_id)
		UNION ALL
		SELECT 'FIXED_ASSET', a.asset_id, 'asset-' || a.asset_id, a.cost
		FROM fixed_assets a
		WHERE NOT EXISTS (SELECT 1 FROM journal_entries e WHERE e.transaction_id = 'asset-' || a.asset_id)
		UNION ALL
		SELECT 'PAYROLL_RUN', r.run_id, 'prl-' || r.run_id, r.gross_amount
		FROM payroll_runs r
		WHERE NOT EXISTS (SELECT 1 FROM journal_entries e WHERE e.transaction_id = 'prl-' || r.run_id)
		UNION ALL
		SELECT 'PAYROLL_RUN', r.run_id, 'prl-pay-' || r.run_id, r.gross_amount - r.tax_amount
		FROM payroll_runs r
		WHERE r.is_paid = TRUE
		  AND NOT EXISTS (SELECT 1 FROM journal_entries e WHERE e.transaction_id = 'prl-pay-' || r.run_id)
		ORDER BY transaction_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query missing postings: %w", err)
	}
	defer rows.Close()

	missing := []domain.MissingPosting{}
	for rows.Next() {
		var mp domain.MissingPosting
		var kind string
		if err := rows.Scan(&kind, &mp.DocumentID, &mp.TransactionID, &mp.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan missing posting row: %w", err)
		}
		mp.Kind = domain.DocumentKind(kind)
		missing = append(missing, mp)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating missing posting rows: %w", rows.Err())
	}

	return missing, nil
}

// FindOrphanEntries returns entries whose transaction id carries a document
// prefix but whose backing document no longer exists. Manual entries and
// reversal entries (rev-...) have no document and are never orphans.
func (r *PgxReconciliationRepository) FindOrphanEntries(ctx context.Context) ([]domain.OrphanEntry, error) {
	query := `
		SELECT e.entry_id, e.transaction_id, e.amount
		FROM journal_entries e
		WHERE e.transaction_id IS NOT NULL
		  AND (
			(e.transaction_id LIKE 'bill-%'
				AND NOT EXISTS (SELECT 1 FROM vendor_bills b WHERE 'bill-' || b.bill_id = e.transaction_id))
			OR (e.transaction_id LIKE 'pay-%'
				AND NOT EXISTS (SELECT 1 FROM bill_payments p WHERE 'pay-' || p.payment_id = e.transaction_id))
			OR (e.transaction_id LIKE 'inv-%'
				AND NOT EXISTS (SELECT 1 FROM customer_invoices i WHERE 'inv-' || i.invoice_id = e.transaction_id))
			OR (e.transaction_id LIKE 'rcv-%'
				AND NOT EXISTS (SELECT 1 FROM invoice_receipts rc WHERE 'rcv-' || rc.receipt_id = e.transaction_id))
			OR (e.transaction_id LIKE 'exp-%'
				AND NOT EXISTS (SELECT 1 FROM expenses x WHERE 'exp-' || x.expense_id = e.transaction_id))
			OR (e.transaction_id LIKE 'asset-%'
				AND NOT EXISTS (SELECT 1 FROM fixed_assets a WHERE 'asset-' || a.asset_id = e.transaction_id))
			OR (e.transaction_id LIKE 'dep-%'
				AND NOT EXISTS (SELECT 1 FROM fixed_assets a WHERE e.transaction_id LIKE 'dep-' || a.asset_id || '-%'))
			OR (e.transaction_id LIKE 'prl-%' AND e.transaction_id NOT LIKE 'prl-pay-%'
				AND NOT EXISTS (SELECT 1 FROM payroll_runs r WHERE 'prl-' || r.run_id = e.transaction_id))
			OR (e.transaction_id LIKE 'prl-pay-%'
				AND NOT EXISTS (SELECT 1 FROM payroll_runs r WHERE 'prl-pay-' || r.run_id = e.transaction_id))
		  )
		ORDER BY e.transaction_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphan entries: %w", err)
	}
	defer rows.Close()

	orphans := []domain.OrphanEntry{}
	for rows.Next() {
		var orphan domain.OrphanEntry
		if err := rows.Scan(&orphan.EntryID, &orphan.TransactionID, &orphan.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan orphan entry row: %w", err)
		}
		orphans = append(orphans, orphan)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating orphan entry rows: %w", rows.Err())
	}

	return orphans, nil
}

// FindUnbalancedEntries returns entry ids whose lines do not sum to equal
// debits and credits. The posting path validates this before saving, so any
// hit means the store was modified outside the application.
func (r *PgxReconciliationRepository) FindUnbalancedEntries(ctx context.Context) ([]string, error) {
	query := `
		SELECT l.entry_id
		FROM journal_lines l
		GROUP BY l.entry_id
		HAVING SUM(l.debit) <> SUM(l.credit)
		ORDER BY l.entry_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query unbalanced entries: %w", err)
	}
	defer rows.Close()

	entryIDs := []string{}
	for rows.Next() {
		var entryID string
		if err := rows.Scan(&entryID); err != nil {
			return nil, fmt.Errorf("failed to scan unbalanced entry row: %w", err)
		}
		entryIDs = append(entryIDs, entryID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating unbalanced entry rows: %w", rows.Err())
	}

	return entryIDs, nil
}

// ComputeBalanceDrift compares each account's cached balance against the
// signed sum recomputed from its lines. The CASE expression must agree with
// accounting.SignedAmount.
func (r *PgxReconciliationRepository) ComputeBalanceDrift(ctx context.Context) ([]domain.BalanceDrift, error) {
	query := `
		SELECT a.code, a.balance,
			COALESCE(SUM(CASE WHEN a.account_type IN ('ASSET', 'EXPENSE') THEN l.debit - l.credit ELSE l.credit - l.debit END), 0) AS computed
		FROM accounts a
		LEFT JOIN journal_lines l ON l.account_code = a.code
		GROUP BY a.code, a.balance
		HAVING a.balance <> COALESCE(SUM(CASE WHEN a.account_type IN ('ASSET', 'EXPENSE') THEN l.debit - l.credit ELSE l.credit - l.debit END), 0)
		ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance drift: %w", err)
	}
	defer rows.Close()

	drifts := []domain.BalanceDrift{}
	for rows.Next() {
		var drift domain.BalanceDrift
		if err := rows.Scan(&drift.AccountCode, &drift.CachedBalance, &drift.ComputedBalance); err != nil {
			return nil, fmt.Errorf("failed to scan balance drift row: %w", err)
		}
		drifts = append(drifts, drift)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating balance drift rows: %w", rows.Err())
	}

	return drifts, nil
}
