package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	"github.com/bekzodm/erp-ledger/internal/models"
	"github.com/bekzodm/erp-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSubledgerRepository implements persistence for all source documents
// (bills, payments, invoices, receipts, expenses, assets, payroll runs).
type PgxSubledgerRepository struct {
	BaseRepository
}

// newPgxSubledgerRepository creates a new PgxSubledgerRepository.
func newPgxSubledgerRepository(pool *pgxpool.Pool) *PgxSubledgerRepository {
	return &PgxSubledgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSubledgerRepository implements the facade interface
var _ portsrepo.SubledgerRepositoryFacade = (*PgxSubledgerRepository)(nil)

// ---- Vendor bills ----

const billColumns = `bill_id, vendor_name, bill_date, amount, reference, is_paid, created_at, created_by, last_updated_at, last_updated_by`

func scanBillRow(row pgx.Row) (models.VendorBill, error) {
	var m models.VendorBill
	err := row.Scan(
		&m.BillID,
		&m.VendorName,
		&m.BillDate,
		&m.Amount,
		&m.Reference,
		&m.IsPaid,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBill persists a new vendor bill and returns it with its assigned id.
func (r *PgxSubledgerRepository) SaveBill(ctx context.Context, bill domain.VendorBill) (*domain.VendorBill, error) {
	m := mapping.ToModelVendorBill(bill)

	query := `
		INSERT INTO vendor_bills (vendor_name, bill_date, amount, reference, is_paid, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING bill_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		m.VendorName, m.BillDate, m.Amount, m.Reference, m.IsPaid,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.BillID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vendor bill: %w", err)
	}

	created := mapping.ToDomainVendorBill(m)
	return &created, nil
}

// FindBillByID retrieves a vendor bill by its identifier.
func (r *PgxSubledgerRepository) FindBillByID(ctx context.Context, billID int64) (*domain.VendorBill, error) {
	query := `SELECT ` + billColumns + ` FROM vendor_bills WHERE bill_id = $1;`

	m, err := scanBillRow(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query vendor bill %d: %w", billID, err)
	}

	bill := mapping.ToDomainVendorBill(m)
	return &bill, nil
}

// ListBills retrieves all vendor bills, newest first.
func (r *PgxSubledgerRepository) ListBills(ctx context.Context, unpaidOnly bool) ([]domain.VendorBill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM vendor_bills
		WHERE is_paid = FALSE OR NOT $1
		ORDER BY bill_date DESC, bill_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query, unpaidOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor bills: %w", err)
	}
	defer rows.Close()

	bills := []domain.VendorBill{}
	for rows.Next() {
		m, err := scanBillRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor bill row: %w", err)
		}
		bills = append(bills, mapping.ToDomainVendorBill(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor bill rows: %w", rows.Err())
	}

	return bills, nil
}

// MarkBillPaid flags a bill as fully paid.
func (r *PgxSubledgerRepository) MarkBillPaid(ctx context.Context, billID int64, userID string, now time.Time) error {
	query := `
		UPDATE vendor_bills
		SET is_paid = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE bill_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, billID, mapping.ToEpoch(now), userID)
	if err != nil {
		return fmt.Errorf("failed to mark bill %d paid: %w", billID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SavePayment persists a bill payment and returns it with its assigned id.
func (r *PgxSubledgerRepository) SavePayment(ctx context.Context, payment domain.BillPayment) (*domain.BillPayment, error) {
	m := mapping.ToModelBillPayment(payment)

	query := `
		INSERT INTO bill_payments (bill_id, payment_date, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING payment_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		m.BillID, m.PaymentDate, m.Amount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bill payment: %w", err)
	}

	created := mapping.ToDomainBillPayment(m)
	return &created, nil
}

// FindPaymentsByBillID retrieves the payments recorded against a bill.
func (r *PgxSubledgerRepository) FindPaymentsByBillID(ctx context.Context, billID int64) ([]domain.BillPayment, error) {
	query := `
		SELECT payment_id, bill_id, payment_date, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM bill_payments
		WHERE bill_id = $1
		ORDER BY payment_id;
	`

	rows, err := r.Pool.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for bill %d: %w", billID, err)
	}
	defer rows.Close()

	payments := []domain.BillPayment{}
	for rows.Next() {
		var m models.BillPayment
		err := rows.Scan(
			&m.PaymentID, &m.BillID, &m.PaymentDate, &m.Amount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainBillPayment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill payment rows: %w", rows.Err())
	}

	return payments, nil
}

// ---- Customer invoices ----

const invoiceColumns = `invoice_id, customer_name, invoice_date, amount, cost_of_goods, reference, is_settled, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoiceRow(row pgx.Row) (models.CustomerInvoice, error) {
	var m models.CustomerInvoice
	err := row.Scan(
		&m.InvoiceID,
		&m.CustomerName,
		&m.InvoiceDate,
		&m.Amount,
		&m.CostOfGoods,
		&m.Reference,
		&m.IsSettled,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvoice persists a new customer invoice and returns it with its assigned id.
func (r *PgxSubledgerRepository) SaveInvoice(ctx context.Context, invoice domain.CustomerInvoice) (*domain.CustomerInvoice, error) {
	m := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO customer_invoices (customer_name, invoice_date, amount, cost_of_goods, reference, is_settled, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING invoice_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		m.CustomerName, m.InvoiceDate, m.Amount, m.CostOfGoods, m.Reference, m.IsSettled,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert customer invoice: %w", err)
	}

	created := mapping.ToDomainInvoice(m)
	return &created, nil
}

// FindInvoiceByID retrieves a customer invoice by its identifier.
func (r *PgxSubledgerRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.CustomerInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM customer_invoices WHERE invoice_id = $1;`

	m, err := scanInvoiceRow(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query customer invoice %d: %w", invoiceID, err)
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// ListInvoices retrieves all customer invoices, newest first.
func (r *PgxSubledgerRepository) ListInvoices(ctx context.Context, unsettledOnly bool) ([]domain.CustomerInvoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM customer_invoices
		WHERE is_settled = FALSE OR NOT $1
		ORDER BY invoice_date DESC, invoice_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query, unsettledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query customer invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.CustomerInvoice{}
	for rows.Next() {
		m, err := scanInvoiceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer invoice row: %w", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer invoice rows: %w", rows.Err())
	}

	return invoices, nil
}

// MarkInvoiceSettled flags an invoice as fully collected.
func (r *PgxSubledgerRepository) MarkInvoiceSettled(ctx context.Context, invoiceID int64, userID string, now time.Time) error {
	query := `
		UPDATE customer_invoices
		SET is_settled = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE invoice_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, invoiceID, mapping.ToEpoch(now), userID)
	if err != nil {
		return fmt.Errorf("failed to mark invoice %d settled: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveReceipt persists an invoice receipt and returns it with its assigned id.
func (r *PgxSubledgerRepository) SaveReceipt(ctx context.Context, receipt domain.InvoiceReceipt) (*domain.InvoiceReceipt, error) {
	m := mapping.ToModelReceipt(receipt)

	query := `
		INSERT INTO invoice_receipts (invoice_id, receipt_date, amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING receipt_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		m.InvoiceID, m.ReceiptDate, m.Amount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.ReceiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invoice receipt: %w", err)
	}

	created := mapping.ToDomainReceipt(m)
	return &created, nil
}

// FindReceiptsByInvoiceID retrieves the receipts recorded against an invoice.
func (r *PgxSubledgerRepository) FindReceiptsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceReceipt, error) {
	query := `
		SELECT receipt_id, invoice_id, receipt_date, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM invoice_receipts
		WHERE invoice_id = $1
		ORDER BY receipt_id;
	`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts for invoice %d: %w", invoiceID, err)
	}
	defer rows.Close()

	receipts := []domain.InvoiceReceipt{}
	for rows.Next() {
		var m models.InvoiceReceipt
		err := rows.Scan(
			&m.ReceiptID, &m.InvoiceID, &m.ReceiptDate, &m.Amount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice receipt row: %w", err)
		}
		receipts = append(receipts, mapping.ToDomainReceipt(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice receipt rows: %w", rows.Err())
	}

	return receipts, nil
}

// ---- Expenses ----

// SaveExpense persists a new expense and returns it with its assigned id.
func (r *PgxSubledgerRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (category, expense_date, amount, paid_from_cash, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING expense_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		m.Category, m.ExpenseDate, m.Amount, m.PaidFromCash, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}

	created := mapping.ToDomainExpense(m)
	return &created, nil
}

// FindExpenseByID retrieves an expense by its identifier.
func (r *PgxSubledgerRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	query := `
		SELECT expense_id, category, expense_date, amount, paid_from_cash, description, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = $1;
	`

	var m models.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID, &m.Category, &m.ExpenseDate, &m.Amount, &m.PaidFromCash, &m.Description,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query expense %d: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

// ListExpenses retrieves all recorded expenses, newest first.
func (r *PgxSubledgerRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, category, expense_date, amount, paid_from_cash, description, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		ORDER BY expense_date DESC, expense_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		err := rows.Scan(
			&m.ExpenseID, &m.Category, &m.ExpenseDate, &m.Amount, &m.PaidFromCash, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return expenses, nil
}

// ---- Fixed assets ----

const assetColumns = `asset_id, name, acquired_date, cost, salvage_value, useful_life_months, accumulated_depreciation, last_depreciation_period, is_disposed, created_at, created_by, last_updated_at, last_updated_by`

func scanAssetRow(row pgx.Row) (models.FixedAsset, error) {
	var m models.FixedAsset
	err := row.Scan(
		&m.AssetID,
		&m.Name,
		&m.AcquiredDate,
		&m.Cost,
		&m.SalvageValue,
		&m.UsefulLifeMonths,
		&m.AccumulatedDepreciation,
		&m.LastDepreciationPeriod,
		&m.IsDisposed,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAsset persists a new fixed asset and returns it with its assigned id.
func (r *PgxSubledgerRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) (*domain.FixedAsset, error) {
	m := mapping.ToModelFixedAsset(asset)

	query := `
		INSERT INTO fixed_assets (name, acquired_date, cost, salvage_value, useful_life_months, accumulated_depreciation, last_depreciation_period, is_disposed, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING asset_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.AcquiredDate, m.Cost, m.SalvageValue, m.UsefulLifeMonths, m.AccumulatedDepreciation, m.LastDepreciationPeriod, m.IsDisposed,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert fixed asset: %w", err)
	}

	created := mapping.ToDomainFixedAsset(m)
	return &created, nil
}

// FindAssetByID retrieves a fixed asset by its identifier.
func (r *PgxSubledgerRepository) FindAssetByID(ctx context.Context, assetID int64) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1;`

	m, err := scanAssetRow(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query fixed asset %d: %w", assetID, err)
	}

	asset := mapping.ToDomainFixedAsset(m)
	return &asset, nil
}

// ListActiveAssets retrieves all assets not yet disposed.
func (r *PgxSubledgerRepository) ListActiveAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM fixed_assets
		WHERE is_disposed = FALSE
		ORDER BY asset_id;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		m, err := scanAssetRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset row: %w", err)
		}
		assets = append(assets, mapping.ToDomainFixedAsset(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating fixed asset rows: %w", rows.Err())
	}

	return assets, nil
}

// AddAccumulatedDepreciation folds a period's charge into an asset's
// accumulated depreciation. The last_depreciation_period guard makes the
// update idempotent per period: YYYY-MM strings compare lexicographically in
// date order, so a replay of an already-applied period matches no row and
// the method reports false without touching the asset.
func (r *PgxSubledgerRepository) AddAccumulatedDepreciation(ctx context.Context, assetID int64, amount int64, period string, userID string, now time.Time) (bool, error) {
	query := `
		UPDATE fixed_assets
		SET accumulated_depreciation = accumulated_depreciation + $2, last_depreciation_period = $3, last_updated_at = $4, last_updated_by = $5
		WHERE asset_id = $1 AND last_depreciation_period < $3;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, assetID, amount, period, mapping.ToEpoch(now), userID)
	if err != nil {
		return false, fmt.Errorf("failed to add depreciation to asset %d: %w", assetID, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// ---- Payroll runs ----

const payrollColumns = `run_id, period, run_date, gross_amount, tax_amount, is_paid, created_at, created_by, last_updated_at, last_updated_by`

func scanPayrollRow(row pgx.Row) (models.PayrollRun, error) {
	var m models.PayrollRun
	err := row.Scan(
		&m.RunID,
		&m.Period,
		&m.RunDate,
		&m.GrossAmount,
		&m.TaxAmount,
		&m.IsPaid,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRun persists a new payroll run and returns it with its assigned id.
func (r *PgxSubledgerRepository) SaveRun(ctx context.Context, run domain.PayrollRun) (*domain.PayrollRun, error) {
	m := mapping.ToModelPayrollRun(run)

	query := `
		INSERT INTO payroll_runs (period, run_date, gross_amount, tax_amount, is_paid, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING run_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		m.Period, m.RunDate, m.GrossAmount, m.TaxAmount, m.IsPaid,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.RunID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payroll run: %w", err)
	}

	created := mapping.ToDomainPayrollRun(m)
	return &created, nil
}

// FindRunByID retrieves a payroll run by its identifier.
func (r *PgxSubledgerRepository) FindRunByID(ctx context.Context, runID int64) (*domain.PayrollRun, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_runs WHERE run_id = $1;`

	m, err := scanPayrollRow(r.Pool.QueryRow(ctx, query, runID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query payroll run %d: %w", runID, err)
	}

	run := mapping.ToDomainPayrollRun(m)
	return &run, nil
}

// FindRunByPeriod retrieves the payroll run for a YYYY-MM period, if any.
func (r *PgxSubledgerRepository) FindRunByPeriod(ctx context.Context, period string) (*domain.PayrollRun, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_runs WHERE period = $1;`

	m, err := scanPayrollRow(r.Pool.QueryRow(ctx, query, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query payroll run for period %s: %w", period, err)
	}

	run := mapping.ToDomainPayrollRun(m)
	return &run, nil
}

// ListRuns retrieves all payroll runs, newest period first.
func (r *PgxSubledgerRepository) ListRuns(ctx context.Context) ([]domain.PayrollRun, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_runs
		ORDER BY period DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.PayrollRun{}
	for rows.Next() {
		m, err := scanPayrollRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run row: %w", err)
		}
		runs = append(runs, mapping.ToDomainPayrollRun(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payroll run rows: %w", rows.Err())
	}

	return runs, nil
}

// MarkRunPaid flags a payroll run's net salaries as disbursed.
func (r *PgxSubledgerRepository) MarkRunPaid(ctx context.Context, runID int64, userID string, now time.Time) error {
	query := `
		UPDATE payroll_runs
		SET is_paid = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE run_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, runID, mapping.ToEpoch(now), userID)
	if err != nil {
		return fmt.Errorf("failed to mark payroll run %d paid: %w", runID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
