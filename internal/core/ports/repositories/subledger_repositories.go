package repositories

import (
	"context"
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
)

// BillReader defines read operations for vendor bills and their payments
type BillReader interface {
	// FindBillByID retrieves a vendor bill by its identifier.
	FindBillByID(ctx context.Context, billID int64) (*domain.VendorBill, error)

	// ListBills retrieves all vendor bills, optionally only unpaid ones.
	ListBills(ctx context.Context, unpaidOnly bool) ([]domain.VendorBill, error)

	// FindPaymentsByBillID retrieves the payments recorded against a bill.
	FindPaymentsByBillID(ctx context.Context, billID int64) ([]domain.BillPayment, error)
}

// BillWriter defines write operations for vendor bills and their payments
type BillWriter interface {
	// SaveBill persists a new vendor bill and returns it with its assigned id.
	SaveBill(ctx context.Context, bill domain.VendorBill) (*domain.VendorBill, error)

	// SavePayment persists a bill payment and returns it with its assigned id.
	SavePayment(ctx context.Context, payment domain.BillPayment) (*domain.BillPayment, error)

	// MarkBillPaid flags a bill as fully paid.
	MarkBillPaid(ctx context.Context, billID int64, userID string, now time.Time) error
}

// InvoiceReader defines read operations for customer invoices and receipts
type InvoiceReader interface {
	// FindInvoiceByID retrieves a customer invoice by its identifier.
	FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.CustomerInvoice, error)

	// ListInvoices retrieves all customer invoices, optionally only unsettled ones.
	ListInvoices(ctx context.Context, unsettledOnly bool) ([]domain.CustomerInvoice, error)

	// FindReceiptsByInvoiceID retrieves the receipts recorded against an invoice.
	FindReceiptsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.InvoiceReceipt, error)
}

// InvoiceWriter defines write operations for customer invoices and receipts
type InvoiceWriter interface {
	// SaveInvoice persists a new customer invoice and returns it with its assigned id.
	SaveInvoice(ctx context.Context, invoice domain.CustomerInvoice) (*domain.CustomerInvoice, error)

	// SaveReceipt persists an invoice receipt and returns it with its assigned id.
	SaveReceipt(ctx context.Context, receipt domain.InvoiceReceipt) (*domain.InvoiceReceipt, error)

	// MarkInvoiceSettled flags an invoice as fully collected.
	MarkInvoiceSettled(ctx context.Context, invoiceID int64, userID string, now time.Time) error
}

// ExpenseRepository defines operations for recorded expenses
type ExpenseRepository interface {
	// FindExpenseByID retrieves an expense by its identifier.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses retrieves all recorded expenses.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// SaveExpense persists a new expense and returns it with its assigned id.
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)
}

// AssetRepository defines operations for fixed assets
type AssetRepository interface {
	// FindAssetByID retrieves a fixed asset by its identifier.
	FindAssetByID(ctx context.Context, assetID int64) (*domain.FixedAsset, error)

	// ListActiveAssets retrieves all assets not yet disposed.
	ListActiveAssets(ctx context.Context) ([]domain.FixedAsset, error)

	// SaveAsset persists a new fixed asset and returns it with its assigned id.
	SaveAsset(ctx context.Context, asset domain.FixedAsset) (*domain.FixedAsset, error)

	// AddAccumulatedDepreciation folds a period's charge into an asset's
	// accumulated depreciation. Returns false when the asset has already
	// absorbed that period's charge (or a later one), so callers can replay
	// a run without double counting.
	AddAccumulatedDepreciation(ctx context.Context, assetID int64, amount int64, period string, userID string, now time.Time) (bool, error)
}

// PayrollRepository defines operations for payroll runs
type PayrollRepository interface {
	// FindRunByID retrieves a payroll run by its identifier.
	FindRunByID(ctx context.Context, runID int64) (*domain.PayrollRun, error)

	// FindRunByPeriod retrieves the payroll run for a YYYY-MM period, if any.
	FindRunByPeriod(ctx context.Context, period string) (*domain.PayrollRun, error)

	// ListRuns retrieves all payroll runs.
	ListRuns(ctx context.Context) ([]domain.PayrollRun, error)

	// SaveRun persists a new payroll run and returns it with its assigned id.
	SaveRun(ctx context.Context, run domain.PayrollRun) (*domain.PayrollRun, error)

	// MarkRunPaid flags a payroll run's net salaries as disbursed.
	MarkRunPaid(ctx context.Context, runID int64, userID string, now time.Time) error
}

// SubledgerRepositoryFacade combines all source-document repository interfaces
// This is a facade for clients that need access to all operations
type SubledgerRepositoryFacade interface {
	BillReader
	BillWriter
	InvoiceReader
	InvoiceWriter
	ExpenseRepository
	AssetRepository
	PayrollRepository
}
