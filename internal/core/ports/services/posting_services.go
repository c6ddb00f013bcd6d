package services

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/dto"
)

// BillPostingSvc records vendor bills and their payments, posting the
// corresponding journal entries.
type BillPostingSvc interface {
	// RecordBill saves a vendor bill and posts Dr Inventory / Cr Accounts
	// Payable for it.
	RecordBill(ctx context.Context, req dto.CreateBillRequest, userID string) (*domain.VendorBill, *domain.JournalEntry, error)

	// PayBill saves a payment against a bill and posts Dr Accounts Payable /
	// Cr Bank. The bill is flagged paid once payments cover its amount.
	PayBill(ctx context.Context, billID int64, req dto.PayBillRequest, userID string) (*domain.BillPayment, *domain.JournalEntry, error)

	// GetBill retrieves a bill with its posting status.
	GetBill(ctx context.Context, billID int64) (*domain.VendorBill, error)

	// ListBills retrieves vendor bills.
	ListBills(ctx context.Context, unpaidOnly bool) ([]domain.VendorBill, error)
}

// InvoicePostingSvc records customer invoices and receipts, posting the
// corresponding journal entries.
type InvoicePostingSvc interface {
	// RecordInvoice saves an invoice and posts Dr Accounts Receivable /
	// Cr Sales Revenue, plus Dr COGS / Cr Inventory when cost of goods is set.
	RecordInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.CustomerInvoice, *domain.JournalEntry, error)

	// ReceiveInvoice saves a receipt against an invoice and posts Dr Bank /
	// Cr Accounts Receivable. The invoice is flagged settled once receipts
	// cover its amount.
	ReceiveInvoice(ctx context.Context, invoiceID int64, req dto.ReceiveInvoiceRequest, userID string) (*domain.InvoiceReceipt, *domain.JournalEntry, error)

	// GetInvoice retrieves an invoice with its posting status.
	GetInvoice(ctx context.Context, invoiceID int64) (*domain.CustomerInvoice, error)

	// ListInvoices retrieves customer invoices.
	ListInvoices(ctx context.Context, unsettledOnly bool) ([]domain.CustomerInvoice, error)
}

// ExpensePostingSvc records direct expenses.
type ExpensePostingSvc interface {
	// RecordExpense saves an expense and posts Dr Operating Expenses /
	// Cr Cash-or-Bank for it.
	RecordExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, *domain.JournalEntry, error)

	// ListExpenses retrieves recorded expenses.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

// AssetPostingSvc registers fixed assets and charges depreciation.
type AssetPostingSvc interface {
	// RegisterAsset saves a fixed asset and posts Dr Fixed Assets / Cr Bank
	// for the acquisition.
	RegisterAsset(ctx context.Context, req dto.CreateAssetRequest, userID string) (*domain.FixedAsset, *domain.JournalEntry, error)

	// RunMonthlyDepreciation charges one straight-line period for every
	// active asset, posting Dr Depreciation Expense / Cr Accumulated
	// Depreciation per asset. Already-charged assets are skipped, so the run
	// is idempotent per period.
	RunMonthlyDepreciation(ctx context.Context, period string, userID string) (*dto.DepreciationRunResponse, error)

	// ListAssets retrieves assets not yet disposed.
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)
}

// PayrollPostingSvc records payroll runs and their disbursement.
type PayrollPostingSvc interface {
	// RecordPayrollRun saves a payroll run and posts Dr Salaries Expense /
	// Cr Salaries Payable + Cr Tax Payable for the accrual.
	RecordPayrollRun(ctx context.Context, req dto.CreatePayrollRunRequest, userID string) (*domain.PayrollRun, *domain.JournalEntry, error)

	// PayPayrollRun posts Dr Salaries Payable / Cr Bank for the net salaries
	// of a recorded run.
	PayPayrollRun(ctx context.Context, runID int64, userID string) (*domain.PayrollRun, *domain.JournalEntry, error)

	// ListPayrollRuns retrieves payroll runs.
	ListPayrollRuns(ctx context.Context) ([]domain.PayrollRun, error)
}

// PostingSvcFacade combines all sub-ledger posting service interfaces
// This is a facade for clients that need access to all operations
type PostingSvcFacade interface {
	BillPostingSvc
	InvoicePostingSvc
	ExpensePostingSvc
	AssetPostingSvc
	PayrollPostingSvc
}
