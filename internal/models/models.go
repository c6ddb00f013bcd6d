// Package models holds the persisted row representations. All monetary
// columns are BIGINT minor currency units and all date/timestamp columns are
// BIGINT Unix epoch seconds; the mapping package converts to and from the
// domain types.
package models

// AuditFields holds the persisted audit columns.
type AuditFields struct {
	CreatedAt     int64  `db:"created_at"`
	CreatedBy     string `db:"created_by"`
	LastUpdatedAt int64  `db:"last_updated_at"`
	LastUpdatedBy string `db:"last_updated_by"`
}

// Account is the accounts table row.
type Account struct {
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	ParentCode  string `db:"parent_code"`
	Balance     int64  `db:"balance"`
	IsCurrent   bool   `db:"is_current"`
	CostOfSales bool   `db:"cost_of_sales"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// JournalEntry is the journal_entries table row.
type JournalEntry struct {
	EntryID          string  `db:"entry_id"`
	EntryDate        int64   `db:"entry_date"`
	Description      string  `db:"description"`
	Reference        string  `db:"reference"`
	TransactionID    *string `db:"transaction_id"`
	EntryType        string  `db:"entry_type"`
	Status           string  `db:"status"`
	OriginalEntryID  *string `db:"original_entry_id"`
	ReversingEntryID *string `db:"reversing_entry_id"`
	Amount           int64   `db:"amount"`
	AuditFields
}

// JournalLine is the journal_lines table row.
type JournalLine struct {
	LineID         string `db:"line_id"`
	EntryID        string `db:"entry_id"`
	AccountCode    string `db:"account_code"`
	Debit          int64  `db:"debit"`
	Credit         int64  `db:"credit"`
	Description    string `db:"description"`
	RunningBalance int64  `db:"running_balance"`
	AuditFields
}

// VendorBill is the vendor_bills table row.
type VendorBill struct {
	BillID     int64  `db:"bill_id"`
	VendorName string `db:"vendor_name"`
	BillDate   int64  `db:"bill_date"`
	Amount     int64  `db:"amount"`
	Reference  string `db:"reference"`
	IsPaid     bool   `db:"is_paid"`
	AuditFields
}

// BillPayment is the bill_payments table row.
type BillPayment struct {
	PaymentID   int64 `db:"payment_id"`
	BillID      int64 `db:"bill_id"`
	PaymentDate int64 `db:"payment_date"`
	Amount      int64 `db:"amount"`
	AuditFields
}

// CustomerInvoice is the customer_invoices table row.
type CustomerInvoice struct {
	InvoiceID    int64  `db:"invoice_id"`
	CustomerName string `db:"customer_name"`
	InvoiceDate  int64  `db:"invoice_date"`
	Amount       int64  `db:"amount"`
	CostOfGoods  int64  `db:"cost_of_goods"`
	Reference    string `db:"reference"`
	IsSettled    bool   `db:"is_settled"`
	AuditFields
}

// InvoiceReceipt is the invoice_receipts table row.
type InvoiceReceipt struct {
	ReceiptID   int64 `db:"receipt_id"`
	InvoiceID   int64 `db:"invoice_id"`
	ReceiptDate int64 `db:"receipt_date"`
	Amount      int64 `db:"amount"`
	AuditFields
}

// Expense is the expenses table row.
type Expense struct {
	ExpenseID    int64  `db:"expense_id"`
	Category     string `db:"category"`
	ExpenseDate  int64  `db:"expense_date"`
	Amount       int64  `db:"amount"`
	PaidFromCash bool   `db:"paid_from_cash"`
	Description  string `db:"description"`
	AuditFields
}

// FixedAsset is the fixed_assets table row.
type FixedAsset struct {
	AssetID                 int64  `db:"asset_id"`
	Name                    string `db:"name"`
	AcquiredDate            int64  `db:"acquired_date"`
	Cost                    int64  `db:"cost"`
	SalvageValue            int64  `db:"salvage_value"`
	UsefulLifeMonths        int    `db:"useful_life_months"`
	AccumulatedDepreciation int64  `db:"accumulated_depreciation"`
	LastDepreciationPeriod  string `db:"last_depreciation_period"`
	IsDisposed              bool   `db:"is_disposed"`
	AuditFields
}

// PayrollRun is the payroll_runs table row.
type PayrollRun struct {
	RunID       int64  `db:"run_id"`
	Period      string `db:"period"`
	RunDate     int64  `db:"run_date"`
	GrossAmount int64  `db:"gross_amount"`
	TaxAmount   int64  `db:"tax_amount"`
	IsPaid      bool   `db:"is_paid"`
	AuditFields
}

// Settings is the business_settings table row (single row, id always 1).
type Settings struct {
	ID                   int    `db:"id"`
	CompanyName          string `db:"company_name"`
	BaseCurrency         string `db:"base_currency"`
	FiscalYearStartMonth int    `db:"fiscal_year_start_month"`
	AuditFields
}

// User is the users table row.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
