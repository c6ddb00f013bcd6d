package domain

import (
	"fmt"
	"time"
)

// Sub-ledger documents are the upstream sources of journal entries. Each
// document type derives a transaction id ("bill-42" style) that correlates
// the document with the entry the poster created for it.

// VendorBill is a purchase document: goods received into inventory against
// accounts payable.
type VendorBill struct {
	BillID     int64     `json:"billID"`
	VendorName string    `json:"vendorName"`
	BillDate   time.Time `json:"billDate"`
	Amount     int64     `json:"amount"` // Minor units
	Reference  string    `json:"reference"`
	IsPaid     bool      `json:"isPaid"`
	AuditFields
}

func (b VendorBill) TransactionID() string { return fmt.Sprintf("bill-%d", b.BillID) }

// BillPayment settles a vendor bill from the bank account.
type BillPayment struct {
	PaymentID   int64     `json:"paymentID"`
	BillID      int64     `json:"billID"`
	PaymentDate time.Time `json:"paymentDate"`
	Amount      int64     `json:"amount"`
	AuditFields
}

func (p BillPayment) TransactionID() string { return fmt.Sprintf("pay-%d", p.PaymentID) }

// CustomerInvoice is a sales document: receivable against revenue, with an
// optional cost-of-goods relief of inventory.
type CustomerInvoice struct {
	InvoiceID    int64     `json:"invoiceID"`
	CustomerName string    `json:"customerName"`
	InvoiceDate  time.Time `json:"invoiceDate"`
	Amount       int64     `json:"amount"`
	CostOfGoods  int64     `json:"costOfGoods"` // 0 when no inventory relief
	Reference    string    `json:"reference"`
	IsSettled    bool      `json:"isSettled"`
	AuditFields
}

func (i CustomerInvoice) TransactionID() string { return fmt.Sprintf("inv-%d", i.InvoiceID) }

// InvoiceReceipt records cash received against a customer invoice.
type InvoiceReceipt struct {
	ReceiptID   int64     `json:"receiptID"`
	InvoiceID   int64     `json:"invoiceID"`
	ReceiptDate time.Time `json:"receiptDate"`
	Amount      int64     `json:"amount"`
	AuditFields
}

func (r InvoiceReceipt) TransactionID() string { return fmt.Sprintf("rcv-%d", r.ReceiptID) }

// Expense is a direct operating expense paid from cash or bank.
type Expense struct {
	ExpenseID   int64     `json:"expenseID"`
	Category    string    `json:"category"`
	ExpenseDate time.Time `json:"expenseDate"`
	Amount      int64     `json:"amount"`
	PaidFromCash bool     `json:"paidFromCash"` // false = paid from bank
	Description string    `json:"description"`
	AuditFields
}

func (e Expense) TransactionID() string { return fmt.Sprintf("exp-%d", e.ExpenseID) }

// FixedAsset is a depreciable asset. Depreciation is straight-line monthly:
// (cost - salvage) / usefulLifeMonths.
type FixedAsset struct {
	AssetID          int64     `json:"assetID"`
	Name             string    `json:"name"`
	AcquiredDate     time.Time `json:"acquiredDate"`
	Cost             int64     `json:"cost"`
	SalvageValue     int64     `json:"salvageValue"`
	UsefulLifeMonths int       `json:"usefulLifeMonths"`
	// AccumulatedDepreciation mirrors the contra-account contribution of
	// this asset's depreciation entries; BookValue = Cost - Accumulated.
	AccumulatedDepreciation int64 `json:"accumulatedDepreciation"`
	// LastDepreciationPeriod is the latest YYYY-MM period folded into
	// AccumulatedDepreciation; empty until the first charge.
	LastDepreciationPeriod string `json:"lastDepreciationPeriod"`
	IsDisposed             bool   `json:"isDisposed"`
	AuditFields
}

// TransactionID derives the id of the acquisition entry.
func (a FixedAsset) TransactionID() string { return fmt.Sprintf("asset-%d", a.AssetID) }

// DepreciationTransactionID derives the per-period transaction id, which
// makes each monthly run idempotent per asset.
func (a FixedAsset) DepreciationTransactionID(period string) string {
	return fmt.Sprintf("dep-%d-%s", a.AssetID, period)
}

// BookValue returns cost less accumulated depreciation.
func (a FixedAsset) BookValue() int64 {
	return a.Cost - a.AccumulatedDepreciation
}

// PayrollRun is a monthly payroll batch: gross salaries split into withheld
// tax and net payable.
type PayrollRun struct {
	RunID       int64     `json:"runID"`
	Period      string    `json:"period"` // YYYY-MM
	RunDate     time.Time `json:"runDate"`
	GrossAmount int64     `json:"grossAmount"`
	TaxAmount   int64     `json:"taxAmount"`
	IsPaid      bool      `json:"isPaid"`
	AuditFields
}

func (p PayrollRun) TransactionID() string { return fmt.Sprintf("prl-%d", p.RunID) }

// PayrollPaymentTransactionID derives the id for the salary payout entry.
func (p PayrollRun) PayrollPaymentTransactionID() string {
	return fmt.Sprintf("prl-pay-%d", p.RunID)
}

// NetAmount is the amount payable to employees after withholding.
func (p PayrollRun) NetAmount() int64 {
	return p.GrossAmount - p.TaxAmount
}
