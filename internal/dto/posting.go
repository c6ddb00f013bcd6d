package dto

import (
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Sub-ledger request amounts are in major units and converted to minor units
// at the service boundary.

// CreateBillRequest defines the data needed to record a vendor bill.
type CreateBillRequest struct {
	VendorName string          `json:"vendorName" binding:"required"`
	BillDate   time.Time       `json:"billDate" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Reference  string          `json:"reference"`
}

// PayBillRequest defines the data needed to pay a vendor bill.
type PayBillRequest struct {
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreateInvoiceRequest defines the data needed to record a customer invoice.
type CreateInvoiceRequest struct {
	CustomerName string          `json:"customerName" binding:"required"`
	InvoiceDate  time.Time       `json:"invoiceDate" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CostOfGoods  decimal.Decimal `json:"costOfGoods"`
	Reference    string          `json:"reference"`
}

// ReceiveInvoiceRequest defines the data needed to record cash received
// against an invoice.
type ReceiveInvoiceRequest struct {
	ReceiptDate time.Time       `json:"receiptDate" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreateExpenseRequest defines the data needed to record a direct expense.
type CreateExpenseRequest struct {
	Category     string          `json:"category" binding:"required"`
	ExpenseDate  time.Time       `json:"expenseDate" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	PaidFromCash bool            `json:"paidFromCash"`
	Description  string          `json:"description"`
}

// CreateAssetRequest defines the data needed to register a fixed asset.
type CreateAssetRequest struct {
	Name             string          `json:"name" binding:"required"`
	AcquiredDate     time.Time       `json:"acquiredDate" binding:"required"`
	Cost             decimal.Decimal `json:"cost" binding:"required"`
	SalvageValue     decimal.Decimal `json:"salvageValue"`
	UsefulLifeMonths int             `json:"usefulLifeMonths" binding:"required,gt=0"`
}

// RunDepreciationRequest names the YYYY-MM period to charge.
type RunDepreciationRequest struct {
	Period string `json:"period" binding:"required,period"`
}

// CreatePayrollRunRequest defines the data needed to record a payroll run.
type CreatePayrollRunRequest struct {
	Period      string          `json:"period" binding:"required,period"`
	RunDate     time.Time       `json:"runDate" binding:"required"`
	GrossAmount decimal.Decimal `json:"grossAmount" binding:"required"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
}

// BillResponse defines the data returned for a vendor bill.
type BillResponse struct {
	BillID     int64           `json:"billID"`
	VendorName string          `json:"vendorName"`
	BillDate   time.Time       `json:"billDate"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference,omitempty"`
	IsPaid     bool            `json:"isPaid"`
	EntryID    string          `json:"entryID,omitempty"` // The journal entry the bill posted
}

// ToBillResponse converts a domain.VendorBill to BillResponse DTO.
func ToBillResponse(b *domain.VendorBill, entryID string) BillResponse {
	return BillResponse{
		BillID:     b.BillID,
		VendorName: b.VendorName,
		BillDate:   b.BillDate,
		Amount:     money.FromMinor(b.Amount),
		Reference:  b.Reference,
		IsPaid:     b.IsPaid,
		EntryID:    entryID,
	}
}

// InvoiceResponse defines the data returned for a customer invoice.
type InvoiceResponse struct {
	InvoiceID    int64           `json:"invoiceID"`
	CustomerName string          `json:"customerName"`
	InvoiceDate  time.Time       `json:"invoiceDate"`
	Amount       decimal.Decimal `json:"amount"`
	CostOfGoods  decimal.Decimal `json:"costOfGoods"`
	Reference    string          `json:"reference,omitempty"`
	IsSettled    bool            `json:"isSettled"`
	EntryID      string          `json:"entryID,omitempty"`
}

// ToInvoiceResponse converts a domain.CustomerInvoice to InvoiceResponse DTO.
func ToInvoiceResponse(i *domain.CustomerInvoice, entryID string) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:    i.InvoiceID,
		CustomerName: i.CustomerName,
		InvoiceDate:  i.InvoiceDate,
		Amount:       money.FromMinor(i.Amount),
		CostOfGoods:  money.FromMinor(i.CostOfGoods),
		Reference:    i.Reference,
		IsSettled:    i.IsSettled,
		EntryID:      entryID,
	}
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID    int64           `json:"expenseID"`
	Category     string          `json:"category"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	Amount       decimal.Decimal `json:"amount"`
	PaidFromCash bool            `json:"paidFromCash"`
	Description  string          `json:"description,omitempty"`
	EntryID      string          `json:"entryID,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense, entryID string) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		Category:     e.Category,
		ExpenseDate:  e.ExpenseDate,
		Amount:       money.FromMinor(e.Amount),
		PaidFromCash: e.PaidFromCash,
		Description:  e.Description,
		EntryID:      entryID,
	}
}

// AssetResponse defines the data returned for a fixed asset.
type AssetResponse struct {
	AssetID                 int64           `json:"assetID"`
	Name                    string          `json:"name"`
	AcquiredDate            time.Time       `json:"acquiredDate"`
	Cost                    decimal.Decimal `json:"cost"`
	SalvageValue            decimal.Decimal `json:"salvageValue"`
	UsefulLifeMonths        int             `json:"usefulLifeMonths"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	LastDepreciationPeriod  string          `json:"lastDepreciationPeriod,omitempty"`
	BookValue               decimal.Decimal `json:"bookValue"`
	IsDisposed              bool            `json:"isDisposed"`
}

// ToAssetResponse converts a domain.FixedAsset to AssetResponse DTO.
func ToAssetResponse(a *domain.FixedAsset) AssetResponse {
	return AssetResponse{
		AssetID:                 a.AssetID,
		Name:                    a.Name,
		AcquiredDate:            a.AcquiredDate,
		Cost:                    money.FromMinor(a.Cost),
		SalvageValue:            money.FromMinor(a.SalvageValue),
		UsefulLifeMonths:        a.UsefulLifeMonths,
		AccumulatedDepreciation: money.FromMinor(a.AccumulatedDepreciation),
		LastDepreciationPeriod:  a.LastDepreciationPeriod,
		BookValue:               money.FromMinor(a.BookValue()),
		IsDisposed:              a.IsDisposed,
	}
}

// PayrollRunResponse defines the data returned for a payroll run.
type PayrollRunResponse struct {
	RunID       int64           `json:"runID"`
	Period      string          `json:"period"`
	RunDate     time.Time       `json:"runDate"`
	GrossAmount decimal.Decimal `json:"grossAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	IsPaid      bool            `json:"isPaid"`
	EntryID     string          `json:"entryID,omitempty"`
}

// ToPayrollRunResponse converts a domain.PayrollRun to PayrollRunResponse DTO.
func ToPayrollRunResponse(p *domain.PayrollRun, entryID string) PayrollRunResponse {
	return PayrollRunResponse{
		RunID:       p.RunID,
		Period:      p.Period,
		RunDate:     p.RunDate,
		GrossAmount: money.FromMinor(p.GrossAmount),
		TaxAmount:   money.FromMinor(p.TaxAmount),
		NetAmount:   money.FromMinor(p.NetAmount()),
		IsPaid:      p.IsPaid,
		EntryID:     entryID,
	}
}

// DepreciationRunResponse summarizes one monthly depreciation run.
type DepreciationRunResponse struct {
	Period        string          `json:"period"`
	AssetsCharged int             `json:"assetsCharged"`
	AssetsSkipped int             `json:"assetsSkipped"`
	TotalCharge   decimal.Decimal `json:"totalCharge"`
	EntryIDs      []string        `json:"entryIDs"`
}
