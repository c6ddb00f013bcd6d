package mapping

import (
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/models"
)

func ToModelVendorBill(d domain.VendorBill) models.VendorBill {
	return models.VendorBill{
		BillID:      d.BillID,
		VendorName:  d.VendorName,
		BillDate:    ToEpoch(d.BillDate),
		Amount:      d.Amount,
		Reference:   d.Reference,
		IsPaid:      d.IsPaid,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainVendorBill(m models.VendorBill) domain.VendorBill {
	return domain.VendorBill{
		BillID:      m.BillID,
		VendorName:  m.VendorName,
		BillDate:    FromEpoch(m.BillDate),
		Amount:      m.Amount,
		Reference:   m.Reference,
		IsPaid:      m.IsPaid,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelBillPayment(d domain.BillPayment) models.BillPayment {
	return models.BillPayment{
		PaymentID:   d.PaymentID,
		BillID:      d.BillID,
		PaymentDate: ToEpoch(d.PaymentDate),
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainBillPayment(m models.BillPayment) domain.BillPayment {
	return domain.BillPayment{
		PaymentID:   m.PaymentID,
		BillID:      m.BillID,
		PaymentDate: FromEpoch(m.PaymentDate),
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelInvoice(d domain.CustomerInvoice) models.CustomerInvoice {
	return models.CustomerInvoice{
		InvoiceID:    d.InvoiceID,
		CustomerName: d.CustomerName,
		InvoiceDate:  ToEpoch(d.InvoiceDate),
		Amount:       d.Amount,
		CostOfGoods:  d.CostOfGoods,
		Reference:    d.Reference,
		IsSettled:    d.IsSettled,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainInvoice(m models.CustomerInvoice) domain.CustomerInvoice {
	return domain.CustomerInvoice{
		InvoiceID:    m.InvoiceID,
		CustomerName: m.CustomerName,
		InvoiceDate:  FromEpoch(m.InvoiceDate),
		Amount:       m.Amount,
		CostOfGoods:  m.CostOfGoods,
		Reference:    m.Reference,
		IsSettled:    m.IsSettled,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelReceipt(d domain.InvoiceReceipt) models.InvoiceReceipt {
	return models.InvoiceReceipt{
		ReceiptID:   d.ReceiptID,
		InvoiceID:   d.InvoiceID,
		ReceiptDate: ToEpoch(d.ReceiptDate),
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainReceipt(m models.InvoiceReceipt) domain.InvoiceReceipt {
	return domain.InvoiceReceipt{
		ReceiptID:   m.ReceiptID,
		InvoiceID:   m.InvoiceID,
		ReceiptDate: FromEpoch(m.ReceiptDate),
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:    d.ExpenseID,
		Category:     d.Category,
		ExpenseDate:  ToEpoch(d.ExpenseDate),
		Amount:       d.Amount,
		PaidFromCash: d.PaidFromCash,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		Category:     m.Category,
		ExpenseDate:  FromEpoch(m.ExpenseDate),
		Amount:       m.Amount,
		PaidFromCash: m.PaidFromCash,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelFixedAsset(d domain.FixedAsset) models.FixedAsset {
	return models.FixedAsset{
		AssetID:                 d.AssetID,
		Name:                    d.Name,
		AcquiredDate:            ToEpoch(d.AcquiredDate),
		Cost:                    d.Cost,
		SalvageValue:            d.SalvageValue,
		UsefulLifeMonths:        d.UsefulLifeMonths,
		AccumulatedDepreciation: d.AccumulatedDepreciation,
		LastDepreciationPeriod:  d.LastDepreciationPeriod,
		IsDisposed:              d.IsDisposed,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainFixedAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:                 m.AssetID,
		Name:                    m.Name,
		AcquiredDate:            FromEpoch(m.AcquiredDate),
		Cost:                    m.Cost,
		SalvageValue:            m.SalvageValue,
		UsefulLifeMonths:        m.UsefulLifeMonths,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		LastDepreciationPeriod:  m.LastDepreciationPeriod,
		IsDisposed:              m.IsDisposed,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelPayrollRun(d domain.PayrollRun) models.PayrollRun {
	return models.PayrollRun{
		RunID:       d.RunID,
		Period:      d.Period,
		RunDate:     ToEpoch(d.RunDate),
		GrossAmount: d.GrossAmount,
		TaxAmount:   d.TaxAmount,
		IsPaid:      d.IsPaid,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPayrollRun(m models.PayrollRun) domain.PayrollRun {
	return domain.PayrollRun{
		RunID:       m.RunID,
		Period:      m.Period,
		RunDate:     FromEpoch(m.RunDate),
		GrossAmount: m.GrossAmount,
		TaxAmount:   m.TaxAmount,
		IsPaid:      m.IsPaid,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
