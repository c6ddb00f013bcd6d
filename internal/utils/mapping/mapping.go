// Package mapping converts between persisted model rows and domain types.
// Epoch-second columns become UTC time.Time values on the way out.
package mapping

import (
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/models"
)

// ToEpoch converts a time to the persisted epoch-seconds representation.
func ToEpoch(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// FromEpoch converts persisted epoch seconds back to a UTC time.
func FromEpoch(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

// ToModelAuditFields converts domain audit fields to their persisted form.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     ToEpoch(d.CreatedAt),
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: ToEpoch(d.LastUpdatedAt),
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts persisted audit fields to the domain form.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     FromEpoch(m.CreatedAt),
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: FromEpoch(m.LastUpdatedAt),
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelAccount converts a domain Account to its table row.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		Code:        d.Code,
		Name:        d.Name,
		AccountType: string(d.Type),
		ParentCode:  d.ParentCode,
		Balance:     d.Balance,
		IsCurrent:   d.IsCurrent,
		CostOfSales: d.CostOfSales,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts an accounts row to the domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:        m.Code,
		Name:        m.Name,
		Type:        domain.AccountType(m.AccountType),
		ParentCode:  m.ParentCode,
		Balance:     m.Balance,
		IsCurrent:   m.IsCurrent,
		CostOfSales: m.CostOfSales,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntry converts a domain JournalEntry to its table row.
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.EntryID,
		EntryDate:        ToEpoch(d.EntryDate),
		Description:      d.Description,
		Reference:        d.Reference,
		TransactionID:    d.TransactionID,
		EntryType:        string(d.EntryType),
		Status:           string(d.Status),
		OriginalEntryID:  d.OriginalEntryID,
		ReversingEntryID: d.ReversingEntryID,
		Amount:           d.Amount,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a journal_entries row to the domain JournalEntry.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:          m.EntryID,
		EntryDate:        FromEpoch(m.EntryDate),
		Description:      m.Description,
		Reference:        m.Reference,
		TransactionID:    m.TransactionID,
		EntryType:        domain.EntryType(m.EntryType),
		Status:           domain.EntryStatus(m.Status),
		OriginalEntryID:  m.OriginalEntryID,
		ReversingEntryID: m.ReversingEntryID,
		Amount:           m.Amount,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLine converts a domain JournalLine to its table row.
func ToModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:         d.LineID,
		EntryID:        d.EntryID,
		AccountCode:    d.AccountCode,
		Debit:          d.Debit,
		Credit:         d.Credit,
		Description:    d.Description,
		RunningBalance: d.RunningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLine converts a journal_lines row to the domain JournalLine.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:         m.LineID,
		EntryID:        m.EntryID,
		AccountCode:    m.AccountCode,
		Debit:          m.Debit,
		Credit:         m.Credit,
		Description:    m.Description,
		RunningBalance: m.RunningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineSlice converts journal_lines rows to domain JournalLines.
func ToDomainLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLine(m)
	}
	return ds
}
