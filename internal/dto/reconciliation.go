package dto

import (
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// MissingPostingResponse is a source document with no posted journal entry.
type MissingPostingResponse struct {
	Kind          string          `json:"kind"`
	DocumentID    int64           `json:"documentID"`
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
}

// OrphanEntryResponse is a posted entry whose source document is gone.
type OrphanEntryResponse struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
}

// BalanceDriftResponse is an account whose cached balance disagrees with its
// posted lines.
type BalanceDriftResponse struct {
	AccountCode     string          `json:"accountCode"`
	CachedBalance   decimal.Decimal `json:"cachedBalance"`
	ComputedBalance decimal.Decimal `json:"computedBalance"`
}

// IntegrityReportResponse is the result of one reconciliation sweep.
type IntegrityReportResponse struct {
	Clean             bool                     `json:"clean"`
	MissingPostings   []MissingPostingResponse `json:"missingPostings"`
	OrphanEntries     []OrphanEntryResponse    `json:"orphanEntries"`
	UnbalancedEntries []string                 `json:"unbalancedEntries"`
	BalanceDrifts     []BalanceDriftResponse   `json:"balanceDrifts"`
}

// ToIntegrityReportResponse converts a domain.IntegrityReport to its DTO.
func ToIntegrityReportResponse(r *domain.IntegrityReport) IntegrityReportResponse {
	res := IntegrityReportResponse{
		Clean:             r.Clean(),
		MissingPostings:   make([]MissingPostingResponse, len(r.MissingPostings)),
		OrphanEntries:     make([]OrphanEntryResponse, len(r.OrphanEntries)),
		UnbalancedEntries: r.UnbalancedEntries,
		BalanceDrifts:     make([]BalanceDriftResponse, len(r.BalanceDrifts)),
	}
	for i, m := range r.MissingPostings {
		res.MissingPostings[i] = MissingPostingResponse{
			Kind:          string(m.Kind),
			DocumentID:    m.DocumentID,
			TransactionID: m.TransactionID,
			Amount:        money.FromMinor(m.Amount),
		}
	}
	for i, o := range r.OrphanEntries {
		res.OrphanEntries[i] = OrphanEntryResponse{
			EntryID:       o.EntryID,
			TransactionID: o.TransactionID,
			Amount:        money.FromMinor(o.Amount),
		}
	}
	for i, d := range r.BalanceDrifts {
		res.BalanceDrifts[i] = BalanceDriftResponse{
			AccountCode:     d.AccountCode,
			CachedBalance:   money.FromMinor(d.CachedBalance),
			ComputedBalance: money.FromMinor(d.ComputedBalance),
		}
	}
	return res
}

// RepairSummaryResponse summarizes what one repair pass changed.
type RepairSummaryResponse struct {
	PostingsCreated  int `json:"postingsCreated"`
	EntriesDeleted   int `json:"entriesDeleted"`
	BalancesRepaired int `json:"balancesRepaired"`
}
