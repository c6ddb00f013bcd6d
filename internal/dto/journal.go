package dto

import (
	"time"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one leg of a manual journal entry. Amounts are in
// major units; exactly one of debit/credit must be positive.
type CreateEntryLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateEntryRequest defines the data needed to post a manual journal entry.
type CreateEntryRequest struct {
	EntryDate     time.Time                `json:"entryDate" binding:"required"`
	Description   string                   `json:"description" binding:"required"`
	Reference     string                   `json:"reference"`
	TransactionID *string                  `json:"transactionID"` // Optional idempotency key
	EntryType     domain.EntryType         `json:"entryType" binding:"omitempty,oneof=TRANSACTION ADJUSTMENT TRANSFER"`
	Lines         []CreateEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateEntryRequest defines the fields that may change after posting. Lines
// may only be replaced on manual entries (no transaction id); entries posted
// for a source document are corrected by reversal instead.
type UpdateEntryRequest struct {
	EntryDate   *time.Time               `json:"entryDate"`
	Description *string                  `json:"description"`
	Reference   *string                  `json:"reference"`
	Lines       []CreateEntryLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
}

// EntryLineResponse defines the data returned for a journal line.
type EntryLineResponse struct {
	LineID         string          `json:"lineID"`
	AccountCode    string          `json:"accountCode"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Description    string          `json:"description,omitempty"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID          string              `json:"entryID"`
	EntryDate        time.Time           `json:"entryDate"`
	Description      string              `json:"description"`
	Reference        string              `json:"reference,omitempty"`
	TransactionID    *string             `json:"transactionID,omitempty"`
	EntryType        domain.EntryType    `json:"entryType"`
	Status           domain.EntryStatus  `json:"status"`
	OriginalEntryID  *string             `json:"originalEntryID,omitempty"`
	ReversingEntryID *string             `json:"reversingEntryID,omitempty"`
	Amount           decimal.Decimal     `json:"amount"`
	Lines            []EntryLineResponse `json:"lines,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	CreatedBy        string              `json:"createdBy"`
}

// ToEntryLineResponse converts a domain.JournalLine to EntryLineResponse DTO.
func ToEntryLineResponse(line *domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:         line.LineID,
		AccountCode:    line.AccountCode,
		Debit:          money.FromMinor(line.Debit),
		Credit:         money.FromMinor(line.Credit),
		Description:    line.Description,
		RunningBalance: money.FromMinor(line.RunningBalance),
	}
}

// ToEntryLineResponses converts a slice of domain.JournalLine to []EntryLineResponse.
func ToEntryLineResponses(lines []domain.JournalLine) []EntryLineResponse {
	responses := make([]EntryLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToEntryLineResponse(&line)
	}
	return responses
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:          e.EntryID,
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		Reference:        e.Reference,
		TransactionID:    e.TransactionID,
		EntryType:        e.EntryType,
		Status:           e.Status,
		OriginalEntryID:  e.OriginalEntryID,
		ReversingEntryID: e.ReversingEntryID,
		Amount:           money.FromMinor(e.Amount),
		Lines:            ToEntryLineResponses(e.Lines),
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
	}
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Limit            int     `form:"limit,default=20"`
	NextToken        *string `form:"nextToken"`
	IncludeReversals bool    `form:"includeReversals,default=false"`
}

// ListEntriesResponse wraps a page of journal entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// LedgerParams defines query parameters for the general-ledger view.
type LedgerParams struct {
	From      time.Time `form:"from" time_format:"2006-01-02"`
	To        time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int       `form:"limit,default=50"`
	NextToken *string   `form:"nextToken"`
}

// LedgerRowResponse is one dated movement on an account.
type LedgerRowResponse struct {
	EntryID        string          `json:"entryID"`
	EntryDate      time.Time       `json:"entryDate"`
	Description    string          `json:"description"`
	Reference      string          `json:"reference,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerResponse wraps a page of ledger rows for one account.
type LedgerResponse struct {
	AccountCode string              `json:"accountCode"`
	Rows        []LedgerRowResponse `json:"rows"`
	NextToken   *string             `json:"nextToken,omitempty"`
}

// ToLedgerRowResponse converts a domain.LedgerRow to LedgerRowResponse DTO.
func ToLedgerRowResponse(row *domain.LedgerRow) LedgerRowResponse {
	return LedgerRowResponse{
		EntryID:        row.EntryID,
		EntryDate:      row.EntryDate,
		Description:    row.Description,
		Reference:      row.Reference,
		Debit:          money.FromMinor(row.Debit),
		Credit:         money.FromMinor(row.Credit),
		RunningBalance: money.FromMinor(row.RunningBalance),
	}
}
