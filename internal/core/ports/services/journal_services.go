package services

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntryByID retrieves a specific entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// GetGeneralLedger retrieves the dated line history of one account.
	GetGeneralLedger(ctx context.Context, accountCode string, params dto.LedgerParams) (*dto.LedgerResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateEntry validates and posts a balanced journal entry, updating
	// cached account balances atomically. When the request carries a
	// transaction id already posted, the existing entry is returned.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// UpdateEntry updates descriptive fields of a posted entry.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, requestingUserID string) (*domain.JournalEntry, error)

	// ReverseEntry posts a mirror-image entry and links the pair.
	ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
