package repositories

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalReader defines read operations for journal entry data
type JournalReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntryByTransactionID retrieves the entry posted for a source
	// document transaction id, if any.
	FindEntryByTransactionID(ctx context.Context, transactionID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries using
	// token-based pagination. It returns the entries, a token for the next
	// page, and an error.
	ListEntries(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entry data
type JournalWriter interface {
	// SaveEntry persists an entry and its lines, updating cached account
	// balances within a single transaction. Returns apperrors.ErrDuplicate
	// when the entry's transaction id is already posted.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]int64) error

	// SaveReversal persists a reversal entry and marks the original entry as
	// reversed within the same transaction. Returns apperrors.ErrDuplicate
	// when the reversal's transaction id is already posted.
	SaveReversal(ctx context.Context, reversal domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]int64, originalEntryID string) error

	// UpdateEntry updates non-status fields of an entry (description, date,
	// reference).
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// ReplaceEntryLines swaps an entry's lines for a new balanced set,
	// updating the entry header and applying the net balance deltas within a
	// single transaction.
	ReplaceEntryLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]int64) error

	// DeleteEntryInTx removes an entry and its lines within a transaction.
	// Used only by the integrity orphan repair.
	DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error
}

// LineReader defines read operations for journal line data
type LineReader interface {
	// FindLinesByEntryID retrieves all lines of a single entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error)

	// ListLinesByAccountCode retrieves a paginated list of lines for a
	// specific account using token-based pagination.
	ListLinesByAccountCode(ctx context.Context, accountCode string, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	LineReader
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
