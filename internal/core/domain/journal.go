package domain

import "time"

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// EntryType classifies the origin of a journal entry.
type EntryType string

const (
	EntryTransaction EntryType = "TRANSACTION"
	EntryReversal    EntryType = "REVERSAL"
	EntryAdjustment  EntryType = "ADJUSTMENT"
	EntryTransfer    EntryType = "TRANSFER"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple debit/credit lines.
type JournalEntry struct {
	EntryID     string      `json:"entryID"` // Primary key (UUID)
	EntryDate   time.Time   `json:"entryDate"`
	Description string      `json:"description"`
	Reference   string      `json:"reference"` // External document reference
	// TransactionID correlates the entry back to its sub-ledger source
	// document, e.g. "bill-42". Nil for manual entries. Enforced unique
	// by the store so posting the same document twice cannot duplicate.
	TransactionID *string     `json:"transactionID,omitempty"`
	EntryType     EntryType   `json:"entryType"`
	Status        EntryStatus `json:"status"`
	// Reversal linkage: a REVERSAL entry points at the entry it undoes via
	// OriginalEntryID; the reversed entry points forward via ReversingEntryID.
	OriginalEntryID  *string `json:"originalEntryID,omitempty"`
	ReversingEntryID *string `json:"reversingEntryID,omitempty"`
	Amount           int64   `json:"amount"` // Total debit side, minor units
	Lines            []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// IsPosted reports whether the entry is final and reflected in balances.
func (e JournalEntry) IsPosted() bool {
	return e.Status == Posted
}

// JournalLine is a single line item within a journal entry, affecting one
// account. Exactly one of Debit/Credit is positive; both are stored in minor
// currency units.
type JournalLine struct {
	LineID      string `json:"lineID"` // Primary key (UUID)
	EntryID     string `json:"entryID"`
	AccountCode string `json:"accountCode"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
	Description string `json:"description"`
	// RunningBalance is the account's cached balance immediately after this
	// line was applied, set by the repository at save time.
	RunningBalance int64 `json:"runningBalance"`
	AuditFields
}
