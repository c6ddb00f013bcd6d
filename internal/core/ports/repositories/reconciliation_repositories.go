package repositories

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
)

// ReconciliationRepository defines the integrity-sweep queries that compare
// source documents, journal entries and cached balances.
type ReconciliationRepository interface {
	// FindMissingPostings returns source documents whose transaction id has
	// no posted journal entry.
	FindMissingPostings(ctx context.Context) ([]domain.MissingPosting, error)

	// FindOrphanEntries returns posted entries whose transaction id matches a
	// document prefix but no longer has a backing source document.
	FindOrphanEntries(ctx context.Context) ([]domain.OrphanEntry, error)

	// FindUnbalancedEntries returns entry ids whose lines do not sum to
	// equal debits and credits.
	FindUnbalancedEntries(ctx context.Context) ([]string, error)

	// ComputeBalanceDrift compares each account's cached balance with the
	// balance recomputed from posted lines.
	ComputeBalanceDrift(ctx context.Context) ([]domain.BalanceDrift, error)
}
