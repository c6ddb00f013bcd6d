package services

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/dto"
)

// ReconciliationService defines the integrity sweep and its repairs
type ReconciliationService interface {
	// Scan compares source documents, journal entries and cached balances,
	// returning everything that disagrees. Read-only.
	Scan(ctx context.Context) (*domain.IntegrityReport, error)

	// Repair runs a scan and fixes what it finds: posts entries for missing
	// documents, deletes orphan entries (reversing their balance effect) and
	// rebuilds drifted cached balances.
	Repair(ctx context.Context, userID string) (*dto.RepairSummaryResponse, error)

	// RebuildBalances recomputes every cached account balance from posted
	// lines, regardless of drift.
	RebuildBalances(ctx context.Context, userID string) (int, error)
}
