package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/bekzodm/erp-ledger/internal/middleware"
	"github.com/bekzodm/erp-ledger/internal/utils/accounting"
	"github.com/bekzodm/erp-ledger/internal/utils/money"
)

var (
	ErrEntryMinAccounts   = errors.New("journal entry must affect at least two different accounts")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNotPosted          = errors.New("journal entry must be posted to be updated")
	ErrDescriptionMissing = errors.New("journal entry description is required")
)

// journalService provides core journal entry operations.
type journalService struct {
	journalRepo   portsrepo.JournalRepositoryWithTx
	accountRepo   portsrepo.AccountRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade, reportingRepo portsrepo.ReportingRepository) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:   journalRepo,
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry creates a new journal entry with its lines after validation.
// Implements portssvc.JournalSvcFacade
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, ErrDescriptionMissing
	}

	entryType := req.EntryType
	if entryType == "" {
		entryType = domain.EntryTransaction
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	domainLines, balanceChanges, err := s.prepareLines(ctx, req.Lines, entryID, creatorUserID, now)
	if err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:       entryID,
		EntryDate:     req.EntryDate,
		Description:   req.Description,
		Reference:     req.Reference,
		TransactionID: req.TransactionID,
		EntryType:     entryType,
		Status:        domain.Posted,
		Amount:        accounting.EntryAmount(domainLines),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	err = s.journalRepo.SaveEntry(ctx, entry, domainLines, balanceChanges)
	if err != nil {
		// The store enforces transaction id uniqueness; a duplicate means the
		// source document is already posted, so return the existing entry
		// instead of posting twice.
		if errors.Is(err, apperrors.ErrDuplicate) && req.TransactionID != nil {
			existing, findErr := s.findPostedEntry(ctx, *req.TransactionID)
			if findErr != nil {
				logger.Error("Duplicate transaction id but existing entry not found", slog.String("transaction_id", *req.TransactionID), slog.String("error", findErr.Error()))
				return nil, findErr
			}
			logger.Info("Entry already posted for transaction id, returning existing", slog.String("transaction_id", *req.TransactionID), slog.String("entry_id", existing.EntryID))
			return existing, nil
		}
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created", slog.String("entry_id", entry.EntryID), slog.Int64("amount", entry.Amount))
	return &entry, nil
}

// prepareLines converts request lines to domain lines and validates them:
// at least two distinct accounts, exactly one positive side per line, equal
// debit and credit totals, and every referenced account active. Returns the
// lines and the cached balance deltas the posting implies.
func (s *journalService) prepareLines(ctx context.Context, lineReqs []dto.CreateEntryLineRequest, entryID string, userID string, now time.Time) ([]domain.JournalLine, map[string]int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Convert DTO lines to domain lines in minor units
	domainLines := make([]domain.JournalLine, len(lineReqs))
	accountSet := make(map[string]bool, len(lineReqs))
	accountCodes := make([]string, 0, len(lineReqs))
	for i, lineReq := range lineReqs {
		domainLines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: lineReq.AccountCode,
			Debit:       money.ToMinor(lineReq.Debit),
			Credit:      money.ToMinor(lineReq.Credit),
			Description: lineReq.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
			// RunningBalance is calculated and set by the repository
		}
		if !accountSet[lineReq.AccountCode] {
			accountSet[lineReq.AccountCode] = true
			accountCodes = append(accountCodes, lineReq.AccountCode)
		}
	}

	if len(accountSet) < 2 {
		return nil, nil, ErrEntryMinAccounts
	}

	// Double-entry check
	if err := accounting.ValidateEntryBalance(domainLines); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	// Fetch accounts and validate further
	accountsMap, err := s.accountRepo.FindAccountsByCodes(ctx, accountCodes)
	if err != nil {
		logger.Error("Failed to fetch accounts for entry lines", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	accountTypes := make(map[string]domain.AccountType, len(accountCodes))
	for _, code := range accountCodes {
		acc, found := accountsMap[code]
		if !found {
			return nil, nil, fmt.Errorf("%w: code %s", ErrAccountNotFound, code)
		}
		if !acc.IsActive {
			return nil, nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, code)
		}
		accountTypes[code] = acc.Type
	}

	// Calculate net balance changes for accounts
	balanceChanges, err := accounting.BalanceChanges(domainLines, accountTypes)
	if err != nil {
		logger.Error("Error calculating balance changes", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("internal error calculating balance changes: %w", err)
	}

	return domainLines, balanceChanges, nil
}

// findPostedEntry loads the entry posted for a transaction id, with lines.
func (s *journalService) findPostedEntry(ctx context.Context, transactionID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entry.EntryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// GetEntryByID retrieves a specific journal entry with its lines.
// Implements portssvc.JournalSvcFacade
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry by ID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, apperrors.ErrInternal)
	}
	entry.Lines = lines

	logger.Debug("Journal entry retrieved", slog.String("entry_id", entryID), slog.Int("line_count", len(lines)))
	return entry, nil
}

// ListEntries retrieves a paginated list of journal entries.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken, params.IncludeReversals)
	if err != nil {
		logger.Error("Failed to list journal entries from repository", "error", err)
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	// Fetch lines in a batch for all entries
	var linesMap map[string][]domain.JournalLine
	if len(entries) > 0 {
		entryIDs := make([]string, len(entries))
		for i, entry := range entries {
			entryIDs[i] = entry.EntryID
		}
		linesMap, err = s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
		if err != nil {
			logger.Warn("Failed to fetch lines for journal entries", "error", err)
			// Continue without lines rather than failing the whole request
		}
	}

	entryResponses := make([]dto.EntryResponse, len(entries))
	for i, entry := range entries {
		if linesMap != nil {
			entry.Lines = linesMap[entry.EntryID]
		}
		entryResponses[i] = dto.ToEntryResponse(&entry)
	}

	resp := &dto.ListEntriesResponse{
		Entries:   entryResponses,
		NextToken: nextToken,
	}

	logger.Info("Journal entries listed", "count", len(entries))
	return resp, nil
}

// GetGeneralLedger retrieves the dated line history of one account.
func (s *journalService) GetGeneralLedger(ctx context.Context, accountCode string, params dto.LedgerParams) (*dto.LedgerResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByCode(ctx, accountCode); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountCode, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	from := params.From
	to := params.To
	if to.IsZero() {
		to = time.Now().UTC()
	}

	rows, nextToken, err := s.reportingRepo.ListLedgerRows(ctx, accountCode, from, to, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list ledger rows", "error", err, "account_code", accountCode)
		return nil, fmt.Errorf("failed to retrieve ledger for account %s: %w", accountCode, err)
	}

	rowResponses := make([]dto.LedgerRowResponse, len(rows))
	for i, row := range rows {
		rowResponses[i] = dto.ToLedgerRowResponse(&row)
	}

	return &dto.LedgerResponse{
		AccountCode: accountCode,
		Rows:        rowResponses,
		NextToken:   nextToken,
	}, nil
}

// UpdateEntry updates a posted journal entry. Descriptive fields may change
// on any posted entry; lines may be replaced only on manual entries, in which
// case the old contributions are backed out of the cached balances and the
// new ones applied atomically.
// Line amounts never change after posting; corrections go through ReverseEntry.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, requestingUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found for update", slog.String("entry_id", entryID))
		} else {
			logger.Error("Failed to find journal entry for update", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if entry.Status != domain.Posted {
		return nil, ErrNotPosted
	}

	updated := false
	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
		updated = true
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, ErrDescriptionMissing
		}
		entry.Description = *req.Description
		updated = true
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
		updated = true
	}

	if len(req.Lines) == 0 {
		if !updated {
			logger.Debug("No fields provided for entry update", slog.String("entry_id", entryID))
			return entry, nil
		}

		now := time.Now().UTC()
		entry.LastUpdatedAt = now
		entry.LastUpdatedBy = requestingUserID

		if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
			logger.Error("Failed to save entry update to repository", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			return nil, fmt.Errorf("failed to save entry update: %w", err)
		}

		logger.Info("Journal entry updated", slog.String("entry_id", entryID))
		return entry, nil
	}

	// Line replacement is for manual entries only. Entries posted for a
	// source document, and reversal entries, are corrected by reversal so
	// the document trail stays intact.
	if entry.TransactionID != nil || entry.EntryType == domain.EntryReversal {
		return nil, fmt.Errorf("%w: lines of a system-posted entry cannot be replaced", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	newLines, newChanges, err := s.prepareLines(ctx, req.Lines, entryID, requestingUserID, now)
	if err != nil {
		return nil, err
	}

	oldLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to load existing lines for replacement", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to load existing lines: %w", err)
	}

	oldCodes := make([]string, 0, len(oldLines))
	for _, line := range oldLines {
		oldCodes = append(oldCodes, line.AccountCode)
	}
	oldAccounts, err := s.accountRepo.FindAccountsByCodes(ctx, uniqueStrings(oldCodes))
	if err != nil {
		logger.Error("Failed to fetch accounts of existing lines", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to fetch accounts of existing lines: %w", err)
	}
	oldTypes := make(map[string]domain.AccountType, len(oldAccounts))
	for code, acc := range oldAccounts {
		oldTypes[code] = acc.Type
	}
	oldChanges, err := accounting.BalanceChanges(oldLines, oldTypes)
	if err != nil {
		logger.Error("Error calculating balance changes of existing lines", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
	}

	// Net effect on the caches: back out the old contributions, apply the new
	balanceChanges := newChanges
	for code, delta := range oldChanges {
		balanceChanges[code] -= delta
	}

	entry.Amount = accounting.EntryAmount(newLines)
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = requestingUserID

	if err := s.journalRepo.ReplaceEntryLines(ctx, *entry, newLines, balanceChanges); err != nil {
		logger.Error("Failed to replace entry lines", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to replace entry lines: %w", err)
	}

	entry.Lines = newLines
	logger.Info("Journal entry lines replaced", slog.String("entry_id", entryID), slog.Int64("amount", entry.Amount))
	return entry, nil
}

// validateReversal fetches the original entry and checks it can be reversed.
func (s *journalService) validateReversal(ctx context.Context, entryID string) (*domain.JournalEntry, []domain.JournalLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Original entry not found for reversal", slog.String("entry_id", entryID))
			return nil, nil, apperrors.ErrNotFound
		}
		logger.Error("Failed to fetch original entry for reversal", "error", err)
		return nil, nil, fmt.Errorf("failed to retrieve original entry: %w", err)
	}

	if original.Status != domain.Posted {
		logger.Warn("Attempted to reverse non-posted entry", "status", original.Status)
		return nil, nil, fmt.Errorf("%w: entry status is %s, expected POSTED", apperrors.ErrConflict, original.Status)
	}
	if original.EntryType == domain.EntryReversal {
		logger.Warn("Attempted to reverse a reversal entry", "entry_id", entryID)
		return nil, nil, fmt.Errorf("%w: cannot reverse a reversal entry", apperrors.ErrConflict)
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch original lines for reversal", "error", err)
		return nil, nil, fmt.Errorf("failed to retrieve original lines: %w", err)
	}
	return original, originalLines, nil
}

// ReverseEntry posts a mirror-image entry for a previously posted one and
// links the pair. The original is never mutated beyond its status and links.
func (s *journalService) ReverseEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, originalLines, err := s.validateReversal(ctx, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reversingID := uuid.NewString()
	// A derived transaction id makes reversing the same entry twice a no-op
	// at the store level.
	reversalTxnID := "rev-" + original.EntryID

	reversingLines := make([]domain.JournalLine, len(originalLines))
	accountCodes := make([]string, 0, len(originalLines))
	for i, origLine := range originalLines {
		accountCodes = append(accountCodes, origLine.AccountCode)
		reversingLines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     reversingID,
			AccountCode: origLine.AccountCode,
			Debit:       origLine.Credit, // Swapped sides
			Credit:      origLine.Debit,
			Description: origLine.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	accountsMap, err := s.accountRepo.FindAccountsByCodes(ctx, uniqueStrings(accountCodes))
	if err != nil {
		logger.Error("Failed to fetch accounts for reversal balance calculation", "error", err)
		return nil, fmt.Errorf("failed to get account details for reversal: %w", err)
	}
	accountTypes := make(map[string]domain.AccountType, len(accountsMap))
	for code, acc := range accountsMap {
		accountTypes[code] = acc.Type
	}

	balanceChanges, err := accounting.BalanceChanges(reversingLines, accountTypes)
	if err != nil {
		logger.Error("Failed to calculate balance changes for reversal", "error", err)
		return nil, fmt.Errorf("failed to calculate reversal balance changes: %w", err)
	}

	reversingEntry := domain.JournalEntry{
		EntryID:         reversingID,
		EntryDate:       now,
		Description:     fmt.Sprintf("Reversal of: %s", original.Description),
		Reference:       original.Reference,
		TransactionID:   &reversalTxnID,
		EntryType:       domain.EntryReversal,
		Status:          domain.Posted,
		OriginalEntryID: &original.EntryID,
		Amount:          original.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// One transaction: the reversal entry, its balance deltas and the
	// original's status flip commit together.
	if err := s.journalRepo.SaveReversal(ctx, reversingEntry, reversingLines, balanceChanges, original.EntryID); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			existing, findErr := s.findPostedEntry(ctx, reversalTxnID)
			if findErr == nil {
				logger.Info("Entry already reversed, returning existing reversal", slog.String("entry_id", entryID))
				return existing, nil
			}
		}
		logger.Error("Failed to save reversing entry", "error", err)
		return nil, fmt.Errorf("failed to save reversing entry: %w", err)
	}

	logger.Info("Journal entry reversed", "original_entry_id", original.EntryID, "reversing_entry_id", reversingID)
	reversingEntry.Lines = reversingLines
	return &reversingEntry, nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
