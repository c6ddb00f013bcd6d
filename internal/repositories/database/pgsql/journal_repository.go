package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	"github.com/bekzodm/erp-ledger/internal/models"
	"github.com/bekzodm/erp-ledger/internal/utils/accounting"
	"github.com/bekzodm/erp-ledger/internal/utils/mapping"
	"github.com/bekzodm/erp-ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, entry_date, description, reference, transaction_id, entry_type, status, original_entry_id, reversing_entry_id, amount, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_code, debit, credit, description, running_balance, created_at, created_by, last_updated_at, last_updated_by`

// PgxJournalRepository implements journal persistence using pgx. It owns the
// posting transaction: entry, lines and cached balances move together or not
// at all.
type PgxJournalRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxJournalRepository creates a new PgxJournalRepository.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements the facade interface
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// scanEntryRow scans a single journal_entries row from any pgx row source.
func scanEntryRow(row pgx.Row) (models.JournalEntry, error) {
	var modelEntry models.JournalEntry
	var transactionID, originalEntryID, reversingEntryID sql.NullString
	err := row.Scan(
		&modelEntry.EntryID,
		&modelEntry.EntryDate,
		&modelEntry.Description,
		&modelEntry.Reference,
		&transactionID,
		&modelEntry.EntryType,
		&modelEntry.Status,
		&originalEntryID,
		&reversingEntryID,
		&modelEntry.Amount,
		&modelEntry.CreatedAt,
		&modelEntry.CreatedBy,
		&modelEntry.LastUpdatedAt,
		&modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if transactionID.Valid {
		modelEntry.TransactionID = &transactionID.String
	}
	if originalEntryID.Valid {
		modelEntry.OriginalEntryID = &originalEntryID.String
	}
	if reversingEntryID.Valid {
		modelEntry.ReversingEntryID = &reversingEntryID.String
	}
	return modelEntry, nil
}

// scanLineRow scans a single journal_lines row from any pgx row source.
func scanLineRow(row pgx.Row) (models.JournalLine, error) {
	var modelLine models.JournalLine
	err := row.Scan(
		&modelLine.LineID,
		&modelLine.EntryID,
		&modelLine.AccountCode,
		&modelLine.Debit,
		&modelLine.Credit,
		&modelLine.Description,
		&modelLine.RunningBalance,
		&modelLine.CreatedAt,
		&modelLine.CreatedBy,
		&modelLine.LastUpdatedAt,
		&modelLine.LastUpdatedBy,
	)
	return modelLine, err
}

// SaveEntry persists an entry, its lines and the cached balance deltas in a
// single transaction. The unique index on transaction_id is the duplicate
// guard: a second posting of the same source document fails the entry insert
// with apperrors.ErrDuplicate before any balance moves.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if err := r.saveEntryTx(ctx, tx, entry, lines, balanceChanges); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveReversal persists a reversal entry and flips the original entry to
// REVERSED in the same transaction, so a crash can never leave a reversal on
// the books while the original still reads as posted.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversal domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]int64, originalEntryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if err := r.saveEntryTx(ctx, tx, reversal, lines, balanceChanges); err != nil {
		return err
	}

	updateOriginalQuery := `
		UPDATE journal_entries
		SET status = $2, reversing_entry_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE entry_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, updateOriginalQuery,
		originalEntryID,
		string(domain.Reversed),
		reversal.EntryID,
		mapping.ToEpoch(reversal.CreatedAt),
		reversal.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to mark entry %s as reversed: %w", originalEntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("journal entry %s not found for reversal", originalEntryID))
	}

	return r.Commit(ctx, tx)
}

// saveEntryTx inserts the entry, its lines and the cached balance deltas
// under the caller's transaction.
func (r *PgxJournalRepository) saveEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]int64) error {
	modelEntry := mapping.ToModelEntry(entry)

	insertEntryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	_, err := tx.Exec(ctx, insertEntryQuery,
		modelEntry.EntryID,
		modelEntry.EntryDate,
		modelEntry.Description,
		modelEntry.Reference,
		modelEntry.TransactionID,
		modelEntry.EntryType,
		modelEntry.Status,
		modelEntry.OriginalEntryID,
		modelEntry.ReversingEntryID,
		modelEntry.Amount,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("entry for this transaction already posted: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert journal entry %s: %w", modelEntry.EntryID, err)
	}

	accountCodes := make([]string, 0, len(balanceChanges))
	for code := range balanceChanges {
		accountCodes = append(accountCodes, code)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByCodesForUpdate(ctx, tx, accountCodes)
	if err != nil {
		return fmt.Errorf("failed to lock accounts for entry %s: %w", modelEntry.EntryID, err)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, entry.CreatedBy, entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to update account balances for entry %s: %w", modelEntry.EntryID, err)
	}

	// Running balances start from the pre-update locked balance and walk the
	// lines in a deterministic order.
	runningBalances := make(map[string]int64, len(lockedAccounts))
	for code, acc := range lockedAccounts {
		runningBalances[code] = acc.Balance
	}

	sorted := make([]domain.JournalLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LineID < sorted[j].LineID })

	insertLineQuery := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	batch := &pgx.Batch{}
	for _, line := range sorted {
		acc, found := lockedAccounts[line.AccountCode]
		if !found {
			return fmt.Errorf("%w: account %s referenced by line %s was not locked", apperrors.ErrNotFound, line.AccountCode, line.LineID)
		}
		signed, err := accounting.SignedAmount(line, acc.Type)
		if err != nil {
			return fmt.Errorf("failed to sign line %s: %w", line.LineID, err)
		}
		runningBalances[line.AccountCode] += signed
		line.RunningBalance = runningBalances[line.AccountCode]

		modelLine := mapping.ToModelLine(line)
		batch.Queue(insertLineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountCode,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Description,
			modelLine.RunningBalance,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
			modelLine.LastUpdatedAt,
			modelLine.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to insert journal line: %w", err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close line insert batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	return nil
}

// FindEntryByID retrieves a single journal entry by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE entry_id = $1;
	`

	modelEntry, err := scanEntryRow(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query journal entry %s: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainEntry(modelEntry)
	return &domainEntry, nil
}

// FindEntryByTransactionID retrieves the entry posted for a source document
// transaction id.
func (r *PgxJournalRepository) FindEntryByTransactionID(ctx context.Context, transactionID string) (*domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE transaction_id = $1;
	`

	modelEntry, err := scanEntryRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query journal entry for transaction %s: %w", transactionID, err)
	}

	domainEntry := mapping.ToDomainEntry(modelEntry)
	return &domainEntry, nil
}

// ListEntries retrieves a page of journal entries ordered newest first, with
// token-based pagination on (entry_date, created_at).
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE TRUE
	`
	args := []interface{}{}

	if !includeReversals {
		query += ` AND entry_type <> 'REVERSAL' AND status <> 'REVERSED'`
	}

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(` AND (entry_date, created_at) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, entryDate, createdAt)
	}

	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		modelEntry, err := scanEntryRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		modelEntries = append(modelEntries, modelEntry)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[len(modelEntries)-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		newNextToken = &token
	}

	entries := make([]domain.JournalEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = mapping.ToDomainEntry(m)
	}

	return entries, newNextToken, nil
}

// UpdateEntry updates the descriptive fields of an entry. Lines stay
// untouched on this path; ReplaceEntryLines handles full replacements.
func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	modelEntry := mapping.ToModelEntry(entry)

	query := `
		UPDATE journal_entries
		SET entry_date = $2, description = $3, reference = $4, last_updated_at = $5, last_updated_by = $6
		WHERE entry_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.EntryDate,
		modelEntry.Description,
		modelEntry.Reference,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", modelEntry.EntryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// ReplaceEntryLines swaps an entry's lines for a new balanced set in a
// single transaction: the header is rewritten, the old lines deleted, the
// net balance deltas applied and the new lines inserted with fresh running
// balances.
func (r *PgxJournalRepository) ReplaceEntryLines(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, balanceChanges map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	modelEntry := mapping.ToModelEntry(entry)

	updateEntryQuery := `
		UPDATE journal_entries
		SET entry_date = $2, description = $3, reference = $4, amount = $5, last_updated_at = $6, last_updated_by = $7
		WHERE entry_id = $1;
	`

	cmdTag, err := tx.Exec(ctx, updateEntryQuery,
		modelEntry.EntryID,
		modelEntry.EntryDate,
		modelEntry.Description,
		modelEntry.Reference,
		modelEntry.Amount,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s for line replacement: %w", modelEntry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, modelEntry.EntryID); err != nil {
		return fmt.Errorf("failed to delete old lines of entry %s: %w", modelEntry.EntryID, err)
	}

	accountCodes := make([]string, 0, len(balanceChanges))
	for code := range balanceChanges {
		accountCodes = append(accountCodes, code)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByCodesForUpdate(ctx, tx, accountCodes)
	if err != nil {
		return fmt.Errorf("failed to lock accounts for entry %s: %w", modelEntry.EntryID, err)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, entry.LastUpdatedBy, entry.LastUpdatedAt); err != nil {
		return fmt.Errorf("failed to update account balances for entry %s: %w", modelEntry.EntryID, err)
	}

	// The running balance walk must start from each account's balance with
	// neither the old nor the new lines applied: the locked pre-update
	// balance plus the net delta, minus the new lines' own contribution.
	newSigned := make(map[string]int64, len(lines))
	for _, line := range lines {
		acc, found := lockedAccounts[line.AccountCode]
		if !found {
			return fmt.Errorf("%w: account %s referenced by line %s was not locked", apperrors.ErrNotFound, line.AccountCode, line.LineID)
		}
		signed, err := accounting.SignedAmount(line, acc.Type)
		if err != nil {
			return fmt.Errorf("failed to sign line %s: %w", line.LineID, err)
		}
		newSigned[line.AccountCode] += signed
	}

	runningBalances := make(map[string]int64, len(lockedAccounts))
	for code, acc := range lockedAccounts {
		runningBalances[code] = acc.Balance + balanceChanges[code] - newSigned[code]
	}

	sorted := make([]domain.JournalLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LineID < sorted[j].LineID })

	insertLineQuery := `
		INSERT INTO journal_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	batch := &pgx.Batch{}
	for _, line := range sorted {
		acc := lockedAccounts[line.AccountCode]
		signed, err := accounting.SignedAmount(line, acc.Type)
		if err != nil {
			return fmt.Errorf("failed to sign line %s: %w", line.LineID, err)
		}
		runningBalances[line.AccountCode] += signed
		line.RunningBalance = runningBalances[line.AccountCode]

		modelLine := mapping.ToModelLine(line)
		batch.Queue(insertLineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountCode,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Description,
			modelLine.RunningBalance,
			modelLine.CreatedAt,
			modelLine.CreatedBy,
			modelLine.LastUpdatedAt,
			modelLine.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to insert replacement line: %w", err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close line insert batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	return r.Commit(ctx, tx)
}

// DeleteEntryInTx removes an entry and its lines within a transaction. Only
// the integrity orphan repair calls this; the caller has already backed the
// lines out of the cached balances under the same transaction.
func (r *PgxJournalRepository) DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to delete lines of entry %s: %w", entryID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// FindLinesByEntryID retrieves all lines of a single entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`

	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		modelLine, err := scanLineRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		lines = append(lines, mapping.ToDomainLine(modelLine))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", rows.Err())
	}

	return lines, nil
}

// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `
		SELECT ` + lineColumns + `
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_id;
	`

	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entries: %w", err)
	}
	defer rows.Close()

	linesMap := make(map[string][]domain.JournalLine)
	for rows.Next() {
		modelLine, err := scanLineRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line row during batch fetch: %w", err)
		}
		linesMap[modelLine.EntryID] = append(linesMap[modelLine.EntryID], mapping.ToDomainLine(modelLine))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal line rows during batch fetch: %w", rows.Err())
	}

	return linesMap, nil
}

// ListLinesByAccountCode retrieves a page of one account's lines ordered
// newest first, with token-based pagination on (entry_date, created_at).
func (r *PgxJournalRepository) ListLinesByAccountCode(ctx context.Context, accountCode string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT l.line_id, l.entry_id, l.account_code, l.debit, l.credit, l.description, l.running_balance, l.created_at, l.created_by, l.last_updated_at, l.last_updated_by, e.entry_date
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE l.account_code = $1
	`
	args := []interface{}{accountCode}

	if nextToken != nil && *nextToken != "" {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(` AND (e.entry_date, l.created_at) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, entryDate, createdAt)
	}

	query += fmt.Sprintf(` ORDER BY e.entry_date DESC, l.created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query lines for account %s: %w", accountCode, err)
	}
	defer rows.Close()

	type lineWithDate struct {
		line      models.JournalLine
		entryDate int64
	}

	fetched := []lineWithDate{}
	for rows.Next() {
		var modelLine models.JournalLine
		var entryDate int64
		err := rows.Scan(
			&modelLine.LineID,
			&modelLine.EntryID,
			&modelLine.AccountCode,
			&modelLine.Debit,
			&modelLine.Credit,
			&modelLine.Description,
			&modelLine.RunningBalance,
			&modelLine.CreatedAt,
			&modelLine.CreatedBy,
			&modelLine.LastUpdatedAt,
			&modelLine.LastUpdatedBy,
			&entryDate,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan account line row: %w", err)
		}
		fetched = append(fetched, lineWithDate{line: modelLine, entryDate: entryDate})
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating account line rows: %w", rows.Err())
	}

	var newNextToken *string
	if len(fetched) > limit {
		fetched = fetched[:limit]
		last := fetched[len(fetched)-1]
		token := pagination.EncodeToken(last.entryDate, last.line.CreatedAt)
		newNextToken = &token
	}

	lines := make([]domain.JournalLine, len(fetched))
	for i, f := range fetched {
		lines[i] = mapping.ToDomainLine(f.line)
	}

	return lines, newNextToken, nil
}
