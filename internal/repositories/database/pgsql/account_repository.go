package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	"github.com/bekzodm/erp-ledger/internal/models"
	"github.com/bekzodm/erp-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `code, name, account_type, parent_code, balance, is_current, cost_of_sales, is_active, created_at, created_by, last_updated_at, last_updated_by`

// PgxAccountRepository implements account persistence using pgx.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new PgxAccountRepository.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements the facade interface
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// scanAccountRow scans a single accounts row from any pgx row source.
func scanAccountRow(row pgx.Row) (models.Account, error) {
	var modelAcc models.Account
	var parentCode sql.NullString
	err := row.Scan(
		&modelAcc.Code,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&parentCode,
		&modelAcc.Balance,
		&modelAcc.IsCurrent,
		&modelAcc.CostOfSales,
		&modelAcc.IsActive,
		&modelAcc.CreatedAt,
		&modelAcc.CreatedBy,
		&modelAcc.LastUpdatedAt,
		&modelAcc.LastUpdatedBy,
	)
	if err != nil {
		return models.Account{}, err
	}
	if parentCode.Valid {
		modelAcc.ParentCode = parentCode.String
	} else {
		modelAcc.ParentCode = ""
	}
	return modelAcc, nil
}

// nullableString maps "" to NULL for optional text columns.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// SaveAccount persists a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelAcc.Code,
		modelAcc.Name,
		modelAcc.AccountType,
		nullableString(modelAcc.ParentCode),
		modelAcc.Balance,
		modelAcc.IsCurrent,
		modelAcc.CostOfSales,
		modelAcc.IsActive,
		modelAcc.CreatedAt,
		modelAcc.CreatedBy,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("account code %s: %w", modelAcc.Code, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert account %s: %w", modelAcc.Code, err)
	}

	return nil
}

// FindAccountByCode retrieves a single account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE code = $1;
	`

	modelAcc, err := scanAccountRow(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query account %s: %w", code, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// FindAccountsByCodes retrieves multiple accounts by their codes.
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	if len(codes) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE code = ANY($1);
	`

	rows, err := r.Pool.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by codes: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account)
	for rows.Next() {
		modelAcc, err := scanAccountRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row during batch fetch: %w", err)
		}
		accountsMap[modelAcc.Code] = mapping.ToDomainAccount(modelAcc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows during batch fetch: %w", err)
	}

	// Not all requested codes are necessarily found; the caller checks.
	return accountsMap, nil
}

// ListAccounts retrieves the full chart of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE is_active = TRUE OR $1
		ORDER BY code;
	`

	rows, err := r.Pool.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		modelAcc, err := scanAccountRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(modelAcc))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}

	return accounts, nil
}

// UpdateAccount updates an existing account's details. The cached balance is
// deliberately not touched here; only posting and the integrity rebuild may
// change it.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, parent_code = $3, is_current = $4, cost_of_sales = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE code = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelAcc.Code,
		modelAcc.Name,
		nullableString(modelAcc.ParentCode),
		modelAcc.IsCurrent,
		modelAcc.CostOfSales,
		modelAcc.IsActive,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account %s: %w", modelAcc.Code, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, code string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE code = $1 AND is_active = TRUE;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, code, mapping.ToEpoch(now), userID)
	if err != nil {
		return fmt.Errorf("failed to execute deactivate account %s: %w", code, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the account doesn't exist or it was already inactive.
		_, findErr := r.FindAccountByCode(ctx, code)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check account status after deactivation attempt for %s: %w", code, findErr)
		}
		// Exists but already inactive.
		return fmt.Errorf("account %s is already inactive: %w", code, apperrors.ErrValidation)
	}

	return nil
}

// SetAccountBalance overwrites the cached balance of one account. Only the
// integrity rebuild uses this; regular posting goes through
// UpdateAccountBalancesInTx with deltas.
func (r *PgxAccountRepository) SetAccountBalance(ctx context.Context, code string, balance int64, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE code = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query, code, balance, mapping.ToEpoch(now), userID)
	if err != nil {
		return fmt.Errorf("failed to set balance for account %s: %w", code, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// FindAccountsByCodesForUpdate retrieves multiple accounts by code and locks
// the rows for update. Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountsByCodesForUpdate(ctx context.Context, tx pgx.Tx, codes []string) (map[string]domain.Account, error) {
	if len(codes) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE code = ANY($1)
		FOR UPDATE;
	`

	rows, err := tx.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by codes for update: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account)
	for rows.Next() {
		modelAcc, err := scanAccountRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accountsMap[modelAcc.Code] = mapping.ToDomainAccount(modelAcc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	// All referenced accounts must exist and be locked before balances move.
	if len(accountsMap) != len(codes) {
		missing := []string{}
		for _, code := range codes {
			if _, found := accountsMap[code]; !found {
				missing = append(missing, code)
			}
		}
		slog.WarnContext(ctx, "Some accounts requested for update lock were not found", "missing_accounts", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested accounts, missing: %v", apperrors.ErrNotFound, missing)
	}

	return accountsMap, nil
}

// UpdateAccountBalancesInTx applies signed balance deltas to multiple
// accounts within a transaction.
func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]int64, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	query := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE code = $1;
	`

	nowEpoch := mapping.ToEpoch(now)
	batch := &pgx.Batch{}
	codes := make([]string, 0, len(balanceChanges))
	for code, delta := range balanceChanges {
		if delta != 0 {
			batch.Queue(query, code, delta, nowEpoch, userID)
			codes = append(codes, code)
		}
	}

	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for account %s: %w", codes[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			// Shouldn't happen when the caller locked the rows first.
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, codes[i])
			}
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}

	return batchErr
}
