package pgsql

import (
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires up the pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo)
	subledgerRepo := newPgxSubledgerRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)
	reconciliationRepo := newPgxReconciliationRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:        accountRepo,
		JournalRepo:        journalRepo,
		SubledgerRepo:      subledgerRepo,
		ReportingRepo:      reportingRepo,
		ReconciliationRepo: reconciliationRepo,
		SettingsRepo:       settingsRepo,
		UserRepo:           userRepo,
	}
}
