package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo        AccountRepositoryFacade
	JournalRepo        JournalRepositoryWithTx
	SubledgerRepo      SubledgerRepositoryFacade
	ReportingRepo      ReportingRepository
	ReconciliationRepo ReconciliationRepository
	SettingsRepo       SettingsRepository
	UserRepo           UserRepositoryFacade
}
