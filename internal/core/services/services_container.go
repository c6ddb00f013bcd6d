package services

import (
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, repos.ReportingRepo)
	container.Posting = NewPostingService(repos.SubledgerRepo, container.Journal)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)
	container.Reconciliation = NewReconciliationService(
		repos.ReconciliationRepo,
		repos.JournalRepo,
		repos.AccountRepo,
		repos.SubledgerRepo,
		container.Journal,
	)
	container.Settings = NewSettingsService(repos.SettingsRepo, container.Account)
	container.User = NewUserService(repos.UserRepo, cfg.JWTSecret, cfg.TokenExpiryMinutes)

	return container
}
