package services

import (
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Party = NewPartyService(repos.PartyRepo)
	container.Operation = NewOperationService(repos.OperationRepo, repos.AccountRepo, repos.PartyRepo, repos.OperationTypeRepo)
	container.Cheque = NewChequeService(repos.ChequeRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.PartyRepo)

	return container
}
