package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It's populated by the database layer and handed to the service container.
type RepositoryProvider struct {
	AccountRepo       AccountRepositoryFacade
	CurrencyRepo      CurrencyRepositoryFacade
	OperationTypeRepo OperationTypeRepositoryFacade
	PartyRepo         PartyRepositoryFacade
	OperationRepo     OperationRepositoryFacade
	ChequeRepo        ChequeRepositoryFacade
	ReportingRepo     ReportingRepositoryFacade
	UserRepo          UserRepositoryFacade
}
