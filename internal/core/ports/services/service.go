package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	User      UserSvcFacade
	Account   AccountSvcFacade
	Currency  CurrencySvcFacade
	Party     PartySvcFacade
	Operation OperationSvcFacade
	Cheque    ChequeSvcFacade
	Reporting ReportingSvcFacade
}
