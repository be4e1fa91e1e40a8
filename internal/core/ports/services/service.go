package services

// ServiceContainer holds instances of all the application services.
// It is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Profile ProfileSvcFacade
	Ledger  LedgerSvcFacade
	Import  ImportSvc
	Tax     TaxSvc
}
