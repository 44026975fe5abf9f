package services

// ServiceContainer bundles all service facades for handler wiring.
type ServiceContainer struct {
	JournalEntry JournalEntrySvcFacade
	Period       PeriodSvcFacade
	Account      AccountSvcFacade
	Company      CompanySvcFacade
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Reporting    ReportingSvcFacade
}
