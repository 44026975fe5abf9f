package repositories

// RepositoryProvider bundles all repository facades for service wiring.
type RepositoryProvider struct {
	JournalEntryRepo JournalEntryRepositoryFacade
	PeriodRepo       PeriodRepositoryFacade
	AccountRepo      AccountRepositoryFacade
	CompanyRepo      CompanyReader
	CurrencyRepo     CurrencyReader
	ExchangeRateRepo ExchangeRateReader
	ReportingRepo    ReportingReader
}
