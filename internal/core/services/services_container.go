package services

import (
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Catalog services first; the journal entry service depends on them.
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)
	container.Account = NewAccountService(repos.AccountRepo)

	container.Period = NewPeriodService(repos.PeriodRepo, container.Company)
	container.JournalEntry = NewJournalEntryService(
		repos.JournalEntryRepo,
		container.Account,
		container.Period,
		container.Company,
		container.Currency,
	)
	container.Reporting = NewReportingService(repos.ReportingRepo, container.Period)

	return container
}
