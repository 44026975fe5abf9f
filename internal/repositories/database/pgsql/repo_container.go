package pgsql

import (
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		JournalEntryRepo: newPgxJournalEntryRepository(pool),
		PeriodRepo:       newPgxPeriodRepository(pool),
		AccountRepo:      newPgxAccountRepository(pool),
		CompanyRepo:      newPgxCompanyRepository(pool),
		CurrencyRepo:     newPgxCurrencyRepository(pool),
		ExchangeRateRepo: newPgxExchangeRateRepository(pool),
		ReportingRepo:    newPgxReportingRepository(pool),
	}
}
