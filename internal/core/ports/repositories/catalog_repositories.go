package repositories

import (
	"context"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
)

// CompanyReader defines read operations for the company (empresa) catalog.
type CompanyReader interface {
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CurrencyReader defines read operations for the currency catalog.
type CurrencyReader interface {
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateReader defines read operations for published exchange rates.
type ExchangeRateReader interface {
	// FindRate retrieves the rate for a currency on the given date.
	FindRate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error)
}

// ReportingReader defines read operations backing accounting reports.
type ReportingReader interface {
	// TrialBalance aggregates debits/credits of APPROVED entries per account
	// for a period.
	TrialBalance(ctx context.Context, periodID int64) ([]domain.TrialBalanceRow, error)
}
