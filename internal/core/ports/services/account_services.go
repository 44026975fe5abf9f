package services

import (
	"context"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	"github.com/andinosoft/contabilidad-api/internal/dto"
)

// AccountSvcFacade exposes the chart of accounts to handlers and the journal
// entry service (postability checks, denormalized code/name lookups).
type AccountSvcFacade interface {
	GetAccountByID(ctx context.Context, accountID int64) (*domain.ChartAccount, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.ChartAccount, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.ChartAccount, error)
}

// CompanySvcFacade exposes the empresa reference catalog.
type CompanySvcFacade interface {
	GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CurrencySvcFacade exposes the currency catalog.
type CurrencySvcFacade interface {
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateSvcFacade exposes published exchange rates.
type ExchangeRateSvcFacade interface {
	GetRate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error)
}

// ReportingSvcFacade exposes accounting reports.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, periodID int64) (*dto.TrialBalanceResponse, error)
}
