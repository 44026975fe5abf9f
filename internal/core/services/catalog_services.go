package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
)

// companyService exposes the empresa reference catalog.
type companyService struct {
	companyRepo portsrepo.CompanyReader
}

// NewCompanyService creates a new company catalog service.
func NewCompanyService(companyRepo portsrepo.CompanyReader) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find company %d: %w", companyID, err)
	}
	return company, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// currencyService exposes the currency catalog.
type currencyService struct {
	currencyRepo portsrepo.CurrencyReader
}

// NewCurrencyService creates a new currency catalog service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("failed to find currency %s: %w", code, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

// exchangeRateService exposes published exchange rates for header prefill.
type exchangeRateService struct {
	rateRepo portsrepo.ExchangeRateReader
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateReader) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) GetRate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindRate(ctx, strings.ToUpper(currencyCode), date)
	if err != nil {
		return nil, fmt.Errorf("failed to find exchange rate for %s: %w", currencyCode, err)
	}
	return rate, nil
}
