package repositories

import (
	"context"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByID retrieves a single chart account.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.ChartAccount, error)

	// FindAccountsByIDs retrieves the given accounts keyed by ID. Missing IDs
	// are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.ChartAccount, error)

	// ListAccountsByCompany retrieves the company's chart of accounts ordered
	// by code.
	ListAccountsByCompany(ctx context.Context, companyID int64) ([]domain.ChartAccount, error)
}

// AccountRepositoryFacade combines the chart-of-accounts repository interfaces.
// The chart is maintained by another ERP module; this service only reads it.
type AccountRepositoryFacade interface {
	AccountReader
}
