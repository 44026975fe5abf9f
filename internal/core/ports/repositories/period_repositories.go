package repositories

import (
	"context"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
)

// PeriodReader defines read operations for accounting period data.
type PeriodReader interface {
	// FindPeriodByID retrieves a period by its identifier.
	FindPeriodByID(ctx context.Context, periodID int64) (*domain.AccountingPeriod, error)

	// FindPeriodByMonth retrieves the period for a company's year/month, if any.
	FindPeriodByMonth(ctx context.Context, companyID int64, year, month int) (*domain.AccountingPeriod, error)

	// ListPeriodsByCompany retrieves all periods of a company, newest first.
	ListPeriodsByCompany(ctx context.Context, companyID int64) ([]domain.AccountingPeriod, error)
}

// PeriodWriter defines write operations for accounting period data.
type PeriodWriter interface {
	// SavePeriod persists a new period, assigning its ID.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) (*domain.AccountingPeriod, error)

	// UpdatePeriod persists the full current state of a period, including
	// status and transition metadata.
	UpdatePeriod(ctx context.Context, period domain.AccountingPeriod) error
}

// PeriodRepositoryFacade combines all period repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
