package services

import (
	"context"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	"github.com/andinosoft/contabilidad-api/internal/dto"
)

// PeriodReaderSvc defines read operations for accounting periods.
type PeriodReaderSvc interface {
	GetPeriodByID(ctx context.Context, periodID int64) (*domain.AccountingPeriod, error)
	ListPeriods(ctx context.Context, companyID int64) ([]domain.AccountingPeriod, error)
}

// PeriodWriterSvc defines creation of accounting periods.
type PeriodWriterSvc interface {
	// CreatePeriod derives and persists the period for a company month.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID int64) (*domain.AccountingPeriod, error)

	// UpdatePeriod redefines an OPEN period's month, re-deriving its name and
	// date range. Frozen once the period has been closed.
	UpdatePeriod(ctx context.Context, periodID int64, req dto.UpdatePeriodRequest, userID int64) (*domain.AccountingPeriod, error)
}

// PeriodLifecycleSvc defines the period state-machine operations.
type PeriodLifecycleSvc interface {
	// ClosePeriod transitions OPEN -> CLOSED.
	ClosePeriod(ctx context.Context, periodID int64, closedBy int64) (*domain.AccountingPeriod, error)

	// ReopenPeriod transitions CLOSED -> OPEN with a mandatory reason.
	ReopenPeriod(ctx context.Context, periodID int64, reopenedBy int64, reason string) (*domain.AccountingPeriod, error)

	// BlockPeriod transitions CLOSED -> BLOCKED with a mandatory reason.
	// There is no unblock.
	BlockPeriod(ctx context.Context, periodID int64, blockedBy int64, reason string) (*domain.AccountingPeriod, error)
}

// PeriodSvcFacade combines all period service interfaces.
type PeriodSvcFacade interface {
	PeriodReaderSvc
	PeriodWriterSvc
	PeriodLifecycleSvc
}
