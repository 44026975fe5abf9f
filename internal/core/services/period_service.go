package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/apperrors"
	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
	"github.com/andinosoft/contabilidad-api/internal/middleware"
)

// periodService implements the periodo contable lifecycle:
// OPEN -> CLOSED -> {OPEN via reopen, BLOCKED via block}.
type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
	companySvc portssvc.CompanySvcFacade
}

// NewPeriodService creates a new accounting period service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo, companySvc: companySvc}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// mapPeriodDomainErr translates domain state-machine errors into the app error
// taxonomy so handlers map them to the right HTTP status.
func mapPeriodDomainErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrReasonRequired), errors.Is(err, domain.ErrInvalidMonth):
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	case errors.Is(err, domain.ErrPeriodTransition):
		return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
	default:
		return err
	}
}

// CreatePeriod derives and persists the period for a company month. A company
// can hold at most one period per year/month.
func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID int64) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.companySvc.GetCompanyByID(ctx, req.EmpresaID); err != nil {
		return nil, fmt.Errorf("failed to resolve company %d: %w", req.EmpresaID, err)
	}

	existing, err := s.periodRepo.FindPeriodByMonth(ctx, req.EmpresaID, req.Anio, req.Mes)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing period: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: period %s", apperrors.ErrDuplicate, existing.Name)
	}

	period, err := domain.NewAccountingPeriod(req.EmpresaID, req.Anio, req.Mes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	period.TouchCreate(creatorUserID, time.Now().UTC())

	saved, err := s.periodRepo.SavePeriod(ctx, period)
	if err != nil {
		logger.Error("Failed to save period", slog.String("error", err.Error()), slog.Int64("company_id", req.EmpresaID))
		return nil, fmt.Errorf("failed to save period: %w", err)
	}

	logger.Info("Accounting period created", slog.Int64("period_id", saved.ID), slog.String("name", saved.Name))
	return saved, nil
}

// UpdatePeriod redefines an OPEN period's month. The derived name and date
// range follow the new year/month; the per-month uniqueness still holds.
func (s *periodService) UpdatePeriod(ctx context.Context, periodID int64, req dto.UpdatePeriodRequest, userID int64) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %d: %w", periodID, err)
	}

	if req.Anio != period.Year || req.Mes != period.Month {
		existing, err := s.periodRepo.FindPeriodByMonth(ctx, period.CompanyID, req.Anio, req.Mes)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for existing period: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: period %s", apperrors.ErrDuplicate, existing.Name)
		}
	}

	if err := period.Redefine(req.Anio, req.Mes); err != nil {
		return nil, mapPeriodDomainErr(err)
	}
	period.TouchUpdate(userID, time.Now().UTC())

	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		logger.Error("Failed to update period", slog.String("error", err.Error()), slog.Int64("period_id", periodID))
		return nil, fmt.Errorf("failed to update period: %w", err)
	}

	logger.Info("Accounting period updated", slog.Int64("period_id", periodID), slog.String("name", period.Name))
	return period, nil
}

// GetPeriodByID retrieves a period.
func (s *periodService) GetPeriodByID(ctx context.Context, periodID int64) (*domain.AccountingPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %d: %w", periodID, err)
	}
	return period, nil
}

// ListPeriods retrieves all periods of a company, newest first.
func (s *periodService) ListPeriods(ctx context.Context, companyID int64) ([]domain.AccountingPeriod, error) {
	periods, err := s.periodRepo.ListPeriodsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

// ClosePeriod transitions a period OPEN -> CLOSED.
func (s *periodService) ClosePeriod(ctx context.Context, periodID int64, closedBy int64) (*domain.AccountingPeriod, error) {
	return s.transition(ctx, periodID, "close", func(p *domain.AccountingPeriod, now time.Time) error {
		return p.Close(closedBy, now)
	})
}

// ReopenPeriod transitions a period CLOSED -> OPEN, recording the mandatory
// reason and actor.
func (s *periodService) ReopenPeriod(ctx context.Context, periodID int64, reopenedBy int64, reason string) (*domain.AccountingPeriod, error) {
	return s.transition(ctx, periodID, "reopen", func(p *domain.AccountingPeriod, now time.Time) error {
		return p.Reopen(reopenedBy, reason, now)
	})
}

// BlockPeriod transitions a period CLOSED -> BLOCKED. The state is terminal.
func (s *periodService) BlockPeriod(ctx context.Context, periodID int64, blockedBy int64, reason string) (*domain.AccountingPeriod, error) {
	return s.transition(ctx, periodID, "block", func(p *domain.AccountingPeriod, now time.Time) error {
		return p.Block(blockedBy, reason, now)
	})
}

// transition applies a state-machine mutation and persists the result. The
// domain mutation validates the reason and the transition before any change,
// so a failed guard never reaches the repository.
func (s *periodService) transition(ctx context.Context, periodID int64, action string, mutate func(*domain.AccountingPeriod, time.Time) error) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find period %d: %w", periodID, err)
	}

	now := time.Now().UTC()
	if err := mutate(period, now); err != nil {
		return nil, mapPeriodDomainErr(err)
	}
	period.TouchUpdate(actorOf(period, action), now)

	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		logger.Error("Failed to persist period transition", slog.String("error", err.Error()), slog.Int64("period_id", periodID), slog.String("action", action))
		return nil, fmt.Errorf("failed to %s period: %w", action, err)
	}

	logger.Info("Accounting period transitioned", slog.Int64("period_id", periodID), slog.String("action", action), slog.String("status", string(period.Status)))
	return period, nil
}

// actorOf returns the personnel ID recorded by the mutation for audit fields.
func actorOf(p *domain.AccountingPeriod, action string) int64 {
	switch action {
	case "close":
		if p.ClosedBy != nil {
			return *p.ClosedBy
		}
	case "reopen":
		if p.ReopenedBy != nil {
			return *p.ReopenedBy
		}
	case "block":
		if p.BlockedBy != nil {
			return *p.BlockedBy
		}
	}
	return 0
}
