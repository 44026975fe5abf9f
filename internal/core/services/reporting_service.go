package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
	"github.com/andinosoft/contabilidad-api/internal/middleware"
)

// reportingService produces accounting reports from approved entries.
type reportingService struct {
	reportingRepo portsrepo.ReportingReader
	periodSvc     portssvc.PeriodReaderSvc
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingReader, periodSvc portssvc.PeriodReaderSvc) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, periodSvc: periodSvc}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance builds the balance de comprobación for a period from its
// APPROVED entries.
func (s *reportingService) TrialBalance(ctx context.Context, periodID int64) (*dto.TrialBalanceResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.periodSvc.GetPeriodByID(ctx, periodID); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.TrialBalance(ctx, periodID)
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()), slog.Int64("period_id", periodID))
		return nil, fmt.Errorf("failed to build trial balance: %w", err)
	}

	resp := dto.ToTrialBalanceResponse(periodID, rows)
	logger.Debug("Trial balance built", slog.Int64("period_id", periodID), slog.Int("rows", len(rows)))
	return &resp, nil
}
