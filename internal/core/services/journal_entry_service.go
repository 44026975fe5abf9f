package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/apperrors"
	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
	"github.com/andinosoft/contabilidad-api/internal/middleware"
)

var (
	ErrEntryUnbalanced    = errors.New("entry unbalanced")
	ErrEntryNotEditable   = errors.New("journal entry can only be modified while pending")
	ErrPeriodNotOpen      = errors.New("accounting period is not open for new entries")
	ErrAccountNotPostable = errors.New("account is not a postable active account")
	ErrCompanyMismatch    = errors.New("account does not belong to the entry's company")
	ErrGlossMissing       = errors.New("entry description (glosa) is required")
)

// journalEntryService implements the asiento contable operations: submission
// with balance enforcement, and the PENDING -> APPROVED -> ANNULLED lifecycle.
type journalEntryService struct {
	entryRepo   portsrepo.JournalEntryRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	periodSvc   portssvc.PeriodReaderSvc
	companySvc  portssvc.CompanySvcFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewJournalEntryService creates a new journal entry service.
func NewJournalEntryService(
	entryRepo portsrepo.JournalEntryRepositoryFacade,
	accountSvc portssvc.AccountSvcFacade,
	periodSvc portssvc.PeriodReaderSvc,
	companySvc portssvc.CompanySvcFacade,
	currencySvc portssvc.CurrencySvcFacade,
) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{
		entryRepo:   entryRepo,
		accountSvc:  accountSvc,
		periodSvc:   periodSvc,
		companySvc:  companySvc,
		currencySvc: currencySvc,
	}
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

// unbalancedError builds the user-facing rejection for an entry whose lines do
// not balance, embedding both totals and the absolute difference to 2 decimals.
func unbalancedError(b domain.BalanceSummary) error {
	return fmt.Errorf("%w: total debit %s, total credit %s, difference %s",
		ErrEntryUnbalanced,
		b.TotalDebit.StringFixed(2),
		b.TotalCredit.StringFixed(2),
		b.Difference.Abs().StringFixed(2))
}

// buildLines validates each submitted line through the aggregate, which also
// assigns contiguous line numbers and recomputes totals.
func buildLines(entry *domain.JournalEntry, lines []dto.JournalLineRequest) error {
	entry.Lines = nil
	for i, lineReq := range lines {
		line := domain.JournalLine{
			AccountID:   lineReq.CuentaContableID,
			Description: lineReq.Glosa,
			Debit:       lineReq.Debe,
			Credit:      lineReq.Haber,
		}
		if err := entry.AddLine(line); err != nil {
			return fmt.Errorf("%w: line %d: %w", apperrors.ErrValidation, i+1, err)
		}
	}
	entry.Recalculate()
	return nil
}

// resolveLineAccounts verifies every referenced account exists, is postable
// and active, and belongs to the entry's company, then denormalizes the
// account code and name onto each line.
func (s *journalEntryService) resolveLineAccounts(ctx context.Context, entry *domain.JournalEntry) error {
	if len(entry.Lines) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(entry.Lines))
	seen := make(map[int64]struct{}, len(entry.Lines))
	for _, line := range entry.Lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			ids = append(ids, line.AccountID)
		}
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts for entry lines: %w", apperrors.ErrInternal) // Return generic internal error
	}

	for i := range entry.Lines {
		acc, found := accounts[entry.Lines[i].AccountID]
		if !found {
			return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, entry.Lines[i].AccountID)
		}
		if acc.CompanyID != entry.CompanyID {
			return fmt.Errorf("%w: account %d", ErrCompanyMismatch, acc.ID)
		}
		if !acc.Selectable() {
			return fmt.Errorf("%w: account %s", ErrAccountNotPostable, acc.Code)
		}
		entry.Lines[i].AccountCode = acc.Code
		entry.Lines[i].AccountName = acc.Name
	}
	return nil
}

// CreateEntry validates and persists a new asiento contable. The period must
// be OPEN and the lines, if any, must balance; the status is forced PENDING
// regardless of anything the caller sent.
func (s *journalEntryService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID int64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Glosa) == "" {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrGlossMissing)
	}

	if _, err := s.companySvc.GetCompanyByID(ctx, req.EmpresaID); err != nil {
		return nil, fmt.Errorf("failed to resolve company %d: %w", req.EmpresaID, err)
	}

	period, err := s.periodSvc.GetPeriodByID(ctx, req.PeriodoContableID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve period %d: %w", req.PeriodoContableID, err)
	}
	if !period.AcceptsEntries() {
		return nil, fmt.Errorf("%w: period %s is %s", ErrPeriodNotOpen, period.Name, period.Status)
	}

	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.Moneda); err != nil {
		return nil, fmt.Errorf("failed to resolve currency %s: %w", req.Moneda, err)
	}

	origin := req.Origen
	if origin == "" {
		origin = domain.OriginManual
	}

	entry := domain.JournalEntry{
		CompanyID:    req.EmpresaID,
		PeriodID:     req.PeriodoContableID,
		EntryDate:    req.Fecha,
		Description:  req.Glosa,
		Book:         req.Libro,
		Origin:       origin,
		Status:       domain.EntryPending,
		CurrencyCode: req.Moneda,
		ExchangeRate: req.TipoCambio,
	}

	if err := buildLines(&entry, req.Detalles); err != nil {
		return nil, err
	}
	if len(entry.Lines) > 0 && !entry.IsBalanced {
		// rejected locally, no persistence call is made
		return nil, unbalancedError(entry.BalanceSummary)
	}
	if err := s.resolveLineAccounts(ctx, &entry); err != nil {
		return nil, err
	}

	entry.StampLines()
	entry.TouchCreate(creatorUserID, time.Now().UTC())

	saved, err := s.entryRepo.SaveEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.Int64("company_id", entry.CompanyID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created", slog.Int64("entry_id", saved.ID), slog.Int64("entry_number", saved.EntryNumber))
	return saved, nil
}

// UpdateEntry replaces the header and lines of an entry. Only PENDING entries
// are editable; company, period and book are immutable.
func (s *journalEntryService) UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateJournalEntryRequest, userID int64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}
	if !entry.Editable() {
		return nil, fmt.Errorf("%w: %v (status %s)", apperrors.ErrConflict, ErrEntryNotEditable, entry.Status)
	}

	if strings.TrimSpace(req.Glosa) == "" {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, ErrGlossMissing)
	}
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, req.Moneda); err != nil {
		return nil, fmt.Errorf("failed to resolve currency %s: %w", req.Moneda, err)
	}

	entry.EntryDate = req.Fecha
	entry.Description = req.Glosa
	entry.CurrencyCode = req.Moneda
	entry.ExchangeRate = req.TipoCambio

	if err := buildLines(entry, req.Detalles); err != nil {
		return nil, err
	}
	if len(entry.Lines) > 0 && !entry.IsBalanced {
		return nil, unbalancedError(entry.BalanceSummary)
	}
	if err := s.resolveLineAccounts(ctx, entry); err != nil {
		return nil, err
	}

	entry.StampLines()
	entry.TouchUpdate(userID, time.Now().UTC())

	updated, err := s.entryRepo.UpdateEntry(ctx, *entry)
	if err != nil {
		logger.Error("Failed to update journal entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	logger.Info("Journal entry updated", slog.Int64("entry_id", entryID))
	return updated, nil
}

// DeleteEntry hard-deletes an entry. Only PENDING entries may be deleted.
func (s *journalEntryService) DeleteEntry(ctx context.Context, entryID int64, userID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}
	if !domain.CanEntryTransition(entry.Status, domain.EntryActionDelete) {
		return fmt.Errorf("%w: cannot delete a %s entry", apperrors.ErrConflict, entry.Status)
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete journal entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	logger.Info("Journal entry deleted", slog.Int64("entry_id", entryID), slog.Int64("deleted_by", userID))
	return nil
}

// ApproveEntry transitions an entry PENDING -> APPROVED. The entry must be
// balanced; the server-side guard is authoritative regardless of any UI gate.
func (s *journalEntryService) ApproveEntry(ctx context.Context, entryID int64, approverID int64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}
	if !domain.CanEntryTransition(entry.Status, domain.EntryActionApprove) {
		return nil, fmt.Errorf("%w: cannot approve a %s entry", apperrors.ErrConflict, entry.Status)
	}
	if !entry.IsBalanced {
		return nil, unbalancedError(entry.BalanceSummary)
	}

	now := time.Now().UTC()
	if err := s.entryRepo.UpdateEntryStatus(ctx, entryID, domain.EntryApproved, &approverID, approverID, now); err != nil {
		logger.Error("Failed to approve journal entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		return nil, fmt.Errorf("failed to approve journal entry: %w", err)
	}

	entry.Status = domain.EntryApproved
	entry.ApprovedBy = &approverID
	entry.ApprovedAt = &now
	entry.TouchUpdate(approverID, now)

	logger.Info("Journal entry approved", slog.Int64("entry_id", entryID), slog.Int64("approver_id", approverID))
	return entry, nil
}

// AnnulEntry transitions an entry APPROVED -> ANNULLED.
func (s *journalEntryService) AnnulEntry(ctx context.Context, entryID int64, userID int64) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}
	if !domain.CanEntryTransition(entry.Status, domain.EntryActionAnnul) {
		return nil, fmt.Errorf("%w: cannot annul a %s entry", apperrors.ErrConflict, entry.Status)
	}

	now := time.Now().UTC()
	if err := s.entryRepo.UpdateEntryStatus(ctx, entryID, domain.EntryAnnulled, nil, userID, now); err != nil {
		logger.Error("Failed to annul journal entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		return nil, fmt.Errorf("failed to annul journal entry: %w", err)
	}

	entry.Status = domain.EntryAnnulled
	entry.AnnulledAt = &now
	entry.TouchUpdate(userID, now)

	logger.Info("Journal entry annulled", slog.Int64("entry_id", entryID))
	return entry, nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *journalEntryService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find journal entry", slog.String("error", err.Error()), slog.Int64("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find journal entry %d: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries retrieves a paginated list of entries for a company.
func (s *journalEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.entryRepo.ListEntriesByCompany(ctx, params.EmpresaID, params.PeriodoID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()), slog.Int64("company_id", params.EmpresaID))
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	responses := make([]dto.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToJournalEntryResponse(&entries[i])
	}

	logger.Debug("Journal entries listed", slog.Int("count", len(entries)))
	return &dto.ListEntriesResponse{Asientos: responses, NextToken: nextToken}, nil
}
