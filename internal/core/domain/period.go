package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PeriodStatus indicates the lifecycle state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen    PeriodStatus = "OPEN"
	PeriodClosed  PeriodStatus = "CLOSED"
	PeriodBlocked PeriodStatus = "BLOCKED" // terminal, reached only from CLOSED
)

// PeriodAction is an operation attempted against an accounting period.
type PeriodAction string

const (
	PeriodActionClose  PeriodAction = "CLOSE"
	PeriodActionReopen PeriodAction = "REOPEN"
	PeriodActionBlock  PeriodAction = "BLOCK"
)

var (
	ErrReasonRequired   = errors.New("a non-empty reason is required")
	ErrPeriodTransition = errors.New("period status does not allow this action")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
)

// spanishMonths indexes month names 1..12 for the derived period name.
var spanishMonths = [...]string{"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}

// CanPeriodTransition is the single guard for the period state machine.
// BLOCKED admits no action.
func CanPeriodTransition(status PeriodStatus, action PeriodAction) bool {
	switch action {
	case PeriodActionClose:
		return status == PeriodOpen
	case PeriodActionReopen, PeriodActionBlock:
		return status == PeriodClosed
	default:
		return false
	}
}

// AccountingPeriod scopes journal entries to a company month. Its name and
// date range are derived from year/month and are not independently editable.
type AccountingPeriod struct {
	ID        int64        `json:"id"`
	CompanyID int64        `json:"empresaId"`
	Year      int          `json:"anio"`
	Month     int          `json:"mes"`
	Name      string       `json:"nombre"`
	StartDate time.Time    `json:"fechaInicio"`
	EndDate   time.Time    `json:"fechaFin"`
	Status    PeriodStatus `json:"estado"`

	ClosedBy *int64     `json:"cerradoPor"`
	ClosedAt *time.Time `json:"fechaCierre"`

	ReopenedBy   *int64     `json:"reabiertoPor"`
	ReopenedAt   *time.Time `json:"fechaReapertura"`
	ReopenReason string     `json:"motivoReapertura"`

	BlockedBy   *int64     `json:"bloqueadoPor"`
	BlockedAt   *time.Time `json:"fechaBloqueo"`
	BlockReason string     `json:"motivoBloqueo"`

	AuditFields
}

// NewAccountingPeriod derives a period for the given company month: first day
// through last day of the month, named "<Month> <Year>", starting OPEN.
func NewAccountingPeriod(companyID int64, year, month int) (AccountingPeriod, error) {
	if month < 1 || month > 12 {
		return AccountingPeriod{}, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return AccountingPeriod{
		CompanyID: companyID,
		Year:      year,
		Month:     month,
		Name:      fmt.Sprintf("%s %d", spanishMonths[month], year),
		StartDate: start,
		EndDate:   end,
		Status:    PeriodOpen,
	}, nil
}

// Redefine re-derives the period's month fields. Only OPEN periods may be
// redefined; once a period has been closed its boundaries are frozen.
func (p *AccountingPeriod) Redefine(year, month int) error {
	if p.Status != PeriodOpen {
		return fmt.Errorf("%w: cannot redefine a %s period", ErrPeriodTransition, p.Status)
	}
	if p.ClosedAt != nil {
		return fmt.Errorf("%w: boundaries are frozen after the first close", ErrPeriodTransition)
	}
	np, err := NewAccountingPeriod(p.CompanyID, year, month)
	if err != nil {
		return err
	}
	p.Year = np.Year
	p.Month = np.Month
	p.Name = np.Name
	p.StartDate = np.StartDate
	p.EndDate = np.EndDate
	return nil
}

// AcceptsEntries reports whether new journal entries may reference the period.
func (p *AccountingPeriod) AcceptsEntries() bool {
	return p.Status == PeriodOpen
}

// Close transitions the period OPEN -> CLOSED, recording the actor.
func (p *AccountingPeriod) Close(closedBy int64, now time.Time) error {
	if !CanPeriodTransition(p.Status, PeriodActionClose) {
		return fmt.Errorf("%w: cannot close a %s period", ErrPeriodTransition, p.Status)
	}
	p.Status = PeriodClosed
	p.ClosedBy = &closedBy
	p.ClosedAt = &now
	return nil
}

// Reopen transitions the period CLOSED -> OPEN. The reason is mandatory and
// whitespace-only reasons are rejected before any state change.
func (p *AccountingPeriod) Reopen(reopenedBy int64, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if !CanPeriodTransition(p.Status, PeriodActionReopen) {
		return fmt.Errorf("%w: cannot reopen a %s period", ErrPeriodTransition, p.Status)
	}
	p.Status = PeriodOpen
	p.ReopenedBy = &reopenedBy
	p.ReopenedAt = &now
	p.ReopenReason = reason
	return nil
}

// Block transitions the period CLOSED -> BLOCKED. There is no unblock; the
// state is terminal. The reason is mandatory.
func (p *AccountingPeriod) Block(blockedBy int64, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if !CanPeriodTransition(p.Status, PeriodActionBlock) {
		return fmt.Errorf("%w: cannot block a %s period", ErrPeriodTransition, p.Status)
	}
	p.Status = PeriodBlocked
	p.BlockedBy = &blockedBy
	p.BlockedAt = &now
	p.BlockReason = reason
	return nil
}
