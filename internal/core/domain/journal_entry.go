package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry (asiento contable).
type EntryStatus string

const (
	EntryPending  EntryStatus = "PENDING"
	EntryApproved EntryStatus = "APPROVED"
	EntryAnnulled EntryStatus = "ANNULLED"
)

// BookType identifies the accounting book an entry is recorded in.
type BookType string

const (
	BookFiscal     BookType = "FISCAL"
	BookManagerial BookType = "GERENCIAL"
)

// EntryOrigin identifies where an entry was produced.
type EntryOrigin string

const (
	OriginManual    EntryOrigin = "MANUAL"
	OriginAutomatic EntryOrigin = "AUTOMATICO"
)

// EntryAction is an operation attempted against a journal entry.
type EntryAction string

const (
	EntryActionEdit    EntryAction = "EDIT"
	EntryActionDelete  EntryAction = "DELETE"
	EntryActionApprove EntryAction = "APPROVE"
	EntryActionAnnul   EntryAction = "ANNUL"
)

var (
	ErrLineAccountRequired     = errors.New("line account is required")
	ErrLineDescriptionRequired = errors.New("line description (glosa) is required")
	ErrLineAmountRequired      = errors.New("exactly one of debit or credit must be greater than zero")
	ErrLineAmountNegative      = errors.New("debit and credit amounts cannot be negative")
	ErrLineNotFound            = errors.New("line not found")
)

// CanEntryTransition is the single source of truth for which actions a journal
// entry admits in each status. UI enablement and server-side validation both
// consult this guard.
func CanEntryTransition(status EntryStatus, action EntryAction) bool {
	switch action {
	case EntryActionEdit, EntryActionDelete:
		return status == EntryPending
	case EntryActionApprove:
		return status == EntryPending
	case EntryActionAnnul:
		return status == EntryApproved
	default:
		return false
	}
}

// JournalLine is a single debit/credit line of a journal entry.
// Account code and name are denormalized copies taken at save time.
type JournalLine struct {
	ID           int64            `json:"id"`
	LineNumber   int              `json:"numeroLinea"` // 1-based, contiguous
	AccountID    int64            `json:"cuentaContableId"`
	AccountCode  string           `json:"codigoCuenta"`
	AccountName  string           `json:"nombreCuenta"`
	Description  string           `json:"glosa"`
	Debit        decimal.Decimal  `json:"debe"`
	Credit       decimal.Decimal  `json:"haber"`
	CurrencyCode string           `json:"moneda"`
	ExchangeRate *decimal.Decimal `json:"tipoCambio"`
}

// Validate checks the line-level invariants: an account must be selected, the
// description must be present, neither amount may be negative, and exactly one
// of debit/credit must be positive.
func (l JournalLine) Validate() error {
	if l.AccountID <= 0 {
		return ErrLineAccountRequired
	}
	if strings.TrimSpace(l.Description) == "" {
		return ErrLineDescriptionRequired
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return ErrLineAmountNegative
	}
	hasDebit := l.Debit.IsPositive()
	hasCredit := l.Credit.IsPositive()
	if hasDebit == hasCredit { // both zero or both positive
		return ErrLineAmountRequired
	}
	return nil
}

// JournalEntry is the asiento contable aggregate: header fields plus the
// ordered line collection and its derived totals.
type JournalEntry struct {
	ID           int64            `json:"id"`
	CompanyID    int64            `json:"empresaId"`
	PeriodID     int64            `json:"periodoContableId"` // immutable after creation
	EntryNumber  int64            `json:"numeroAsiento"`     // system-assigned
	Sequence     int              `json:"secuencia"`
	EntryDate    time.Time        `json:"fecha"`
	Description  string           `json:"glosa"`
	Book         BookType         `json:"libro"`
	Origin       EntryOrigin      `json:"origen"`
	Status       EntryStatus      `json:"estado"`
	CurrencyCode string           `json:"moneda"`
	ExchangeRate *decimal.Decimal `json:"tipoCambio"`
	BalanceSummary
	Lines      []JournalLine `json:"detalles"`
	ApprovedBy *int64        `json:"aprobadoPorId"`
	ApprovedAt *time.Time    `json:"fechaAprobacion"`
	AnnulledAt *time.Time    `json:"fechaAnulacion"`
	AuditFields
}

// Recalculate recomputes the derived totals from the current lines.
func (e *JournalEntry) Recalculate() {
	e.BalanceSummary = ComputeBalance(e.Lines)
}

// Editable reports whether the entry's header and lines may still be mutated.
func (e *JournalEntry) Editable() bool {
	return CanEntryTransition(e.Status, EntryActionEdit)
}

// CanApprove reports whether the approve action is currently admissible.
// Approval requires both the PENDING status and a balanced entry.
func (e *JournalEntry) CanApprove() bool {
	return CanEntryTransition(e.Status, EntryActionApprove) && e.IsBalanced
}

// AddLine validates the draft line, assigns it the next line number and
// appends it. Totals are recomputed. The entry is left untouched on error.
func (e *JournalEntry) AddLine(line JournalLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	line.LineNumber = len(e.Lines) + 1
	e.Lines = append(e.Lines, line)
	e.Recalculate()
	return nil
}

// EditLine validates the draft and replaces the line carrying the given line
// number, preserving its position. The entry is left untouched on error.
func (e *JournalEntry) EditLine(lineNumber int, line JournalLine) error {
	if err := line.Validate(); err != nil {
		return err
	}
	for i := range e.Lines {
		if e.Lines[i].LineNumber == lineNumber {
			line.LineNumber = lineNumber
			line.ID = e.Lines[i].ID
			e.Lines[i] = line
			e.Recalculate()
			return nil
		}
	}
	return fmt.Errorf("%w: line %d", ErrLineNotFound, lineNumber)
}

// DeleteLine removes the line with the given number and renumbers the
// remaining lines sequentially from 1, preserving their relative order.
func (e *JournalEntry) DeleteLine(lineNumber int) error {
	idx := -1
	for i := range e.Lines {
		if e.Lines[i].LineNumber == lineNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: line %d", ErrLineNotFound, lineNumber)
	}
	e.Lines = append(e.Lines[:idx], e.Lines[idx+1:]...)
	for i := range e.Lines {
		e.Lines[i].LineNumber = i + 1
	}
	e.Recalculate()
	return nil
}

// StampLines copies the header currency and exchange rate onto every line.
// This denormalization happens once, at final submission.
func (e *JournalEntry) StampLines() {
	for i := range e.Lines {
		e.Lines[i].CurrencyCode = e.CurrencyCode
		e.Lines[i].ExchangeRate = e.ExchangeRate
	}
}
