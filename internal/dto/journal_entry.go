package dto

import (
	"time"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit/credit line of a submitted entry.
type JournalLineRequest struct {
	CuentaContableID int64           `json:"cuentaContableId" binding:"required,gt=0"`
	Glosa            string          `json:"glosa" binding:"required"`
	Debe             decimal.Decimal `json:"debe" binding:"nonnegative_decimal"`
	Haber            decimal.Decimal `json:"haber" binding:"nonnegative_decimal"`
}

// CreateJournalEntryRequest defines the payload to create an asiento contable.
// The period must be OPEN; the created entry always starts PENDING.
type CreateJournalEntryRequest struct {
	EmpresaID         int64                `json:"empresaId" binding:"required,gt=0"`
	PeriodoContableID int64                `json:"periodoContableId" binding:"required,gt=0"`
	Fecha             time.Time            `json:"fecha" binding:"required"`
	Glosa             string               `json:"glosa" binding:"required"`
	Libro             domain.BookType      `json:"libro" binding:"required,oneof=FISCAL GERENCIAL"`
	Origen            domain.EntryOrigin   `json:"origen" binding:"omitempty,oneof=MANUAL AUTOMATICO"`
	Moneda            string               `json:"moneda" binding:"required,len=3"`
	TipoCambio        *decimal.Decimal     `json:"tipoCambio"`
	Detalles          []JournalLineRequest `json:"detalles" binding:"dive"`
}

// UpdateJournalEntryRequest defines the payload to replace an entry's header
// and lines. Company, period and book are immutable once created.
type UpdateJournalEntryRequest struct {
	Fecha      time.Time            `json:"fecha" binding:"required"`
	Glosa      string               `json:"glosa" binding:"required"`
	Moneda     string               `json:"moneda" binding:"required,len=3"`
	TipoCambio *decimal.Decimal     `json:"tipoCambio"`
	Detalles   []JournalLineRequest `json:"detalles" binding:"dive"`
}

// ApproveEntryRequest carries the approver for the aprobar action.
type ApproveEntryRequest struct {
	AprobadoPorID int64 `json:"aprobadoPorId" binding:"required,gt=0"`
}

// JournalLineResponse mirrors a persisted line.
type JournalLineResponse struct {
	ID               int64            `json:"id"`
	NumeroLinea      int              `json:"numeroLinea"`
	CuentaContableID int64            `json:"cuentaContableId"`
	CodigoCuenta     string           `json:"codigoCuenta"`
	NombreCuenta     string           `json:"nombreCuenta"`
	Glosa            string           `json:"glosa"`
	Debe             decimal.Decimal  `json:"debe"`
	Haber            decimal.Decimal  `json:"haber"`
	Moneda           string           `json:"moneda"`
	TipoCambio       *decimal.Decimal `json:"tipoCambio"`
}

// JournalEntryResponse mirrors a persisted entry. The puede* flags expose the
// state-machine guard so the frontend enables exactly what the server allows.
type JournalEntryResponse struct {
	ID                int64                 `json:"id"`
	EmpresaID         int64                 `json:"empresaId"`
	PeriodoContableID int64                 `json:"periodoContableId"`
	NumeroAsiento     int64                 `json:"numeroAsiento"`
	Secuencia         int                   `json:"secuencia"`
	Fecha             time.Time             `json:"fecha"`
	Glosa             string                `json:"glosa"`
	Libro             domain.BookType       `json:"libro"`
	Origen            domain.EntryOrigin    `json:"origen"`
	Estado            domain.EntryStatus    `json:"estado"`
	Moneda            string                `json:"moneda"`
	TipoCambio        *decimal.Decimal      `json:"tipoCambio"`
	TotalDebe         decimal.Decimal       `json:"totalDebe"`
	TotalHaber        decimal.Decimal       `json:"totalHaber"`
	Diferencia        decimal.Decimal       `json:"diferencia"`
	EstaCuadrado      bool                  `json:"estaCuadrado"`
	Detalles          []JournalLineResponse `json:"detalles"`
	AprobadoPorID     *int64                `json:"aprobadoPorId"`
	FechaAprobacion   *time.Time            `json:"fechaAprobacion"`
	FechaAnulacion    *time.Time            `json:"fechaAnulacion"`
	PuedeEditar       bool                  `json:"puedeEditar"`
	PuedeEliminar     bool                  `json:"puedeEliminar"`
	PuedeAprobar      bool                  `json:"puedeAprobar"`
	PuedeAnular       bool                  `json:"puedeAnular"`
	CreadoPor         int64                 `json:"creadoPor"`
	FechaCreacion     time.Time             `json:"fechaCreacion"`
	ActualizadoPor    int64                 `json:"actualizadoPor"`
	FechaModificacion time.Time             `json:"fechaModificacion"`
}

// ToJournalLineResponse converts a domain line to its DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		ID:               l.ID,
		NumeroLinea:      l.LineNumber,
		CuentaContableID: l.AccountID,
		CodigoCuenta:     l.AccountCode,
		NombreCuenta:     l.AccountName,
		Glosa:            l.Description,
		Debe:             l.Debit,
		Haber:            l.Credit,
		Moneda:           l.CurrencyCode,
		TipoCambio:       l.ExchangeRate,
	}
}

// ToJournalEntryResponse converts a domain entry to its DTO, deriving the
// capability flags from the shared transition guard.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i := range e.Lines {
		lines[i] = ToJournalLineResponse(&e.Lines[i])
	}
	return JournalEntryResponse{
		ID:                e.ID,
		EmpresaID:         e.CompanyID,
		PeriodoContableID: e.PeriodID,
		NumeroAsiento:     e.EntryNumber,
		Secuencia:         e.Sequence,
		Fecha:             e.EntryDate,
		Glosa:             e.Description,
		Libro:             e.Book,
		Origen:            e.Origin,
		Estado:            e.Status,
		Moneda:            e.CurrencyCode,
		TipoCambio:        e.ExchangeRate,
		TotalDebe:         e.TotalDebit,
		TotalHaber:        e.TotalCredit,
		Diferencia:        e.Difference,
		EstaCuadrado:      e.IsBalanced,
		Detalles:          lines,
		AprobadoPorID:     e.ApprovedBy,
		FechaAprobacion:   e.ApprovedAt,
		FechaAnulacion:    e.AnnulledAt,
		PuedeEditar:       domain.CanEntryTransition(e.Status, domain.EntryActionEdit),
		PuedeEliminar:     domain.CanEntryTransition(e.Status, domain.EntryActionDelete),
		PuedeAprobar:      e.CanApprove(),
		PuedeAnular:       domain.CanEntryTransition(e.Status, domain.EntryActionAnnul),
		CreadoPor:         e.CreatedBy,
		FechaCreacion:     e.CreatedAt,
		ActualizadoPor:    e.LastUpdatedBy,
		FechaModificacion: e.LastUpdatedAt,
	}
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	EmpresaID int64   `form:"empresaId" binding:"required,gt=0"`
	PeriodoID *int64  `form:"periodoId"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of entries with the next pagination token.
type ListEntriesResponse struct {
	Asientos  []JournalEntryResponse `json:"asientos"`
	NextToken *string                `json:"nextToken,omitempty"`
}
