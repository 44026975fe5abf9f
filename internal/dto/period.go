package dto

import (
	"time"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
)

// CreatePeriodRequest defines the payload to create a periodo contable.
// Name and date range are derived server-side from year/month.
type CreatePeriodRequest struct {
	EmpresaID int64 `json:"empresaId" binding:"required,gt=0"`
	Anio      int   `json:"anio" binding:"required,gte=2000,lte=2100"`
	Mes       int   `json:"mes" binding:"required,gte=1,lte=12"`
}

// UpdatePeriodRequest defines the payload to redefine an OPEN period's month.
type UpdatePeriodRequest struct {
	Anio int `json:"anio" binding:"required,gte=2000,lte=2100"`
	Mes  int `json:"mes" binding:"required,gte=1,lte=12"`
}

// ClosePeriodRequest carries the actor for the cerrar action.
type ClosePeriodRequest struct {
	CerradoPor int64 `json:"cerradoPor" binding:"required,gt=0"`
}

// ReopenPeriodRequest carries actor and mandatory reason for reabrir.
type ReopenPeriodRequest struct {
	ReabiertoPor     int64  `json:"reabiertoPor" binding:"required,gt=0"`
	MotivoReapertura string `json:"motivoReapertura" binding:"required"`
}

// BlockPeriodRequest carries actor and mandatory reason for bloquear.
type BlockPeriodRequest struct {
	BloqueadoPor  int64  `json:"bloqueadoPor" binding:"required,gt=0"`
	MotivoBloqueo string `json:"motivoBloqueo" binding:"required"`
}

// PeriodResponse mirrors a persisted period, with capability flags derived
// from the shared transition guard.
type PeriodResponse struct {
	ID               int64               `json:"id"`
	EmpresaID        int64               `json:"empresaId"`
	Anio             int                 `json:"anio"`
	Mes              int                 `json:"mes"`
	Nombre           string              `json:"nombre"`
	FechaInicio      time.Time           `json:"fechaInicio"`
	FechaFin         time.Time           `json:"fechaFin"`
	Estado           domain.PeriodStatus `json:"estado"`
	CerradoPor       *int64              `json:"cerradoPor"`
	FechaCierre      *time.Time          `json:"fechaCierre"`
	ReabiertoPor     *int64              `json:"reabiertoPor"`
	FechaReapertura  *time.Time          `json:"fechaReapertura"`
	MotivoReapertura string              `json:"motivoReapertura,omitempty"`
	BloqueadoPor     *int64              `json:"bloqueadoPor"`
	FechaBloqueo     *time.Time          `json:"fechaBloqueo"`
	MotivoBloqueo    string              `json:"motivoBloqueo,omitempty"`
	AdmiteAsientos   bool                `json:"admiteAsientos"`
	PuedeCerrar      bool                `json:"puedeCerrar"`
	PuedeReabrir     bool                `json:"puedeReabrir"`
	PuedeBloquear    bool                `json:"puedeBloquear"`
}

// ToPeriodResponse converts a domain period to its DTO.
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		ID:               p.ID,
		EmpresaID:        p.CompanyID,
		Anio:             p.Year,
		Mes:              p.Month,
		Nombre:           p.Name,
		FechaInicio:      p.StartDate,
		FechaFin:         p.EndDate,
		Estado:           p.Status,
		CerradoPor:       p.ClosedBy,
		FechaCierre:      p.ClosedAt,
		ReabiertoPor:     p.ReopenedBy,
		FechaReapertura:  p.ReopenedAt,
		MotivoReapertura: p.ReopenReason,
		BloqueadoPor:     p.BlockedBy,
		FechaBloqueo:     p.BlockedAt,
		MotivoBloqueo:    p.BlockReason,
		AdmiteAsientos:   p.AcceptsEntries(),
		PuedeCerrar:      domain.CanPeriodTransition(p.Status, domain.PeriodActionClose),
		PuedeReabrir:     domain.CanPeriodTransition(p.Status, domain.PeriodActionReopen),
		PuedeBloquear:    domain.CanPeriodTransition(p.Status, domain.PeriodActionBlock),
	}
}

// ToPeriodResponses converts a slice of periods.
func ToPeriodResponses(periods []domain.AccountingPeriod) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return res
}
