package dto

import "github.com/andinosoft/contabilidad-api/internal/core/domain"

// ChartAccountResponse mirrors a chart-of-accounts node.
type ChartAccountResponse struct {
	ID                  int64                `json:"id"`
	EmpresaID           int64                `json:"empresaId"`
	Codigo              string               `json:"codigo"`
	Nombre              string               `json:"nombre"`
	Nivel               domain.AccountLevel  `json:"nivel"`
	PadreID             *int64               `json:"padreId"`
	Naturaleza          domain.AccountNature `json:"naturaleza"`
	EsImputable         bool                 `json:"esImputable"`
	RequiereCentroCosto bool                 `json:"requiereCentroCosto"`
	RequiereEntidad     bool                 `json:"requiereEntidad"`
	RequiereProyecto    bool                 `json:"requiereProyecto"`
	Activo              bool                 `json:"activo"`
}

// ToChartAccountResponse converts a domain chart account to its DTO.
func ToChartAccountResponse(a *domain.ChartAccount) ChartAccountResponse {
	return ChartAccountResponse{
		ID:                  a.ID,
		EmpresaID:           a.CompanyID,
		Codigo:              a.Code,
		Nombre:              a.Name,
		Nivel:               a.Level,
		PadreID:             a.ParentID,
		Naturaleza:          a.Nature,
		EsImputable:         a.IsPostable,
		RequiereCentroCosto: a.RequiresCostCenter,
		RequiereEntidad:     a.RequiresEntity,
		RequiereProyecto:    a.RequiresProject,
		Activo:              a.IsActive,
	}
}

// ToChartAccountResponses converts a slice of chart accounts.
func ToChartAccountResponses(accounts []domain.ChartAccount) []ChartAccountResponse {
	res := make([]ChartAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToChartAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for the chart-of-accounts listing.
type ListAccountsParams struct {
	EmpresaID      int64 `form:"empresaId" binding:"required,gt=0"`
	SoloImputables bool  `form:"soloImputables"`
}
