package dto

import (
	"time"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CompanyResponse mirrors an empresa catalog row.
type CompanyResponse struct {
	ID          int64  `json:"id"`
	RUC         string `json:"ruc"`
	RazonSocial string `json:"razonSocial"`
	Activo      bool   `json:"activo"`
}

// ToCompanyResponse converts a domain company to its DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{ID: c.ID, RUC: c.RUC, RazonSocial: c.Name, Activo: c.IsActive}
}

// CurrencyResponse mirrors a moneda catalog row.
type CurrencyResponse struct {
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Simbolo   string `json:"simbolo"`
	Precision int    `json:"precision"`
}

// ToCurrencyResponse converts a domain currency to its DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{Codigo: c.Code, Nombre: c.Name, Simbolo: c.Symbol, Precision: c.Precision}
}

// ExchangeRateResponse mirrors a published tipo de cambio.
type ExchangeRateResponse struct {
	ID     int64           `json:"id"`
	Moneda string          `json:"moneda"`
	Fecha  time.Time       `json:"fecha"`
	Compra decimal.Decimal `json:"compra"`
	Venta  decimal.Decimal `json:"venta"`
}

// ToExchangeRateResponse converts a domain exchange rate to its DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:     r.ID,
		Moneda: r.CurrencyCode,
		Fecha:  r.RateDate,
		Compra: r.BuyRate,
		Venta:  r.SellRate,
	}
}

// TrialBalanceRowResponse is one row of the balance de comprobación report.
type TrialBalanceRowResponse struct {
	CuentaContableID int64           `json:"cuentaContableId"`
	CodigoCuenta     string          `json:"codigoCuenta"`
	NombreCuenta     string          `json:"nombreCuenta"`
	TotalDebe        decimal.Decimal `json:"totalDebe"`
	TotalHaber       decimal.Decimal `json:"totalHaber"`
}

// TrialBalanceResponse wraps the report with its derived totals.
type TrialBalanceResponse struct {
	PeriodoContableID int64                     `json:"periodoContableId"`
	Filas             []TrialBalanceRowResponse `json:"filas"`
	TotalDebe         decimal.Decimal           `json:"totalDebe"`
	TotalHaber        decimal.Decimal           `json:"totalHaber"`
}

// ToTrialBalanceResponse converts report rows, summing the report totals.
func ToTrialBalanceResponse(periodID int64, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	res := TrialBalanceResponse{
		PeriodoContableID: periodID,
		Filas:             make([]TrialBalanceRowResponse, len(rows)),
		TotalDebe:         decimal.Zero,
		TotalHaber:        decimal.Zero,
	}
	for i, row := range rows {
		res.Filas[i] = TrialBalanceRowResponse{
			CuentaContableID: row.AccountID,
			CodigoCuenta:     row.AccountCode,
			NombreCuenta:     row.AccountName,
			TotalDebe:        row.TotalDebit,
			TotalHaber:       row.TotalCredit,
		}
		res.TotalDebe = res.TotalDebe.Add(row.TotalDebit)
		res.TotalHaber = res.TotalHaber.Add(row.TotalCredit)
	}
	return res
}
