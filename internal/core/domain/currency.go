package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency accepted on journal entries.
type Currency struct {
	Code      string `json:"codigo"` // e.g. PEN, USD
	Name      string `json:"nombre"`
	Symbol    string `json:"simbolo"`
	Precision int    `json:"precision"`
	AuditFields
}

// ExchangeRate is the published rate of a foreign currency against PEN for a
// given date, used to prefill the entry header's tipo de cambio.
type ExchangeRate struct {
	ID           int64           `json:"id"`
	CurrencyCode string          `json:"moneda"`
	RateDate     time.Time       `json:"fecha"`
	BuyRate      decimal.Decimal `json:"compra"`
	SellRate     decimal.Decimal `json:"venta"`
	AuditFields
}
