package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is one account line of the balance de comprobación for a
// period: total debits and credits posted against the account by APPROVED
// entries.
type TrialBalanceRow struct {
	AccountID   int64           `json:"cuentaContableId"`
	AccountCode string          `json:"codigoCuenta"`
	AccountName string          `json:"nombreCuenta"`
	TotalDebit  decimal.Decimal `json:"totalDebe"`
	TotalCredit decimal.Decimal `json:"totalHaber"`
}
