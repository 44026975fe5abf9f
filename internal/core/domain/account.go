package domain

// AccountLevel places a chart-of-accounts node in the hierarchy.
type AccountLevel string

const (
	LevelClass      AccountLevel = "CLASS"
	LevelAccount    AccountLevel = "ACCOUNT"
	LevelSubaccount AccountLevel = "SUBACCOUNT"
	LevelDivision   AccountLevel = "DIVISION"
)

// AccountNature is the normal balance side of an account.
type AccountNature string

const (
	NatureDebit  AccountNature = "DEBIT"
	NatureCredit AccountNature = "CREDIT"
)

// ChartAccount is a node of the chart of accounts (plan de cuentas).
// The tree is parent-linked; roots carry a nil parent.
type ChartAccount struct {
	ID                 int64         `json:"id"`
	CompanyID          int64         `json:"empresaId"`
	Code               string        `json:"codigo"`
	Name               string        `json:"nombre"`
	Level              AccountLevel  `json:"nivel"`
	ParentID           *int64        `json:"padreId"`
	Nature             AccountNature `json:"naturaleza"`
	IsPostable         bool          `json:"esImputable"`
	RequiresCostCenter bool          `json:"requiereCentroCosto"`
	RequiresEntity     bool          `json:"requiereEntidad"`
	RequiresProject    bool          `json:"requiereProyecto"`
	IsActive           bool          `json:"activo"`
	AuditFields
}

// Selectable reports whether the account may back a journal line. Only
// active accounts flagged esImputable qualify, regardless of their level
// in the chart.
func (a *ChartAccount) Selectable() bool {
	return a.IsPostable && a.IsActive
}
