package domain

// Company is the organization (empresa) that journal entries and periods
// belong to. Managed elsewhere in the ERP; this service treats it as a
// reference catalog.
type Company struct {
	ID       int64  `json:"id"`
	RUC      string `json:"ruc"`
	Name     string `json:"razonSocial"`
	IsActive bool   `json:"activo"`
	AuditFields
}
