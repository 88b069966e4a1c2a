package models

// ChartOfAccount is the chart_of_accounts table row.
type ChartOfAccount struct {
	AccountCode  string `db:"account_code"`
	Name         string `db:"name"`
	AccountGroup string `db:"account_group"`
	IsSystem     bool   `db:"is_system"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
