package mapping

import (
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/models"
)

// ToModelChartOfAccount converts a domain ChartOfAccount to a model ChartOfAccount
func ToModelChartOfAccount(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		AccountCode:  d.AccountCode,
		Name:         d.Name,
		AccountGroup: d.AccountGroup,
		IsSystem:     d.IsSystem,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChartOfAccount converts a model ChartOfAccount to a domain ChartOfAccount
func ToDomainChartOfAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		AccountCode:  m.AccountCode,
		Name:         m.Name,
		AccountGroup: m.AccountGroup,
		IsSystem:     m.IsSystem,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
