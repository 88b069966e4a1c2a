package mapping

import (
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/models"
)

// ToModelBankDetails converts a domain BankDetails to a model BankDetails
func ToModelBankDetails(d *domain.BankDetails) *models.BankDetails {
	if d == nil {
		return nil
	}
	return &models.BankDetails{
		AccountName:   d.AccountName,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		SortCode:      d.SortCode,
		AccountType:   d.AccountType,
		AccountCode:   d.AccountCode,
	}
}

// ToDomainBankDetails converts a model BankDetails to a domain BankDetails
func ToDomainBankDetails(m *models.BankDetails) *domain.BankDetails {
	if m == nil {
		return nil
	}
	return &domain.BankDetails{
		AccountName:   m.AccountName,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		SortCode:      m.SortCode,
		AccountType:   m.AccountType,
		AccountCode:   m.AccountCode,
	}
}

// ToModelCase converts a domain Case to a model Case
func ToModelCase(d domain.Case) models.Case {
	increases := make([]models.BondIncrease, 0, len(d.BondIncreases))
	for _, inc := range d.BondIncreases {
		increases = append(increases, models.BondIncrease{IncreaseValue: inc.IncreaseValue, Reason: inc.Reason})
	}
	return models.Case{
		CaseID:                d.CaseID,
		CompanyName:           d.CompanyName,
		CompanyNumber:         d.CompanyNumber,
		CaseType:              string(d.CaseType),
		BankDetails:           ToModelBankDetails(d.BankDetails),
		SecondaryBankDetails:  ToModelBankDetails(d.SecondaryBankDetails),
		InitialBondValue:      d.InitialBondValue,
		BondIncreases:         increases,
		SoaETR:                d.SoaETR,
		TotalFundsHeld:        d.TotalFundsHeld,
		TotalFundsDistributed: d.TotalFundsDistributed,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCase converts a model Case to a domain Case
func ToDomainCase(m models.Case) domain.Case {
	increases := make([]domain.BondIncrease, 0, len(m.BondIncreases))
	for _, inc := range m.BondIncreases {
		increases = append(increases, domain.BondIncrease{IncreaseValue: inc.IncreaseValue, Reason: inc.Reason})
	}
	return domain.Case{
		CaseID:                m.CaseID,
		CompanyName:           m.CompanyName,
		CompanyNumber:         m.CompanyNumber,
		CaseType:              domain.CaseType(m.CaseType),
		BankDetails:           ToDomainBankDetails(m.BankDetails),
		SecondaryBankDetails:  ToDomainBankDetails(m.SecondaryBankDetails),
		InitialBondValue:      m.InitialBondValue,
		BondIncreases:         increases,
		SoaETR:                m.SoaETR,
		TotalFundsHeld:        m.TotalFundsHeld,
		TotalFundsDistributed: m.TotalFundsDistributed,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
