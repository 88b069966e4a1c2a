package mapping

import (
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		CaseID:          d.CaseID,
		TransactionType: string(d.TransactionType),
		AccountType:     string(d.AccountType),
		TargetAccount:   string(d.TargetAccount),
		Status:          string(d.Status),
		Amount:          d.Amount,
		NetAmount:       d.NetAmount,
		VATAmount:       d.VATAmount,
		AccountCode:     d.AccountCode,
		Description:     d.Description,
		Payee:           d.Payee,
		BankRequestDate: d.BankRequestDate,
		ApprovalStage:   string(d.ApprovalStage),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		CaseID:          m.CaseID,
		TransactionType: domain.TransactionType(m.TransactionType),
		AccountType:     domain.FundsAccountType(m.AccountType),
		TargetAccount:   domain.TargetAccount(m.TargetAccount),
		Status:          domain.TransactionStatus(m.Status),
		Amount:          m.Amount,
		NetAmount:       m.NetAmount,
		VATAmount:       m.VATAmount,
		AccountCode:     m.AccountCode,
		Description:     m.Description,
		Payee:           m.Payee,
		BankRequestDate: m.BankRequestDate,
		ApprovalStage:   domain.ApprovalStage(m.ApprovalStage),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntry converts a domain AccountingEntry to a model AccountingEntry
func ToModelEntry(d domain.AccountingEntry) models.AccountingEntry {
	return models.AccountingEntry{
		EntryID:       d.EntryID,
		CaseID:        d.CaseID,
		TransactionID: d.TransactionID,
		AccountCode:   d.AccountCode,
		DebitAmount:   d.DebitAmount,
		CreditAmount:  d.CreditAmount,
		EntryDate:     d.EntryDate,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model AccountingEntry to a domain AccountingEntry
func ToDomainEntry(m models.AccountingEntry) domain.AccountingEntry {
	return domain.AccountingEntry{
		EntryID:       m.EntryID,
		CaseID:        m.CaseID,
		TransactionID: m.TransactionID,
		AccountCode:   m.AccountCode,
		DebitAmount:   m.DebitAmount,
		CreditAmount:  m.CreditAmount,
		EntryDate:     m.EntryDate,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
