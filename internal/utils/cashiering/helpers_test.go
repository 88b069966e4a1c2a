package cashiering_test

import (
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const vatCode = domain.DefaultVATControlCode

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptrTarget(t domain.TargetAccount) *domain.TargetAccount { return &t }

func ptrTime(t time.Time) *time.Time { return &t }

type txnOpt func(*domain.Transaction)

func withStatus(s domain.TransactionStatus) txnOpt {
	return func(t *domain.Transaction) { t.Status = s }
}

func withTarget(target domain.TargetAccount) txnOpt {
	return func(t *domain.Transaction) { t.TargetAccount = target }
}

func withAccountType(at domain.FundsAccountType) txnOpt {
	return func(t *domain.Transaction) { t.AccountType = at }
}

func withAccountCode(code string) txnOpt {
	return func(t *domain.Transaction) { t.AccountCode = code }
}

func withBankRequestDate(d time.Time) txnOpt {
	return func(t *domain.Transaction) { t.BankRequestDate = &d }
}

func withID(id string) txnOpt {
	return func(t *domain.Transaction) { t.TransactionID = id }
}

// txn builds an approved primary-account case_account transaction by default.
func txn(caseID string, txType domain.TransactionType, amount string, opts ...txnOpt) domain.Transaction {
	t := domain.Transaction{
		TransactionID:   caseID + "-" + string(txType) + "-" + amount,
		CaseID:          caseID,
		TransactionType: txType,
		AccountType:     domain.CaseAccount,
		TargetAccount:   domain.TargetPrimary,
		Status:          domain.StatusApproved,
		Amount:          dec(amount),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func entry(caseID, txnID, code string, debit, credit string) domain.AccountingEntry {
	return domain.AccountingEntry{
		EntryID:       txnID + "-" + code,
		CaseID:        caseID,
		TransactionID: txnID,
		AccountCode:   code,
		DebitAmount:   dec(debit),
		CreditAmount:  dec(credit),
		EntryDate:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func chartEntry(code, group string) domain.ChartOfAccount {
	return domain.ChartOfAccount{AccountCode: code, Name: code, AccountGroup: group, IsActive: true}
}

func testChart() []domain.ChartOfAccount {
	return []domain.ChartOfAccount{
		chartEntry("D100", domain.GroupDistributions),
		chartEntry("D200", domain.GroupUnsecuredCreditors),
		chartEntry("D300", domain.GroupPreferentialCreditors),
		chartEntry("R100", domain.GroupAssetRealisations),
		chartEntry("R200", domain.GroupFixedChargeRealisations),
		chartEntry("R300", domain.GroupFloatingChargeRealisations),
		chartEntry("E100", "Costs of Realisation"),
		chartEntry(vatCode, domain.GroupRepresentedBy),
	}
}
