package cashiering

import (
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetRealisations totals the realisation-side postings of a case: entries
// belonging to approved transactions whose account classifies as
// realisation-like, summed as credit minus debit per account code and then
// across codes.
func AssetRealisations(caseID string, txns []domain.Transaction, entries []domain.AccountingEntry, cls *Classifier) decimal.Decimal {
	approved := make(map[string]struct{})
	for _, txn := range txns {
		if txn.CaseID == caseID && txn.Status == domain.StatusApproved {
			approved[txn.TransactionID] = struct{}{}
		}
	}

	perCode := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.CaseID != caseID {
			continue
		}
		if _, ok := approved[e.TransactionID]; !ok {
			continue
		}
		if !cls.IsRealisationAccount(e.AccountCode) {
			continue
		}
		perCode[e.AccountCode] = perCode[e.AccountCode].Add(e.CreditAmount).Sub(e.DebitAmount)
	}

	total := decimal.Zero
	for _, net := range perCode {
		total = total.Add(net)
	}
	return total
}

// BuildCaseAggregate derives the case-wide financial summary from a snapshot
// of the case's transactions and ledger entries. Every derived figure is
// independent; a case with no activity yields a zero-valued aggregate rather
// than an error.
func BuildCaseAggregate(c domain.Case, txns []domain.Transaction, entries []domain.AccountingEntry, cls *Classifier, vatControlCode string) domain.CaseAggregate {
	caseScope := TxnFilter{CaseID: c.CaseID}

	realisations := AssetRealisations(c.CaseID, txns, entries, cls)
	bonded := c.BondedAmount()
	underbonded := realisations.GreaterThan(bonded)
	shortfall := decimal.Zero
	if underbonded {
		shortfall = realisations.Sub(bonded)
	}

	return domain.CaseAggregate{
		CaseID:              c.CaseID,
		CompanyName:         c.CompanyName,
		CaseType:            c.CaseType,
		AccountBalance:      Balance(txns, caseScope),
		VATControlBalance:   VATControlBalance(c.CaseID, vatControlCode, entries),
		LastBankRequestDate: LastBankRequestDate(txns, caseScope),
		AssetRealisations:   realisations,
		FundsDistributed:    FundsDistributed(txns, cls, caseScope),
		BondedAmount:        bonded,
		IsUnderbonded:       underbonded,
		BondingShortfall:    shortfall,
		SoaETR:              c.SoaETR,
	}
}
