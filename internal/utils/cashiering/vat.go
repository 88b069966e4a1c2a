package cashiering

import (
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VATControlBalance folds the case's ledger entries on the VAT control code
// into a net position: sum of debits minus sum of credits. Positive means a
// net debit position (refund due to the estate), negative a net credit
// position (VAT owed).
func VATControlBalance(caseID, vatControlCode string, entries []domain.AccountingEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.CaseID != caseID || e.AccountCode != vatControlCode {
			continue
		}
		total = total.Add(e.DebitAmount).Sub(e.CreditAmount)
	}
	return total
}

// VATControlBalanceForTarget is the per-bank-account variant used by the row
// flattener. Entries carry no target account themselves, so each entry is
// attributed via its parent transaction.
func VATControlBalanceForTarget(caseID, vatControlCode string, target domain.TargetAccount, entries []domain.AccountingEntry, txns []domain.Transaction) decimal.Decimal {
	targetByTxn := make(map[string]domain.TargetAccount, len(txns))
	for _, txn := range txns {
		if txn.CaseID == caseID {
			targetByTxn[txn.TransactionID] = txn.TargetAccount
		}
	}

	total := decimal.Zero
	for _, e := range entries {
		if e.CaseID != caseID || e.AccountCode != vatControlCode {
			continue
		}
		if t, ok := targetByTxn[e.TransactionID]; !ok || t != target {
			continue
		}
		total = total.Add(e.DebitAmount).Sub(e.CreditAmount)
	}
	return total
}
